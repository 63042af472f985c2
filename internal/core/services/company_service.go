package services

import (
	"context"
	"fmt"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	portsrepo "github.com/mosaicfin/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/mosaicfin/ledger_backend/internal/core/ports/services"
)

type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company %s: %w", companyID, err)
	}
	return company, nil
}

func (s *companyService) GetBaseCurrency(ctx context.Context, companyID string) (string, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return "", fmt.Errorf("failed to get base currency for company %s: %w", companyID, err)
	}
	return company.BaseCurrencyCode, nil
}
