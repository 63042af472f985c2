package services

import (
	"context"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
)

// CompanySvcFacade exposes the tenant reads the engine depends on.
type CompanySvcFacade interface {
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// GetBaseCurrency returns the tenant's accounting currency code.
	GetBaseCurrency(ctx context.Context, companyID string) (string, error)
}
