package repositories

import (
	"context"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
)

// CompanyReader defines read operations for tenant data
type CompanyReader interface {
	// FindCompanyByID retrieves a company (tenant) by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
}

// CompanyRepositoryFacade combines all company repository interfaces.
// Tenant provisioning is owned elsewhere; the engine only reads.
type CompanyRepositoryFacade interface {
	CompanyReader
}
