package repositories

import (
	"context"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
)

// AccountReader defines the read operations the posting engine needs from the
// chart of accounts. Account management itself is an external collaborator.
type AccountReader interface {
	// FindAccountByID retrieves a single account.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by ID.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// CountByCurrency counts accounts denominated in a currency for a company.
	// Used by the currency disable guard.
	CountByCurrency(ctx context.Context, companyID, currencyCode string) (int, error)
}

// AccountRepositoryFacade combines all account repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
}
