package services

import (
	"context"
	"fmt"

	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	portsrepo "github.com/mosaicfin/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/mosaicfin/ledger_backend/internal/core/ports/services"
	"github.com/mosaicfin/ledger_backend/internal/utils/accounting"
)

// voucherNumberService formats sequential voucher numbers. The uniqueness
// guarantee lives in the repository's atomic counter; this layer only renders
// PAY-2025-001 style strings.
type voucherNumberService struct {
	numberRepo portsrepo.VoucherNumberRepository
}

// NewVoucherNumberService creates a new VoucherNumberService.
func NewVoucherNumberService(numberRepo portsrepo.VoucherNumberRepository) portssvc.VoucherNumberSvcFacade {
	return &voucherNumberService{numberRepo: numberRepo}
}

var _ portssvc.VoucherNumberSvcFacade = (*voucherNumberService)(nil)

// NextVoucherNumber implements portssvc.VoucherNumberSvcFacade.
func (s *voucherNumberService) NextVoucherNumber(ctx context.Context, companyID string, voucherType domain.VoucherType, fiscalYear int) (string, error) {
	seq, err := s.numberRepo.NextSequence(ctx, companyID, voucherType, fiscalYear)
	if err != nil {
		return "", fmt.Errorf("failed to allocate voucher number for %s/%d: %w", voucherType, fiscalYear, err)
	}
	return accounting.FormatVoucherNumber(voucherType.NumberPrefix(), fiscalYear, seq), nil
}
