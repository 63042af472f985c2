package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mosaicfin/ledger_backend/internal/apperrors"
	"github.com/mosaicfin/ledger_backend/internal/core/domain"
	portssvc "github.com/mosaicfin/ledger_backend/internal/core/ports/services"
	"github.com/mosaicfin/ledger_backend/internal/dto"
	"github.com/mosaicfin/ledger_backend/internal/middleware"
)

// voucherHandler handles HTTP requests for voucher posting and retrieval.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{
		voucherService: vs,
	}
}

// registerVoucherRoutes registers company-scoped voucher routes, one posting
// endpoint per voucher kind.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("/payment", h.createPaymentVoucher)
		vouchers.POST("/receipt", h.createReceiptVoucher)
		vouchers.POST("/journal", h.createJournalVoucher)
		vouchers.POST("/opening-balance", h.createOpeningBalanceVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucherID", h.getVoucher)
		vouchers.PATCH("/:voucherID/status", h.updateVoucherStatus)
	}
}

// respondVoucherError maps posting errors to HTTP responses. Every posting
// endpoint fails the same way, so the mapping lives in one place.
func respondVoucherError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed " + action})
	}
}

// createPaymentVoucher godoc
// @Summary Post a payment voucher
// @Description Creates a balanced two-line payment: debit the expense account, credit the cash account. Foreign-currency amounts are converted through the company rate store
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   voucher body dto.CreatePaymentVoucherRequest true "Payment details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Company or rate not found"
// @Failure 500 {object} map[string]string "Failed posting payment voucher"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers/payment [post]
func (h *voucherHandler) createPaymentVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreatePaymentVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePaymentVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, err := h.voucherService.CreatePaymentVoucher(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondVoucherError(c, logger, err, "posting payment voucher")
		return
	}

	logger.Info("Payment voucher posted",
		slog.String("company_id", companyID),
		slog.String("voucher_no", voucher.VoucherNo))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// createReceiptVoucher godoc
// @Summary Post a receipt voucher
// @Description Creates a balanced two-line receipt: debit the cash account, credit the revenue account
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   voucher body dto.CreateReceiptVoucherRequest true "Receipt details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Company or rate not found"
// @Failure 500 {object} map[string]string "Failed posting receipt voucher"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers/receipt [post]
func (h *voucherHandler) createReceiptVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateReceiptVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReceiptVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, err := h.voucherService.CreateReceiptVoucher(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondVoucherError(c, logger, err, "posting receipt voucher")
		return
	}

	logger.Info("Receipt voucher posted",
		slog.String("company_id", companyID),
		slog.String("voucher_no", voucher.VoucherNo))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// createJournalVoucher godoc
// @Summary Post a journal voucher
// @Description Creates a free-form journal entry from caller-supplied lines. Debits and credits must balance within the accounting tolerance
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   voucher body dto.CreateJournalVoucherRequest true "Journal entry details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Company or rate not found"
// @Failure 500 {object} map[string]string "Failed posting journal voucher"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers/journal [post]
func (h *voucherHandler) createJournalVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateJournalVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournalVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, err := h.voucherService.CreateJournalVoucher(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondVoucherError(c, logger, err, "posting journal voucher")
		return
	}

	logger.Info("Journal voucher posted",
		slog.String("company_id", companyID),
		slog.String("voucher_no", voucher.VoucherNo))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// createOpeningBalanceVoucher godoc
// @Summary Post an opening balance voucher
// @Description Records period-zero balances as a balanced multi-line voucher
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   voucher body dto.CreateOpeningBalanceRequest true "Opening balance details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Company or rate not found"
// @Failure 500 {object} map[string]string "Failed posting opening balance voucher"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers/opening-balance [post]
func (h *voucherHandler) createOpeningBalanceVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOpeningBalanceVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, err := h.voucherService.CreateOpeningBalanceVoucher(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondVoucherError(c, logger, err, "posting opening balance voucher")
		return
	}

	logger.Info("Opening balance voucher posted",
		slog.String("company_id", companyID),
		slog.String("voucher_no", voucher.VoucherNo))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// getVoucher godoc
// @Summary Get a voucher by ID
// @Description Retrieves a voucher with its lines. Vouchers belonging to other companies are reported as not found
// @Tags vouchers
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   voucherID path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 500 {object} map[string]string "Failed to get voucher"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers/{voucherID} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	voucherID := c.Param("voucherID")

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), companyID, voucherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
		} else {
			logger.Error("Failed to get voucher", slog.String("voucher_id", voucherID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get voucher"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List vouchers
// @Description Retrieves a filtered, token-paginated list of company vouchers, newest first
// @Tags vouchers
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   type query string false "Voucher type filter (PAYMENT, RECEIPT, JOURNAL_ENTRY, OPENING_BALANCE)"
// @Param   status query string false "Status filter (DRAFT, APPROVED, CANCELLED)"
// @Param   dateFrom query string false "Earliest voucher date (YYYY-MM-DD)"
// @Param   dateTo query string false "Latest voucher date (YYYY-MM-DD)"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Continuation token from the previous page"
// @Success 200 {object} dto.ListVouchersResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list vouchers"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.voucherService.ListVouchers(c.Request.Context(), companyID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list vouchers", slog.String("company_id", companyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vouchers"})
		}
		return
	}

	c.JSON(http.StatusOK, page)
}

// updateVoucherStatus godoc
// @Summary Update a voucher's status
// @Description Records an approval or cancellation decided by the workflow owner. No transition rules are enforced here
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   voucherID path string true "Voucher ID"
// @Param   status body dto.UpdateVoucherStatusRequest true "New status"
// @Success 204 "Status updated"
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Failure 409 {object} map[string]string "Voucher already in that status"
// @Failure 500 {object} map[string]string "Failed updating voucher status"
// @Security BearerAuth
// @Router /companies/{companyID}/vouchers/{voucherID}/status [patch]
func (h *voucherHandler) updateVoucherStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	voucherID := c.Param("voucherID")

	var req dto.UpdateVoucherStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateVoucherStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.voucherService.UpdateVoucherStatus(c.Request.Context(), companyID, voucherID, domain.VoucherStatus(req.Status), userID)
	if err != nil {
		respondVoucherError(c, logger, err, "updating voucher status")
		return
	}

	c.Status(http.StatusNoContent)
}
