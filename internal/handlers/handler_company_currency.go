package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mosaicfin/ledger_backend/internal/apperrors"
	portssvc "github.com/mosaicfin/ledger_backend/internal/core/ports/services"
	"github.com/mosaicfin/ledger_backend/internal/dto"
	"github.com/mosaicfin/ledger_backend/internal/middleware"
)

// companyCurrencyHandler handles HTTP requests for per-tenant currency state.
type companyCurrencyHandler struct {
	companyCurrencyService portssvc.CompanyCurrencySvcFacade
}

func newCompanyCurrencyHandler(ccs portssvc.CompanyCurrencySvcFacade) *companyCurrencyHandler {
	return &companyCurrencyHandler{
		companyCurrencyService: ccs,
	}
}

// registerCompanyCurrencyRoutes registers company-scoped currency lifecycle routes.
func registerCompanyCurrencyRoutes(rg *gin.RouterGroup, companyCurrencyService portssvc.CompanyCurrencySvcFacade) {
	h := newCompanyCurrencyHandler(companyCurrencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.enableCurrency)
		currencies.GET("", h.listCompanyCurrencies)
		currencies.DELETE("/:code", h.disableCurrency)
	}
}

// enableCurrency godoc
// @Summary Enable a currency for a company
// @Description Enables a catalog currency for the company and records its mandatory initial exchange rate in one atomic operation
// @Tags company-currencies
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   request body dto.EnableCompanyCurrencyRequest true "Currency code and initial rate"
// @Success 201 {object} dto.CompanyCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Company or currency not found"
// @Failure 409 {object} map[string]string "Currency already enabled"
// @Failure 500 {object} map[string]string "Failed to enable currency"
// @Security BearerAuth
// @Router /companies/{companyID}/currencies [post]
func (h *companyCurrencyHandler) enableCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.EnableCompanyCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for EnableCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	enabled, err := h.companyCurrencyService.EnableCurrency(c.Request.Context(), companyID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Currency '%s' is already enabled", req.CurrencyCode)})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error enabling currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to enable currency", slog.String("currency_code", req.CurrencyCode), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enable currency"})
		}
		return
	}

	logger.Info("Currency enabled for company",
		slog.String("company_id", companyID),
		slog.String("currency_code", enabled.CurrencyCode))
	c.JSON(http.StatusCreated, dto.ToCompanyCurrencyResponse(enabled))
}

// listCompanyCurrencies godoc
// @Summary List company currencies
// @Description Retrieves all currency records for the company, enabled and disabled
// @Tags company-currencies
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {array} dto.CompanyCurrencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list company currencies"
// @Security BearerAuth
// @Router /companies/{companyID}/currencies [get]
func (h *companyCurrencyHandler) listCompanyCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	currencies, err := h.companyCurrencyService.ListCompanyCurrencies(c.Request.Context(), companyID)
	if err != nil {
		logger.Error("Failed to list company currencies", slog.String("company_id", companyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list company currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCompanyCurrencyResponse(currencies))
}

// disableCurrency godoc
// @Summary Disable a currency for a company
// @Description Soft-disables a currency. Rejected for the company base currency and while any account or voucher still references the currency
// @Tags company-currencies
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   code path string true "Currency code (e.g., EUR)"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Base currency cannot be disabled"
// @Failure 404 {object} map[string]string "Currency not enabled for company"
// @Failure 409 {object} map[string]string "Currency still referenced"
// @Failure 500 {object} map[string]string "Failed to disable currency"
// @Security BearerAuth
// @Router /companies/{companyID}/currencies/{code} [delete]
func (h *companyCurrencyHandler) disableCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	code := c.Param("code")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.companyCurrencyService.DisableCurrency(c.Request.Context(), companyID, code, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": fmt.Sprintf("Base currency '%s' cannot be disabled", code)})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Currency '%s' is not enabled for this company", code)})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to disable currency", slog.String("currency_code", code), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disable currency"})
		}
		return
	}

	logger.Info("Currency disabled for company",
		slog.String("company_id", companyID),
		slog.String("currency_code", code))
	c.Status(http.StatusNoContent)
}
