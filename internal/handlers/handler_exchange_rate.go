package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mosaicfin/ledger_backend/internal/apperrors"
	portssvc "github.com/mosaicfin/ledger_backend/internal/core/ports/services"
	"github.com/mosaicfin/ledger_backend/internal/dto"
	"github.com/mosaicfin/ledger_backend/internal/middleware"
)

const rateDateFormat = "2006-01-02"

// exchangeRateHandler handles HTTP requests for the company rate store.
type exchangeRateHandler struct {
	rateService       portssvc.ExchangeRateSvcFacade
	resolutionService portssvc.RateResolutionSvcFacade
	deviationService  portssvc.RateDeviationSvcFacade
}

func newExchangeRateHandler(
	rs portssvc.ExchangeRateSvcFacade,
	rrs portssvc.RateResolutionSvcFacade,
	rds portssvc.RateDeviationSvcFacade,
) *exchangeRateHandler {
	return &exchangeRateHandler{
		rateService:       rs,
		resolutionService: rrs,
		deviationService:  rds,
	}
}

// registerExchangeRateRoutes registers company-scoped rate store routes.
func registerExchangeRateRoutes(
	rg *gin.RouterGroup,
	rateService portssvc.ExchangeRateSvcFacade,
	resolutionService portssvc.RateResolutionSvcFacade,
	deviationService portssvc.RateDeviationSvcFacade,
) {
	h := newExchangeRateHandler(rateService, resolutionService, deviationService)

	rates := rg.Group("/exchange-rates")
	{
		rates.POST("", h.saveReferenceRate)
		rates.GET("", h.listRecentRates)
		rates.GET("/resolve", h.resolveRate)
		rates.GET("/:rateID", h.getExchangeRate)
		rates.POST("/check-deviation", h.checkDeviation)
	}
}

// saveReferenceRate godoc
// @Summary Record a reference exchange rate
// @Description Appends a reference rate observation to the company rate store. Existing observations are never overwritten
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   rate body dto.SaveReferenceRateRequest true "Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to save rate"
// @Security BearerAuth
// @Router /companies/{companyID}/exchange-rates [post]
func (h *exchangeRateHandler) saveReferenceRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.SaveReferenceRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveReferenceRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	saved, err := h.rateService.SaveReferenceRate(c.Request.Context(), companyID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error saving rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save exchange rate"})
		}
		return
	}

	logger.Info("Reference rate recorded",
		slog.String("company_id", companyID),
		slog.String("pair", req.FromCurrencyCode+"/"+req.ToCurrencyCode),
		slog.String("rate", req.Rate.String()))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(saved))
}

// listRecentRates godoc
// @Summary List recent rates for a pair
// @Description Retrieves the latest rate observations for a currency pair, newest first
// @Tags exchange-rates
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   from query string true "From currency code"
// @Param   to query string true "To currency code"
// @Param   limit query int false "Maximum observations to return (default 10)"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Security BearerAuth
// @Router /companies/{companyID}/exchange-rates [get]
func (h *exchangeRateHandler) listRecentRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' and 'to' query parameters are required"})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'limit' query parameter"})
			return
		}
		limit = parsed
	}

	rates, err := h.rateService.ListRecentRates(c.Request.Context(), companyID, from, to, limit)
	if err != nil {
		logger.Error("Failed to list recent rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recent rates"})
		return
	}

	responses := make([]dto.ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = dto.ToExchangeRateResponse(&rates[i])
	}
	c.JSON(http.StatusOK, responses)
}

// resolveRate godoc
// @Summary Resolve the applicable rate for a pair and date
// @Description Returns the rate dated exactly on the given date when one exists, otherwise the most recently recorded rate, otherwise an unresolved result. The source tag tells the caller which case applied
// @Tags exchange-rates
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   from query string true "From currency code"
// @Param   to query string true "To currency code"
// @Param   date query string true "Target date (YYYY-MM-DD)"
// @Success 200 {object} dto.RateResolutionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to resolve rate"
// @Security BearerAuth
// @Router /companies/{companyID}/exchange-rates/resolve [get]
func (h *exchangeRateHandler) resolveRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' and 'to' query parameters are required"})
		return
	}

	date, err := time.Parse(rateDateFormat, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'date' query parameter, expected YYYY-MM-DD"})
		return
	}

	resolution, err := h.resolutionService.Resolve(c.Request.Context(), companyID, from, to, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to resolve rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRateResolutionResponse(resolution))
}

// checkDeviation godoc
// @Summary Check a proposed rate for anomalies
// @Description Runs advisory heuristics (first rate, percentage deviation, decimal shift) against a proposed rate. Warnings never block
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   request body dto.CheckRateDeviationRequest true "Proposed rate"
// @Success 200 {array} dto.RateWarningResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to check rate"
// @Security BearerAuth
// @Router /companies/{companyID}/exchange-rates/check-deviation [post]
func (h *exchangeRateHandler) checkDeviation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CheckRateDeviationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CheckRateDeviation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	warnings, err := h.deviationService.DetectDeviations(c.Request.Context(), companyID, req.FromCurrencyCode, req.ToCurrencyCode, req.ProposedRate)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to check rate deviation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check rate deviation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateWarningResponse(warnings))
}

// getExchangeRate godoc
// @Summary Get a rate observation by ID
// @Description Retrieves a single rate observation belonging to the company
// @Tags exchange-rates
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   rateID path string true "Exchange rate ID"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve rate"
// @Security BearerAuth
// @Router /companies/{companyID}/exchange-rates/{rateID} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	rateID := c.Param("rateID")

	rate, err := h.rateService.GetExchangeRateByID(c.Request.Context(), companyID, rateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
		} else {
			logger.Error("Failed to retrieve exchange rate", slog.String("error", err.Error()), slog.String("rate_id", rateID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}
