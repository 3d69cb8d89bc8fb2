package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/khazna-app/khazna_backend/internal/apperrors"
	"github.com/khazna-app/khazna_backend/internal/core/domain"
	portssvc "github.com/khazna-app/khazna_backend/internal/core/ports/services"
	"github.com/khazna-app/khazna_backend/internal/dto"
	"github.com/khazna-app/khazna_backend/internal/middleware"
)

// rateHandler handles HTTP requests related to the currency rate table and
// per-currency market commentary.
type rateHandler struct {
	rateService    portssvc.RateSvcFacade
	advisorService portssvc.AdvisorSvc
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade, as portssvc.AdvisorSvc) *rateHandler {
	return &rateHandler{
		rateService:    rs,
		advisorService: as,
	}
}

// registerRateRoutes registers routes related to currency rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade, advisorService portssvc.AdvisorSvc) {
	h := newRateHandler(rateService, advisorService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
		rates.POST("/refresh", h.refreshRates)
		rates.GET("/convert", h.convert)
	}

	currencies := rg.Group("/currencies")
	{
		currencies.GET("/:code", h.getRateByCode)
		currencies.GET("/:code/insight", h.getCurrencyInsight)
	}
}

// listRates godoc
// @Summary Get the currency rate table
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.ListRatesResponse
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Router /rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	rates, refreshedAt, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRatesResponse(domain.BaseCurrencyCode, rates, refreshedAt))
}

// refreshRates godoc
// @Summary Refresh the rate table with simulated market movement
// @Description Applies a small random drift to every non-base rate and returns the new table
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.ListRatesResponse
// @Failure 500 {object} map[string]string "Failed to refresh rates"
// @Router /rates/refresh [post]
func (h *rateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	rates, refreshedAt, err := h.rateService.RefreshRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to refresh rates in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh rates"})
		return
	}

	logger.Info("Rate table refreshed", slog.Int("rates", len(rates)))
	c.JSON(http.StatusOK, dto.ToListRatesResponse(domain.BaseCurrencyCode, rates, refreshedAt))
}

// convert godoc
// @Summary Convert an amount between two currencies
// @Tags rates
// @Produce  json
// @Param   amount query string true "Amount to convert"
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown currency code"
// @Failure 500 {object} map[string]string "Failed to convert"
// @Router /rates/convert [get]
func (h *rateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.rateService.Convert(c.Request.Context(), req.Amount, req.From, req.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Unknown currency code in conversion",
				slog.String("from", req.From), slog.String("to", req.To))
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown currency code"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to convert amount in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount: req.Amount,
		From:   req.From,
		To:     req.To,
		Result: result,
	})
}

// getRateByCode godoc
// @Summary Get a single rate table entry
// @Tags rates
// @Produce  json
// @Param   code path string true "Currency code"
// @Success 200 {object} dto.RateResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve rate"
// @Router /currencies/{code} [get]
func (h *rateHandler) getRateByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	code := strings.ToUpper(c.Param("code"))

	rate, err := h.rateService.GetRateByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found", slog.String("code", code))
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to get rate from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// getCurrencyInsight godoc
// @Summary Get market commentary for a currency
// @Description Returns advisory commentary for the currency; the insight is empty when the advisory service is disabled or fails
// @Tags rates
// @Produce  json
// @Param   code path string true "Currency code"
// @Success 200 {object} dto.InsightResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{code}/insight [get]
func (h *rateHandler) getCurrencyInsight(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	code := strings.ToUpper(c.Param("code"))

	// The insight only makes sense for currencies the table knows about.
	if _, err := h.rateService.GetRateByCode(c.Request.Context(), code); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to get rate from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate"})
		}
		return
	}

	insight := h.advisorService.CurrencyInsight(c.Request.Context(), code)
	c.JSON(http.StatusOK, dto.InsightResponse{
		Code:    code,
		Insight: insight,
	})
}
