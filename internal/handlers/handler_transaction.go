package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khazna-app/khazna_backend/internal/apperrors"
	"github.com/khazna-app/khazna_backend/internal/core/domain"
	portssvc "github.com/khazna-app/khazna_backend/internal/core/ports/services"
	"github.com/khazna-app/khazna_backend/internal/dto"
	"github.com/khazna-app/khazna_backend/internal/middleware"
)

// transactionHandler handles HTTP requests related to the transaction ledger.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{
		ledgerService: ls,
	}
}

// registerTransactionRoutes registers routes related to the ledger.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransactionByID)
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/series", h.getTimeSeries)
	}

	exports := rg.Group("/exports")
	{
		exports.GET("/transactions", h.exportTransactions)
	}
}

// createTransaction godoc
// @Summary Append a transaction to the ledger
// @Description Creates a new ledger entry; the ID and creator are assigned by the server
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create transaction", slog.String("kind", req.Kind))

	createdTxn, err := h.ledgerService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", createdTxn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(createdTxn))
}

// listTransactions godoc
// @Summary List ledger entries
// @Description Retrieves all transactions, most recent first
// @Tags transactions
// @Produce  json
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	txns, err := h.ledgerService.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// getTransactionByID godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransactionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	transactionID := c.Param("transactionID")

	txn, err := h.ledgerService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found", slog.String("transaction_id", transactionID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// getSummary godoc
// @Summary Dashboard aggregates
// @Description Total income, total expense and net balance; pass ?currency= to normalize through the rate table
// @Tags reports
// @Produce  json
// @Param   currency query string false "Target currency code for normalized totals"
// @Success 200 {object} dto.SummaryResponse
// @Failure 404 {object} map[string]string "Unknown currency code"
// @Failure 500 {object} map[string]string "Failed to derive summary"
// @Router /reports/summary [get]
func (h *transactionHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	currency := c.Query("currency")

	var (
		summary *domain.Summary
		err     error
	)
	if currency == "" {
		summary, err = h.ledgerService.Summary(c.Request.Context())
	} else {
		summary, err = h.ledgerService.SummaryInCurrency(c.Request.Context(), currency)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Unknown currency for summary", slog.String("currency", currency))
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Currency '%s' not in rate table", currency)})
		} else {
			logger.Error("Failed to derive summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary, currency))
}

// getTimeSeries godoc
// @Summary Charting series
// @Description One signed (date, amount) point per transaction in ledger order
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.SeriesPointResponse
// @Failure 500 {object} map[string]string "Failed to build series"
// @Router /reports/series [get]
func (h *transactionHandler) getTimeSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	points, err := h.ledgerService.TimeSeries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build time series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build series"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSeriesResponse(points))
}

// exportTransactions godoc
// @Summary Export the ledger as CSV
// @Description UTF-8 CSV with BOM prefix, one header row plus one row per transaction
// @Tags exports
// @Produce  text/csv
// @Success 200 {string} string "CSV document"
// @Failure 500 {object} map[string]string "Failed to export transactions"
// @Router /exports/transactions [get]
func (h *transactionHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	blob, filename, err := h.ledgerService.ExportCSV(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
		return
	}

	logger.Info("Ledger exported", slog.String("filename", filename), slog.Int("bytes", len(blob)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", blob)
}
