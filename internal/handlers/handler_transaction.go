package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/SscSPs/shopbooks/internal/core/ports/services"
	"github.com/SscSPs/shopbooks/internal/dto"
	"github.com/SscSPs/shopbooks/internal/middleware"
	"github.com/SscSPs/shopbooks/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to day-book entries.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	now                func() time.Time
}

// RegisterTransactionRoutes registers routes related to day-book entries.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: transactionService, now: time.Now}

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/:transactionID/derived", h.getDerived)
	}
	rg.GET("/shops", h.listShops)
}

// createTransaction godoc
// @Summary Record a day-book entry
// @Description Appends a new entry for a shop. Entries cannot be edited afterwards.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Entry details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or negative amount"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "Record store unavailable"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.transactionService.RecordTransaction(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to record transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn, accounting.Derive(*txn)))
}

// listTransactions godoc
// @Summary List day-book entries
// @Description Lists entries oldest first, optionally by shop and inclusive date range. recentDays lists the entries of the last N days up to asOf.
// @Tags transactions
// @Produce json
// @Param shop query string false "Shop name"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param recentDays query int false "Only the last N days"
// @Param asOf query string false "Reference date for recentDays (YYYY-MM-DD)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	filter, err := params.ToFilter(h.now())
	if err != nil {
		respondError(c, logger, err, "Invalid query parameters")
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	resp := dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(txns)),
		Count:        len(txns),
	}
	for _, txn := range txns {
		resp.Transactions = append(resp.Transactions, dto.ToTransactionResponse(txn, accounting.Derive(txn)))
	}
	c.JSON(http.StatusOK, resp)
}

// getDerived godoc
// @Summary Get an entry with its derived figures
// @Description Returns gross profit, expense total, net profit and remaining cash of one entry
// @Tags transactions
// @Produce json
// @Param transactionID path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transactionID}/derived [get]
func (h *transactionHandler) getDerived(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, err := strconv.ParseInt(c.Param("transactionID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	txn, derived, err := h.transactionService.GetDerived(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(*txn, derived))
}

// listShops godoc
// @Summary List shops
// @Description Lists the shop names entries and cheques may be recorded against
// @Tags transactions
// @Produce json
// @Success 200 {object} map[string][]string
// @Security BearerAuth
// @Router /shops [get]
func (h *transactionHandler) listShops(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"shops": h.transactionService.Shops()})
}
