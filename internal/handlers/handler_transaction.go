package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.POST("", h.createTransaction)
		txns.POST("/reset", h.resetTransactions)
		txns.DELETE("/:id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List all transactions
// @Description Returns every transaction keyed by its generated id, or an empty object
// @Tags transactions
// @Produce json
// @Success 200 {object} map[string]domain.Transaction
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	txns, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(txns)))
	c.JSON(http.StatusOK, txns)
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Stores a new income/expense entry; amounts may be numbers or numeric strings
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.CreateTransactionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := bindJSONObject(c, &req); err != nil {
		respondError(c, err, "Failed to bind JSON for CreateTransaction")
		return
	}

	id, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTransactionResponse{ID: id})
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes one transaction; unknown ids are not an error
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	transactionID := c.Param("id")

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), transactionID); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}

// resetTransactions godoc
// @Summary Delete all transactions
// @Description Irreversibly clears the transaction collection
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/transactions/reset [post]
func (h *transactionHandler) resetTransactions(c *gin.Context) {
	if err := h.transactionService.ResetTransactions(c.Request.Context()); err != nil {
		respondError(c, err, "Failed to reset transactions")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "All transactions reset successfully"})
}
