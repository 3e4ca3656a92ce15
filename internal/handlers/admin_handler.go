package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneybook/internal/logger"
	"moneybook/internal/services"
)

// AdminHandler serves operator endpoints guarded by the admin key.
type AdminHandler struct {
	transactionService services.TransactionServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(transactionService services.TransactionServicer) *AdminHandler {
	return &AdminHandler{transactionService: transactionService}
}

// ListAllTransactions handles a full dump of every user's transactions.
// @Summary     List all transactions
// @Tags        admin
// @Produce     json
// @Param       X-Admin-Key header string true "Operator key"
// @Success     200 {object} map[string]interface{} "transactions and count"
// @Failure     401 {object} ErrorResponse "Invalid admin key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/transactions [get]
func (h *AdminHandler) ListAllTransactions(c *gin.Context) {
	txs, err := h.transactionService.GetAll()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs, "count": len(txs)})
}

// ClearTransactions handles wiping every transaction.
// @Summary     Delete all transactions
// @Description Removes every transaction. Owned records get a DELETE entry in their owner's sync log.
// @Tags        admin
// @Produce     json
// @Param       X-Admin-Key header string true "Operator key"
// @Success     200 {object} map[string]int "deleted"
// @Failure     401 {object} ErrorResponse "Invalid admin key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/transactions [delete]
func (h *AdminHandler) ClearTransactions(c *gin.Context) {
	deleted, err := h.transactionService.ClearAll()
	if err != nil {
		respondWithError(c, err)
		return
	}
	logger.Get().Warnw("cleared all transactions", "deleted", deleted, "client_ip", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
