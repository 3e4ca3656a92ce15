package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "moneybook/internal/errors"
	"moneybook/internal/models"
	"moneybook/internal/pagination"
	"moneybook/internal/services"
	"moneybook/internal/store"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	budgetService      services.BudgetServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, budgetService services.BudgetServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, budgetService: budgetService}
}

// TransactionRequest is the wire form of a transaction sent by a client.
// Offline clients may supply their own id and timestamps.
type TransactionRequest struct {
	ID          string          `json:"id" binding:"omitempty,max=36"`
	Type        string          `json:"type" binding:"required,transaction_type"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"`
	CategoryID  *string         `json:"categoryId" binding:"omitempty,max=64"`
	Description string          `json:"description" binding:"max=500"`
	Tags        string          `json:"tags" binding:"max=500"`
	Date        string          `json:"date"`
	CreatedAt   *time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt"`
}

// toModel builds the transaction owned by userID. A missing date means now.
func (r *TransactionRequest) toModel(userID string) (models.Transaction, error) {
	txType, err := models.ParseTransactionType(r.Type)
	if err != nil {
		return models.Transaction{}, apperrors.ErrInvalidTransactionType
	}

	date := time.Now().UTC()
	if r.Date != "" {
		date, err = parseFlexibleTime(r.Date)
		if err != nil {
			return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
	}

	var categoryID *string
	if r.CategoryID != nil && strings.TrimSpace(*r.CategoryID) != "" {
		c := strings.TrimSpace(*r.CategoryID)
		categoryID = &c
	}

	owner := userID
	return models.Transaction{
		ID:          strings.TrimSpace(r.ID),
		UserID:      &owner,
		Type:        txType,
		Amount:      r.Amount,
		CategoryID:  categoryID,
		Description: r.Description,
		Tags:        r.Tags,
		Date:        date,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

// writableTransaction loads id and checks that userID may change it. Shared
// records without an owner are read-only; other users' records do not exist
// as far as the caller is concerned.
func writableTransaction(svc services.TransactionServicer, userID, id string) (*models.Transaction, error) {
	tx, err := svc.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx.UserID == nil {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "shared transactions are read-only")
	}
	if !tx.OwnedBy(userID) {
		return nil, apperrors.ErrTransactionNotFound
	}
	return tx, nil
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense. With enforce_budget=true an expense that no active budget can absorb is rejected.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       enforce_budget query bool               false "Reject expenses that exceed every active budget"
// @Param       request        body  TransactionRequest true  "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Transaction id already in use"
// @Failure     422 {object} ErrorResponse "Budget exceeded"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := req.toModel(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if tx.ID != "" {
		_, lookupErr := h.transactionService.GetByID(tx.ID)
		switch {
		case lookupErr == nil:
			respondWithError(c, apperrors.ErrTransactionExists)
			return
		case !errors.Is(lookupErr, apperrors.ErrTransactionNotFound):
			respondWithError(c, lookupErr)
			return
		}
	}

	if c.Query("enforce_budget") == "true" {
		allowed, err := h.budgetService.CanConsume(&tx)
		if err != nil {
			respondWithError(c, err)
			return
		}
		if !allowed {
			respondWithError(c, apperrors.ErrBudgetExceeded)
			return
		}
	}

	saved, err := h.transactionService.Add(&tx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": saved})
}

// GetTransactions handles listing the caller's visible transactions.
// @Summary     Get transactions
// @Description Get a filtered, paginated list of the caller's transactions plus shared ones, newest first
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from_date   query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date     query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Param       type        query string false "INCOME or EXPENSE"
// @Param       category_id query string false "Category"
// @Param       keyword     query string false "Matches description or tags"
// @Param       min_amount  query number false "Minimum amount"
// @Param       max_amount  query number false "Maximum amount"
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.Filter(userID, filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransactionSummary handles totals over the caller's visible transactions.
// @Summary     Transaction summary
// @Description Income, expense and net totals, optionally limited to a date range
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       from_date query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date   query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} services.Summary "Totals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/summary [get]
func (h *TransactionHandler) GetTransactionSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txs, err := h.transactionService.GetVisibleForUser(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	inRange := txs[:0]
	for _, tx := range txs {
		if filter.FromDate != nil && tx.Date.Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && tx.Date.After(*filter.ToDate) {
			continue
		}
		inRange = append(inRange, tx)
	}

	c.JSON(http.StatusOK, gin.H{"summary": services.Summarize(inRange)})
}

func parseTransactionFilter(c *gin.Context) (store.TransactionFilter, error) {
	var filter store.TransactionFilter

	if v := c.Query("from_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.FromDate = &t
	}

	if v := c.Query("to_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.ToDate = &t
	}

	if v := c.Query("type"); v != "" {
		txType, err := models.ParseTransactionType(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be INCOME or EXPENSE")
		}
		filter.Type = &txType
	}

	filter.CategoryID = queryString(c, "category_id")
	filter.Keyword = c.Query("keyword")

	if v := c.Query("min_amount"); v != "" {
		amt, err := decimal.NewFromString(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid min_amount")
		}
		filter.MinAmount = &amt
	}

	if v := c.Query("max_amount"); v != "" {
		amt, err := decimal.NewFromString(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid max_amount")
		}
		filter.MaxAmount = &amt
	}

	return filter, nil
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Description Get one of the caller's transactions, or a shared one
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if transaction.UserID != nil && !transaction.OwnedBy(userID) {
		respondWithError(c, apperrors.ErrTransactionNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction handles a last-write-wins update
// @Summary     Update transaction
// @Description Replace a transaction unless the stored copy is newer. A stale update returns the stored copy with applied=false.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "Full transaction"
// @Success     200 {object} models.Transaction "Resulting transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Shared transaction"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	if _, err := writableTransaction(h.transactionService, userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	incoming, err := req.toModel(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	incoming.ID = id

	result, found, err := h.transactionService.Update(id, &incoming)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !found {
		respondWithError(c, apperrors.ErrTransactionNotFound)
		return
	}

	applied := result.UpdatedAt == nil || incoming.UpdatedAt == nil || !result.UpdatedAt.After(*incoming.UpdatedAt)
	c.JSON(http.StatusOK, gin.H{"transaction": result, "applied": applied})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Delete one of the caller's transactions
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Shared transaction"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	if _, err := writableTransaction(h.transactionService, userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.transactionService.Delete(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !deleted {
		respondWithError(c, apperrors.ErrTransactionNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
