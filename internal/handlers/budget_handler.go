package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "moneybook/internal/errors"
	"moneybook/internal/models"
	"moneybook/internal/pagination"
	"moneybook/internal/period"
	"moneybook/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// BudgetRequest represents the request payload for creating or replacing a
// budget. Omit categoryId for a total budget across all categories.
type BudgetRequest struct {
	CategoryID  *string         `json:"categoryId" binding:"omitempty,max=64"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"`
	Year        int             `json:"year" binding:"omitempty,min=1970,max=9999"`
	Month       int             `json:"month" binding:"omitempty,min=1,max=12"`
	StartDate   *period.Date    `json:"startDate" swaggertype:"string" example:"2024-01-01"`
	PeriodUnit  string          `json:"periodUnit" binding:"omitempty,period_unit"`
	PeriodCount int             `json:"periodCount" binding:"omitempty,min=1"`
}

func (r *BudgetRequest) toModel(userID string) models.Budget {
	unit, _ := period.ParseUnit(r.PeriodUnit)
	return models.Budget{
		UserID:      userID,
		CategoryID:  blankToNil(r.CategoryID),
		Amount:      r.Amount,
		Year:        r.Year,
		Month:       r.Month,
		StartDate:   r.StartDate,
		PeriodUnit:  unit,
		PeriodCount: r.PeriodCount,
	}
}

// MonthlyBudgetRequest sets the amount of a calendar-month budget.
type MonthlyBudgetRequest struct {
	CategoryID *string         `json:"categoryId" binding:"omitempty,max=64"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"number"`
	Year       int             `json:"year" binding:"required,min=1970,max=9999"`
	Month      int             `json:"month" binding:"required,min=1,max=12"`
}

func blankToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// ownedBudget loads a budget the caller owns. Other users' budgets are
// reported as missing.
func (h *BudgetHandler) ownedBudget(c *gin.Context) (string, *models.Budget, bool) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return "", nil, false
	}
	budget, err := h.budgetService.GetBudget(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return "", nil, false
	}
	if budget.UserID != userID {
		respondWithError(c, apperrors.ErrBudgetNotFound)
		return "", nil, false
	}
	return userID, budget, true
}

// CreateBudget handles the creation of a new budget.
// @Summary     Create a budget
// @Description Create a monthly or period budget for a category, or a total budget when categoryId is omitted
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.CreateBudget(req.toModel(userID))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets handles listing budgets for the authenticated user.
// @Summary     Get budgets
// @Description Get the caller's budgets, optionally only those anchored to one month
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       year      query int false "Year (requires month)"
// @Param       month     query int false "Month 1-12 (requires year)"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Budget] "Paginated budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
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

	year, err := queryInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}
	month, err := queryInt(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if month < 0 || month > 12 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12"))
		return
	}

	budgets := h.budgetService.ListBudgets(userID, year, month)
	c.JSON(http.StatusOK, pagination.SlicePage(budgets, page))
}

// GetActiveBudgets handles listing budgets whose period covers a date.
// @Summary     Active budgets
// @Description Budgets whose period contains the given date (default today). A category narrows to budgets of exactly that category.
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       category_id query string false "Category"
// @Param       date        query string false "Date (YYYY-MM-DD)"
// @Success     200 {array}  models.Budget "Active budgets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budgets/active [get]
func (h *BudgetHandler) GetActiveBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var at *period.Date
	if v := c.Query("date"); v != "" {
		d, err := period.ParseDate(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date, use YYYY-MM-DD"))
			return
		}
		at = &d
	}

	budgets := h.budgetService.FindActiveBudgets(userID, queryString(c, "category_id"), at)
	if budgets == nil {
		budgets = []models.Budget{}
	}
	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// GetBudget handles retrieving a single budget by ID.
// @Summary     Get budget by ID
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} models.Budget "Budget details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	_, budget, ok := h.ownedBudget(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget handles replacing a budget.
// @Summary     Update a budget
// @Description Replace a budget's category, amount and period. Owner and creation time are kept.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string        true "Budget ID"
// @Param       request body BudgetRequest true "Budget details"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, existing, ok := h.ownedBudget(c)
	if !ok {
		return
	}

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	b := req.toModel(userID)
	b.ID = existing.ID
	budget, err := h.budgetService.UpdateBudget(b)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles deleting a budget.
// @Summary     Delete a budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} MessageResponse "Budget deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	_, existing, ok := h.ownedBudget(c)
	if !ok {
		return
	}

	deleted, err := h.budgetService.DeleteBudget(existing.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if !deleted {
		respondWithError(c, apperrors.ErrBudgetNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}

// GetBudgetStats handles the period statistics of a budget.
// @Summary     Get budget statistics
// @Description Spend, remaining amount, daily averages, projection and recent spend for the budget period as of today
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} services.BudgetStats "Budget statistics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id}/stats [get]
func (h *BudgetHandler) GetBudgetStats(c *gin.Context) {
	_, existing, ok := h.ownedBudget(c)
	if !ok {
		return
	}

	stats, err := h.budgetService.StatsForBudget(existing.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// SetMonthlyBudget handles the upsert of a calendar-month budget.
// @Summary     Set a monthly budget
// @Description Create or update the budget for a category (or the total budget) in one month
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body MonthlyBudgetRequest true "Monthly budget"
// @Success     200 {object} models.Budget "Stored budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/monthly [put]
func (h *BudgetHandler) SetMonthlyBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req MonthlyBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.SetMonthlyBudget(userID, blankToNil(req.CategoryID), req.Amount, req.Year, req.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// GetMonthlyUsage handles the calendar-month usage view.
// @Summary     Monthly budget usage
// @Description Spend in a calendar month against the matching monthly budget. Without category_id the total budget and all categories are used.
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       year        query int    true  "Year"
// @Param       month       query int    true  "Month 1-12"
// @Param       category_id query string false "Category"
// @Success     200 {object} services.MonthlyUsage "Usage"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/monthly/usage [get]
func (h *BudgetHandler) GetMonthlyUsage(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := queryInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}
	month, err := queryInt(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if year == 0 || month == 0 {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "year and month are required"))
		return
	}

	usage, err := h.budgetService.MonthlyUsage(userID, queryString(c, "category_id"), year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"usage": usage})
}

// CanConsume handles a budget pre-check for a prospective expense.
// @Summary     Check an expense against budgets
// @Description Reports whether some active budget for the expense's category still has enough remaining. Income and uncategorised expenses are always allowed.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionRequest true "Prospective transaction"
// @Success     200 {object} map[string]bool "allowed"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/can-consume [post]
func (h *BudgetHandler) CanConsume(c *gin.Context) {
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

	allowed, err := h.budgetService.CanConsume(&tx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"allowed": allowed})
}
