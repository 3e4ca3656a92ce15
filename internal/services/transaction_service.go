package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"moneybook/internal/clock"
	apperrors "moneybook/internal/errors"
	"moneybook/internal/logger"
	"moneybook/internal/models"
	"moneybook/internal/pagination"
	"moneybook/internal/store"
	"moneybook/internal/uuid"
)

// transactionService reconciles client and server copies of transactions.
type transactionService struct {
	store   store.TransactionStore
	syncLog SyncLogServicer
	clock   clock.Clock
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(s store.TransactionStore, syncLog SyncLogServicer, clk clock.Clock) TransactionServicer {
	return &transactionService{
		store:   s,
		syncLog: syncLog,
		clock:   clk,
	}
}

// Add stores a new transaction, assigning an id when absent and stamping
// both timestamps with the current time.
func (s *transactionService) Add(tx *models.Transaction) (*models.Transaction, error) {
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}

	saved := *tx
	if saved.ID == "" {
		saved.ID = uuid.New()
	}
	now := s.clock.Now().UTC()
	saved.CreatedAt = &now
	saved.UpdatedAt = &now

	if err := s.store.Save(&saved); err != nil {
		logger.Get().Errorw("failed to add transaction", "error", err, "transaction_id", saved.ID)
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.syncLog.Record(&saved, models.SyncActionAdd)
	return &saved, nil
}

// AddMany adds each transaction in order and stops at the first failure.
func (s *transactionService) AddMany(txs []models.Transaction) ([]models.Transaction, error) {
	added := make([]models.Transaction, 0, len(txs))
	for i := range txs {
		saved, err := s.Add(&txs[i])
		if err != nil {
			return added, err
		}
		added = append(added, *saved)
	}
	return added, nil
}

// Update merges incoming into the stored transaction with last-write-wins.
// A stale incoming version leaves the record untouched and logs nothing.
func (s *transactionService) Update(id string, incoming *models.Transaction) (*models.Transaction, bool, error) {
	if err := validateTransaction(incoming); err != nil {
		return nil, false, err
	}

	existing, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, false, nil
		}
		logger.Get().Errorw("failed to load transaction for update", "error", err, "transaction_id", id)
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if Resolve(existing, incoming) == Keep {
		logger.Get().Debugw("discarded stale transaction update",
			"transaction_id", id,
			"stored_updated_at", existing.UpdatedAt,
			"incoming_updated_at", incoming.UpdatedAt,
		)
		return existing, true, nil
	}

	merged := *incoming
	merged.ID = existing.ID
	merged.CreatedAt = existing.CreatedAt
	if merged.UpdatedAt == nil {
		now := s.clock.Now().UTC()
		merged.UpdatedAt = &now
	}

	if err := s.store.Save(&merged); err != nil {
		logger.Get().Errorw("failed to update transaction", "error", err, "transaction_id", id)
		return nil, true, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.syncLog.Record(&merged, models.SyncActionUpdate)
	return &merged, true, nil
}

// Delete removes the transaction and logs the pre-delete snapshot. It
// returns false when id is unknown.
func (s *transactionService) Delete(id string) (bool, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		logger.Get().Errorw("failed to load transaction for delete", "error", err, "transaction_id", id)
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.store.DeleteByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		logger.Get().Errorw("failed to delete transaction", "error", err, "transaction_id", id)
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.syncLog.Record(existing, models.SyncActionDelete)
	return true, nil
}

// BatchSync applies a client batch in input order. Known ids go through
// Update; unknown ids are inserted keeping the client's id and timestamps.
// The returned map sends each input id to the id it was stored under. Items
// that fail are logged and left out of the map; the joined failures are
// returned as SYNC_BATCH_FAILED after the whole batch has been attempted.
func (s *transactionService) BatchSync(txs []models.Transaction) (map[string]string, error) {
	mapping := make(map[string]string, len(txs))
	var errs []error

	for i := range txs {
		tx := txs[i]
		if tx.ID == "" {
			tx.ID = uuid.New()
		}

		storedID, err := s.syncOne(&tx)
		if err != nil {
			logger.Get().Errorw("failed to sync transaction", "error", err, "transaction_id", tx.ID, "index", i)
			errs = append(errs, err)
			continue
		}
		mapping[tx.ID] = storedID
	}

	if len(errs) > 0 {
		return mapping, apperrors.Wrap(apperrors.ErrSyncBatchFailed, errors.Join(errs...))
	}
	return mapping, nil
}

func (s *transactionService) syncOne(tx *models.Transaction) (string, error) {
	if err := validateTransaction(tx); err != nil {
		return "", err
	}

	exists, err := s.store.ExistsByID(tx.ID)
	if err != nil {
		return "", err
	}
	if exists {
		if _, _, err := s.Update(tx.ID, tx); err != nil {
			return "", err
		}
		return tx.ID, nil
	}

	now := s.clock.Now().UTC()
	if tx.CreatedAt == nil {
		tx.CreatedAt = &now
	}
	if tx.UpdatedAt == nil {
		tx.UpdatedAt = &now
	}
	if err := s.store.Save(tx); err != nil {
		return "", err
	}
	s.syncLog.Record(tx, models.SyncActionAdd)
	return tx.ID, nil
}

// GetByID returns the transaction or TRANSACTION_NOT_FOUND.
func (s *transactionService) GetByID(id string) (*models.Transaction, error) {
	tx, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tx, nil
}

func (s *transactionService) GetAll() ([]models.Transaction, error) {
	txs, err := s.store.FindAll()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txs, nil
}

// GetVisibleForUser returns the user's transactions plus unowned legacy ones.
func (s *transactionService) GetVisibleForUser(userID string) ([]models.Transaction, error) {
	txs, err := s.store.FindVisibleForUser(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txs, nil
}

// Filter retrieves a page of the user's visible transactions.
func (s *transactionService) Filter(userID string, filter store.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()
	txs, total, err := s.store.Query(userID, filter, page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	resp := pagination.NewPageResponse(txs, page.Page, page.PageSize, total)
	return &resp, nil
}

// ClearAll deletes every transaction and logs one DELETE per owned record.
func (s *transactionService) ClearAll() (int, error) {
	removed, err := s.store.DeleteAll()
	if err != nil {
		logger.Get().Errorw("failed to clear transactions", "error", err)
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range removed {
		s.syncLog.Record(&removed[i], models.SyncActionDelete)
	}
	return len(removed), nil
}

// Summary totals a set of transactions.
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
	Count   int             `json:"count"`
}

// Summarize adds up income and expense; Net is income minus expense.
func Summarize(txs []models.Transaction) Summary {
	sum := Summary{Income: decimal.Zero, Expense: decimal.Zero, Count: len(txs)}
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeIncome:
			sum.Income = sum.Income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			sum.Expense = sum.Expense.Add(tx.Amount)
		}
	}
	sum.Net = sum.Income.Sub(sum.Expense)
	return sum
}

// CalculateTotal returns income minus expense.
func CalculateTotal(txs []models.Transaction) decimal.Decimal {
	return Summarize(txs).Net
}

func validateTransaction(tx *models.Transaction) error {
	if tx == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction is required")
	}
	if tx.Type != models.TransactionTypeIncome && tx.Type != models.TransactionTypeExpense {
		return apperrors.ErrInvalidTransactionType
	}
	if tx.Amount.IsNegative() {
		return apperrors.ErrNegativeAmount
	}
	return nil
}
