package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneybook/internal/errors"
	"moneybook/internal/models"
	"moneybook/internal/services"
)

const defaultChangesLimit = 500

// SyncHandler serves device synchronisation: batch upload and change feed.
type SyncHandler struct {
	transactionService services.TransactionServicer
	syncLogService     services.SyncLogServicer
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(transactionService services.TransactionServicer, syncLogService services.SyncLogServicer) *SyncHandler {
	return &SyncHandler{transactionService: transactionService, syncLogService: syncLogService}
}

// BatchSyncRequest carries the transactions a device recorded offline.
type BatchSyncRequest struct {
	Transactions []TransactionRequest `json:"transactions" binding:"required,max=1000,dive"`
}

// BatchSyncResponse maps each submitted (or generated) id to the stored id.
type BatchSyncResponse struct {
	IDMapping map[string]string `json:"idMapping"`
}

// ChangesQuery selects the part of the sync log a device has not seen.
type ChangesQuery struct {
	Since int64 `form:"since" binding:"omitempty,min=0"`
	Limit int   `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// ChangesResponse is one slice of the caller's sync log.
type ChangesResponse struct {
	Changes    []models.SyncLog `json:"changes"`
	MaxVersion int64            `json:"maxVersion"`
	HasMore    bool             `json:"hasMore"`
}

// BatchSync handles an offline batch upload
// @Summary     Sync a batch of transactions
// @Description Upsert transactions recorded offline. Existing ids go through last-write-wins; missing ids are generated. Failed entries are left out of idMapping.
// @Tags        sync
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BatchSyncRequest true "Transactions to sync"
// @Success     200 {object} BatchSyncResponse "Id mapping"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Batch touches a shared transaction"
// @Failure     500 {object} ErrorResponse "Some entries could not be stored"
// @Router      /sync/batch [post]
func (h *SyncHandler) BatchSync(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BatchSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	txs := make([]models.Transaction, 0, len(req.Transactions))
	for i := range req.Transactions {
		tx, err := req.Transactions[i].toModel(userID)
		if err != nil {
			respondWithError(c, err)
			return
		}
		if tx.ID != "" {
			if err := h.checkWritable(userID, tx.ID); err != nil {
				respondWithError(c, err)
				return
			}
		}
		txs = append(txs, tx)
	}

	mapping, err := h.transactionService.BatchSync(txs)
	if err != nil {
		respondWithErrorData(c, err, gin.H{"idMapping": mapping})
		return
	}

	c.JSON(http.StatusOK, BatchSyncResponse{IDMapping: mapping})
}

// checkWritable lets unknown ids through as new records. Known ids must
// belong to the caller.
func (h *SyncHandler) checkWritable(userID, id string) error {
	existing, err := h.transactionService.GetByID(id)
	if errors.Is(err, apperrors.ErrTransactionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !existing.OwnedBy(userID) {
		return apperrors.WithMessage(apperrors.ErrForbidden, "transaction "+id+" is not writable")
	}
	return nil
}

// GetChanges handles the change feed
// @Summary     Get sync changes
// @Description Sync log entries with a version greater than since, oldest first
// @Tags        sync
// @Produce     json
// @Security    BearerAuth
// @Param       since query int false "Last version the device has seen (default 0)"
// @Param       limit query int false "Maximum entries (default 500, max 1000)"
// @Success     200 {object} ChangesResponse "Changes"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sync/changes [get]
func (h *SyncHandler) GetChanges(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q ChangesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultChangesLimit
	}

	maxVersion, err := h.syncLogService.MaxVersion(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes, err := h.syncLogService.ChangesSince(userID, q.Since, q.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if changes == nil {
		changes = []models.SyncLog{}
	}

	hasMore := false
	if n := len(changes); n > 0 {
		hasMore = changes[n-1].Version < maxVersion
	}

	c.JSON(http.StatusOK, ChangesResponse{Changes: changes, MaxVersion: maxVersion, HasMore: hasMore})
}
