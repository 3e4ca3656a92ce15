package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"moneybook/internal/clock"
	"moneybook/internal/logger"
	"moneybook/internal/models"
	"moneybook/internal/store"
	"moneybook/internal/testutil"
)

// recordingPublisher collects published entries.
type recordingPublisher struct {
	mu      sync.Mutex
	entries []models.SyncLog
	err     error
}

func (p *recordingPublisher) Publish(_ context.Context, entry models.SyncLog) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.entries = append(p.entries, entry)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type testEnv struct {
	db        *gorm.DB
	clock     *clock.Fixed
	txStore   store.TransactionStore
	logStore  store.SyncLogStore
	syncLog   SyncLogServicer
	txService TransactionServicer
	published *recordingPublisher
}

func newTestEnv(t *testing.T, now time.Time) *testEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	env := &testEnv{
		db:        db,
		clock:     clock.NewFixed(now),
		txStore:   store.NewTransactionStore(db),
		logStore:  store.NewSyncLogStore(db),
		published: &recordingPublisher{},
	}
	env.syncLog = NewSyncLogService(env.logStore, env.published)
	env.txService = NewTransactionService(env.txStore, env.syncLog, env.clock)
	return env
}

func (e *testEnv) logEntries(t *testing.T, userID string) []models.SyncLog {
	t.Helper()
	entries, err := e.logStore.ListSince(userID, 0, 0)
	testutil.AssertNoError(t, err)
	return entries
}

// observeLogs routes the global logger into an observer for the test.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	restore := logger.Replace(zap.New(core))
	t.Cleanup(restore)
	return logs
}
