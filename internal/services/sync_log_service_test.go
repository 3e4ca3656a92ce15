package services

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"moneybook/internal/models"
	"moneybook/internal/testutil"
)

type failingSyncLogStore struct{}

func (failingSyncLogStore) Append(models.SyncLog) (*models.SyncLog, error) {
	return nil, errors.New("database is locked")
}
func (failingSyncLogStore) MaxVersionForUser(string) (int64, error) { return 0, nil }
func (failingSyncLogStore) ListSince(string, int64, int) ([]models.SyncLog, error) {
	return nil, nil
}

func TestSyncLogService_Record(t *testing.T) {
	t.Run("versions are consecutive per user", func(t *testing.T) {
		env := newTestEnv(t, time.Now())
		tx := testutil.NewTestTransaction("u1", "food", models.TransactionTypeExpense, "10", testutil.Day(2024, time.January, 1))

		env.syncLog.Record(&tx, models.SyncActionAdd)
		env.syncLog.Record(&tx, models.SyncActionUpdate)
		env.syncLog.Record(&tx, models.SyncActionDelete)

		entries := env.logEntries(t, "u1")
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		for i, e := range entries {
			if e.Version != int64(i+1) {
				t.Errorf("entry %d: expected version %d, got %d", i, i+1, e.Version)
			}
			if e.EntityID != tx.ID || e.EntityType != models.EntityTypeTransaction {
				t.Errorf("entry %d: unexpected entity %s/%s", i, e.EntityType, e.EntityID)
			}
		}

		maxVersion, err := env.syncLog.MaxVersion("u1")
		testutil.AssertNoError(t, err)
		if maxVersion != 3 {
			t.Errorf("expected max version 3, got %d", maxVersion)
		}
	})

	t.Run("payload holds the snapshot except for deletes", func(t *testing.T) {
		env := newTestEnv(t, time.Now())
		tx := testutil.NewTestTransaction("u1", "", models.TransactionTypeIncome, "42.5", testutil.Day(2024, time.February, 2))

		env.syncLog.Record(&tx, models.SyncActionAdd)
		env.syncLog.Record(&tx, models.SyncActionDelete)

		entries := env.logEntries(t, "u1")
		if entries[0].Payload == nil {
			t.Fatal("expected payload on ADD")
		}
		var decoded models.Transaction
		testutil.AssertNoError(t, json.Unmarshal([]byte(*entries[0].Payload), &decoded))
		if decoded.ID != tx.ID || !decoded.Amount.Equal(tx.Amount) {
			t.Errorf("payload does not match transaction: %+v", decoded)
		}
		if entries[1].Payload != nil {
			t.Errorf("expected no payload on DELETE, got %q", *entries[1].Payload)
		}
	})

	t.Run("unowned records are skipped", func(t *testing.T) {
		env := newTestEnv(t, time.Now())
		tx := testutil.NewTestTransaction("", "", models.TransactionTypeIncome, "1", testutil.Day(2024, time.February, 2))

		env.syncLog.Record(&tx, models.SyncActionAdd)

		var count int64
		env.db.Model(&models.SyncLog{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no entries, got %d", count)
		}
		if len(env.published.entries) != 0 {
			t.Error("expected nothing published")
		}
	})

	t.Run("appended entries are published", func(t *testing.T) {
		env := newTestEnv(t, time.Now())
		tx := testutil.NewTestTransaction("u9", "", models.TransactionTypeIncome, "1", testutil.Day(2024, time.February, 2))

		env.syncLog.Record(&tx, models.SyncActionAdd)

		if len(env.published.entries) != 1 {
			t.Fatalf("expected 1 published entry, got %d", len(env.published.entries))
		}
		if env.published.entries[0].Version != 1 || env.published.entries[0].UserID != "u9" {
			t.Errorf("unexpected published entry %+v", env.published.entries[0])
		}
	})

	t.Run("publish failure is logged only", func(t *testing.T) {
		logs := observeLogs(t)
		env := newTestEnv(t, time.Now())
		env.published.err = errors.New("broker down")
		tx := testutil.NewTestTransaction("u1", "", models.TransactionTypeIncome, "1", testutil.Day(2024, time.February, 2))

		env.syncLog.Record(&tx, models.SyncActionAdd)

		if len(env.logEntries(t, "u1")) != 1 {
			t.Error("expected the entry to be stored despite the publish failure")
		}
		if logs.FilterMessage("failed to publish sync event").Len() != 1 {
			t.Error("expected publish failure to be logged")
		}
	})

	t.Run("append failure is logged and swallowed", func(t *testing.T) {
		logs := observeLogs(t)
		svc := NewSyncLogService(failingSyncLogStore{}, nil)
		tx := testutil.NewTestTransaction("u1", "", models.TransactionTypeIncome, "1", testutil.Day(2024, time.February, 2))

		svc.Record(&tx, models.SyncActionAdd)

		entries := logs.FilterMessage("failed to append sync log entry").All()
		if len(entries) != 1 {
			t.Fatalf("expected one error log, got %d", len(entries))
		}
		if entries[0].ContextMap()["user_id"] != "u1" {
			t.Errorf("expected user_id field, got %v", entries[0].ContextMap())
		}
	})
}

func TestSyncLogService_ConcurrentRecordsStayGapFree(t *testing.T) {
	env := newTestEnv(t, time.Now())
	tx := testutil.NewTestTransaction("u1", "", models.TransactionTypeExpense, "1", testutil.Day(2024, time.March, 1))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			env.syncLog.Record(&tx, models.SyncActionUpdate)
		}()
	}
	wg.Wait()

	entries := env.logEntries(t, "u1")
	if len(entries) != 20 {
		t.Fatalf("expected 20 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Version != int64(i+1) {
			t.Fatalf("expected version %d at %d, got %d", i+1, i, e.Version)
		}
	}
}

func TestSyncLogService_ChangesSince(t *testing.T) {
	env := newTestEnv(t, time.Now())
	tx := testutil.NewTestTransaction("u1", "", models.TransactionTypeExpense, "1", testutil.Day(2024, time.March, 1))
	for i := 0; i < 4; i++ {
		env.syncLog.Record(&tx, models.SyncActionUpdate)
	}

	changes, err := env.syncLog.ChangesSince("u1", 2, 10)
	testutil.AssertNoError(t, err)
	if len(changes) != 2 || changes[0].Version != 3 || changes[1].Version != 4 {
		t.Errorf("expected versions 3 and 4, got %+v", changes)
	}
}
