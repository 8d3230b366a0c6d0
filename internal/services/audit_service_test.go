package services

import (
	"testing"

	"github.com/maybourshan/ci-cd-stocks-service/internal/models"
	"github.com/maybourshan/ci-cd-stocks-service/internal/testutil"
)

func TestAuditRecord(t *testing.T) {
	t.Run("records_entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		NewAuditService(db).Record(AuditEntry{
			Action:    models.ActionCreateHolding,
			HoldingID: "h-1",
			ClientIP:  "127.0.0.1",
			Changes:   map[string]interface{}{"symbol": "AAPL"},
		})

		var entry models.AuditLog
		if err := db.First(&entry).Error; err != nil {
			t.Fatalf("expected audit entry: %v", err)
		}
		if entry.Action != models.ActionCreateHolding || entry.HoldingID != "h-1" || entry.ClientIP != "127.0.0.1" {
			t.Errorf("unexpected entry: %+v", entry)
		}
		if string(entry.Changes) != `{"symbol":"AAPL"}` {
			t.Errorf("expected changes JSON, got %s", entry.Changes)
		}
	})

	t.Run("no_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		NewAuditService(db).Record(AuditEntry{Action: models.ActionDeleteHolding, HoldingID: "h-1"})

		var entry models.AuditLog
		if err := db.First(&entry).Error; err != nil {
			t.Fatalf("expected audit entry: %v", err)
		}
		if string(entry.Changes) != "{}" {
			t.Errorf("expected empty changes object, got %s", entry.Changes)
		}
	})

	t.Run("unserializable_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		NewAuditService(db).Record(AuditEntry{
			Action:    models.ActionUpdateHolding,
			HoldingID: "h-1",
			Changes:   map[string]interface{}{"bad": make(chan int)},
		})

		var entry models.AuditLog
		if err := db.First(&entry).Error; err != nil {
			t.Fatalf("entry should still be written: %v", err)
		}
		if string(entry.Changes) != "{}" {
			t.Errorf("expected empty changes object, got %s", entry.Changes)
		}
	})

	t.Run("store_failure_is_swallowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewAuditService(db)
		testutil.TeardownTestDB(t, db)

		svc.Record(AuditEntry{Action: models.ActionDeleteHolding, HoldingID: "h-1"})
	})
}
