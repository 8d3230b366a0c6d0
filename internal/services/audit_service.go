package services

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/maybourshan/ci-cd-stocks-service/internal/logger"
	"github.com/maybourshan/ci-cd-stocks-service/internal/models"
)

type auditService struct {
	db *gorm.DB
}

// NewAuditService returns an AuditServicer writing to the audit_logs table.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Record stores entry. A failed write is logged and otherwise ignored so
// that the mutation being audited still succeeds.
func (s *auditService) Record(entry AuditEntry) {
	log := logger.Get().With("action", entry.Action, "holding_id", entry.HoldingID)

	changes := datatypes.JSON("{}")
	if len(entry.Changes) > 0 {
		data, err := json.Marshal(entry.Changes)
		if err != nil {
			log.Errorw("audit changes not serializable", "error", err)
		} else {
			changes = data
		}
	}

	row := &models.AuditLog{
		Action:    entry.Action,
		HoldingID: entry.HoldingID,
		ClientIP:  entry.ClientIP,
		Changes:   changes,
	}
	if err := s.db.Create(row).Error; err != nil {
		log.Errorw("failed to write audit entry", "error", err)
	}
}
