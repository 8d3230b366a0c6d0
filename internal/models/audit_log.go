package models

import "gorm.io/datatypes"

// Audit actions recorded for holding mutations.
const (
	ActionCreateHolding = "CREATE_HOLDING"
	ActionUpdateHolding = "UPDATE_HOLDING"
	ActionDeleteHolding = "DELETE_HOLDING"
)

// AuditLog is one row of the holdings audit trail. HoldingID is not a
// foreign key: entries outlive the holdings they describe.
type AuditLog struct {
	Base
	Action    string         `gorm:"not null" json:"action"`
	HoldingID string         `gorm:"index;not null" json:"holding_id"`
	ClientIP  string         `json:"client_ip"`
	Changes   datatypes.JSON `gorm:"type:jsonb;not null" json:"changes"`
}
