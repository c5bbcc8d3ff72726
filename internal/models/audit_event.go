package models

import "time"

// Audit event types.
const (
	EventCommand     = "COMMAND"
	EventPowerChange = "POWER_CHANGE"
	EventUIDChange   = "UID_CHANGE"
	EventError       = "ERROR"
)

// AuditEvent is a single audit log entry.
type AuditEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // COMMAND | POWER_CHANGE | UID_CHANGE | ERROR
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
