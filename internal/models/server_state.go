package models

import "time"

// ServerState is the latest snapshot taken by the monitor loop.
type ServerState struct {
	ID        int       `json:"id"`
	Host      string    `json:"host"`
	Power     string    `json:"power"`                // ON | OFF | UNKNOWN
	UID       string    `json:"uid"`                  // ON | OFF | UNKNOWN
	LatencyMs int64     `json:"latency_ms"`           // logical request, not network
	LastError string    `json:"last_error,omitempty"` // empty when the last poll succeeded
	UpdatedAt time.Time `json:"updated_at"`
}
