package models

import "time"

// AuditFields holds standard audit columns shared by every table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// StatusHistoryEntry is a row of the append-only status_history table. The
// entity kind + entity id pair points at the owning record.
type StatusHistoryEntry struct {
	HistoryID  string    `db:"history_id"`
	EntityKind string    `db:"entity_kind"`
	EntityID   string    `db:"entity_id"`
	Status     string    `db:"status"`
	Note       string    `db:"note"`
	CreatedAt  time.Time `db:"created_at"`
}
