package models

import "time"

// AuditFields holds the creation columns shared by append-only tables.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	CreatedBy string    `json:"createdBy" db:"created_by"`
}
