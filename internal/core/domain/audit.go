package domain

import "time"

// Risk score buckets for audit reports.
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// Vault entry types the audit heuristic cares about.
const (
	EntryTypeCredential = "credential"
	EntryTypeNote       = "note"
)

// AuditEntry is the caller-supplied view of one vault entry. The service
// never sees entry contents — only metadata.
type AuditEntry struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required,max=255"`
	Type        string `json:"type" validate:"required,max=50"`
	LastUpdated string `json:"last_updated" validate:"required"`
}

// AuditReport summarizes vault hygiene for one user.
type AuditReport struct {
	ReportID        string    `json:"report_id"`
	UserID          string    `json:"user_id"`
	GeneratedAt     time.Time `json:"generated_at"`
	TotalEntries    int       `json:"total_entries"`
	Recommendations []string  `json:"recommendations"`
	RiskScore       string    `json:"risk_score"`
}
