package models

import (
	"encoding/json"
	"time"
)

// AuditEntry is one ledger mutation as recorded by the audit trail.
type AuditEntry struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Entity    string          `json:"entity"`
	Action    string          `json:"action"`
	Actor     string          `json:"actor"`
	SubjectID string          `json:"subjectId"`
	Data      json.RawMessage `json:"data,omitempty"`
}

const (
	ActionIssue   = "issue"
	ActionReturn  = "return"
	ActionPayFine = "pay_fine"
	ActionCreate  = "create"
	ActionUpdate  = "update"
)
