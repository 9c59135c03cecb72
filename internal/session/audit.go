package session

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction is the type of action recorded in the session audit log.
type AuditAction string

const (
	ActionCountSet    AuditAction = "count_set"
	ActionOrderPlaced AuditAction = "order_placed"
	ActionWasteLogged AuditAction = "waste_logged"
	ActionSave        AuditAction = "save"
)

// AuditEntry is a single recorded action. Entries exist only in memory for
// the lifetime of the session; the log is summarized at save-and-exit and
// then discarded with the process.
type AuditEntry struct {
	ID        uuid.UUID
	Action    AuditAction
	Item      string // item acted on, empty for table-wide actions
	Detail    string // human-readable description
	CreatedAt time.Time
}

// AuditLog collects entries in the order actions happened.
type AuditLog struct {
	entries []AuditEntry
}

// NewAuditLog returns an empty log.
func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// Record appends an entry for the given action.
func (l *AuditLog) Record(action AuditAction, item, detail string) AuditEntry {
	entry := AuditEntry{
		ID:        uuid.New(),
		Action:    action,
		Item:      item,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	l.entries = append(l.entries, entry)
	return entry
}

// Entries returns all recorded entries in order.
func (l *AuditLog) Entries() []AuditEntry {
	return l.entries
}

// Len returns the number of recorded entries.
func (l *AuditLog) Len() int {
	return len(l.entries)
}
