// Package history is the append-only record of finalized documents and the
// send log. Entries are immutable once appended; loading one seeds a fresh
// editable copy, never a reference.
package history

import (
	"time"

	"github.com/shopspring/decimal"

	"wrenchbill/internal/document"
)

// SavedDocument is a finalized document as it entered history: billable
// items only, attachment metadata only, totals frozen at save time.
type SavedDocument struct {
	ID          string                    `json:"id"`
	Kind        document.Kind             `json:"kind"`
	Number      string                    `json:"invoiceNumber"`
	Date        time.Time                 `json:"date"`
	Customer    document.Customer         `json:"customer"`
	Items       []document.LineItem       `json:"items"`
	Attachments []document.AttachmentInfo `json:"attachments"`
	Subtotal    decimal.Decimal           `json:"subtotal"`
	Tax         decimal.Decimal           `json:"tax"`
	Total       decimal.Decimal           `json:"total"`
	SavedAt     time.Time                 `json:"savedAt"`
}

// LogEntry records one send/save action.
type LogEntry struct {
	ID                 string          `json:"id"`
	DocumentNumber     string          `json:"invoiceNumber"`
	CustomerName       string          `json:"customerName"`
	Total              decimal.Decimal `json:"total"`
	SentAt             time.Time       `json:"sentAt"`
	Method             string          `json:"method"`
	AttachmentCount    int             `json:"attachmentCount"`
	FilesSaved         bool            `json:"filesSaved"`
	FilesSavedLocation string          `json:"filesSavedLocation"`
	ExportReady        bool            `json:"exportReady"`
}
