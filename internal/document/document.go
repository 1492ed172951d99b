// Package document holds the in-progress invoice or quote being edited:
// header fields, line items, attachments, and the derived totals. A Document
// is a transient working copy mutated by a single UI context; it reaches the
// store only through explicit save points.
package document

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is the fixed sales tax applied to every document.
var TaxRate = decimal.NewFromFloat(0.08)

// Kind distinguishes a final bill from a price estimate.
type Kind string

const (
	KindInvoice Kind = "invoice"
	KindQuote   Kind = "quote"
)

// Prefix returns the document-number prefix for the kind.
func (k Kind) Prefix() string {
	if k == KindQuote {
		return "QUO"
	}

	return "INV"
}

// Customer is the bill-to block of a document.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// LineItem is one billable row. Quantity and price are kept as decimals and
// rounded to cents only when rendered.
type LineItem struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"price"`
}

// Total is quantity × unit price.
func (li LineItem) Total() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// Empty reports whether the row has no description. Empty rows stay editable
// but contribute nothing to totals or exports.
func (li LineItem) Empty() bool {
	return li.Description == ""
}

// MediaKind classifies an attachment.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Handle is the transient resource behind an attachment. It must be released
// exactly once, when the attachment is removed or the form is cleared.
type Handle interface {
	Release() error
}

// Attachment is a photo or video attached to the current editing session.
// Only its metadata survives into saved history.
type Attachment struct {
	ID     string
	Name   string
	Media  MediaKind
	SizeMB float64

	handle Handle
}

// AttachmentInfo is the persisted slice of an attachment.
type AttachmentInfo struct {
	Name   string    `json:"name"`
	Media  MediaKind `json:"type"`
	SizeMB float64   `json:"size"`
}

// Snapshot is an immutable copy of a document at a point in time. Renderers
// and history consume snapshots, never the live document.
type Snapshot struct {
	Kind        Kind
	Number      string
	Date        time.Time
	Customer    Customer
	Items       []LineItem
	Attachments []AttachmentInfo
}

// BillableItems returns the items that count: rows with a description.
func (s Snapshot) BillableItems() []LineItem {
	items := make([]LineItem, 0, len(s.Items))

	for _, it := range s.Items {
		if !it.Empty() {
			items = append(items, it)
		}
	}

	return items
}

// Subtotal sums line totals over billable items.
func (s Snapshot) Subtotal() decimal.Decimal {
	sum := decimal.Zero

	for _, it := range s.BillableItems() {
		sum = sum.Add(it.Total())
	}

	return sum
}

// Tax is Subtotal × TaxRate.
func (s Snapshot) Tax() decimal.Decimal {
	return s.Subtotal().Mul(TaxRate)
}

// Total is Subtotal + Tax.
func (s Snapshot) Total() decimal.Decimal {
	return s.Subtotal().Add(s.Tax())
}
