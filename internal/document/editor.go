package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wrenchbill/internal/validate"
)

// Field selects which part of a line item an update targets.
type Field string

const (
	FieldDescription Field = "description"
	FieldQuantity    Field = "quantity"
	FieldPrice       Field = "price"
)

// Form-field caps, tighter than the global sanitizer cap.
const (
	maxNameLen   = 100
	maxPhoneLen  = 20
	maxEmailLen  = 100
	maxNumberLen = 20
	maxDescLen   = 200
)

var (
	qtyMin   = decimal.Zero
	qtyMax   = decimal.NewFromInt(999)
	priceMin = decimal.Zero
	priceMax = decimal.NewFromInt(999999)
)

// Document is the editable working copy.
type Document struct {
	Kind        Kind
	Number      string
	Date        time.Time
	Customer    Customer
	Items       []LineItem
	Attachments []Attachment
}

// New returns a fresh document of the given kind with a single empty line
// item. The number is a placeholder until the caller seeds it from history.
func New(kind Kind) *Document {
	return &Document{
		Kind:   kind,
		Number: kind.Prefix() + "-001",
		Date:   time.Now(),
		Items:  []LineItem{{ID: 1, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.Zero}},
	}
}

// SetKind switches between invoice and quote, rewriting the number prefix
// while keeping the numeric part.
func (d *Document) SetKind(kind Kind) {
	if d.Kind == kind {
		return
	}

	d.Kind = kind
	d.Number = FormatNumber(kind, NumberValue(d.Number))
}

// SetNumber overwrites the document number with a sanitized value. Uniqueness
// is by convention only; a manually edited number may collide.
func (d *Document) SetNumber(n string) {
	d.Number = validate.SanitizeN(n, maxNumberLen)
}

func (d *Document) SetDate(t time.Time) {
	d.Date = t
}

func (d *Document) SetCustomerName(s string) {
	d.Customer.Name = validate.SanitizeN(s, maxNameLen)
}

func (d *Document) SetCustomerPhone(s string) {
	d.Customer.Phone = validate.SanitizeN(s, maxPhoneLen)
}

func (d *Document) SetCustomerEmail(s string) {
	d.Customer.Email = validate.SanitizeN(s, maxEmailLen)
}

// AddItem appends an empty row and returns its id.
func (d *Document) AddItem() int {
	maxID := 0

	for _, it := range d.Items {
		if it.ID > maxID {
			maxID = it.ID
		}
	}

	id := maxID + 1
	d.Items = append(d.Items, LineItem{ID: id, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.Zero})

	return id
}

// RemoveItem deletes the row with the given id. The last remaining row can
// never be removed.
func (d *Document) RemoveItem(id int) bool {
	if len(d.Items) <= 1 {
		return false
	}

	for i, it := range d.Items {
		if it.ID == id {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return true
		}
	}

	return false
}

// UpdateItem applies a validated field update to the row with the given id.
// Invalid input leaves the row unchanged and reports false.
func (d *Document) UpdateItem(id int, field Field, value string) bool {
	for i := range d.Items {
		if d.Items[i].ID != id {
			continue
		}

		switch field {
		case FieldDescription:
			d.Items[i].Description = validate.SanitizeN(value, maxDescLen)
			return true
		case FieldQuantity:
			q, ok := validate.Numeric(value, qtyMin, qtyMax)
			if !ok {
				return false
			}

			d.Items[i].Quantity = q

			return true
		case FieldPrice:
			p, ok := validate.Numeric(value, priceMin, priceMax)
			if !ok {
				return false
			}

			d.Items[i].UnitPrice = p

			return true
		}

		return false
	}

	return false
}

// SetItemFromPart fills a row's description and price in one step, as the
// parts lookup does when the user picks a part for an existing line.
func (d *Document) SetItemFromPart(id int, description string, price decimal.Decimal) bool {
	for i := range d.Items {
		if d.Items[i].ID == id {
			d.Items[i].Description = validate.SanitizeN(description, maxDescLen)
			d.Items[i].UnitPrice = price

			return true
		}
	}

	return false
}

// AddAttachment registers a transient media handle with the session and
// returns the attachment id.
func (d *Document) AddAttachment(name string, media MediaKind, sizeMB float64, h Handle) string {
	a := Attachment{
		ID:     uuid.NewString(),
		Name:   validate.Sanitize(name),
		Media:  media,
		SizeMB: sizeMB,
		handle: h,
	}
	d.Attachments = append(d.Attachments, a)

	return a.ID
}

// RemoveAttachment drops the attachment and releases its handle.
func (d *Document) RemoveAttachment(id string) bool {
	for i, a := range d.Attachments {
		if a.ID == id {
			if a.handle != nil {
				_ = a.handle.Release()
			}

			d.Attachments = append(d.Attachments[:i], d.Attachments[i+1:]...)

			return true
		}
	}

	return false
}

// Reset clears the form back to a single empty row with no customer info,
// releasing every attachment handle. Kind, number and date are kept.
func (d *Document) Reset() {
	for _, a := range d.Attachments {
		if a.handle != nil {
			_ = a.handle.Release()
		}
	}

	d.Customer = Customer{}
	d.Items = []LineItem{{ID: 1, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.Zero}}
	d.Attachments = nil
}

// Subtotal sums line totals over rows with a description.
func (d *Document) Subtotal() decimal.Decimal {
	return d.Snapshot().Subtotal()
}

// Tax is Subtotal × TaxRate.
func (d *Document) Tax() decimal.Decimal {
	return d.Snapshot().Tax()
}

// Total is Subtotal + Tax.
func (d *Document) Total() decimal.Decimal {
	return d.Snapshot().Total()
}

// Snapshot returns an immutable value copy for renderers and history.
func (d *Document) Snapshot() Snapshot {
	items := make([]LineItem, len(d.Items))
	copy(items, d.Items)

	atts := make([]AttachmentInfo, 0, len(d.Attachments))
	for _, a := range d.Attachments {
		atts = append(atts, AttachmentInfo{Name: a.Name, Media: a.Media, SizeMB: a.SizeMB})
	}

	return Snapshot{
		Kind:        d.Kind,
		Number:      d.Number,
		Date:        d.Date,
		Customer:    d.Customer,
		Items:       items,
		Attachments: atts,
	}
}
