package document_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrenchbill/internal/document"
)

func TestTotals_OilChangeScenario(t *testing.T) {
	d := document.New(document.KindInvoice)

	require.True(t, d.UpdateItem(1, document.FieldDescription, "Oil Change"))
	require.True(t, d.UpdateItem(1, document.FieldQuantity, "2"))
	require.True(t, d.UpdateItem(1, document.FieldPrice, "25.00"))

	assert.Equal(t, "50.00", d.Subtotal().StringFixed(2))
	assert.Equal(t, "4.00", d.Tax().StringFixed(2))
	assert.Equal(t, "54.00", d.Total().StringFixed(2))
}

func TestTotals_EmptyDescriptionExcluded(t *testing.T) {
	d := document.New(document.KindInvoice)

	// Priced but undescribed rows contribute nothing.
	require.True(t, d.UpdateItem(1, document.FieldQuantity, "5"))
	require.True(t, d.UpdateItem(1, document.FieldPrice, "100"))

	assert.True(t, d.Subtotal().IsZero())
	assert.True(t, d.Total().IsZero())
}

func TestTotals_Invariant(t *testing.T) {
	d := document.New(document.KindInvoice)
	d.UpdateItem(1, document.FieldDescription, "Brake Pads")
	d.UpdateItem(1, document.FieldQuantity, "3")
	d.UpdateItem(1, document.FieldPrice, "49.99")

	id := d.AddItem()
	d.UpdateItem(id, document.FieldDescription, "Labor")
	d.UpdateItem(id, document.FieldQuantity, "1.5")
	d.UpdateItem(id, document.FieldPrice, "80")

	want := d.Subtotal().Mul(decimal.NewFromFloat(1.08))
	assert.True(t, d.Total().Equal(want), "Total = Subtotal × 1.08")
}

func TestUpdateItem_RejectsOutOfRange(t *testing.T) {
	d := document.New(document.KindInvoice)
	require.True(t, d.UpdateItem(1, document.FieldQuantity, "2"))

	assert.False(t, d.UpdateItem(1, document.FieldQuantity, "1500"))
	assert.Equal(t, "2", d.Items[0].Quantity.String(), "item unchanged after rejected update")

	assert.False(t, d.UpdateItem(1, document.FieldPrice, "-5"))
	assert.False(t, d.UpdateItem(1, document.FieldPrice, "1000000"))
	assert.False(t, d.UpdateItem(1, document.FieldQuantity, "abc"))
}

func TestUpdateItem_SanitizesDescription(t *testing.T) {
	d := document.New(document.KindInvoice)

	require.True(t, d.UpdateItem(1, document.FieldDescription, `  <b>Oil "Change"</b>  `))
	assert.Equal(t, "bOil Change/b", d.Items[0].Description)
}

func TestRemoveItem_KeepsLastRow(t *testing.T) {
	d := document.New(document.KindInvoice)

	assert.False(t, d.RemoveItem(1), "last remaining item cannot be removed")
	assert.Len(t, d.Items, 1)

	id := d.AddItem()
	assert.True(t, d.RemoveItem(id))
	assert.Len(t, d.Items, 1)
}

func TestAddItem_IDsIncrease(t *testing.T) {
	d := document.New(document.KindInvoice)

	id2 := d.AddItem()
	id3 := d.AddItem()
	assert.Equal(t, 2, id2)
	assert.Equal(t, 3, id3)

	// Removing a middle row never recycles ids.
	d.RemoveItem(id2)
	assert.Equal(t, 4, d.AddItem())
}

func TestSetKind_RewritesPrefix(t *testing.T) {
	d := document.New(document.KindInvoice)
	d.SetNumber("INV-042")

	d.SetKind(document.KindQuote)
	assert.Equal(t, "QUO-042", d.Number)

	d.SetKind(document.KindInvoice)
	assert.Equal(t, "INV-042", d.Number)
}

func TestNumberValue(t *testing.T) {
	assert.Equal(t, 42, document.NumberValue("INV-042"))
	assert.Equal(t, 7, document.NumberValue("QUO-007"))
	assert.Equal(t, 1, document.NumberValue("garbage"))
	assert.Equal(t, 1, document.NumberValue("INV-x"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "INV-002", document.FormatNumber(document.KindInvoice, 2))
	assert.Equal(t, "QUO-120", document.FormatNumber(document.KindQuote, 120))
}

type fakeHandle struct {
	released int
}

func (h *fakeHandle) Release() error {
	h.released++
	return nil
}

func TestRemoveAttachment_ReleasesHandle(t *testing.T) {
	d := document.New(document.KindInvoice)
	h := &fakeHandle{}

	id := d.AddAttachment("before.jpg", document.MediaImage, 1.2, h)
	require.True(t, d.RemoveAttachment(id))

	assert.Equal(t, 1, h.released)
	assert.Empty(t, d.Attachments)
}

func TestReset_ReleasesAllHandlesAndClearsForm(t *testing.T) {
	d := document.New(document.KindInvoice)
	d.SetCustomerName("Jane Doe")
	d.UpdateItem(1, document.FieldDescription, "Oil Change")
	d.AddItem()

	h1 := &fakeHandle{}
	h2 := &fakeHandle{}
	d.AddAttachment("a.jpg", document.MediaImage, 0.5, h1)
	d.AddAttachment("b.mp4", document.MediaVideo, 12, h2)

	d.Reset()

	assert.Equal(t, 1, h1.released)
	assert.Equal(t, 1, h2.released)
	assert.Empty(t, d.Attachments)
	assert.Empty(t, d.Customer.Name)
	require.Len(t, d.Items, 1)
	assert.True(t, d.Items[0].Empty())
}

func TestSnapshot_IsACopy(t *testing.T) {
	d := document.New(document.KindInvoice)
	d.UpdateItem(1, document.FieldDescription, "Oil Change")

	snap := d.Snapshot()
	d.UpdateItem(1, document.FieldDescription, "Something Else")

	assert.Equal(t, "Oil Change", snap.Items[0].Description)
}
