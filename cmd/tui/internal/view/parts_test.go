package view

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrenchbill/internal/document"
	"wrenchbill/internal/parts"
)

type fakeCatalogRepo struct {
	parts []parts.Part
}

func (r *fakeCatalogRepo) List(ctx context.Context) ([]parts.Part, error) {
	return r.parts, nil
}

func (r *fakeCatalogRepo) Save(ctx context.Context, ps []parts.Part) error {
	r.parts = ps
	return nil
}

func TestPartsSearch_ManufacturerFilter(t *testing.T) {
	repo := &fakeCatalogRepo{parts: []parts.Part{
		{PartNumber: "BP-100", Manufacturer: "Brembo", Description: "Brake pads front", Price: decimal.NewFromInt(45)},
		{PartNumber: "BP-200", Manufacturer: "Wagner", Description: "Brake pads rear", Price: decimal.NewFromInt(38)},
	}}
	svc := parts.NewService(repo)

	m := NewPartsModel(svc, nil, nil, nil, document.New(document.KindInvoice))

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	pm := model.(PartsModel)
	require.Equal(t, partsStateSearch, pm.state)

	pm.search.SetValue("pads")
	pm.makerFilter.SetValue("brembo")

	model, cmd := pm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm = model.(PartsModel)
	require.Equal(t, partsStateBrowse, pm.state)
	require.NotNil(t, cmd)

	msg, ok := cmd().(partsLoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)
	require.Len(t, msg.parts, 1)
	assert.Equal(t, "BP-100", msg.parts[0].PartNumber)
}

func TestPartsSearch_TabMovesBetweenFields(t *testing.T) {
	repo := &fakeCatalogRepo{}
	svc := parts.NewService(repo)

	m := NewPartsModel(svc, nil, nil, nil, document.New(document.KindInvoice))

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	pm := model.(PartsModel)
	require.True(t, pm.search.Focused())

	model, _ = pm.Update(tea.KeyMsg{Type: tea.KeyTab})
	pm = model.(PartsModel)
	assert.False(t, pm.search.Focused())
	assert.True(t, pm.makerFilter.Focused())

	model, _ = pm.Update(tea.KeyMsg{Type: tea.KeyTab})
	pm = model.(PartsModel)
	assert.True(t, pm.search.Focused())
	assert.False(t, pm.makerFilter.Focused())
}
