package view

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrenchbill/internal/lookup"
)

type fakeSitesRepo struct {
	sites []lookup.Site
}

func (r *fakeSitesRepo) List(ctx context.Context) ([]lookup.Site, error) {
	return r.sites, nil
}

func (r *fakeSitesRepo) Save(ctx context.Context, sites []lookup.Site) error {
	r.sites = sites
	return nil
}

func TestOptions_ToggleSite(t *testing.T) {
	repo := &fakeSitesRepo{sites: []lookup.Site{
		{Name: "RockAuto", URL: "https://www.rockauto.com", Enabled: true},
		{Name: "NAPA", URL: "https://www.napaonline.com", Enabled: false},
	}}
	svc := lookup.NewService(repo)

	m := NewOptionsModel(svc)

	msg := m.Init()()
	model, _ := m.Update(msg)
	om := model.(OptionsModel)
	require.Len(t, om.sites, 2)

	model, cmd := om.Update(tea.KeyMsg{Type: tea.KeyEnter})
	om = model.(OptionsModel)
	require.NotNil(t, cmd)

	toggled, ok := cmd().(optionsToggledMsg)
	require.True(t, ok)
	require.NoError(t, toggled.err)
	assert.Contains(t, toggled.status, "RockAuto")

	assert.False(t, repo.sites[0].Enabled, "first site switched off")
	assert.False(t, repo.sites[1].Enabled, "other site untouched")
}

func TestOptions_EmptySelectionIsNoop(t *testing.T) {
	svc := lookup.NewService(&fakeSitesRepo{})

	m := NewOptionsModel(svc)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}
