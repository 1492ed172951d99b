package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wrenchbill/internal/lookup"
)

// OptionsModel toggles the part lookup sites on and off. Disabled sites
// disappear from the lookup picker in the parts catalog.
type OptionsModel struct {
	CommonModel
	lookupService *lookup.Service

	table  table.Model
	sites  []lookup.Site
	status string
	err    error
}

func NewOptionsModel(svc *lookup.Service) OptionsModel {
	columns := []table.Column{
		{Title: "Site", Width: 24},
		{Title: "Enabled", Width: 10},
		{Title: "URL", Width: 48},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return OptionsModel{lookupService: svc, table: t}
}

func (m OptionsModel) Title() string { return "Lookup Sites" }

func (m OptionsModel) ShortHelp() string {
	return "Esc: back | Enter/Space: toggle site"
}

func (m OptionsModel) Init() tea.Cmd {
	return m.loadSitesCmd()
}

func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case optionsSitesMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.sites = msg.sites
		m.err = nil
		m.refreshTable()

		return m, nil

	case optionsToggledMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.status = msg.status

		return m, m.loadSitesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "enter", " ":
			if site, ok := m.selectedSite(); ok {
				return m, m.toggleCmd(site)
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *OptionsModel) selectedSite() (lookup.Site, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.sites) {
		return lookup.Site{}, false
	}

	return m.sites[idx], true
}

func (m *OptionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.sites))
	for _, site := range m.sites {
		enabled := "no"
		if site.Enabled {
			enabled = "yes"
		}

		rows = append(rows, table.Row{site.Name, enabled, site.URL})
	}
	m.table.SetRows(rows)
}

func (m OptionsModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	sections := []string{
		lipgloss.NewStyle().Bold(true).Render("Part Lookup Sites"),
		tableView,
	}

	if m.status != "" {
		sections = append(sections, lipgloss.NewStyle().Faint(true).Render(m.status))
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

// Messages

type optionsSitesMsg struct {
	sites []lookup.Site
	err   error
}

type optionsToggledMsg struct {
	status string
	err    error
}

func (m OptionsModel) loadSitesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sites, err := m.lookupService.Sites(ctx)
		return optionsSitesMsg{sites: sites, err: err}
	}
}

func (m OptionsModel) toggleCmd(site lookup.Site) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.lookupService.SetEnabled(ctx, site.Name, !site.Enabled); err != nil {
			return optionsToggledMsg{err: err}
		}

		verb := "enabled"
		if site.Enabled {
			verb = "disabled"
		}

		return optionsToggledMsg{status: fmt.Sprintf("%s %s", site.Name, verb)}
	}
}
