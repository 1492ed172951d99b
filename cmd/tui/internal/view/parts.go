package view

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"wrenchbill/internal/document"
	"wrenchbill/internal/importer"
	"wrenchbill/internal/lookup"
	"wrenchbill/internal/parts"
	"wrenchbill/internal/send"
)

type partsState int

const (
	partsStateBrowse partsState = iota
	partsStateSearch
	partsStatePrice
	partsStateAdd
	partsStateImport
	partsStateLookup
)

// PartsModel browses the parts catalog. Stale prices are flagged, and a
// selected part can be dropped straight onto the working document.
type PartsModel struct {
	CommonModel
	partsService  *parts.Service
	importService *importer.Service
	lookupService *lookup.Service
	opener        send.Opener
	doc           *document.Document

	state       partsState
	table       table.Model
	search      textinput.Model
	makerFilter textinput.Model
	form        *huh.Form

	all    []parts.Part
	sites  []lookup.Site
	status string
	err    error

	formNumber   string
	formMaker    string
	formDesc     string
	formPrice    string
	formCategory string
	formPath     string
	formSite     string
}

func NewPartsModel(
	partsSvc *parts.Service,
	importSvc *importer.Service,
	lookupSvc *lookup.Service,
	opener send.Opener,
	doc *document.Document,
) PartsModel {
	columns := []table.Column{
		{Title: "Part #", Width: 12},
		{Title: "Description", Width: 32},
		{Title: "Maker", Width: 14},
		{Title: "Price", Width: 10},
		{Title: "Updated", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(14),
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

	search := textinput.New()
	search.Placeholder = "Part number, description, or category"
	search.Width = 40

	makerFilter := textinput.New()
	makerFilter.Placeholder = "Manufacturer (optional)"
	makerFilter.Width = 40

	return PartsModel{
		partsService:  partsSvc,
		importService: importSvc,
		lookupService: lookupSvc,
		opener:        opener,
		doc:           doc,
		table:         t,
		search:        search,
		makerFilter:   makerFilter,
	}
}

func (m PartsModel) Title() string { return "Parts Catalog" }

func (m PartsModel) ShortHelp() string {
	switch m.state {
	case partsStateSearch:
		return "Tab: switch field | Enter: apply | Esc: cancel"
	case partsStateBrowse:
		return "Esc: back | Enter: add to document | /: search | u: update price | a: add | i: import sheet | l: lookup | t: refresh dates"
	}

	return "Navigate form | Esc: cancel"
}

func (m PartsModel) Init() tea.Cmd {
	return m.loadPartsCmd("", "")
}

func (m PartsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case partsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.all = msg.parts
		m.err = nil
		m.refreshTable()

		return m, nil

	case partsActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}
		m.state = partsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadPartsCmd("", "")

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case partsStateBrowse:
		return m.updateBrowse(msg)
	case partsStateSearch:
		return m.updateSearch(msg)
	default:
		return m.updateForm(msg)
	}
}

func (m PartsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "enter":
			if p, ok := m.selectedPart(); ok {
				id := m.doc.AddItem()
				m.doc.SetItemFromPart(id, p.LineDescription(), p.Price)
				m.status = fmt.Sprintf("%s added to document", p.PartNumber)
			}

			return m, nil
		case "/":
			m.state = partsStateSearch
			m.search.SetValue("")
			m.makerFilter.SetValue("")
			m.makerFilter.Blur()
			m.search.Focus()
			m.table.Blur()

			return m, textinput.Blink
		case "u":
			return m.enterPriceForm()
		case "a":
			return m.enterAddForm()
		case "i":
			return m.enterImportForm()
		case "l":
			return m, m.loadSitesCmd()
		case "t":
			return m, m.refreshDatesCmd()
		}
	}

	if sitesMsg, ok := msg.(lookupSitesMsg); ok {
		return m.enterLookupForm(sitesMsg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m PartsModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = partsStateBrowse
			m.search.Blur()
			m.makerFilter.Blur()
			m.table.Focus()

			return m, m.loadPartsCmd("", "")
		case tea.KeyTab:
			if m.search.Focused() {
				m.search.Blur()
				m.makerFilter.Focus()
			} else {
				m.makerFilter.Blur()
				m.search.Focus()
			}

			return m, textinput.Blink
		case tea.KeyEnter:
			term := m.search.Value()
			maker := m.makerFilter.Value()
			m.state = partsStateBrowse
			m.search.Blur()
			m.makerFilter.Blur()
			m.table.Focus()

			return m, m.loadPartsCmd(term, maker)
		}
	}

	var cmd tea.Cmd
	if m.makerFilter.Focused() {
		m.makerFilter, cmd = m.makerFilter.Update(msg)
	} else {
		m.search, cmd = m.search.Update(msg)
	}

	return m, cmd
}

func (m PartsModel) enterPriceForm() (tea.Model, tea.Cmd) {
	p, ok := m.selectedPart()
	if !ok {
		return m, nil
	}

	m.formNumber = p.PartNumber
	m.formPrice = p.Price.String()

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("price").
				Title(fmt.Sprintf("New price for %s", p.PartNumber)).
				Value(&m.formPrice),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = partsStatePrice
	m.table.Blur()

	return m, m.form.Init()
}

func (m PartsModel) enterAddForm() (tea.Model, tea.Cmd) {
	m.formNumber = ""
	m.formMaker = ""
	m.formDesc = ""
	m.formPrice = ""
	m.formCategory = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("number").Title("Part Number").Value(&m.formNumber),
			huh.NewInput().Key("maker").Title("Manufacturer").Value(&m.formMaker),
			huh.NewInput().Key("description").Title("Description").Value(&m.formDesc),
			huh.NewInput().Key("price").Title("Price").Value(&m.formPrice),
			huh.NewInput().Key("category").Title("Category").Placeholder("Other").Value(&m.formCategory),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = partsStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m PartsModel) enterImportForm() (tea.Model, tea.Cmd) {
	m.formPath = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Price sheet CSV").
				Placeholder("./pricelist.csv").
				Value(&m.formPath),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = partsStateImport
	m.table.Blur()

	return m, m.form.Init()
}

func (m PartsModel) enterLookupForm(msg lookupSitesMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = fmt.Sprintf("Error: %v", msg.err)
		return m, nil
	}

	if len(msg.sites) == 0 {
		m.status = "No lookup sites enabled"
		return m, nil
	}

	m.sites = msg.sites
	options := make([]huh.Option[string], 0, len(msg.sites))
	for _, site := range msg.sites {
		options = append(options, huh.NewOption(site.Name, site.Name))
	}
	m.formSite = msg.sites[0].Name

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("site").
				Title("Look up on").
				Options(options...).
				Value(&m.formSite),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = partsStateLookup
	m.table.Blur()

	return m, m.form.Init()
}

func (m PartsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = partsStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	switch m.state {
	case partsStatePrice:
		return m, m.updatePriceCmd(m.formNumber, m.formPrice)
	case partsStateAdd:
		return m, m.addPartCmd()
	case partsStateImport:
		return m, m.importSheetCmd(m.formPath)
	case partsStateLookup:
		return m, m.openLookupCmd(m.formSite)
	}

	return m, nil
}

func (m *PartsModel) selectedPart() (parts.Part, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.all) {
		return parts.Part{}, false
	}

	return m.all[idx], true
}

func (m *PartsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.all))
	for _, p := range m.all {
		updated := "never"
		if p.LastUpdated != nil {
			updated = FormatDate(*p.LastUpdated)
		}
		if m.partsService.IsStale(p) {
			updated += " !"
		}

		rows = append(rows, table.Row{
			p.PartNumber,
			p.Description,
			p.Manufacturer,
			FormatMoney(p.Price),
			updated,
		})
	}
	m.table.SetRows(rows)
}

func (m PartsModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state != partsStateBrowse && m.state != partsStateSearch && m.form != nil {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	sections := []string{tableView, lipgloss.NewStyle().Faint(true).Render("! price older than 6 weeks")}

	if m.state == partsStateSearch {
		sections = append([]string{m.search.View(), m.makerFilter.View(), ""}, sections...)
	}

	if m.status != "" {
		sections = append(sections, lipgloss.NewStyle().Faint(true).Render(m.status))
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

// Messages

type partsLoadedMsg struct {
	parts []parts.Part
	err   error
}

func (m PartsModel) loadPartsCmd(query, maker string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		all, err := m.partsService.Search(ctx, query, maker)
		return partsLoadedMsg{parts: all, err: err}
	}
}

type partsActionMsg struct {
	status string
	err    error
}

func (m PartsModel) updatePriceCmd(number, price string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.partsService.RecordPriceUpdate(ctx, number, price); err != nil {
			return partsActionMsg{err: err}
		}

		return partsActionMsg{status: fmt.Sprintf("Price updated for %s", number)}
	}
}

func (m PartsModel) addPartCmd() tea.Cmd {
	params := parts.AddParams{
		PartNumber:   m.formNumber,
		Manufacturer: m.formMaker,
		Description:  m.formDesc,
		Price:        m.formPrice,
		Category:     m.formCategory,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		p, err := m.partsService.Add(ctx, params)
		if err != nil {
			return partsActionMsg{err: err}
		}

		return partsActionMsg{status: fmt.Sprintf("Added %s", p.PartNumber)}
	}
}

func (m PartsModel) importSheetCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return partsActionMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := DbCtx()
		defer cancel()

		added, skipped, err := m.importService.Import(ctx, importer.FormatPriceList, f)
		if err != nil {
			return partsActionMsg{err: err}
		}

		return partsActionMsg{status: fmt.Sprintf("Imported %d parts (%d skipped)", added, skipped)}
	}
}

func (m PartsModel) refreshDatesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.partsService.RefreshAllTimestamps(ctx); err != nil {
			return partsActionMsg{err: err}
		}

		return partsActionMsg{status: "All part dates refreshed"}
	}
}

type lookupSitesMsg struct {
	sites []lookup.Site
	err   error
}

func (m PartsModel) loadSitesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sites, err := m.lookupService.Enabled(ctx)
		return lookupSitesMsg{sites: sites, err: err}
	}
}

func (m PartsModel) openLookupCmd(siteName string) tea.Cmd {
	term := ""
	if p, ok := m.selectedPart(); ok {
		term = p.PartNumber
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		url, err := m.lookupService.Search(ctx, siteName, term)
		if err != nil {
			return partsActionMsg{err: err}
		}

		if err := m.opener.Open(url); err != nil {
			return partsActionMsg{err: err}
		}

		return partsActionMsg{status: fmt.Sprintf("Opened %s", siteName)}
	}
}
