package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"wrenchbill/internal/contacts"
	"wrenchbill/internal/document"
)

type contactsState int

const (
	contactsStateBrowse contactsState = iota
	contactsStateSearch
	contactsStateAdd
)

// ContactsModel browses the contact book. Selecting a contact fills the
// working document's customer fields.
type ContactsModel struct {
	CommonModel
	contactsService *contacts.Service
	doc             *document.Document

	state  contactsState
	table  table.Model
	search textinput.Model
	form   *huh.Form

	all    []contacts.Contact
	status string
	err    error

	formName  string
	formPhone string
	formEmail string
}

func NewContactsModel(svc *contacts.Service, doc *document.Document) ContactsModel {
	columns := []table.Column{
		{Title: "Name", Width: 25},
		{Title: "Phone", Width: 16},
		{Title: "Email", Width: 30},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
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
	search.Placeholder = "Search by name"
	search.Width = 30

	return ContactsModel{
		contactsService: svc,
		doc:             doc,
		table:           t,
		search:          search,
	}
}

func (m ContactsModel) Title() string { return "Contacts" }

func (m ContactsModel) ShortHelp() string {
	switch m.state {
	case contactsStateSearch:
		return "Enter: apply | Esc: cancel"
	case contactsStateAdd:
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | Enter: use for document | a: add | /: search | r: refresh"
}

func (m ContactsModel) Init() tea.Cmd {
	return m.loadContactsCmd("")
}

func (m ContactsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contactsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.all = msg.contacts
		m.err = nil
		m.refreshTable()

		return m, nil

	case contactSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.state = contactsStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
		m.status = fmt.Sprintf("Added %s", msg.name)
		m.state = contactsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadContactsCmd("")

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case contactsStateBrowse:
		return m.updateBrowse(msg)
	case contactsStateSearch:
		return m.updateSearch(msg)
	case contactsStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m ContactsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "enter":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.all) {
				c := m.all[idx]
				m.doc.SetCustomerName(c.Name)
				m.doc.SetCustomerPhone(c.Phone)
				m.doc.SetCustomerEmail(c.Email)
				m.status = fmt.Sprintf("Document customer set to %s", c.Name)
			}

			return m, nil
		case "a":
			return m.enterAddForm()
		case "/":
			m.state = contactsStateSearch
			m.search.SetValue("")
			m.search.Focus()
			m.table.Blur()

			return m, textinput.Blink
		case "r":
			return m, m.loadContactsCmd("")
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ContactsModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = contactsStateBrowse
			m.search.Blur()
			m.table.Focus()

			return m, m.loadContactsCmd("")
		case tea.KeyEnter:
			term := m.search.Value()
			m.state = contactsStateBrowse
			m.search.Blur()
			m.table.Focus()

			return m, m.loadContactsCmd(term)
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	return m, cmd
}

func (m ContactsModel) enterAddForm() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formPhone = ""
	m.formEmail = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName),

			huh.NewInput().
				Key("phone").
				Title("Phone").
				Placeholder("555-123-4567").
				Value(&m.formPhone),

			huh.NewInput().
				Key("email").
				Title("Email").
				Value(&m.formEmail),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = contactsStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m ContactsModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = contactsStateBrowse
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

	return m, m.saveContactCmd(m.formName, m.formPhone, m.formEmail)
}

func (m *ContactsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.all))
	for _, c := range m.all {
		rows = append(rows, table.Row{c.Name, c.Phone, c.Email})
	}
	m.table.SetRows(rows)
}

func (m ContactsModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == contactsStateAdd && m.form != nil {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	sections := []string{tableView}

	if m.state == contactsStateSearch {
		sections = append([]string{m.search.View(), ""}, sections...)
	}

	if m.status != "" {
		sections = append(sections, lipgloss.NewStyle().Faint(true).Render(m.status))
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}

// Messages

type contactsLoadedMsg struct {
	contacts []contacts.Contact
	err      error
}

func (m ContactsModel) loadContactsCmd(term string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		all, err := m.contactsService.Search(ctx, term)
		return contactsLoadedMsg{contacts: all, err: err}
	}
}

type contactSavedMsg struct {
	name string
	err  error
}

func (m ContactsModel) saveContactCmd(name, phone, email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		c, err := m.contactsService.Add(ctx, contacts.AddParams{
			Name:  name,
			Phone: phone,
			Email: email,
		})
		if err != nil {
			return contactSavedMsg{err: err}
		}

		return contactSavedMsg{name: c.Name}
	}
}
