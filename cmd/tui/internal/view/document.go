package view

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"wrenchbill/internal/document"
)

type documentState int

const (
	documentStateBrowse documentState = iota
	documentStateCustomer
	documentStateItem
	documentStateAttach
)

// DocumentModel edits the working document: customer details and the line
// item grid. The document itself lives in the root model and is shared with
// the send and export views.
type DocumentModel struct {
	CommonModel
	doc *document.Document

	state documentState
	table table.Model
	form  *huh.Form

	status string

	// Form bindings
	formKind  string
	formDate  string
	formName  string
	formPhone string
	formEmail string
	formDesc  string
	formQty   string
	formPrice string
	formFile  string
}

func NewDocumentModel(doc *document.Document) DocumentModel {
	columns := []table.Column{
		{Title: "Description", Width: 40},
		{Title: "Qty", Width: 8},
		{Title: "Price", Width: 12},
		{Title: "Total", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
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

	m := DocumentModel{doc: doc, table: t}
	m.refreshTable()

	return m
}

func (m DocumentModel) Title() string { return "Edit Document" }

func (m DocumentModel) ShortHelp() string {
	if m.state != documentStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | c: customer | e: edit item | a: add item | d: delete item | f: attach file | x: remove attachment | k: invoice/quote | n: clear"
}

func (m DocumentModel) Init() tea.Cmd {
	return nil
}

func (m DocumentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.table.SetHeight(msg.Height - 14)
		return m, nil
	}

	switch m.state {
	case documentStateBrowse:
		return m.updateBrowse(msg)
	case documentStateCustomer:
		return m.updateCustomer(msg)
	case documentStateItem:
		return m.updateItem(msg)
	case documentStateAttach:
		return m.updateAttach(msg)
	}

	return m, nil
}

func (m DocumentModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "c":
			return m.enterCustomerForm()
		case "e":
			return m.enterItemForm()
		case "a":
			m.doc.AddItem()
			m.refreshTable()
			m.table.SetCursor(len(m.doc.Items) - 1)

			return m, nil
		case "d":
			if id, ok := m.selectedItemID(); ok {
				if !m.doc.RemoveItem(id) {
					m.status = "The last row cannot be removed"
				} else {
					m.status = ""
				}
				m.refreshTable()
			}

			return m, nil
		case "f":
			return m.enterAttachForm()
		case "x":
			if n := len(m.doc.Attachments); n > 0 {
				last := m.doc.Attachments[n-1]
				m.doc.RemoveAttachment(last.ID)
				m.status = "Removed " + last.Name
			}

			return m, nil
		case "k":
			if m.doc.Kind == document.KindInvoice {
				m.doc.SetKind(document.KindQuote)
			} else {
				m.doc.SetKind(document.KindInvoice)
			}

			return m, nil
		case "n":
			m.doc.Reset()
			m.refreshTable()
			m.status = "Form cleared"

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m DocumentModel) enterCustomerForm() (tea.Model, tea.Cmd) {
	m.formKind = string(m.doc.Kind)
	m.formDate = FormatDate(m.doc.Date)
	m.formName = m.doc.Customer.Name
	m.formPhone = m.doc.Customer.Phone
	m.formEmail = m.doc.Customer.Email

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("kind").
				Title("Type").
				Options(
					huh.NewOption("Invoice", string(document.KindInvoice)),
					huh.NewOption("Quote", string(document.KindQuote)),
				).
				Value(&m.formKind),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("2024-01-31").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("use YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewInput().
				Key("name").
				Title("Customer Name").
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
	).WithWidth(50).WithShowHelp(false)

	m.state = documentStateCustomer
	m.table.Blur()

	return m, m.form.Init()
}

func (m DocumentModel) updateCustomer(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m.leaveForm(), nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.doc.SetKind(document.Kind(m.formKind))
	if date, err := time.Parse(time.DateOnly, m.formDate); err == nil {
		m.doc.SetDate(date)
	}
	m.doc.SetCustomerName(m.formName)
	m.doc.SetCustomerPhone(m.formPhone)
	m.doc.SetCustomerEmail(m.formEmail)

	return m.leaveForm(), nil
}

func (m DocumentModel) enterItemForm() (tea.Model, tea.Cmd) {
	id, ok := m.selectedItemID()
	if !ok {
		return m, nil
	}

	for _, it := range m.doc.Items {
		if it.ID == id {
			m.formDesc = it.Description
			m.formQty = it.Quantity.String()
			m.formPrice = it.UnitPrice.String()
		}
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),

			huh.NewInput().
				Key("quantity").
				Title("Quantity").
				Value(&m.formQty),

			huh.NewInput().
				Key("price").
				Title("Unit Price").
				Value(&m.formPrice),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = documentStateItem
	m.table.Blur()

	return m, m.form.Init()
}

func (m DocumentModel) updateItem(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m.leaveForm(), nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if id, ok := m.selectedItemID(); ok {
		m.doc.UpdateItem(id, document.FieldDescription, m.formDesc)
		if !m.doc.UpdateItem(id, document.FieldQuantity, m.formQty) {
			m.status = "Quantity must be between 0 and 999"
		}
		if !m.doc.UpdateItem(id, document.FieldPrice, m.formPrice) {
			m.status = "Price must be between 0 and 999999"
		}
	}

	return m.leaveForm(), nil
}

func (m DocumentModel) enterAttachForm() (tea.Model, tea.Cmd) {
	m.formFile = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("file").
				Title("Photo or video file").
				Placeholder("/path/to/photo.jpg").
				Value(&m.formFile),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = documentStateAttach
	m.table.Blur()

	return m, m.form.Init()
}

func (m DocumentModel) updateAttach(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m.leaveForm(), nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if path := strings.TrimSpace(m.formFile); path != "" {
		if _, err := m.doc.AttachFile(path); err != nil {
			m.status = "Could not attach: " + err.Error()
		} else {
			m.status = fmt.Sprintf("Attached %s", filepath.Base(path))
		}
	}

	return m.leaveForm(), nil
}

func (m DocumentModel) leaveForm() DocumentModel {
	m.state = documentStateBrowse
	m.form = nil
	m.table.Focus()
	m.refreshTable()

	return m
}

func (m *DocumentModel) selectedItemID() (int, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.doc.Items) {
		return 0, false
	}

	return m.doc.Items[idx].ID, true
}

func (m *DocumentModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.doc.Items))
	for _, it := range m.doc.Items {
		rows = append(rows, table.Row{
			it.Description,
			it.Quantity.String(),
			FormatMoney(it.UnitPrice),
			FormatMoney(it.Total()),
		})
	}
	m.table.SetRows(rows)
}

func (m DocumentModel) View() string {
	if m.state != documentStateBrowse && m.form != nil {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	header := fmt.Sprintf("%s %s | %s",
		strings.ToUpper(string(m.doc.Kind)),
		m.doc.Number,
		FormatDate(m.doc.Date),
	)

	customer := m.doc.Customer.Name
	if customer == "" {
		customer = "(no customer)"
	}
	if m.doc.Customer.Phone != "" {
		customer += " | " + m.doc.Customer.Phone
	}
	if m.doc.Customer.Email != "" {
		customer += " | " + m.doc.Customer.Email
	}

	totals := fmt.Sprintf("Subtotal: %s   Tax (8%%): %s   TOTAL: %s",
		FormatMoney(m.doc.Subtotal()),
		FormatMoney(m.doc.Tax()),
		FormatMoney(m.doc.Total()),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(header),
		customer,
		"",
		tableView,
		"",
		lipgloss.NewStyle().Bold(true).Render(totals),
	)

	if len(m.doc.Attachments) > 0 {
		names := make([]string, 0, len(m.doc.Attachments))
		for _, a := range m.doc.Attachments {
			names = append(names, fmt.Sprintf("%s (%s, %.1f MB)", a.Name, a.Media, a.SizeMB))
		}

		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			"Attachments: "+strings.Join(names, ", "),
		)
	}

	if m.status != "" {
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			lipgloss.NewStyle().Faint(true).Render(m.status),
		)
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
