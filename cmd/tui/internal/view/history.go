package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wrenchbill/internal/document"
	"wrenchbill/internal/history"
)

type historyTab int

const (
	historyTabDocuments historyTab = iota
	historyTabLog
)

// HistoryModel browses saved documents and the send log. A saved document
// can be loaded back into the working form; history itself is append-only.
type HistoryModel struct {
	CommonModel
	historyService *history.Service
	doc            *document.Document

	tab       historyTab
	docTable  table.Model
	logTable  table.Model
	documents []history.SavedDocument
	logs      []history.LogEntry

	status string
	err    error
}

func NewHistoryModel(svc *history.Service, doc *document.Document) HistoryModel {
	docColumns := []table.Column{
		{Title: "Number", Width: 12},
		{Title: "Date", Width: 12},
		{Title: "Customer", Width: 24},
		{Title: "Total", Width: 12},
		{Title: "Saved", Width: 12},
	}

	logColumns := []table.Column{
		{Title: "Number", Width: 12},
		{Title: "Customer", Width: 22},
		{Title: "Total", Width: 12},
		{Title: "Sent", Width: 12},
		{Title: "Via", Width: 8},
		{Title: "Files", Width: 20},
	}

	newTable := func(cols []table.Column) table.Model {
		t := table.New(
			table.WithColumns(cols),
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

		return t
	}

	return HistoryModel{
		historyService: svc,
		doc:            doc,
		docTable:       newTable(docColumns),
		logTable:       newTable(logColumns),
	}
}

func (m HistoryModel) Title() string { return "History" }

func (m HistoryModel) ShortHelp() string {
	if m.tab == historyTabDocuments {
		return "Esc: back | Enter: load into form | Tab: send log | r: refresh"
	}

	return "Esc: back | Tab: documents | r: refresh"
}

func (m HistoryModel) Init() tea.Cmd {
	return m.loadHistoryCmd()
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.documents = msg.documents
		m.logs = msg.logs
		m.err = nil
		m.refreshTables()

		return m, nil

	case tea.WindowSizeMsg:
		m.docTable.SetHeight(msg.Height - 10)
		m.logTable.SetHeight(msg.Height - 10)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "tab":
			if m.tab == historyTabDocuments {
				m.tab = historyTabLog
			} else {
				m.tab = historyTabDocuments
			}

			return m, nil
		case "r":
			return m, m.loadHistoryCmd()
		case "enter":
			if m.tab == historyTabDocuments {
				m.loadSelected()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.tab == historyTabDocuments {
		m.docTable, cmd = m.docTable.Update(msg)
	} else {
		m.logTable, cmd = m.logTable.Update(msg)
	}

	return m, cmd
}

// loadSelected copies a saved document back into the working form.
// Attachments are not restored; their handles died with the session that
// saved them.
func (m *HistoryModel) loadSelected() {
	idx := m.docTable.Cursor()
	if idx < 0 || idx >= len(m.documents) {
		return
	}

	saved := m.documents[idx]

	// Reset first so any live attachment handles are released.
	m.doc.Reset()
	m.doc.Kind = saved.Kind
	m.doc.Number = saved.Number
	m.doc.Date = saved.Date
	m.doc.Customer = saved.Customer
	m.doc.Items = append([]document.LineItem(nil), saved.Items...)

	m.status = fmt.Sprintf("Loaded %s into the form", saved.Number)
}

func (m *HistoryModel) refreshTables() {
	docRows := make([]table.Row, 0, len(m.documents))
	for _, d := range m.documents {
		docRows = append(docRows, table.Row{
			d.Number,
			FormatDate(d.Date),
			d.Customer.Name,
			FormatMoney(d.Total),
			FormatDate(d.SavedAt),
		})
	}
	m.docTable.SetRows(docRows)

	logRows := make([]table.Row, 0, len(m.logs))
	for _, l := range m.logs {
		files := "no"
		if l.FilesSaved {
			files = l.FilesSavedLocation
		}

		logRows = append(logRows, table.Row{
			l.DocumentNumber,
			l.CustomerName,
			FormatMoney(l.Total),
			FormatDate(l.SentAt),
			l.Method,
			files,
		})
	}
	m.logTable.SetRows(logRows)
}

func (m HistoryModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	label := "Saved Documents"
	active := m.docTable.View()
	if m.tab == historyTabLog {
		label = "Send Log"
		active = m.logTable.View()
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(active)

	sections := []string{
		lipgloss.NewStyle().Bold(true).Render(label),
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

type historyLoadedMsg struct {
	documents []history.SavedDocument
	logs      []history.LogEntry
	err       error
}

func (m HistoryModel) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		docs, err := m.historyService.Documents(ctx)
		if err != nil {
			return historyLoadedMsg{err: err}
		}

		logs, err := m.historyService.Logs(ctx)
		if err != nil {
			return historyLoadedMsg{err: err}
		}

		return historyLoadedMsg{documents: docs, logs: logs}
	}
}
