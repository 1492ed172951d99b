package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"wrenchbill/cmd/tui/internal/view"
	"wrenchbill/internal/config"
	"wrenchbill/internal/contacts"
	contactsStore "wrenchbill/internal/contacts/store"
	"wrenchbill/internal/document"
	"wrenchbill/internal/export"
	"wrenchbill/internal/history"
	historyStore "wrenchbill/internal/history/store"
	"wrenchbill/internal/importer"
	"wrenchbill/internal/lookup"
	lookupStore "wrenchbill/internal/lookup/store"
	"wrenchbill/internal/parts"
	partsStore "wrenchbill/internal/parts/store"
	"wrenchbill/internal/send"
	"wrenchbill/internal/store"
)

type View int

const (
	ViewTutorial View = iota
	ViewMenu
	ViewDocument
	ViewContacts
	ViewParts
	ViewHistory
	ViewSend
	ViewExport
	ViewOptions
)

type model struct {
	blobs           *store.Store
	contactsService *contacts.Service
	partsService    *parts.Service
	historyService  *history.Service
	importService   *importer.Service
	lookupService   *lookup.Service
	exportService   *export.Service
	dispatcher      *send.Dispatcher

	doc       *document.Document
	exportDir string

	currentView View
	staleCount  int

	documentView view.DocumentModel
	contactsView view.ContactsModel
	partsView    view.PartsModel
	historyView  view.HistoryModel
	sendView     view.SendModel
	exportView   view.ExportModel
	optionsView  view.OptionsModel
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		slog.Error("failed to resolve data directory", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		slog.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}

	blobs, err := store.Open(dbPath)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}

	contactsSvc := contacts.NewService(contactsStore.New(blobs))
	partsSvc := parts.NewService(partsStore.New(blobs))
	historySvc := history.NewService(historyStore.New(blobs))
	importSvc := importer.NewService(partsSvc)
	lookupSvc := lookup.NewService(lookupStore.New(blobs))
	exportSvc := export.NewService(export.XDGShare{})
	dispatcher := send.NewDispatcher(historySvc, send.SystemClipboard{}, send.XDGOpener{})

	ctx, cancel := view.DbCtx()
	defer cancel()

	doc := document.New(document.KindInvoice)
	if number, err := historySvc.SeedNumber(ctx, doc.Kind); err == nil {
		doc.Number = number
	}

	staleCount, err := partsSvc.StaleCount(ctx)
	if err != nil {
		slog.Warn("failed to count stale parts", "error", err)
	}

	currentView := ViewMenu
	if _, seen, err := blobs.GetPlain(ctx, store.KeyTutorialSeen); err == nil && !seen {
		currentView = ViewTutorial
	}

	return model{
		blobs:           blobs,
		contactsService: contactsSvc,
		partsService:    partsSvc,
		historyService:  historySvc,
		importService:   importSvc,
		lookupService:   lookupSvc,
		exportService:   exportSvc,
		dispatcher:      dispatcher,
		doc:             doc,
		exportDir:       cfg.Export.Dir,
		currentView:     currentView,
		staleCount:      staleCount,
		documentView:    view.NewDocumentModel(doc),
		contactsView:    view.NewContactsModel(contactsSvc, doc),
		partsView:       view.NewPartsModel(partsSvc, importSvc, lookupSvc, send.XDGOpener{}, doc),
		historyView:     view.NewHistoryModel(historySvc, doc),
		sendView:        view.NewSendModel(dispatcher, doc),
		exportView:      view.NewExportModel(exportSvc, historySvc, doc, cfg.Export.Dir),
		optionsView:     view.NewOptionsModel(lookupSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewTutorial {
			m.markTutorialSeen()
			m.currentView = ViewMenu

			return m, nil
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDocument
				m.documentView = view.NewDocumentModel(m.doc)

				return m, m.documentView.Init()
			case "2":
				m.currentView = ViewContacts
				m.contactsView = view.NewContactsModel(m.contactsService, m.doc)

				return m, m.contactsView.Init()
			case "3":
				m.currentView = ViewParts
				m.partsView = view.NewPartsModel(m.partsService, m.importService, m.lookupService, send.XDGOpener{}, m.doc)

				return m, m.partsView.Init()
			case "4":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.historyService, m.doc)

				return m, m.historyView.Init()
			case "5":
				m.currentView = ViewSend
				m.sendView = view.NewSendModel(m.dispatcher, m.doc)

				return m, m.sendView.Init()
			case "6":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService, m.historyService, m.doc, m.exportDir)

				return m, m.exportView.Init()
			case "7":
				m.currentView = ViewOptions
				m.optionsView = view.NewOptionsModel(m.lookupService)

				return m, m.optionsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDocument:
		var newModel tea.Model
		newModel, cmd = m.documentView.Update(msg)
		m.documentView = newModel.(view.DocumentModel)
	case ViewContacts:
		var newModel tea.Model
		newModel, cmd = m.contactsView.Update(msg)
		m.contactsView = newModel.(view.ContactsModel)
	case ViewParts:
		var newModel tea.Model
		newModel, cmd = m.partsView.Update(msg)
		m.partsView = newModel.(view.PartsModel)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	case ViewSend:
		var newModel tea.Model
		newModel, cmd = m.sendView.Update(msg)
		m.sendView = newModel.(view.SendModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	case ViewOptions:
		var newModel tea.Model
		newModel, cmd = m.optionsView.Update(msg)
		m.optionsView = newModel.(view.OptionsModel)
	}

	return m, cmd
}

func (m model) markTutorialSeen() {
	ctx, cancel := view.DbCtx()
	defer cancel()

	if err := m.blobs.PutPlain(ctx, store.KeyTutorialSeen, "true"); err != nil {
		slog.Warn("failed to persist tutorial flag", "error", err)
	}
}

func (m model) View() string {
	switch m.currentView {
	case ViewTutorial:
		return tutorialView()
	case ViewMenu:
		return m.menuView()
	case ViewDocument:
		return m.documentView.View()
	case ViewContacts:
		return m.contactsView.View()
	case ViewParts:
		return m.partsView.View()
	case ViewHistory:
		return m.historyView.View()
	case ViewSend:
		return m.sendView.View()
	case ViewExport:
		return m.exportView.View()
	case ViewOptions:
		return m.optionsView.View()
	}

	return "Unknown View"
}

func (m model) menuView() string {
	body := fmt.Sprintf("WrenchBill\n\nWorking on: %s (%s)\n\n", m.doc.Number, m.doc.Kind) +
		"1. Edit Document\n" +
		"2. Contacts\n" +
		"3. Parts Catalog\n" +
		"4. History\n" +
		"5. Send Document\n" +
		"6. Export Files\n" +
		"7. Lookup Sites\n\n" +
		"q. Quit"

	if m.staleCount > 0 {
		warn := lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Render(fmt.Sprintf("%d part prices are older than 6 weeks; confirm before quoting.", m.staleCount))
		body += "\n\n" + warn
	}

	return lipgloss.NewStyle().Padding(2).Render(body)
}

func tutorialView() string {
	return lipgloss.NewStyle().Padding(2).Render(
		"Welcome to WrenchBill!\n\n" +
			"Build invoices and quotes for your mobile mechanic work:\n\n" +
			"* Edit Document fills in the customer and line items.\n" +
			"* Contacts and Parts Catalog drop saved data straight onto the form.\n" +
			"* Send delivers by text, email, or clipboard and files the document in History.\n" +
			"* Export writes QuickBooks 2014 CSV/IIF files plus a plain-text copy.\n\n" +
			"Press any key to get started.",
	)
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
