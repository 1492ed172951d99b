package view

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"wrenchbill/internal/document"
	"wrenchbill/internal/export"
	"wrenchbill/internal/history"
)

type exportState int

const (
	exportStatePath exportState = iota
	exportStateExporting
	exportStateResult
)

// ExportModel writes the full artifact set for the working document and
// records the save in history, which clears the form and advances the
// document number.
type ExportModel struct {
	CommonModel
	exportService  *export.Service
	historyService *history.Service
	doc            *document.Document

	state   exportState
	err     error
	form    *huh.Form
	path    string
	mode    string
	spinner spinner.Model
	summary string
}

const (
	exportModeSave  = "save"
	exportModeShare = "share"
)

func NewExportModel(expSvc *export.Service, histSvc *history.Service, doc *document.Document, defaultDir string) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := ExportModel{
		exportService:  expSvc,
		historyService: histSvc,
		doc:            doc,
		state:          exportStatePath,
		path:           defaultDir,
		mode:           exportModeSave,
		spinner:        s,
	}
	m.form = m.buildPathForm()

	return m
}

func (m ExportModel) Title() string { return "Export Files" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateExporting:
		return "Exporting..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case exportStatePath:
		return m.updatePath(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ExportModel) updatePath(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = exportStateExporting
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd(m.path, m.mode))
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportResultMsg); ok {
		m.state = exportStateResult
		m.err = result.err
		m.summary = result.summary

		if result.nextNumber != "" {
			m.doc.Reset()
			m.doc.SetNumber(result.nextNumber)
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m ExportModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m ExportModel) buildPathForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("mode").
				Title("Export").
				Options(
					huh.NewOption("Save all files to device", exportModeSave),
					huh.NewOption("Share invoice + CSV", exportModeShare),
				).
				Value(&m.mode),

			huh.NewInput().
				Key("path").
				Title("Output Directory").
				Description("Directory will be created if it doesn't exist").
				Placeholder("./exports").
				Value(&m.path),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStatePath:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Writing %s artifacts...", m.spinner.View(), m.doc.Number),
		)

	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Export Complete!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", m.summary),
	)
}

type exportResultMsg struct {
	summary    string
	nextNumber string
	err        error
}

func (m ExportModel) runExportCmd(dir, mode string) tea.Cmd {
	snap := m.doc.Snapshot()

	return func() tea.Msg {
		var (
			items []export.Item
			err   error
		)

		method := "files"
		if mode == exportModeShare {
			method = "share"
			items, err = m.exportService.Share(snap, dir)
		} else {
			items, err = m.exportService.ExportAll(snap, dir)
		}
		if err != nil {
			return exportResultMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		_, next, err := m.historyService.Save(ctx, snap, history.SaveParams{
			Method:             method,
			FilesSaved:         true,
			FilesSavedLocation: dir,
		})
		if err != nil {
			return exportResultMsg{err: err}
		}

		lines := make([]string, 0, len(items))
		for _, item := range items {
			lines = append(lines, "* "+filepath.Base(item.FilePath))
		}

		summary := fmt.Sprintf("Wrote %d files to %s:\n", len(items), dir)
		for _, l := range lines {
			summary += "\n" + l
		}

		return exportResultMsg{summary: summary, nextNumber: next}
	}
}
