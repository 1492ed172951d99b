package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"wrenchbill/internal/document"
	"wrenchbill/internal/send"
)

type sendState int

const (
	sendStateChannel sendState = iota
	sendStateSending
	sendStateResult
)

// SendModel dispatches the working document over a channel. A successful
// send clears the form and advances the document number.
type SendModel struct {
	CommonModel
	dispatcher *send.Dispatcher
	doc        *document.Document

	state   sendState
	err     error
	form    *huh.Form
	spinner spinner.Model
	summary string

	channel string
}

func NewSendModel(dispatcher *send.Dispatcher, doc *document.Document) SendModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := SendModel{
		dispatcher: dispatcher,
		doc:        doc,
		state:      sendStateChannel,
		spinner:    s,
		channel:    string(send.ChannelMessage),
	}
	m.form = m.buildChannelForm()

	return m
}

func (m SendModel) Title() string { return "Send Document" }

func (m SendModel) ShortHelp() string {
	switch m.state {
	case sendStateResult:
		return "Esc: back to menu"
	case sendStateSending:
		return "Sending..."
	}

	return "Esc: back | Enter: confirm"
}

func (m SendModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SendModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case sendStateChannel:
		return m.updateChannel(msg)
	case sendStateSending:
		return m.updateSending(msg)
	case sendStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m SendModel) updateChannel(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	m.state = sendStateSending
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.sendCmd(send.Channel(m.channel)))
}

func (m SendModel) updateSending(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(sendResultMsg); ok {
		m.state = sendStateResult
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

func (m SendModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m SendModel) buildChannelForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("channel").
				Title("Send via").
				Options(
					huh.NewOption("Text message", string(send.ChannelMessage)),
					huh.NewOption("Email", string(send.ChannelMail)),
					huh.NewOption("Copy to clipboard", string(send.ChannelClipboard)),
				).
				Value(&m.channel),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m SendModel) View() string {
	switch m.state {
	case sendStateChannel:
		summary := fmt.Sprintf("%s for %s, total %s",
			m.doc.Number,
			m.doc.Customer.Name,
			FormatMoney(m.doc.Total()),
		)

		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.JoinVertical(lipgloss.Left, summary, "", m.form.View()),
		)

	case sendStateSending:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Sending document...", m.spinner.View()),
		)

	case sendStateResult:
		return m.viewResult()
	}

	return ""
}

func (m SendModel) viewResult() string {
	if m.err != nil {
		body := fmt.Sprintf("Error: %v", m.err)
		if m.summary != "" {
			body += "\n\n" + m.summary
		}

		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(body),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Sent!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", m.summary),
	)
}

type sendResultMsg struct {
	summary    string
	nextNumber string
	err        error
}

func (m SendModel) sendCmd(channel send.Channel) tea.Cmd {
	snap := m.doc.Snapshot()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := m.dispatcher.Send(ctx, snap, channel)
		if err != nil {
			msg := sendResultMsg{err: err}
			if res != nil {
				msg.summary = fmt.Sprintf("%s was saved to history; next number is %s", snap.Number, res.NextNumber)
				msg.nextNumber = res.NextNumber
			}

			return msg
		}

		return sendResultMsg{
			summary:    fmt.Sprintf("%s saved to history; next number is %s", snap.Number, res.NextNumber),
			nextNumber: res.NextNumber,
		}
	}
}
