package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/tvm-codegen/codegen"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectState int

const (
	stateList inspectState = iota
	stateSource
	stateRoute
	stateOutcome
)

type inspectModel struct {
	err      error
	sim      *codegen.Simulator
	filename string
	contract string
	outcome  string
	defs     []definition
	prompt   textinput.Model
	selected int
	offset   int
	height   int
	external bool
	bounced  bool
	state    inspectState
}

func newInspectModel(filename, contract string, defs []definition, sim *codegen.Simulator) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "1234abcd00000005 or text:increment"
	ti.Prompt = "body: "
	ti.Width = 60
	height := 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		ti.Width = max(20, w-len(ti.Prompt)-2)
		height = h
	}
	return &inspectModel{
		filename: filename,
		contract: contract,
		defs:     defs,
		sim:      sim,
		prompt:   ti,
		height:   height,
	}
}

type routedMsg struct {
	err     error
	outcome codegen.Outcome
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.prompt.Width = max(20, msg.Width-len(m.prompt.Prompt)-2)

	case tea.KeyMsg:
		if m.state == stateRoute {
			return m.updatePrompt(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			switch m.state {
			case stateList:
				if m.selected > 0 {
					m.selected--
				}
			case stateSource:
				if m.offset > 0 {
					m.offset--
				}
			}

		case "down", "j":
			switch m.state {
			case stateList:
				if m.selected < len(m.defs)-1 {
					m.selected++
				}
			case stateSource:
				if m.offset < strings.Count(m.defs[m.selected].source, "\n")-1 {
					m.offset++
				}
			}

		case "enter":
			switch m.state {
			case stateList:
				if len(m.defs) > 0 {
					m.state = stateSource
					m.offset = 0
				}
			case stateOutcome:
				m.state = stateRoute
				return m, m.prompt.Focus()
			}

		case "r":
			m.state = stateRoute
			m.err = nil
			return m, m.prompt.Focus()

		case "esc":
			m.state = stateList
			m.err = nil
		}

	case routedMsg:
		m.err = msg.err
		m.outcome = formatOutcome(msg.outcome)
		m.state = stateOutcome
	}
	return m, nil
}

func (m *inspectModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.prompt.Blur()
		m.state = stateList
		return m, nil
	case "enter":
		m.prompt.Blur()
		return m, m.route(m.prompt.Value())
	case "tab":
		m.external = !m.external
		return m, nil
	case "ctrl+b":
		m.bounced = !m.bounced
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *inspectModel) route(raw string) tea.Cmd {
	msg := codegen.Message{External: m.external, Bounced: m.bounced}
	return func() tea.Msg {
		body, err := parseBody(strings.TrimSpace(raw))
		if err != nil {
			return routedMsg{err: err}
		}
		msg.Body = body
		out, err := m.sim.Deliver(msg)
		return routedMsg{outcome: out, err: err}
	}
}

func formatOutcome(out codegen.Outcome) string {
	var b strings.Builder
	_ = writeOutcome(&b, out)
	return b.String()
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tvmgen"))
	b.WriteString(" ")
	b.WriteString(m.contract)
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateList:
		b.WriteString("Generated definitions:\n\n")
		for i, d := range m.defs {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + d.signature))
			} else {
				b.WriteString("  " + funcStyle.Render(d.signature))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter source • r route a message • q quit"))

	case stateSource:
		d := m.defs[m.selected]
		lines := strings.Split(strings.TrimRight(d.source, "\n"), "\n")
		start := min(m.offset, len(lines)-1)
		end := min(len(lines), start+max(1, m.height-6))
		b.WriteString(fmt.Sprintf("Source of %s:\n\n", funcStyle.Render(d.name)))
		b.WriteString(sourceStyle.Render(strings.Join(lines[start:end], "\n")))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • r route a message • q quit"))

	case stateRoute:
		b.WriteString(fmt.Sprintf("Route a message (external: %t, bounced: %t)\n\n", m.external, m.bounced))
		b.WriteString(m.prompt.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter route • tab external • ctrl+b bounced • esc back"))

	case stateOutcome:
		b.WriteString("Outcome:\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.outcome))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter route another • esc back • q quit"))
	}

	return b.String()
}

func runInteractive(filename, contract string, defs []definition, sim *codegen.Simulator) error {
	p := tea.NewProgram(newInspectModel(filename, contract, defs, sim), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
