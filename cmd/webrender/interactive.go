package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/vidpipe/webrender/host"
	"github.com/vidpipe/webrender/source"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	onStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	offStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateEventName
)

type interactiveModel struct {
	h        *host.Host
	eng      *stubEngine
	sources  []*source.Source
	selected int
	state    modelState
	input    textinput.Model
	status   string
}

func newInteractiveModel(h *host.Host, eng *stubEngine) *interactiveModel {
	input := textinput.New()
	input.Placeholder = "event name"
	input.CharLimit = 64
	return &interactiveModel{
		h:       h,
		eng:     eng,
		sources: h.Sources(),
		input:   input,
	}
}

type tickMsg struct{}

func (m *interactiveModel) Init() tea.Cmd {
	return m.pipelineTick
}

func (m *interactiveModel) pipelineTick() tea.Msg {
	m.h.TickAll()
	return tickMsg{}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, nil

	case tea.KeyMsg:
		if m.state == stateEventName {
			switch msg.Type {
			case tea.KeyEnter:
				name := strings.TrimSpace(m.input.Value())
				if name != "" {
					m.h.DispatchEvent(name, nil, nil)
					m.status = fmt.Sprintf("broadcast %q", name)
				}
				m.state = stateBrowse
				m.input.Blur()
				return m, m.pipelineTick
			case tea.KeyEsc:
				m.state = stateBrowse
				m.input.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.sources)-1 {
				m.selected++
			}
		case "v":
			if src := m.current(); src != nil {
				src.SetShowing(!src.Showing())
				m.status = fmt.Sprintf("showing=%v", src.Showing())
				return m, m.pipelineTick
			}
		case "a":
			if src := m.current(); src != nil {
				src.SetActive(!src.Active())
				m.status = fmt.Sprintf("active=%v", src.Active())
				return m, m.pipelineTick
			}
		case "r":
			if src := m.current(); src != nil {
				src.Refresh()
				m.status = "refresh"
				return m, m.pipelineTick
			}
		case "d":
			if src := m.current(); src != nil {
				m.h.RemoveSource(src)
				m.sources = m.h.Sources()
				if m.selected >= len(m.sources) && m.selected > 0 {
					m.selected--
				}
				m.status = "removed"
			}
		case "e":
			m.state = stateEventName
			m.input.SetValue("")
			m.input.Focus()
		case "t":
			return m, m.pipelineTick
		}
	}
	return m, nil
}

func (m *interactiveModel) current() *source.Source {
	if m.selected < 0 || m.selected >= len(m.sources) {
		return nil
	}
	return m.sources[m.selected]
}

func (m *interactiveModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("webrender host"))
	b.WriteString(fmt.Sprintf("  %d source(s)\n\n", m.h.Registry().Len()))

	for i, src := range m.sources {
		cfg := src.Config()
		line := fmt.Sprintf("%s  %dx%d  %s", src.ID()[:8], cfg.Width, cfg.Height, cfg.URL)
		if src.Showing() {
			line += "  " + onStyle.Render("showing")
		} else {
			line += "  " + offStyle.Render("hidden")
		}
		if src.Active() {
			line += "  " + onStyle.Render("active")
		}
		if i == m.selected {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if len(m.sources) == 0 {
		b.WriteString(helpStyle.Render("  no sources loaded\n"))
	}

	if m.state == stateEventName {
		b.WriteString("\nDispatch event: " + m.input.View() + "\n")
	}

	ops := m.eng.log.snapshot()
	if n := len(ops); n > 0 {
		b.WriteString("\nEngine log:\n")
		start := 0
		if n > 8 {
			start = n - 8
		}
		for _, op := range ops[start:] {
			b.WriteString(logStyle.Render("  "+op) + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString(helpStyle.Render("\n[v]isibility [a]ctive [r]efresh [e]vent [d]elete [t]ick [q]uit"))
	return b.String()
}

func runInteractive(settingsFile, storePath, version string, shared bool) error {
	h, eng, err := buildHost(settingsFile, storePath, version, shared, zap.NewNop())
	if err != nil {
		return err
	}
	defer h.Close()

	p := tea.NewProgram(newInteractiveModel(h, eng))
	_, err = p.Run()
	return err
}
