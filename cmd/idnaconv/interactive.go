package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/idna"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	input textinput.Model
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "münchen.de"
	ti.Prompt = "domain: "
	ti.Width = 60
	ti.Focus()
	return &interactiveModel{input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("IDNA Converter"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	domain := m.input.Value()
	if domain != "" {
		b.WriteString(renderConversion("to ASCII  ", func() (string, error) { return idna.ToASCII(domain) }))
		b.WriteString(renderConversion("to Unicode", func() (string, error) { return idna.ToUnicode(domain) }))

		b.WriteString("\nLabels:\n")
		for _, label := range strings.Split(domain, ".") {
			name := label
			if name == "" {
				name = "(empty)"
			}
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(name))
			b.WriteString(" ")
			b.WriteString(categoryStyle.Render(classifyLabel(label)))
			if err := idna.ValidateLabel(label); err != nil {
				b.WriteString(" ")
				b.WriteString(errorStyle.Render("✗"))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("type a domain • esc quit"))
	return b.String()
}

func renderConversion(name string, convert func() (string, error)) string {
	result, err := convert()
	if err != nil {
		return fmt.Sprintf("%s  %s\n", name, errorStyle.Render(err.Error()))
	}
	return fmt.Sprintf("%s  %s\n", name, resultStyle.Render(result))
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
