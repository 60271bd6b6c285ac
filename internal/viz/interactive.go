package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fractalzoom/internal/engine"
	"github.com/san-kum/fractalzoom/internal/host"
)

// Builder creates the animation for a preset on the given surface.
type Builder func(preset string, surface host.Surface) (*engine.Animation, error)

// PresetInfo is one entry in the picker.
type PresetInfo struct {
	Name        string
	Description string
}

const (
	statePick = iota
	stateLive
)

var (
	pickTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	pickSub    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	pickCursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	pickName   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	pickDesc   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	pickDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	pickKey    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

// Picker is a preset menu that hands over to a live [Model] once a preset
// is chosen.
type Picker struct {
	state   int
	cursor  int
	presets []PresetInfo
	build   Builder
	err     error
	live    Model
}

func NewPicker(presets []PresetInfo, build Builder) Picker {
	return Picker{presets: presets, build: build}
}

func (m Picker) Init() tea.Cmd { return nil }

func (m Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateLive {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.start()
	}
	return m, nil
}

func (m Picker) start() (tea.Model, tea.Cmd) {
	name := m.presets[m.cursor].Name
	canvas := NewCanvas()
	anim, err := m.build(name, canvas)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.live = NewModel(anim, canvas, name)
	m.state = stateLive
	return m, m.live.Init()
}

func (m Picker) View() string {
	if m.state == stateLive {
		return m.live.View()
	}

	var b strings.Builder
	b.WriteString("\n\n    " + pickTitle.Render("FRACTALZOOM") + "\n    " +
		pickSub.Render("endless mandelbrot zoom") + "\n    " +
		pickSub.Render("─────────────────────────") + "\n\n")
	for i, p := range m.presets {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", pickCursor.Render("▸"),
				pickName.Render(fmt.Sprintf("%-14s", p.Name)), pickDesc.Render(p.Description)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", pickDim.Render(fmt.Sprintf("  %-14s", p.Name)), pickDim.Render(p.Description)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + SparkLow.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + pickKey.Render("j/k") + pickDim.Render(" navigate  ") +
		pickKey.Render("enter") + pickDim.Render(" start  ") +
		pickKey.Render("q") + pickDim.Render(" quit") + "\n")
	return b.String()
}

func RunPicker(presets []PresetInfo, build Builder) error {
	_, err := tea.NewProgram(NewPicker(presets, build), tea.WithAltScreen()).Run()
	return err
}
