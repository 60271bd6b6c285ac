package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fractalzoom/internal/engine"
	"github.com/san-kum/fractalzoom/internal/export"
	"github.com/san-kum/fractalzoom/internal/logging"
)

const (
	historyCapacity = 600
	gifPath         = "fractalzoom.gif"
	gifScale        = 4
)

type TickMsg time.Time

// history is shared by Model copies; bubbletea passes the model by value.
type history struct {
	depth   []float64
	draws   []float64
	initial float64
}

func (h *history) OnTick(info engine.TickInfo) {
	h.depth = appendCapped(h.depth, math.Log10(h.initial/info.Window.Width()))
	h.draws = appendCapped(h.draws, float64(info.DrawCalls))
}

func (h *history) reset() {
	h.depth = h.depth[:0]
	h.draws = h.draws[:0]
}

func appendCapped(s []float64, v float64) []float64 {
	s = append(s, v)
	if len(s) > historyCapacity {
		s = s[1:]
	}
	return s
}

// Model runs an Animation on a half-block Canvas.
type Model struct {
	anim     *engine.Animation
	canvas   *Canvas
	hist     *history
	title    string
	running  bool
	last     time.Time
	recorder *export.GIF
	status   string
	showHelp bool
}

// NewModel binds anim, which must have been built on canvas.
func NewModel(anim *engine.Animation, canvas *Canvas, title string) Model {
	h := &history{initial: anim.Options().Window.Width()}
	anim.AddObserver(h)
	return Model{
		anim:    anim,
		canvas:  canvas,
		hist:    h,
		title:   title,
		running: true,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	m.anim.Start()
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.recorder != nil {
				m.stopRecording()
			}
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.anim.Reset()
			m.hist.reset()
			m.status = "reset"
		case "t":
			NextTheme()
		case "g":
			if m.recorder != nil {
				m.stopRecording()
			} else {
				m.recorder = export.NewGIF(m.anim.Options().Tick, historyCapacity)
				m.status = "recording"
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		now := time.Time(msg)
		if m.running && !m.last.IsZero() {
			before := m.anim.State().Ticks
			m.anim.OnFrame(now.Sub(m.last).Seconds())
			if m.recorder != nil && m.anim.State().Ticks != before {
				m.recorder.Capture(m.anim.Field().Image(gifScale))
			}
		}
		m.last = now
		return m, tick()
	}
	return m, nil
}

func (m *Model) stopRecording() {
	if err := m.recorder.Save(gifPath); err != nil {
		m.status = "gif: " + err.Error()
		logging.Logger().Error("save gif", "err", err)
	} else {
		m.status = fmt.Sprintf("saved %d frames to %s", m.recorder.Frames(), gifPath)
	}
	m.recorder = nil
}

func (m Model) View() string {
	if m.showHelp {
		return helpView
	}

	th := CurrentTheme
	info := m.anim.Last()

	var s strings.Builder
	s.WriteString(th.header().Render(GradientText(strings.ToUpper(m.title), th.Primary, th.Secondary)) + "\n")

	status := "ZOOMING"
	if !m.running {
		status = "PAUSED"
	}
	if m.recorder != nil {
		status += " ● REC"
	}
	if info.Saturated {
		status += " (precision limit)"
	}
	s.WriteString(th.status(m.running).Render(status) + "\n")

	if len(m.hist.depth) > 1 {
		chart := asciigraph.Plot(m.hist.depth, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("log10 zoom"))
		s.WriteString(th.graph().Render(chart) + "\n")
	}

	row := func(label, value string) {
		s.WriteString(th.label().Render(label) + th.value().Render(value) + "\n")
	}
	row("Tick", fmt.Sprintf("%d", info.Tick))
	row("Re", fmt.Sprintf("%.15f", info.Center.Re))
	row("Im", fmt.Sprintf("%.15f", info.Center.Im))
	row("Width", fmt.Sprintf("%.3e", info.Window.Width()))
	row("Cap", fmt.Sprintf("%d", info.Cap))
	row("Score", fmt.Sprintf("%.1f", info.Target.Score))
	row("Draws", fmt.Sprintf("%d / %d", info.DrawCalls, info.Cells))
	if savings, ok := m.anim.Metrics()["draw_savings"]; ok {
		row("Saved", ProgressBar(savings, 16)+fmt.Sprintf(" %3.0f%%", savings*100))
	}
	s.WriteString("\n" + th.graph().UnsetPadding().Render(SparklineChart(m.hist.draws, 30)) + "\n")

	if m.status != "" {
		s.WriteString("\n" + th.value().Render(m.status) + "\n")
	}
	s.WriteString(th.help().Render("SP:Pause R:Reset Q:Quit\nT:Theme  G:Record ?:Help"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		panelStyle.Render(s.String()))
}

const helpView = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume zoom        ║
║  R        - Restart from the top     ║
║  T        - Cycle panel theme        ║
║  G        - Start/stop GIF capture   ║
║  ?        - Toggle this help         ║
║  Q / Esc  - Quit                     ║
╚══════════════════════════════════════╝
`

// Run starts the live view in the alternate screen.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
