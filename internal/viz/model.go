package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/backdrop/internal/metrics"
	"github.com/san-kum/backdrop/internal/turtle"
)

const (
	// WorldScale is the number of world units per braille dot. The engine's
	// radii (100, 150) are tuned for pixels, so the dot grid is scaled up.
	WorldScale      = 4.0
	sidebarWidth    = 38
	historyCapacity = 300
	minCols         = 10
	minRows         = 5
)

type TickMsg time.Time

// Model is the terminal front end: a braille view of the engine plus a
// side panel of live metrics.
type Model struct {
	eng        *turtle.Engine
	canvas     *Canvas
	theme      Theme
	styles     styles
	fps        int
	running    bool
	showHelp   bool
	cols, rows int
	links      []float64
	speed      []float64
	status     string

	// OnSnapshot is called with the current canvas when s is pressed and
	// returns a description of where the snapshot went.
	OnSnapshot func(*Canvas) (string, error)
}

func NewModel(eng *turtle.Engine, fps int, theme string) Model {
	if fps <= 0 {
		fps = 30
	}
	t := GetTheme(theme)
	m := Model{
		eng:     eng,
		theme:   t,
		styles:  newStyles(t),
		fps:     fps,
		running: true,
		links:   make([]float64, 0, historyCapacity),
		speed:   make([]float64, 0, historyCapacity),
	}
	m.resize(80+sidebarWidth, 24)
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the engine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		p, ok := m.toWorld(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		switch {
		case msg.Action == tea.MouseActionMotion:
			m.eng.PointerMove(p)
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.eng.Click(p)
		}
	case TickMsg:
		if m.running {
			m.eng.Frame(m.canvas)
			m.record()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.running = !m.running
	case "1", "2", "3":
		idx := int(msg.String()[0] - '1')
		m.setMode(turtle.Modes[idx])
	case "m":
		m.setMode(m.eng.Mode().Next())
	case "c":
		if err := m.eng.NextScheme(); err != nil {
			m.status = err.Error()
		} else {
			m.status = "scheme " + m.eng.Options().Scheme
		}
		m.clearHistory()
	case "t":
		m.theme = NextTheme(m.theme)
		m.styles = newStyles(m.theme)
		m.status = "theme " + m.theme.Name
	case "r":
		m.eng.Reset()
		m.clearHistory()
	case "s":
		if m.OnSnapshot == nil {
			break
		}
		where, err := m.OnSnapshot(m.canvas)
		if err != nil {
			m.status = "snapshot failed: " + err.Error()
		} else {
			m.status = "saved " + where
		}
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) setMode(mode turtle.Mode) {
	if err := m.eng.SetMode(mode); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "mode " + string(mode)
	m.clearHistory()
}

// resize fits the canvas beside the side panel and gives the engine the
// matching world extent.
func (m *Model) resize(width, height int) {
	m.cols = max(width-sidebarWidth-1, minCols)
	m.rows = max(height-2, minRows)
	m.canvas = NewCanvas(m.cols, m.rows)
	ww, wh := m.WorldSize()
	m.canvas.SetWorld(ww, wh)
	m.eng.Resize(ww, wh)
}

// WorldSize is the engine extent the current canvas represents.
func (m Model) WorldSize() (float64, float64) {
	return float64(m.cols*2) * WorldScale, float64(m.rows*4) * WorldScale
}

// toWorld maps a terminal cell to the world point at its centre.
func (m Model) toWorld(x, y int) (turtle.Vec, bool) {
	if x < 0 || y < 0 || x >= m.cols || y >= m.rows {
		return turtle.Vec{}, false
	}
	return turtle.Vec{
		X: (float64(x*2) + 1) * WorldScale,
		Y: (float64(y*4) + 2) * WorldScale,
	}, true
}

func (m *Model) record() {
	s := metrics.Measure(m.eng.State())
	m.links = appendCapped(m.links, float64(s.Links))
	m.speed = appendCapped(m.speed, s.Speed)
}

func (m *Model) clearHistory() {
	m.links = m.links[:0]
	m.speed = m.speed[:0]
}

func appendCapped(xs []float64, v float64) []float64 {
	xs = append(xs, v)
	if len(xs) > historyCapacity {
		xs = xs[1:]
	}
	return xs
}

// View renders the TUI interface.
func (m Model) View() string {
	st := m.styles
	state := m.eng.State()

	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(string(m.eng.Mode()))) + "\n")
	if m.running {
		s.WriteString(st.running.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	if state != nil {
		row("Frame", fmt.Sprintf("%d", state.Frame))
		row("Entities", fmt.Sprintf("%d", len(state.Entities)))
		row("Particles", fmt.Sprintf("%d", len(state.Particles)))
	}
	scheme := m.eng.Options().Scheme
	if scheme == "" {
		scheme = turtle.DefaultScheme
	}
	row("Scheme", scheme)
	row("Theme", m.theme.Name)

	if len(m.links) > 1 {
		chart := asciigraph.Plot(m.links, asciigraph.Height(4), asciigraph.Width(sidebarWidth-12), asciigraph.Caption("Links"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}
	if len(m.speed) > 0 {
		s.WriteString(st.label.Render("Speed") + SparklineChart(m.speed, sidebarWidth-14) + "\n")
	}
	if m.status != "" {
		s.WriteString("\n" + st.value.Render(m.status) + "\n")
	}
	if m.showHelp {
		s.WriteString(st.help.Render("space pause  1/2/3 mode  m next mode\nc scheme  t theme  r reset\ns snapshot  q quit") + "\n")
	} else {
		s.WriteString(st.help.Render("? help") + "\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, m.canvas.Render(), st.panel.Render(s.String()))
}
