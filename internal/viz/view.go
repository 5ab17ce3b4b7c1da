package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mobius/internal/geometry"
)

const (
	canvasWidth  = 80
	canvasHeight = 26
)

type TickMsg time.Time

// Model is the interactive strip viewer. The strip itself is read-only;
// only camera and render options change under key input.
type Model struct {
	strip    *geometry.Strip
	opts     Options
	camera   *Camera
	canvas   *Canvas
	spinning bool

	// Scalars computed once at startup for the sidebar.
	area       float64
	edgeLength float64
}

// NewModel prepares the viewer for a constructed strip.
func NewModel(s *geometry.Strip, opts Options) Model {
	cam := NewCamera()
	cam.FitMesh(s.Mesh())
	return Model{
		strip:      s,
		opts:       opts,
		camera:     cam,
		canvas:     NewCanvas(canvasWidth, canvasHeight),
		spinning:   true,
		area:       s.SurfaceArea(),
		edgeLength: s.EdgeLength(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.spinning = !m.spinning
		case "left", "h":
			m.camera.RotateZ(-0.1)
		case "right", "l":
			m.camera.RotateZ(0.1)
		case "up", "k":
			m.camera.RotateX(-0.1)
		case "down", "j":
			m.camera.RotateX(0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "w":
			m.opts.ShowWireframe = !m.opts.ShowWireframe
		case "s":
			m.opts.ShowSurface = !m.opts.ShowSurface
		case "c":
			m.opts.Colormap = nextColormap(m.opts.Colormap)
		case "r":
			m.camera.Reset()
		}
		return m, nil

	case TickMsg:
		if m.spinning {
			m.camera.RotateZ(0.02)
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}

	return m, nil
}

func (m Model) View() string {
	m.canvas.Clear()
	wf := BuildStripWireframe(m.strip.Mesh(), m.opts, m.strip.EdgeRow(), m.strip.CenterRow())
	Render3D(m.canvas, wf, m.camera)

	p := m.strip.Params()
	var stats strings.Builder
	stats.WriteString(headerStyle.Render("möbius strip") + "\n")
	stats.WriteString(row("radius", fmt.Sprintf("%.3f", p.Radius)))
	stats.WriteString(row("width", fmt.Sprintf("%.3f", p.Width)))
	stats.WriteString(row("resolution", fmt.Sprintf("%d", p.Resolution)))
	stats.WriteString("\n")
	stats.WriteString(row("area", fmt.Sprintf("%.4f", m.area)))
	stats.WriteString(row("edge len", fmt.Sprintf("%.4f", m.edgeLength)))
	stats.WriteString("\n")
	stats.WriteString(row("wireframe", toggle(m.opts.ShowWireframe)))
	stats.WriteString(row("surface", toggle(m.opts.ShowSurface)))
	stats.WriteString(row("colormap", m.opts.Colormap))
	stats.WriteString(row("zoom", fmt.Sprintf("%.2fx", m.camera.Zoom)))

	legend := lipgloss.NewStyle().Foreground(lipgloss.Color(edgeColor)).Render("── edge") +
		"  " +
		lipgloss.NewStyle().Foreground(lipgloss.Color(centerColor)).Render("── centerline")
	stats.WriteString("\n" + legend)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats.String()),
	)
	help := helpStyle.Render("arrows rotate · +/- zoom · space spin · w/s/c toggles · r reset · q quit")
	return body + "\n" + help
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

func toggle(on bool) string {
	if on {
		return onStyle.Render("on")
	}
	return offStyle.Render("off")
}

func nextColormap(current string) string {
	names := ColormapNames()
	for i, n := range names {
		if n == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// Run starts the interactive viewer and blocks until it exits.
func Run(s *geometry.Strip, opts Options) error {
	p := tea.NewProgram(NewModel(s, opts))
	_, err := p.Run()
	return err
}
