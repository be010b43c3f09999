// Package tui hosts the interactive terminal player: it translates
// terminal key and mouse events into per-frame input snapshots, drives
// the active engine, and paints the RGBA buffer with half-block cells
// (two vertical pixels per character).
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/crawley-dev/physics-toy/internal/input"
	"github.com/crawley-dev/physics-toy/internal/metrics"
	"github.com/crawley-dev/physics-toy/internal/sim"
	"github.com/crawley-dev/physics-toy/internal/vmath"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	dim        = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green      = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// hudLines is the vertical space reserved above and below the canvas.
const hudLines = 3

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	front  sim.Frontend
	engine string
	scale  int

	in        input.Snapshot
	lastFrame time.Time
	fps       float64

	width  int
	height int

	log *zap.Logger
}

// NewPlayer wraps an engine in a bubbletea program. The scale is the
// engine's screen-to-viewport pixel scale, needed to translate
// terminal cells into the screen coordinates the engine expects.
func NewPlayer(front sim.Frontend, engine string, scale int, log *zap.Logger) *tea.Program {
	if log == nil {
		log = zap.NewNop()
	}
	m := model{
		front:  front,
		engine: engine,
		scale:  scale,
		log:    log,
	}
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		canvasH := msg.Height - 2*hudLines
		if canvasH < 1 {
			canvasH = 1
		}
		m.front.ResizeTexture(vmath.V[int, vmath.Viewport](msg.Width, canvasH*2))
		return m, nil

	case tickMsg:
		now := time.Now()
		dt := time.Second / 60
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame)
			if s := dt.Seconds(); s > 0 {
				m.fps = 1.0 / s
			}
		}
		m.lastFrame = now
		m.in.Elapsed = dt

		m.front.Update(&m.in, dt)
		m.in.ClearFrame()
		m.releaseTapped()
		return m, tick()
	}
	return m, nil
}

// keymap translates terminal keys into sandbox bindings. Terminals
// deliver no key-up events, so movement keys are treated as held for
// exactly one frame per repeat.
var keymap = map[string]input.Key{
	" ":     input.KeyToggleRun,
	"n":     input.KeyStep,
	"c":     input.KeyClear,
	"v":     input.KeyResetView,
	"w":     input.KeyCameraUp,
	"s":     input.KeyCameraDown,
	"a":     input.KeyCameraLeft,
	"d":     input.KeyCameraRight,
	"up":    input.KeyCameraUp,
	"down":  input.KeyCameraDown,
	"left":  input.KeyCameraLeft,
	"right": input.KeyCameraRight,
	"]":     input.KeySizeUp,
	"[":     input.KeySizeDown,
	"t":     input.KeyShapeCycle,
	"+":     input.KeyScaleUp,
	"=":     input.KeyScaleUp,
	"-":     input.KeyScaleDown,
}

var tappedKeys = []input.Key{
	input.KeyCameraUp, input.KeyCameraDown,
	input.KeyCameraLeft, input.KeyCameraRight,
	input.KeySizeUp, input.KeySizeDown,
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}

	if k, ok := keymap[msg.String()]; ok {
		m.in.SetPressed(k)
	}
	return m, nil
}

func (m *model) releaseTapped() {
	for _, k := range tappedKeys {
		m.in.SetHeld(k, false)
	}
}

// handleMouse maps terminal cells onto engine screen coordinates: one
// cell per pixel horizontally, two per cell column vertically.
func (m *model) handleMouse(msg tea.MouseMsg) {
	pos := vmath.V[float64, vmath.Screen](
		float64(msg.X*m.scale),
		float64((msg.Y-hudLines)*2*m.scale),
	)
	m.in.Cursor = pos

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.in.MouseDown = true
			m.in.Pressed = input.MouseEvent{Pos: pos, Time: time.Now(), Active: true}
		}
	case tea.MouseActionRelease:
		m.in.MouseDown = false
		m.in.Released = input.MouseEvent{Pos: pos, Time: time.Now(), Active: true}
	}
}

func (m model) View() string {
	data := m.front.TextureData()

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString(renderHalfBlocks(data))
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m model) viewHeader() string {
	state := yellow.Render("paused")
	if m.front.Running() {
		state = green.Render("running")
	}

	entities := ""
	if sampler, ok := m.front.(metrics.Sampler); ok {
		entities = dim.Render(fmt.Sprintf("  entities %d", sampler.Sample().Entities))
	}

	return fmt.Sprintf("%s  %s%s  %s\n\n",
		titleStyle.Render("physics-toy "+m.engine),
		state,
		entities,
		dim.Render(fmt.Sprintf("%3.0f fps", m.fps)),
	)
}

func (m model) viewFooter() string {
	return "\n" + dim.Render(
		"space run  n step  c clear  click spawn  drag slingshot  wasd camera  v reset  [ ] size  t shape  q quit",
	) + "\n"
}

// renderHalfBlocks packs two buffer rows into one text row using the
// upper-half-block glyph: the top pixel becomes the foreground colour,
// the bottom pixel the background.
func renderHalfBlocks(data sim.TextureData) string {
	w, h := data.Size.X, data.Size.Y
	if w <= 0 || h <= 0 || len(data.Buf) < 4*w*h {
		return ""
	}

	var b strings.Builder
	b.Grow(h / 2 * w * 40)

	for y := 0; y+1 < h; y += 2 {
		for x := 0; x < w; x++ {
			top := 4 * (y*w + x)
			bot := 4 * ((y+1)*w + x)
			fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				data.Buf[top], data.Buf[top+1], data.Buf[top+2],
				data.Buf[bot], data.Buf[bot+1], data.Buf[bot+2])
		}
		b.WriteString("\x1b[0m\n")
	}
	return b.String()
}
