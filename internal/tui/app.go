// Package tui runs the board in a terminal. Bodies are drawn as block
// characters and gestures come from mouse drags.
package tui

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"DriftBoard/internal/audio"
	"DriftBoard/internal/config"
	"DriftBoard/internal/export"
	"DriftBoard/internal/geom"
	"DriftBoard/internal/render"
	"DriftBoard/internal/sim"
	"DriftBoard/internal/state"
)

const eventBuffer = 100

const helpText = "b/e/r/c/t tool  p colour  +/- size  x clear  s save  q quit"

var toolKeys = map[rune]geom.Tool{
	'b': geom.ToolBrush,
	'e': geom.ToolEraser,
	'r': geom.ToolRectangle,
	'c': geom.ToolCircle,
	't': geom.ToolTriangle,
}

// App is the terminal front end. It owns the screen and drives the world
// from a single goroutine.
type App struct {
	screen     tcell.Screen
	world      *sim.World
	canvas     *CellCanvas
	settings   state.Settings
	palette    []string
	colorIdx   int
	maxSize    float64
	background color.Color
	player     *audio.Player
	exportDir  string
	exportFmt  export.Format
	fps        int
	status     string
	stats      sim.Stats
	last       geom.Vec
}

// New wires an already initialised screen to world. player may be nil.
func New(screen tcell.Screen, world *sim.World, cfg config.Config, player *audio.Player) *App {
	bg := render.ColorOr(cfg.Render.Background, color.Black)
	format, err := export.ParseFormat(cfg.Export.Format)
	if err != nil {
		format = export.FormatText
	}

	a := &App{
		screen:     screen,
		world:      world,
		canvas:     NewCellCanvas(screen, cfg.Terminal.CellScale, 1, bg),
		settings:   cfg.Tools.Settings,
		palette:    cfg.Tools.Palette,
		maxSize:    cfg.Tools.MaxSize,
		background: bg,
		player:     player,
		exportDir:  cfg.Export.Dir,
		exportFmt:  format,
		fps:        cfg.Terminal.FPS,
		status:     helpText,
	}
	a.world.Resize(a.canvas.Size())
	return a
}

// Run opens the terminal and blocks until the user quits or ctx ends
func Run(ctx context.Context, cfg config.Config, world *sim.World, player *audio.Player) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()

	return New(screen, world, cfg, player).Loop(ctx)
}

// Loop alternates input handling and frames until quit
func (a *App) Loop(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(a.screen, done, eventBuffer)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !a.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			a.Frame()
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done is
// closed. The returned channel is closed when forwarding stops.
func pollEvents(screen tcell.Screen, done <-chan struct{}, buffer int) <-chan tcell.Event {
	events := make(chan tcell.Event, buffer)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case <-done:
				return
			default:
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// Frame steps the world once and repaints the screen
func (a *App) Frame() {
	a.stats = a.world.Frame(a.canvas, a.settings)
	if a.player != nil {
		a.player.Frame(a.stats.Collisions, a.stats.WallHits)
	}
	a.drawStatus()
	a.screen.Show()
}

// Handle processes one event and reports whether the app should keep running
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.world.Resize(a.canvas.Size())
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	r := ev.Rune()
	if t, ok := toolKeys[r]; ok {
		a.settings.Tool = t
		a.status = "tool: " + t.String()
		return true
	}

	switch r {
	case 'q':
		return false
	case 'x':
		a.world.Cancel()
		a.world.Clear()
		a.status = "cleared"
	case 'p':
		if len(a.palette) > 0 {
			a.colorIdx = (a.colorIdx + 1) % len(a.palette)
			a.settings.Color = a.palette[a.colorIdx]
			a.status = "colour: " + a.settings.Color
		}
	case '+', '=':
		if a.maxSize <= 0 || a.settings.Size+1 <= a.maxSize {
			a.settings.Size++
		}
		a.status = fmt.Sprintf("size: %.0f", a.settings.Size)
	case '-':
		if a.settings.Size > 1 {
			a.settings.Size--
		}
		a.status = fmt.Sprintf("size: %.0f", a.settings.Size)
	case 's':
		a.save()
	}
	return true
}

// handleMouse maps button state to gesture events. Releasing the button, or
// moving onto the status row, ends the gesture.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	_, rows := a.canvas.Grid()
	pressed := ev.Buttons()&tcell.Button1 != 0

	if y >= rows {
		if a.world.Drawing() {
			a.end(a.last)
		}
		return
	}

	p := a.canvas.ToBoard(x, y)
	switch {
	case pressed && !a.world.Drawing():
		a.world.Begin(p)
	case pressed:
		a.world.Move(p)
	case a.world.Drawing():
		a.end(p)
	}
	a.last = p
}

func (a *App) end(p geom.Vec) {
	if body, ok := a.world.End(p, a.settings); ok {
		a.status = fmt.Sprintf("added %s", body.ID)
	}
}

func (a *App) save() {
	path := export.Filename(a.exportDir, a.exportFmt, time.Now())
	if err := export.Save(path, a.world.Bodies(), a.world.Size(), a.background); err != nil {
		log.Printf("[EXPORT] %v", err)
		a.status = "export failed"
		return
	}
	a.status = "saved " + filepath.Base(path)
}

func (a *App) drawStatus() {
	cols, rows := a.screen.Size()
	y := rows - 1
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	line := fmt.Sprintf(" %s %s %.0f | bodies %d | %s",
		a.settings.Tool, a.settings.Color, a.settings.Size, a.stats.Bodies, a.status)

	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}
}
