package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"DriftBoard/internal/geom"
	"DriftBoard/internal/render"
	"DriftBoard/internal/sim"
	"DriftBoard/internal/state"
)

// BoardWidget shows the world on a raster image and feeds pointer gestures
// into it. Every method runs on the fyne main goroutine.
type BoardWidget struct {
	widget.BaseWidget
	world     *sim.World
	raster    *render.Raster
	image     *canvas.Image
	settings  state.Settings
	anim      *fyne.Animation
	last      geom.Vec
	interval  time.Duration
	lastFrame time.Time

	OnFrame   func(st sim.Stats)
	OnNewBody func(b *state.Body)
	OnClear   func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(world *sim.World, settings state.Settings, background color.Color, glow float64) *BoardWidget {
	sz := world.Size()
	b := &BoardWidget{
		world:    world,
		raster:   render.NewRaster(int(sz.W), int(sz.H), background, glow),
		settings: settings,
	}
	b.image = canvas.NewImageFromImage(b.raster.Image())
	b.image.FillMode = canvas.ImageFillStretch
	b.image.ScaleMode = canvas.ImageScaleFastest
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Settings() state.Settings { return b.settings }

func (b *BoardWidget) SetTool(t geom.Tool) { b.settings.Tool = t }

func (b *BoardWidget) SetColor(hex string) { b.settings.Color = hex }

func (b *BoardWidget) SetSize(size float64) { b.settings.Size = size }

func (b *BoardWidget) SetVelocity(v float64) { b.settings.Velocity = v }

// Clear removes every body and drops an unfinished gesture
func (b *BoardWidget) Clear() {
	b.world.Cancel()
	b.world.Clear()
	if b.OnClear != nil {
		b.OnClear()
	}
}

// SetFrameRate caps simulation frames per second. Zero or less runs one frame
// per display refresh.
func (b *BoardWidget) SetFrameRate(fps int) {
	if fps <= 0 {
		b.interval = 0
		return
	}
	b.interval = time.Second / time.Duration(fps)
}

// Start runs simulation frames on the display refresh until Stop
func (b *BoardWidget) Start() {
	if b.anim != nil {
		return
	}
	b.anim = fyne.NewAnimation(time.Second, func(float32) { b.tick(time.Now()) })
	b.anim.Curve = fyne.AnimationLinear
	b.anim.RepeatCount = fyne.AnimationRepeatForever
	b.anim.Start()
}

func (b *BoardWidget) Stop() {
	if b.anim == nil {
		return
	}
	b.anim.Stop()
	b.anim = nil
}

// tick runs a frame when one is due. Refresh ticks jitter around the display
// period, so a frame is due once three quarters of the interval has passed.
func (b *BoardWidget) tick(now time.Time) {
	if b.interval > 0 && now.Sub(b.lastFrame) < b.interval*3/4 {
		return
	}
	b.lastFrame = now
	b.frame()
}

func (b *BoardWidget) frame() {
	st := b.world.Frame(b.raster, b.settings)
	b.image.Image = b.raster.Image()
	b.image.Refresh()
	if b.OnFrame != nil {
		b.OnFrame(st)
	}
}

// Resize keeps the world bounds and the raster in step with the widget
func (b *BoardWidget) Resize(size fyne.Size) {
	if size.Width > 0 && size.Height > 0 {
		b.world.Resize(geom.Size{W: float64(size.Width), H: float64(size.Height)})
		b.raster.Resize(int(size.Width), int(size.Height))
	}
	b.BaseWidget.Resize(size)
}

func toVec(p fyne.Position) geom.Vec {
	return geom.V(float64(p.X), float64(p.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.last = toVec(e.Position)
	b.world.Begin(b.last)
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.world.Drawing() {
		return
	}
	b.last = toVec(e.Position)
	b.world.Move(b.last)
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.end(toVec(e.Position))
}

// MouseOut ends the gesture where the pointer was last seen
func (b *BoardWidget) MouseOut() {
	b.end(b.last)
}

func (b *BoardWidget) end(p geom.Vec) {
	if !b.world.Drawing() {
		return
	}
	body, ok := b.world.End(p, b.settings)
	if ok && b.OnNewBody != nil {
		b.OnNewBody(body)
	}
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.last = toVec(e.Position)
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.image}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.board.image.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.image.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
