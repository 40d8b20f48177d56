package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"DriftBoard/internal/geom"
	"DriftBoard/internal/render"
)

// colorSwatch is a palette entry. The selected swatch is outlined.
type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	Color    color.Color
	OnTapped func(s *colorSwatch)
	selected bool
}

func newColorSwatch(hex string, tapped func(s *colorSwatch)) *colorSwatch {
	s := &colorSwatch{
		Hex:      hex,
		Color:    render.ColorOr(hex, color.White),
		OnTapped: tapped,
	}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) Selected() bool { return s.selected }

func (s *colorSwatch) SetSelected(on bool) {
	if s.selected == on {
		return
	}
	s.selected = on
	s.Refresh()
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s)
	}
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	fill := canvas.NewRectangle(s.Color)
	fill.SetMinSize(fyne.NewSize(28, 28))
	border := canvas.NewRectangle(color.Transparent)

	r := &swatchRenderer{swatch: s, fill: fill, border: border}
	r.Refresh()
	return r
}

type swatchRenderer struct {
	swatch *colorSwatch
	fill   *canvas.Rectangle
	border *canvas.Rectangle
}

func (r *swatchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.fill, r.border}
}

func (r *swatchRenderer) Layout(size fyne.Size) {
	r.fill.Resize(size)
	r.border.Resize(size)
}

func (r *swatchRenderer) MinSize() fyne.Size { return r.fill.MinSize() }

func (r *swatchRenderer) Refresh() {
	if r.swatch.selected {
		r.border.StrokeColor = color.White
		r.border.StrokeWidth = 3
	} else {
		r.border.StrokeColor = color.Gray{Y: 150}
		r.border.StrokeWidth = 1
	}
	r.border.Refresh()
}

func (r *swatchRenderer) Destroy() {}

// newPalette lays out one swatch per colour. Tapping a swatch sets the board
// colour and moves the selection to it.
func newPalette(board *BoardWidget, hexes []string) (*fyne.Container, []*colorSwatch) {
	box := container.NewHBox()
	swatches := make([]*colorSwatch, 0, len(hexes))

	onTapped := func(picked *colorSwatch) {
		board.SetColor(picked.Hex)
		for _, s := range swatches {
			s.SetSelected(s == picked)
		}
	}
	current := board.Settings().Color
	for _, hex := range hexes {
		s := newColorSwatch(hex, onTapped)
		s.selected = strings.EqualFold(hex, current)
		swatches = append(swatches, s)
		box.Add(s)
	}
	return box, swatches
}

// ToolbarOptions configures the controls offered above the board
type ToolbarOptions struct {
	Palette     []string
	MaxSize     float64
	MaxVelocity float64
	OnExport    func()
}

// NewToolbar builds the tool, colour, size and velocity controls for board
func NewToolbar(board *BoardWidget, opts ToolbarOptions) fyne.CanvasObject {
	initial := board.Settings()

	names := make([]string, len(geom.Tools))
	for i, t := range geom.Tools {
		names[i] = t.String()
	}
	toolSelect := widget.NewSelect(names, func(name string) {
		if t, ok := geom.ParseTool(name); ok {
			board.SetTool(t)
		}
	})
	toolSelect.SetSelected(initial.Tool.String())

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.DeleteIcon(), board.Clear),
	)
	if opts.OnExport != nil {
		actions.Append(widget.NewToolbarAction(theme.DocumentSaveIcon(), opts.OnExport))
	}

	colorBox, _ := newPalette(board, opts.Palette)

	maxSize := opts.MaxSize
	if maxSize < initial.Size {
		maxSize = initial.Size
	}
	sizeSlider := widget.NewSlider(1, maxSize)
	sizeSlider.Step = 1
	sizeSlider.SetValue(initial.Size)
	sizeSlider.OnChanged = board.SetSize

	maxVelocity := opts.MaxVelocity
	if maxVelocity < initial.Velocity {
		maxVelocity = initial.Velocity
	}
	velocitySlider := widget.NewSlider(0, maxVelocity)
	velocitySlider.Step = 0.1
	velocitySlider.SetValue(initial.Velocity)
	velocitySlider.OnChanged = board.SetVelocity

	sliderSize := fyne.NewSize(140, 35)
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		toolSelect,
		actions,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		container.New(layout.NewGridWrapLayout(sliderSize), sizeSlider),
		widget.NewLabel("Velocity:"),
		container.New(layout.NewGridWrapLayout(sliderSize), velocitySlider),
		layout.NewSpacer(),
	)
}
