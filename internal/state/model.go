package state

import "DriftBoard/internal/geom"

const (
	// EraserColor paints over strokes with the board background
	EraserColor = "#0d0f1a"
	// EraserWidthFactor widens eraser strokes relative to the size setting
	EraserWidthFactor = 3
	// EraserPreviewColor outlines an in-progress eraser stroke
	EraserPreviewColor = "#FFFFFF"
)

// Style is the visual style of a body, fixed at creation
type Style struct {
	Color  string  `json:"color"`
	Width  float64 `json:"width"`
	Filled bool    `json:"filled"`
}

// Settings are the toolbar values read when a gesture starts, moves and ends
type Settings struct {
	Tool     geom.Tool `toml:"tool"`
	Color    string    `toml:"color"`
	Size     float64   `toml:"size"`
	Velocity float64   `toml:"velocity"`
}

// DefaultSettings matches the toolbar's initial state
func DefaultSettings() Settings {
	return Settings{
		Tool:     geom.ToolBrush,
		Color:    "#50fa7b",
		Size:     5,
		Velocity: 1,
	}
}

// BodyStyle derives the style of a body created with these settings
func (s Settings) BodyStyle() Style {
	if s.Tool == geom.ToolEraser {
		return Style{Color: EraserColor, Width: s.Size * EraserWidthFactor}
	}
	return Style{Color: s.Color, Width: s.Size}
}

// PreviewStyle derives the style of the live gesture outline
func (s Settings) PreviewStyle() Style {
	if s.Tool == geom.ToolEraser {
		return Style{Color: EraserPreviewColor, Width: s.Size}
	}
	return Style{Color: s.Color, Width: s.Size}
}
