package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]color.NRGBA{
	"black":  {A: 255},
	"white":  {R: 255, G: 255, B: 255, A: 255},
	"red":    {R: 255, A: 255},
	"green":  {G: 255, A: 255},
	"blue":   {B: 255, A: 255},
	"yellow": {R: 255, G: 255, A: 255},
}

// ParseColor accepts "#rgb", "#rrggbb" or one of a handful of colour names
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// ColorOr parses s and falls back when it is malformed
func ColorOr(s string, fallback color.Color) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

// ColorString converts a colour into the "#rrggbb" form used in settings
func ColorString(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// fully transparent
		return "#000000"
	}
	return cf.Hex()
}

// Fade returns c with its alpha scaled by opacity in [0,1]
func Fade(c color.Color, opacity float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * clamp01(opacity))
	return n
}

// Mix blends a toward b in Lab space; t=0 yields a, t=1 yields b
func Mix(a, b color.Color, t float64) color.NRGBA {
	ca, okA := colorful.MakeColor(a)
	cb, okB := colorful.MakeColor(b)
	if !okA || !okB {
		return color.NRGBAModel.Convert(a).(color.NRGBA)
	}
	r, g, bl := ca.BlendLab(cb, clamp01(t)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 255}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
