package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"DriftBoard/internal/geom"
)

// glowPasses is the number of widening halo strokes painted under a glowing path
const glowPasses = 3

// Raster is a Canvas backed by an RGBA image, stroked and filled with rasterx.
type Raster struct {
	Stack

	img        *image.RGBA
	scanner    *rasterx.ScannerGV
	dasher     *rasterx.Dasher
	filler     *rasterx.Filler
	background color.Color
	glow       float64
}

var _ Canvas = (*Raster)(nil)

// NewRaster allocates a w×h surface. glow is the halo radius in pixels; zero
// disables glow regardless of Style.Glow.
func NewRaster(w, h int, background color.Color, glow float64) *Raster {
	r := &Raster{background: background, glow: glow}
	r.Resize(w, h)
	return r
}

// Resize reallocates the surface. Contents are discarded.
func (r *Raster) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if r.img != nil && r.img.Bounds().Dx() == w && r.img.Bounds().Dy() == h {
		return
	}

	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.scanner = rasterx.NewScannerGV(w, h, r.img, r.img.Bounds())
	r.dasher = rasterx.NewDasher(w, h, r.scanner)
	r.filler = rasterx.NewFiller(w, h, r.scanner)
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
}

// Image exposes the backing image. It is reused across frames.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Size() geom.Size {
	b := r.img.Bounds()
	return geom.Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

func (r *Raster) ClearRect(rc geom.Rect) {
	o := r.Offset()
	area := image.Rect(
		int(math.Floor(rc.X+o.X)), int(math.Floor(rc.Y+o.Y)),
		int(math.Ceil(rc.X+rc.W+o.X)), int(math.Ceil(rc.Y+rc.H+o.Y)),
	).Intersect(r.img.Bounds())
	draw.Draw(r.img, area, image.NewUniform(r.background), image.Point{}, draw.Src)
}

func (r *Raster) Stroke(p geom.Path) {
	st := r.Current()
	if st.Color == nil || st.Width <= 0 {
		return
	}
	lines := p.Flatten(1)

	if st.Glow && r.glow > 0 {
		for i := glowPasses; i >= 1; i-- {
			w := st.Width + r.glow*float64(i)/glowPasses*2
			r.strokeLines(lines, w, st.Round, Fade(st.Color, 0.35/float64(i+1)))
		}
	}
	r.strokeLines(lines, st.Width, st.Round, st.Color)
}

func (r *Raster) strokeLines(lines []geom.Polyline, width float64, round bool, c color.Color) {
	capFn, gap, join := rasterx.ButtCap, rasterx.FlatGap, rasterx.MiterClip
	if round {
		capFn, gap, join = rasterx.RoundCap, rasterx.RoundGap, rasterx.Round
	}

	r.dasher.Clear()
	r.dasher.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64), capFn, nil, gap, join, nil, 0)
	r.dasher.SetColor(c)
	r.addLines(r.dasher, lines)
	r.dasher.Draw()
	r.dasher.Clear()
}

func (r *Raster) Fill(p geom.Path) {
	st := r.Current()
	if st.Color == nil {
		return
	}

	r.filler.Clear()
	r.filler.SetColor(st.Color)
	r.addLines(r.filler, p.Flatten(1))
	r.filler.Draw()
	r.filler.Clear()
}

func (r *Raster) addLines(a rasterx.Adder, lines []geom.Polyline) {
	o := r.Offset()
	for _, pl := range lines {
		a.Start(rasterx.ToFixedP(pl.Points[0].X+o.X, pl.Points[0].Y+o.Y))
		for _, pt := range pl.Points[1:] {
			a.Line(rasterx.ToFixedP(pt.X+o.X, pt.Y+o.Y))
		}
		a.Stop(pl.Closed)
	}
}
