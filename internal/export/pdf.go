package export

import (
	"image/color"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	"DriftBoard/internal/geom"
	"DriftBoard/internal/render"
	"DriftBoard/internal/state"
)

// glowAlpha is the opacity of the halo stroked under glowing paths
const glowAlpha = 0.3

// WritePDF renders the bodies onto a single page sized to the board, one
// point per board unit, and writes the document to w.
func WritePDF(w io.Writer, bodies []*state.Body, size geom.Size, background color.Color) error {
	c := newPDFCanvas(size, background)
	render.Clear(c)
	for _, b := range bodies {
		b.Render(c)
	}
	return c.pdf.Output(w)
}

// pdfCanvas adapts gofpdf to render.Canvas. Translations are applied to the
// coordinates directly; PDF graphics state is only used for colours.
type pdfCanvas struct {
	render.Stack
	pdf        *gofpdf.Fpdf
	size       geom.Size
	background color.NRGBA
}

var _ render.Canvas = (*pdfCanvas)(nil)

func newPDFCanvas(size geom.Size, background color.Color) *pdfCanvas {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: size.W, Ht: size.H},
	})
	p.SetCreator("DriftBoard", false)
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	return &pdfCanvas{
		pdf:        p,
		size:       size,
		background: color.NRGBAModel.Convert(background).(color.NRGBA),
	}
}

func (c *pdfCanvas) Size() geom.Size { return c.size }

func (c *pdfCanvas) ClearRect(r geom.Rect) {
	o := c.Offset()
	bg := c.background
	c.pdf.SetAlpha(1, "Normal")
	c.pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	c.pdf.Rect(r.X+o.X, r.Y+o.Y, r.W, r.H, "F")
}

func (c *pdfCanvas) Stroke(p geom.Path) {
	st := c.Current()
	if st.Glow {
		c.stroke(p, st, st.Width*2, glowAlpha)
	}
	c.stroke(p, st, st.Width, 1)
}

func (c *pdfCanvas) Fill(p geom.Path) {
	st := c.Current()
	col := nrgba(st.Color)
	c.pdf.SetAlpha(float64(col.A)/255, "Normal")
	c.pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
	c.trace(p)
	c.pdf.DrawPath("F")
}

func (c *pdfCanvas) stroke(p geom.Path, st render.Style, width, alpha float64) {
	col := nrgba(st.Color)
	c.pdf.SetAlpha(alpha*float64(col.A)/255, "Normal")
	c.pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
	c.pdf.SetLineWidth(width)
	if st.Round {
		c.pdf.SetLineCapStyle("round")
		c.pdf.SetLineJoinStyle("round")
	} else {
		c.pdf.SetLineCapStyle("butt")
		c.pdf.SetLineJoinStyle("miter")
	}
	c.trace(p)
	c.pdf.DrawPath("D")
}

// trace emits the path commands at the current offset
func (c *pdfCanvas) trace(p geom.Path) {
	o := c.Offset()
	for _, cmd := range p.Commands() {
		pt := cmd.P.Add(o)
		switch cmd.Op {
		case geom.OpMove:
			c.pdf.MoveTo(pt.X, pt.Y)
		case geom.OpLine:
			c.pdf.LineTo(pt.X, pt.Y)
		case geom.OpArc:
			// gofpdf sweeps counter-clockwise on the page, so the arc is
			// traced from its end back to its start and the pen is then
			// returned to the end.
			end := pt.Add(geom.V(math.Cos(cmd.End), math.Sin(cmd.End)).Scale(cmd.R))
			c.pdf.MoveTo(end.X, end.Y)
			c.pdf.ArcTo(pt.X, pt.Y, cmd.R, cmd.R, 0, -degrees(cmd.End), -degrees(cmd.Start))
			c.pdf.MoveTo(end.X, end.Y)
		case geom.OpClose:
			c.pdf.ClosePath()
		}
	}
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func nrgba(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
