package export

import (
	"bufio"
	"fmt"
	"io"

	"DriftBoard/internal/geom"
	"DriftBoard/internal/state"
)

// WriteText writes a plain listing of the bodies, one block per body
func WriteText(w io.Writer, bodies []*state.Body, size geom.Size) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "DriftBoard Export\n")
	fmt.Fprintf(bw, "=================\n\n")
	fmt.Fprintf(bw, "Canvas: %.0fx%.0f\n", size.W, size.H)
	fmt.Fprintf(bw, "Total bodies: %d\n\n", len(bodies))

	for i, b := range bodies {
		fmt.Fprintf(bw, "Body %d:\n", i+1)
		fmt.Fprintf(bw, "  ID: %s\n", b.ID)
		fmt.Fprintf(bw, "  Color: %s\n", b.Style.Color)
		fmt.Fprintf(bw, "  Width: %.1f\n", b.Style.Width)
		fmt.Fprintf(bw, "  Position: (%.2f, %.2f)\n", b.Pos.X, b.Pos.Y)
		fmt.Fprintf(bw, "  Size: %.2f x %.2f\n", b.Size.W, b.Size.H)
		fmt.Fprintf(bw, "  Velocity: (%.2f, %.2f)\n", b.Vel.X, b.Vel.Y)
		fmt.Fprintf(bw, "  Commands: %d\n", b.Path.Len())
		fmt.Fprintf(bw, "  Path: %s\n\n", b.Path)
	}
	return bw.Flush()
}
