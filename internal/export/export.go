// Package export writes snapshots of the board. A snapshot is a one-way
// picture of the current frame; nothing reads it back.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"DriftBoard/internal/geom"
	"DriftBoard/internal/state"
)

// Format is a snapshot file format, named by its extension
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatText Format = "txt"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts a format name or extension, with or without the dot
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatPDF, FormatText:
		return f, nil
	case "text":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Filename builds a timestamped snapshot path inside dir
func Filename(dir string, f Format, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("driftboard-%s.%s", now.Format("20060102-150405"), f))
}

// Write renders a snapshot in format f to w
func Write(w io.Writer, f Format, bodies []*state.Body, size geom.Size, background color.Color) error {
	switch f {
	case FormatPDF:
		return WritePDF(w, bodies, size, background)
	case FormatText:
		return WriteText(w, bodies, size)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Save writes a snapshot to path, choosing the format from its extension
func Save(path string, bodies []*state.Body, size geom.Size, background color.Color) error {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := Write(file, f, bodies, size, background); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	log.Printf("[EXPORT] Wrote %d bodies to %s", len(bodies), path)
	return nil
}
