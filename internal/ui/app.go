package ui

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"DriftBoard/internal/audio"
	"DriftBoard/internal/config"
	"DriftBoard/internal/export"
	"DriftBoard/internal/render"
	"DriftBoard/internal/sim"
)

const statusInterval = 250 * time.Millisecond

// RunApp opens the desktop window and blocks until it is closed. player may
// be nil.
func RunApp(cfg config.Config, world *sim.World, player *audio.Player) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	background := render.ColorOr(cfg.Render.Background, color.Black)
	board := NewBoardWidget(world, cfg.Tools.Settings, background, cfg.Render.Glow)
	board.SetFrameRate(cfg.Render.FPS)
	status := widget.NewLabel("Ready")

	var lastStatus time.Time
	board.OnFrame = func(st sim.Stats) {
		if player != nil {
			player.Frame(st.Collisions, st.WallHits)
		}
		if now := time.Now(); now.Sub(lastStatus) >= statusInterval {
			lastStatus = now
			status.SetText(statusText(st))
		}
	}
	board.OnClear = func() { status.SetText("Cleared") }

	onExport := func() {
		save := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, myWindow)
				return
			}
			if w == nil {
				return
			}
			exportTo(w, world, background, status)
		}, myWindow)
		save.SetFileName(fmt.Sprintf("driftboard-%s.%s", time.Now().Format("20060102-150405"), cfg.Export.Format))
		save.SetFilter(storage.NewExtensionFileFilter([]string{".pdf", ".txt"}))
		if dir, err := storage.ListerForURI(storage.NewFileURI(cfg.Export.Dir)); err == nil {
			save.SetLocation(dir)
		}
		save.Show()
	}

	toolbar := NewToolbar(board, ToolbarOptions{
		Palette:     cfg.Tools.Palette,
		MaxSize:     cfg.Tools.MaxSize,
		MaxVelocity: 10,
		OnExport:    onExport,
	})

	content := container.NewBorder(toolbar, status, nil, nil, board)
	myWindow.SetContent(content)
	myWindow.SetOnClosed(board.Stop)

	board.Start()
	myWindow.ShowAndRun()
}

func statusText(st sim.Stats) string {
	return fmt.Sprintf("Bodies: %d   Collisions: %d   Wall hits: %d", st.Bodies, st.Collisions, st.WallHits)
}

// exportTo writes a snapshot of the current frame to w in the format named by
// its extension
func exportTo(w fyne.URIWriteCloser, world *sim.World, background color.Color, status *widget.Label) {
	defer func() {
		if err := w.Close(); err != nil {
			log.Printf("[EXPORT] Error closing writer: %v", err)
		}
	}()

	f, err := export.ParseFormat(w.URI().Extension())
	if err != nil {
		log.Printf("[EXPORT] %v", err)
		status.SetText("Export failed: use .pdf or .txt")
		return
	}

	bodies := world.Bodies()
	if err := export.Write(w, f, bodies, world.Size(), background); err != nil {
		log.Printf("[EXPORT] Error writing %s: %v", w.URI(), err)
		status.SetText("Export failed")
		return
	}
	log.Printf("[EXPORT] Wrote %d bodies to %s", len(bodies), w.URI())
	status.SetText(fmt.Sprintf("Exported %d bodies", len(bodies)))
}
