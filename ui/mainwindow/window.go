// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"

	"spiralgen/internal/app"
	"spiralgen/internal/board"
	"spiralgen/internal/export"
	"spiralgen/internal/inductance"
	"spiralgen/internal/spiral"
	"spiralgen/internal/version"
	"spiralgen/ui/dialogs"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	preview   *fynecanvas.Image
	summary   *widget.Label
	statusBar *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State) *MainWindow {
	win := fyneApp.NewWindow("Spiral Inductor Generator")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.preview = &fynecanvas.Image{FillMode: fynecanvas.ImageFillContain}
	mw.preview.SetMinSize(fyne.NewSize(400, 400))

	mw.summary = widget.NewLabel("No coil placed")
	mw.statusBar = widget.NewLabel("Ready")

	toolbar := container.NewHBox(
		widget.NewButton("New Coil...", mw.onNewCoil),
		widget.NewButton("Export...", mw.onExport),
	)

	content := container.NewBorder(
		toolbar,                           // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		container.NewPadded(mw.summary),   // right
		mw.preview,                        // center
	)

	mw.SetContent(content)
	mw.Resize(fyne.NewSize(800, 560))
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Coil...", mw.onNewCoil),
		fyne.NewMenuItem("Export...", mw.onExport),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

// setupEventHandlers subscribes to application state events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventParamsChanged, func(data interface{}) {
		p := data.(spiral.Params)
		mw.updateStatus(fmt.Sprintf("Editing %s, %g turns: %s", p.Shape, p.Turns, inductance.FromParams(p)))
	})
	mw.state.On(app.EventCoilPlaced, func(data interface{}) {
		layout := data.(*board.Layout)
		mw.showLayout(layout)
	})
}

func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) showLayout(layout *board.Layout) {
	_, est := mw.state.Placed()
	b := layout.Bounds()

	text := fmt.Sprintf("%s, %g turns\n%d tracks on %s\n%.3f x %.3f mm\n%s",
		layout.Params.Shape, layout.Params.Turns,
		len(layout.Tracks), layout.Options.Layer,
		b.Width, b.Height, est)
	if v := layout.Via; v != nil {
		text += fmt.Sprintf("\nVia at (%.3f, %.3f) mm",
			board.ToMM(v.Position.X), board.ToMM(v.Position.Y))
	}
	mw.summary.SetText(text)

	img, err := export.Render(export.FromLayout(layout), export.DefaultOptions())
	if err != nil {
		mw.updateStatus(fmt.Sprintf("Preview failed: %v", err))
		return
	}
	mw.preview.Image = img
	mw.preview.Refresh()
}

// Menu action handlers

func (mw *MainWindow) onNewCoil() {
	p, centerVia := mw.state.Coil()
	dlg := dialogs.NewSpiralDialog(p, mw.Window, func(p spiral.Params, centerVia bool) {
		layout, err := mw.state.Generate(p, centerVia)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		log.Printf("Placed %s spiral: %d tracks, %.4f mm", p.Shape, len(layout.Tracks), layout.TrackLength())
		mw.updateStatus(fmt.Sprintf("Placed %d tracks", len(layout.Tracks)))
	})
	dlg.SetCenterVia(centerVia)
	dlg.OnEdit = mw.state.SetParams
	dlg.Show()
}

func (mw *MainWindow) onExport() {
	layout, _ := mw.state.Placed()
	if layout == nil {
		dialog.ShowInformation("Export", "Generate a coil first.", mw.Window)
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := export.WriteFile(path, export.FromLayout(layout), export.DefaultOptions()); err != nil {
			dialog.ShowError(fmt.Errorf("export %s: %w", path, err), mw.Window)
			return
		}
		log.Printf("Exported %s", path)
		mw.updateStatus(fmt.Sprintf("Exported %s", path))
	}, mw.Window)
	save.SetFileName("spiral.svg")
	save.SetFilter(storage.NewExtensionFileFilter([]string{".svg", ".dxf", ".png", ".tif", ".tiff"}))
	save.Show()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About", version.String(), mw.Window)
}
