// Package dialogs provides application dialogs.
package dialogs

import (
	"fmt"
	"strconv"
	"strings"

	"spiralgen/internal/export"
	"spiralgen/internal/inductance"
	"spiralgen/internal/spiral"
	"spiralgen/internal/via"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	noEstimate  = "Estimated L: --- nH"
	previewSize = 240
)

// SpiralDialog collects coil parameters and shows a live inductance
// estimate and outline preview while they are edited.
type SpiralDialog struct {
	initial spiral.Params
	window  fyne.Window

	shapeSelect  *widget.Select
	turnsEntry   *widget.Entry
	widthEntry   *widget.Entry
	spacingEntry *widget.Entry
	radiusEntry  *widget.Entry
	viaCheck     *widget.Check

	inductanceLabel *widget.Label
	preview         *fynecanvas.Image

	// Callbacks
	onGenerate func(p spiral.Params, centerVia bool)

	// OnEdit is called with every valid set of values while the form is edited.
	OnEdit func(p spiral.Params, centerVia bool)
}

// NewSpiralDialog creates a coil dialog pre-filled with initial.
func NewSpiralDialog(initial spiral.Params, window fyne.Window, onGenerate func(spiral.Params, bool)) *SpiralDialog {
	d := &SpiralDialog{
		initial:    initial,
		window:     window,
		onGenerate: onGenerate,
	}
	d.createWidgets()
	return d
}

// Show displays the dialog.
func (d *SpiralDialog) Show() {
	dlg := dialog.NewCustomConfirm(
		"Spiral Inductor Generator",
		"Generate",
		"Cancel",
		d.createContent(),
		func(ok bool) {
			if !ok {
				return
			}
			p, centerVia, err := d.Values()
			if err != nil {
				dialog.ShowError(err, d.window)
				return
			}
			if d.onGenerate != nil {
				d.onGenerate(p, centerVia)
			}
		},
		d.window,
	)
	dlg.Resize(fyne.NewSize(420, 560))
	dlg.Show()
}

func (d *SpiralDialog) createWidgets() {
	d.shapeSelect = widget.NewSelect(spiral.ShapeNames(), nil)
	d.shapeSelect.SetSelected(d.initial.Shape.String())

	d.turnsEntry = newNumberEntry(d.initial.Turns)
	d.widthEntry = newNumberEntry(d.initial.TrackWidth)
	d.spacingEntry = newNumberEntry(d.initial.Spacing)
	d.radiusEntry = newNumberEntry(d.initial.InnerRadius)

	d.viaCheck = widget.NewCheck("Add Center Via", nil)

	d.inductanceLabel = widget.NewLabelWithStyle(noEstimate, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	d.preview = &fynecanvas.Image{FillMode: fynecanvas.ImageFillContain}
	d.preview.SetMinSize(fyne.NewSize(previewSize, previewSize))

	// Hook change handlers last so initial SetText calls don't fire them.
	d.shapeSelect.OnChanged = func(string) { d.refresh() }
	for _, e := range []*widget.Entry{d.turnsEntry, d.widthEntry, d.spacingEntry, d.radiusEntry} {
		e.OnChanged = func(string) { d.refresh() }
	}
	d.viaCheck.OnChanged = func(bool) { d.refresh() }
	d.refresh()
}

func (d *SpiralDialog) createContent() fyne.CanvasObject {
	form := widget.NewForm(
		widget.NewFormItem("Shape", d.shapeSelect),
		widget.NewFormItem("Number of Turns", d.turnsEntry),
		widget.NewFormItem("Track Width (mm)", d.widthEntry),
		widget.NewFormItem("Track Spacing (mm)", d.spacingEntry),
		widget.NewFormItem("Inner Radius (mm)", d.radiusEntry),
		widget.NewFormItem("Options", d.viaCheck),
	)

	return container.NewVBox(
		form,
		widget.NewSeparator(),
		d.inductanceLabel,
		container.NewCenter(d.preview),
	)
}

// Values parses the form. It returns an error naming the first field that
// is not a number or is out of range.
func (d *SpiralDialog) Values() (spiral.Params, bool, error) {
	shape, err := spiral.ParseShape(d.shapeSelect.Selected)
	if err != nil {
		return spiral.Params{}, false, err
	}

	fields := []struct {
		name  string
		entry *widget.Entry
		dst   *float64
	}{
		{"turns", d.turnsEntry, new(float64)},
		{"track width", d.widthEntry, new(float64)},
		{"track spacing", d.spacingEntry, new(float64)},
		{"inner radius", d.radiusEntry, new(float64)},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.entry.Text), 64)
		if err != nil {
			return spiral.Params{}, false, fmt.Errorf("%s: %q is not a number", f.name, f.entry.Text)
		}
		*f.dst = v
	}

	p := spiral.Params{
		Shape:       shape,
		Turns:       *fields[0].dst,
		TrackWidth:  *fields[1].dst,
		Spacing:     *fields[2].dst,
		InnerRadius: *fields[3].dst,
	}
	if err := p.Validate(); err != nil {
		return spiral.Params{}, false, err
	}
	return p, d.viaCheck.Checked, nil
}

// SetCenterVia sets the center via checkbox.
func (d *SpiralDialog) SetCenterVia(on bool) {
	d.viaCheck.SetChecked(on)
}

// Estimate returns the label text currently shown.
func (d *SpiralDialog) Estimate() string {
	return d.inductanceLabel.Text
}

// refresh recomputes the estimate and preview from the current form.
func (d *SpiralDialog) refresh() {
	p, centerVia, err := d.Values()
	if err != nil {
		d.inductanceLabel.SetText(noEstimate)
		d.preview.Image = nil
		d.preview.Refresh()
		return
	}
	d.inductanceLabel.SetText(inductance.FromParams(p).String())
	if d.OnEdit != nil {
		d.OnEdit(p, centerVia)
	}

	drawing, err := export.NewDrawing(p, centerVia, via.DefaultParams())
	if err != nil {
		return
	}
	opts := export.DefaultOptions()
	opts.MaxPixels = previewSize * 2
	if img, err := export.Render(drawing, opts); err == nil {
		d.preview.Image = img
		d.preview.Refresh()
	}
}

func newNumberEntry(v float64) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.FormatFloat(v, 'g', -1, 64))
	return e
}
