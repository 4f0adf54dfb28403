package main

import (
	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/bebeshannu/datavis-a2/src/scene"
)

// detailView is the details column. It implements scene.DetailPanel and must only be
// touched from the UI goroutine.
type detailView struct {
	title  *widget.Label
	form   *fyne.Container
	status *widget.Label
	box    *fyne.Container
}

func newDetailView() *detailView {
	d := &detailView{
		title:  widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		form:   container.New(layout.NewGridLayoutWithColumns(2)),
		status: widget.NewLabel(""),
	}
	d.status.Wrapping = fyne.TextWrapWord
	d.box = container.NewVBox(d.title, d.form, d.status)
	return d
}

func (d *detailView) Object() fyne.CanvasObject { return d.box }

func (d *detailView) Clear() {
	d.title.SetText("")
	d.form.Objects = nil
	d.form.Refresh()
	d.status.SetText("No vehicle selected")
}

func (d *detailView) SetFields(title string, fields []scene.Field) {
	d.title.SetText(title)
	objs := make([]fyne.CanvasObject, 0, 2*len(fields))
	for _, f := range fields {
		objs = append(objs,
			widget.NewLabelWithStyle(f.Label, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabel(f.Value))
	}
	d.form.Objects = objs
	d.form.Refresh()
	d.status.SetText("")
}

func (d *detailView) SetError(msg string) {
	d.title.SetText("Error")
	d.form.Objects = nil
	d.form.Refresh()
	d.status.SetText(msg)
}

var _ scene.DetailPanel = (*detailView)(nil)
