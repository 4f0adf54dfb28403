package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/bebeshannu/datavis-a2/cmd/carviewer/uihelpers"
	"github.com/bebeshannu/datavis-a2/src/config"
	"github.com/bebeshannu/datavis-a2/src/logging"
	"github.com/bebeshannu/datavis-a2/src/scene"
	"github.com/bebeshannu/datavis-a2/src/vehicles"
)

type viewer struct {
	app    fyne.App
	window fyne.Window
	cfg    config.Config
	source vehicles.Source

	chart   *scene.Chart
	plot    *canvas.Image
	legends *canvas.Image
	overlay *markOverlay
	detail  *detailView
	status  *widget.Label
	srcLbl  *widget.Label
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	var fileFlag, urlFlag, levelFlag string
	flag.StringVar(&fileFlag, "file", "", "Path to the vehicle table (.csv, .tsv or .xlsx)")
	flag.StringVar(&urlFlag, "url", "", "Base URL the table path is resolved against")
	flag.StringVar(&levelFlag, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	flag.Parse()
	cfg.LogLevel = levelFlag
	if urlFlag != "" {
		cfg.DataURL = urlFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	logging.SetLogLevel(cfg.LogLevel)

	a := app.NewWithID("com.carviz.viewer")
	w := a.NewWindow("Vehicle Scatterplot")
	w.Resize(fyne.NewSize(1250, 720))

	// -file wins, then CARVIZ_DATA, then the last file opened in the viewer
	if fileFlag != "" {
		cfg.DataPath = fileFlag
	} else if _, set := os.LookupEnv("CARVIZ_DATA"); !set && cfg.DataURL == "" {
		if last := a.Preferences().String("lastFile"); last != "" {
			if _, err := os.Stat(last); err == nil {
				cfg.DataPath = last
			}
		}
	}

	v := newViewer(a, w, cfg)
	w.SetContent(v.layout())
	v.load(cfg.Source())
	w.ShowAndRun()
}

func newViewer(a fyne.App, w fyne.Window, cfg config.Config) *viewer {
	v := &viewer{app: a, window: w, cfg: cfg}
	v.plot = canvas.NewImageFromImage(scene.Blank(cfg.Width, cfg.Height))
	v.plot.FillMode = canvas.ImageFillContain
	cw, ch := uihelpers.ComputeChartDimensions(w.Canvas().Size().Width, float32(cfg.Width), float32(cfg.Height))
	v.plot.SetMinSize(fyne.NewSize(cw, ch))
	v.legends = canvas.NewImageFromImage(scene.Blank(scene.LegendWidth, scene.LegendHeight))
	v.legends.FillMode = canvas.ImageFillContain
	v.legends.SetMinSize(fyne.NewSize(scene.LegendWidth, scene.LegendHeight))
	v.overlay = newMarkOverlay(v)
	v.detail = newDetailView()
	v.status = widget.NewLabel("")
	v.srcLbl = widget.NewLabel("")
	return v
}

func (v *viewer) layout() fyne.CanvasObject {
	openBtn := widget.NewButton("Open…", v.openFileDialog)
	top := container.NewBorder(nil, nil, nil, openBtn, v.srcLbl)
	plot := container.NewStack(v.plot, v.overlay)
	left := container.NewBorder(nil, container.NewVBox(v.legends, v.status), nil, nil, plot)
	right := container.NewVScroll(v.detail.Object())
	split := container.NewHSplit(left, right)
	split.Offset = 0.75
	return container.NewBorder(top, nil, nil, nil, split)
}

// load fetches src once in the background and hands the result to the UI goroutine.
func (v *viewer) load(src vehicles.Source) {
	v.source = src
	v.srcLbl.SetText(uihelpers.TruncatePath(src.String(), 80))
	v.status.SetText("Loading…")
	v.detail.Clear()
	timeout := v.cfg.FetchTimeout
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		ds, stats, err := vehicles.Load(ctx, src)
		fyne.Do(func() {
			if src != v.source {
				// superseded by a later load
				return
			}
			if err != nil {
				v.fail(err)
				return
			}
			v.show(ds, stats)
		})
	}()
}

func (v *viewer) show(ds vehicles.Dataset, stats vehicles.Stats) {
	opts := scene.DefaultOptions()
	opts.Width, opts.Height = float64(v.cfg.Width), float64(v.cfg.Height)
	c := scene.New(ds, opts)
	c.OnSelect = func(vehicles.Vehicle) {
		c.ShowDetail(v.detail)
		v.redraw()
	}
	v.chart = c
	v.status.SetText(fmt.Sprintf("%d vehicles plotted, %d rows skipped", stats.Kept, stats.Dropped()))
	c.ShowDetail(v.detail)
	v.redraw()
	v.redrawLegends()
}

// fail puts the viewer in its terminal error state.
func (v *viewer) fail(err error) {
	logging.Errorf("load %s: %v", v.source, err)
	v.chart = nil
	v.detail.SetError(err.Error())
	v.status.SetText("")
	v.setImage(v.plot, scene.StampMessage(scene.Blank(v.cfg.Width, v.cfg.Height), "Could not load vehicle data"))
	v.setImage(v.legends, scene.Blank(scene.LegendWidth, scene.LegendHeight))
	dialog.ShowError(err, v.window)
}

func (v *viewer) selectRecord(i int) {
	if v.chart == nil {
		return
	}
	if rec, ok := v.chart.Select(i); ok {
		logging.Debugf("selected row %d: %s", rec.Row, rec.Name)
	}
}

func (v *viewer) redraw() {
	if v.chart == nil {
		return
	}
	s, err := scene.NewChartSurface(v.cfg.Width, v.cfg.Height, scene.FormatPNG)
	if err != nil {
		logging.Errorf("plot surface: %v", err)
		return
	}
	v.chart.Render(s)
	v.showSurface(v.plot, s)
}

func (v *viewer) redrawLegends() {
	if v.chart == nil {
		return
	}
	s, err := scene.NewChartSurface(scene.LegendWidth, scene.LegendHeight, scene.FormatPNG)
	if err != nil {
		logging.Errorf("legend surface: %v", err)
		return
	}
	v.chart.RenderLegends(s)
	v.showSurface(v.legends, s)
}

func (v *viewer) showSurface(dst *canvas.Image, s *scene.ChartSurface) {
	img, err := s.Image()
	if err != nil {
		logging.Errorf("render: %v", err)
		return
	}
	v.setImage(dst, img)
}

func (v *viewer) setImage(dst *canvas.Image, img image.Image) {
	dst.Image = img
	dst.Refresh()
	v.overlay.Refresh()
}

func (v *viewer) openFileDialog() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()
		v.app.Preferences().SetString("lastFile", path)
		v.load(vehicles.FileSource{Path: path})
	}, v.window)
	d.Show()
}
