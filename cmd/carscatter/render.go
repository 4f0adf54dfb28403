package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bebeshannu/datavis-a2/src/logging"
	"github.com/bebeshannu/datavis-a2/src/scene"
)

type renderOptions struct {
	out      string
	legend   string
	detail   string
	selected int
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the scatterplot (and optionally its legends) as PNG or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.out, "output", "o", "scatter.png", "Plot output file (.png or .svg)")
	cmd.Flags().StringVar(&opts.legend, "legend", "", "Optional legend output file (.png or .svg)")
	cmd.Flags().StringVar(&opts.detail, "detail", "", "Optional text file receiving the selected vehicle's details")
	cmd.Flags().IntVar(&opts.selected, "select", 0, "Index of the record to highlight")
	return cmd
}

// runRender renders headlessly. A failed load still writes the plot file, stamped with
// the error, puts the message in the detail file when one is requested, and fails.
func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions) error {
	format, err := scene.FormatFromPath(opts.out)
	if err != nil {
		return err
	}
	var legendFormat scene.Format
	if opts.legend != "" {
		if legendFormat, err = scene.FormatFromPath(opts.legend); err != nil {
			return err
		}
	}
	ds, stats, src, err := root.load(cmd.Context())
	if err != nil {
		logging.Errorf("load %s: %v", src, err)
		if werr := writeErrorImage(opts.out, root.cfg.Width, root.cfg.Height); werr != nil {
			logging.Warnf("%v", werr)
		}
		if opts.detail != "" {
			var p scene.TextPanel
			p.SetError(err.Error())
			if werr := writeDetail(opts.detail, &p); werr != nil {
				logging.Warnf("%v", werr)
			}
		}
		return err
	}

	chartOpts := scene.DefaultOptions()
	chartOpts.Width, chartOpts.Height = float64(root.cfg.Width), float64(root.cfg.Height)
	c := scene.New(ds, chartOpts)
	if len(ds) > 0 {
		if _, ok := c.Select(opts.selected); !ok {
			return fmt.Errorf("--select %d out of range [0,%d)", opts.selected, len(ds))
		}
	}

	s, err := scene.NewChartSurface(root.cfg.Width, root.cfg.Height, format)
	if err != nil {
		return err
	}
	c.Render(s)
	if err := saveSurface(opts.out, s); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d vehicles, %d rows skipped)\n", opts.out, stats.Kept, stats.Dropped())

	if opts.legend != "" {
		ls, err := scene.NewChartSurface(scene.LegendWidth, scene.LegendHeight, legendFormat)
		if err != nil {
			return err
		}
		c.RenderLegends(ls)
		if err := saveSurface(opts.legend, ls); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.legend)
	}
	if opts.detail != "" {
		var p scene.TextPanel
		c.ShowDetail(&p)
		if err := writeDetail(opts.detail, &p); err != nil {
			return err
		}
	}
	return nil
}

func saveSurface(path string, s *scene.ChartSurface) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create out dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := s.Save(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func writeDetail(path string, p *scene.TextPanel) error {
	if err := os.WriteFile(path, []byte(p.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// writeErrorImage leaves a PNG explaining the failure where the plot was expected. SVG
// outputs are skipped.
func writeErrorImage(path string, w, h int) error {
	if format, _ := scene.FormatFromPath(path); format != scene.FormatPNG {
		return nil
	}
	img := scene.StampMessage(scene.Blank(w, h), "Could not load vehicle data")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("png encode %s: %w", path, err)
	}
	return nil
}
