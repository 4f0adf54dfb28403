// Command carscatter renders the vehicle scatterplot without a window and inspects the
// loaded dataset.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/bebeshannu/datavis-a2/src/config"
	"github.com/bebeshannu/datavis-a2/src/logging"
	"github.com/bebeshannu/datavis-a2/src/vehicles"
)

type rootOptions struct {
	cfg      config.Config
	dataPath string
	dataURL  string
	logLevel string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	opts := &rootOptions{cfg: cfg}
	root := &cobra.Command{
		Use:          "carscatter",
		Short:        "Render and inspect the vehicle price/horsepower scatterplot",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.dataPath != "" {
				opts.cfg.DataPath = opts.dataPath
			}
			if opts.dataURL != "" {
				opts.cfg.DataURL = opts.dataURL
			}
			opts.cfg.LogLevel = opts.logLevel
			if err := opts.cfg.Validate(); err != nil {
				return err
			}
			logging.SetLogLevel(opts.cfg.LogLevel)
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.dataPath, "data", "", "Vehicle table path (default $CARVIZ_DATA or "+vehicles.DefaultLocation+")")
	pf.StringVar(&opts.dataURL, "url", "", "Base URL the data path is resolved against")
	pf.StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")

	root.AddCommand(newRenderCmd(opts), newInspectCmd(opts))
	return root
}

// load reads the configured source once, bounded by the fetch timeout.
func (o *rootOptions) load(ctx context.Context) (vehicles.Dataset, vehicles.Stats, vehicles.Source, error) {
	src := o.cfg.Source()
	ctx, cancel := context.WithTimeout(ctx, o.cfg.FetchTimeout)
	defer cancel()
	ds, stats, err := vehicles.Load(ctx, src)
	return ds, stats, src, err
}
