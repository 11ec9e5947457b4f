package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/internal/config"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/internal/logging"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/internal/metrics"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/internal/shell"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/internal/store"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// flags holds the persistent command-line flags. A flag overrides the
// config file only when it was set explicitly.
type flags struct {
	configPath  string
	dataFile    string
	trace       bool
	logLevel    string
	logFormat   string
	watch       bool
	metricsAddr string
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "graphops",
		Short: "Interactive weighted graph shell with BFS, DFS and UCS",
		Long: `graphops keeps an undirected weighted graph in memory, persists it as
JSON and searches it with breadth-first, depth-first and uniform-cost search.

Without a subcommand it starts the interactive shell.

Examples:
  graphops
  graphops --trace --data ./city.json
  graphops exec -- add_edge A B 5
  graphops exec -- ucs A D`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			eg, egCtx := errgroup.WithContext(ctx)
			a, err := setup(egCtx, cmd, &f, out, errOut)
			if err != nil {
				return err
			}

			eg.Go(func() error {
				defer a.close()
				if err := a.shell.Run(egCtx, in); err != nil && !errors.Is(err, context.Canceled) {
					return err
				}

				return nil
			})
			if a.metricsErr != nil {
				eg.Go(func() error { return <-a.metricsErr })
			}

			return eg.Wait()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", config.DefaultPath, "path to the YAML config file")
	pf.StringVar(&f.dataFile, "data", config.DefaultDataFile, "JSON file the graph is saved to and loaded from")
	pf.BoolVar(&f.trace, "trace", false, "print the search trace table before each result")
	pf.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	pf.StringVar(&f.logFormat, "log-format", logging.FormatConsole, "log format (console or json)")
	pf.BoolVar(&f.watch, "watch", false, "reload the graph when the data file changes on disk")
	pf.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics at this address, e.g. :9090")

	root.AddCommand(newExecCmd(&f, out, errOut), newVersionCmd(out))

	return root
}

func newExecCmd(f *flags, out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "exec -- COMMAND [ARGS...]",
		Short: "Run a single shell command and save the graph when autosave is on",
		Example: `  graphops exec -- add_node A B:3 C:5
  graphops exec -- bfs A C`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := setup(ctx, cmd, f, out, errOut)
			if err != nil {
				return err
			}
			defer a.close()

			exited, err := a.shell.Exec(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if a.cfg.Autosave && !exited {
				return a.store.Save(a.graph)
			}

			return nil
		},
	}
}

func newVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the graphops version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(out, "graphops", version)
		},
	}
}

// app is one wired graphops session.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	graph  *core.Graph
	store  *store.Store
	shell  *shell.Shell

	// metricsErr yields the metrics server's terminal error and closes
	// when the server stops. nil when metrics are off.
	metricsErr <-chan error

	cancel context.CancelFunc
	stops  []func()
}

// setup loads the configuration, applies flag overrides and wires the
// graph, store, metrics and shell.
func setup(ctx context.Context, cmd *cobra.Command, f *flags, out, errOut io.Writer) (*app, error) {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return nil, err
	}

	root, err := logging.New(errOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	logger := logging.Component(root, "graphops")

	ctx, cancel := context.WithCancel(ctx)
	a := &app{
		cfg:    cfg,
		logger: logger,
		graph:  core.NewGraph(),
		store:  store.New(cfg.DataFile, logging.Component(root, "store")),
		cancel: cancel,
	}
	if _, err := a.store.Load(a.graph); err != nil {
		a.close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.New(reg)

	a.shell = shell.New(a.graph, a.store, out,
		shell.WithPrompt(cfg.Prompt),
		shell.WithAutosave(cfg.Autosave),
		shell.WithTrace(cfg.Trace),
		shell.WithLogger(logging.Component(root, "shell")),
		shell.WithMetrics(m),
	)

	if cfg.MetricsAddr != "" {
		addr, errc, err := metrics.Serve(ctx, cfg.MetricsAddr, reg, logging.Component(root, "metrics"))
		if err != nil {
			a.close()
			return nil, err
		}
		a.metricsErr = errc
		logger.Debug().Str("addr", addr.String()).Msg("metrics enabled")
	}

	if cfg.Watch {
		stop, err := a.store.Watch(ctx, a.graph, a.shell.Reloaded)
		if err != nil {
			a.close()
			return nil, err
		}
		a.stops = append(a.stops, stop)
	}

	logger.Debug().
		Str("data_file", cfg.DataFile).
		Int("nodes", a.graph.NodeCount()).
		Bool("autosave", cfg.Autosave).
		Bool("watch", cfg.Watch).
		Msg("session ready")

	return a, nil
}

func (a *app) close() {
	for _, stop := range a.stops {
		stop()
	}
	a.cancel()
}

// loadConfig reads the config file and lays explicitly set flags on top.
// A config path given on the command line must exist.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	fl := cmd.Flags()
	cfg, err := config.Load(f.configPath, fl.Changed("config"))
	if err != nil {
		return nil, err
	}

	if fl.Changed("data") {
		cfg.DataFile = f.dataFile
	}
	if fl.Changed("trace") {
		cfg.Trace = f.trace
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if fl.Changed("watch") {
		cfg.Watch = f.watch
	}
	if fl.Changed("metrics-addr") {
		cfg.MetricsAddr = f.metricsAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
