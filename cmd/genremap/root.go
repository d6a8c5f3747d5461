package main

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/genremap/builder"
	"github.com/katalvlaran/genremap/config"
	"github.com/katalvlaran/genremap/dataset"
	"github.com/katalvlaran/genremap/query"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	in       io.Reader
	out, err io.Writer

	configPath  string
	datasetPath string
	logLevel    string

	cfg      config.Config
	log      *zap.Logger
	registry *prometheus.Registry

	engine        *query.Engine
	datasetReport dataset.Report
	ingestReport  builder.Report
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, err: errOut, log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "genremap",
		Short:         "Podcast genre co-occurrence graph",
		Long:          `genremap builds an undirected graph of podcast genres, weighted by how many shows carry both genres, and queries it.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.datasetPath, "dataset", "", "record file (overrides dataset.path)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides log.level)")

	root.AddCommand(
		newPathCmd(a),
		newTopCmd(a),
		newExportCmd(a),
		newStatsCmd(a),
		newInteractiveCmd(a),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("dataset") {
		cfg.Dataset.Path = a.datasetPath
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	zc, err := cfg.ZapConfig()
	if err != nil {
		return err
	}
	logger := newLogger(zc, a.err)
	a.cfg = cfg
	a.log = logger.Named("genremap")
	a.registry = prometheus.NewRegistry()

	return nil
}

// loadEngine reads the dataset, builds the graph and wraps it in a query
// engine. Subsequent calls reuse the engine.
func (a *app) loadEngine(ctx context.Context) (*query.Engine, error) {
	if a.engine != nil {
		return a.engine, nil
	}

	records, rep, err := dataset.LoadFile(a.cfg.Dataset.Path, a.log.Named("dataset"))
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	a.datasetReport = rep

	metrics, err := builder.NewMetrics(a.registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	opts := append(a.cfg.BuilderOptions(),
		builder.WithLogger(a.log.Named("builder")),
		builder.WithMetrics(metrics),
	)
	b := builder.New(opts...)
	g, err := b.IngestContext(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	a.ingestReport = b.Report()

	qopts := []query.Option{query.WithLogger(a.log.Named("query"))}
	if a.cfg.Query.PathCacheSize > 0 {
		qopts = append(qopts, query.WithPathCache(a.cfg.Query.PathCacheSize))
	}
	if a.engine, err = query.New(g, qopts...); err != nil {
		return nil, err
	}
	a.log.Info("graph ready",
		zap.String("dataset", a.cfg.Dataset.Path),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return a.engine, nil
}
