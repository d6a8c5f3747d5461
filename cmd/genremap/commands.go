package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path FROM TO",
		Short: "Shortest path between two genres (fewest hops)",
		Long: `Find the shortest chain of co-occurring genres between FROM and TO.
Genres are upper-cased and qualified with the label prefix, so "true_crime"
matches PODCASTSERIES_TRUE_CRIME.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			src, dst := a.cfg.QualifyLabel(args[0]), a.cfg.QualifyLabel(args[1])
			p, err := e.ShortestPathContext(cmd.Context(), src, dst)
			if err != nil {
				return err
			}
			printPath(cmd.OutOrStdout(), src, dst, p)
			return nil
		},
	}
}

func newTopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "top [N]",
		Short: "Most connected genres by number of distinct neighbors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.Query.DefaultTop
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid N %q: %w", args[0], err)
				}
				n = v
			}
			e, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			printTop(cmd.OutOrStdout(), n, e.TopConnected(n))
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var (
		top    int
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the graph (or its top-N subgraph) as Graphviz DOT or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != formatDOT && format != formatJSON {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatDOT, formatJSON)
			}
			e, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return a.writeExport(cmd.OutOrStdout(), e, top, format)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := a.writeExport(f, e, top, format); err != nil {
				f.Close()
				return err
			}
			a.log.Info("graph exported", zap.String("path", output), zap.String("format", format), zap.Int("top", top))
			return f.Close()
		},
	}
	cmd.Flags().IntVar(&top, "top", 30, "keep only the N most connected genres (0 = all)")
	cmd.Flags().StringVar(&format, "format", formatDOT, "output format: dot|json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Dataset, ingestion and graph statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			d, r, s := a.datasetReport, a.ingestReport, e.Graph().Stats()
			fmt.Fprintf(w, "dataset:  %s\n", a.cfg.Dataset.Path)
			fmt.Fprintf(w, "records:  total=%d loaded=%d skipped=%d malformed=%d\n",
				d.Total, d.Loaded, d.Skipped, d.Malformed)
			fmt.Fprintf(w, "ingest:   policy=%s ingested=%d empty=%d skipped=%d pairs=%d\n",
				a.cfg.Ingest.Policy, r.Ingested, r.Empty, r.Skipped, r.Pairs)
			fmt.Fprintf(w, "graph:    vertices=%d edges=%d total_weight=%d isolated=%d max_degree=%d\n",
				s.VertexCount, s.EdgeCount, s.TotalWeight, s.IsolatedCount, s.MaxDegree)

			families, err := a.registry.Gather()
			if err != nil {
				return fmt.Errorf("gather metrics: %w", err)
			}
			for _, mf := range families {
				for _, m := range mf.GetMetric() {
					if c := m.GetCounter(); c != nil {
						fmt.Fprintf(w, "metric:   %s %g\n", mf.GetName(), c.GetValue())
					}
				}
			}
			return nil
		},
	}
}
