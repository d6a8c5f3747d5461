package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/genremap/converters"
	"github.com/katalvlaran/genremap/query"
)

const (
	formatDOT  = "dot"
	formatJSON = "json"
)

func printPath(w io.Writer, src, dst string, p query.Path) {
	if !p.Found() {
		fmt.Fprintln(w, "No path found between those genres.")
		return
	}
	fmt.Fprintf(w, "\nShortest path between %s and %s (length %d): \n", src, dst, p.Hops)
	fmt.Fprintln(w, p.String())
}

func printTop(w io.Writer, n int, ranked []query.Ranked) {
	fmt.Fprintf(w, "\nTop %d most connected genres:\n", n)
	for _, r := range ranked {
		fmt.Fprintln(w, r.String())
	}
}

// writeExport renders the top-n subgraph (n <= 0: whole graph) in format,
// which must already be formatDOT or formatJSON.
func (a *app) writeExport(w io.Writer, e *query.Engine, n int, format string) error {
	g := e.Graph()
	if n > 0 {
		g = e.TopSubgraph(n)
	}

	switch format {
	case formatDOT:
		name := "genres"
		if n > 0 {
			name = fmt.Sprintf("top_%d_genres", n)
		}
		b, err := converters.MarshalDOT(g, name, converters.WithStripPrefix(a.cfg.Dataset.LabelPrefix))
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case formatJSON:
		return converters.WriteJSON(w, g)
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatDOT, formatJSON)
	}
}
