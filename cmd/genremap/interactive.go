package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/genremap/query"
)

const menu = `
 ==== Podcast Genre Network Menu =====
1. Find shortest path between two genres
2. Show most connected genres
3. Export graph (DOT)
4. Quit`

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Numbered menu for path, ranking and export queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			return a.runMenu(cmd.Context(), e, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runMenu loops over the menu until "4" or end of input.
func (a *app) runMenu(ctx context.Context, e *query.Engine, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	ask := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(out, menu)
		choice, ok := ask("Enter your choice (1-4): ")
		if !ok {
			fmt.Fprintln(out)
			return sc.Err()
		}

		switch choice {
		case "1":
			from, ok := ask("Enter starting genre (e.g., COMEDY): ")
			if !ok {
				return sc.Err()
			}
			to, ok := ask("Enter destination genre (e.g., TRUE_CRIME): ")
			if !ok {
				return sc.Err()
			}
			src, dst := a.cfg.QualifyLabel(from), a.cfg.QualifyLabel(to)
			printPath(out, src, dst, e.ShortestPath(src, dst))

		case "2":
			s, ok := ask("How many top genres do you want to show? ")
			if !ok {
				return sc.Err()
			}
			n, err := strconv.Atoi(s)
			if err != nil {
				fmt.Fprintln(out, "Please enter a valid number.")
				continue
			}
			printTop(out, n, e.TopConnected(n))

		case "3":
			s, ok := ask("How many top genres do you want to include in the export? ")
			if !ok {
				return sc.Err()
			}
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				fmt.Fprintln(out, "Please enter a valid number.")
				continue
			}
			if err := a.writeExport(out, e, n, formatDOT); err != nil {
				a.log.Warn("export failed", zap.Error(err))
				fmt.Fprintf(out, "Could not export graph %v\n", err)
			}

		case "4":
			fmt.Fprintln(out, "Okay! Goodbye!")
			return nil

		default:
			fmt.Fprintln(out, "Invalid choice. Please enter a number between 1 and 4.")
		}
	}
}
