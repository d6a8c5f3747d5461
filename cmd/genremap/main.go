// Command genremap builds the podcast genre co-occurrence graph from a chart
// dump and answers path and ranking questions about it.
//
//	genremap path comedy true_crime
//	genremap top 10
//	genremap export --top 30 --format dot > genres.dot
//	genremap interactive
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
