package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genremap/converters"
)

// chart: COMEDY-NEWS, NEWS-POLITICS (x2), POLITICS-HISTORY, ARTS alone.
const chart = `[
  {"title": "a", "genres": ["PODCASTSERIES_COMEDY", "PODCASTSERIES_NEWS"], "country": "US"},
  {"title": "b", "genres": ["PODCASTSERIES_NEWS", "PODCASTSERIES_POLITICS"], "country": "US"},
  {"title": "c", "genres": ["PODCASTSERIES_POLITICS", "PODCASTSERIES_NEWS"], "country": "US"},
  {"title": "d", "genres": ["PODCASTSERIES_POLITICS", "PODCASTSERIES_HISTORY"], "country": "US"},
  {"title": "e", "genres": ["PODCASTSERIES_ARTS"], "country": "US"},
  {"title": "f", "genres": "broken", "country": "US"}
]`

func writeChart(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.json")
	require.NoError(t, os.WriteFile(path, []byte(chart), 0o600))
	return path
}

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPathCmd(t *testing.T) {
	ds := writeChart(t)

	out, _, err := run(t, "", "--dataset", ds, "path", "comedy", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "(length 3)")
	assert.Contains(t, out, "PODCASTSERIES_COMEDY --> PODCASTSERIES_NEWS --> PODCASTSERIES_POLITICS --> PODCASTSERIES_HISTORY")

	out, _, err = run(t, "", "--dataset", ds, "path", "comedy", "arts")
	require.NoError(t, err)
	assert.Equal(t, "No path found between those genres.\n", out)

	out, _, err = run(t, "", "--dataset", ds, "path", "comedy", "unknown")
	require.NoError(t, err)
	assert.Equal(t, "No path found between those genres.\n", out)

	_, _, err = run(t, "", "--dataset", ds, "path", "comedy")
	require.Error(t, err)
}

func TestTopCmd(t *testing.T) {
	ds := writeChart(t)
	out, _, err := run(t, "", "--dataset", ds, "top", "2")
	require.NoError(t, err)
	assert.Equal(t,
		"\nTop 2 most connected genres:\n"+
			"PODCASTSERIES_NEWS: connected to 2 genres\n"+
			"PODCASTSERIES_POLITICS: connected to 2 genres\n",
		out)

	_, _, err = run(t, "", "--dataset", ds, "top", "many")
	require.Error(t, err)
}

func TestExportCmd(t *testing.T) {
	ds := writeChart(t)

	out, _, err := run(t, "", "--dataset", ds, "export", "--top", "3", "--format", "json")
	require.NoError(t, err)
	var doc converters.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Nodes, 3)

	out, _, err = run(t, "", "--dataset", ds, "export", "--top", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "graph genres {")
	assert.Contains(t, out, "label=ARTS")

	file := filepath.Join(t.TempDir(), "g.dot")
	_, _, err = run(t, "", "--dataset", ds, "export", "-o", file)
	require.NoError(t, err)
	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), "top_30_genres")

	_, _, err = run(t, "", "--dataset", ds, "export", "--format", "png")
	require.Error(t, err)
}

func TestExportCmd_FormatCase(t *testing.T) {
	ds := writeChart(t)
	cases := []struct {
		format string
		want   string
	}{
		{"DOT", "graph top_2_genres {"},
		{"Dot", "graph top_2_genres {"},
		{"JSON", `"nodes"`},
		{"Json", `"nodes"`},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			out, _, err := run(t, "", "--dataset", ds, "export", "--top", "2", "--format", tc.format)
			require.NoError(t, err)
			assert.Contains(t, out, tc.want)
		})
	}
}

func TestStatsCmd(t *testing.T) {
	ds := writeChart(t)
	out, _, err := run(t, "", "--dataset", ds, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "records:  total=6 loaded=5 skipped=0 malformed=1")
	assert.Contains(t, out, "graph:    vertices=5 edges=3 total_weight=4 isolated=1 max_degree=2")
	assert.Contains(t, out, "genremap_builder_pairs_counted_total 4")
}

func TestConfigAndFlags(t *testing.T) {
	ds := writeChart(t)
	cfgPath := filepath.Join(t.TempDir(), "genremap.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dataset:\n  path: "+ds+"\nquery:\n  default_top: 1\nlog:\n  level: debug\n"), 0o600))

	out, errOut, err := run(t, "", "--config", cfgPath, "top")
	require.NoError(t, err)
	assert.Contains(t, out, "Top 1 most connected genres:")
	assert.Contains(t, errOut, "graph ready")

	_, errOut, err = run(t, "", "--config", cfgPath, "--log-level", "error", "top")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	_, _, err = run(t, "", "--config", cfgPath, "--log-level", "loud", "top")
	require.Error(t, err)

	_, _, err = run(t, "", "--dataset", filepath.Join(t.TempDir(), "missing.json"), "top")
	require.ErrorContains(t, err, "failed to load dataset")
}

func TestInteractive(t *testing.T) {
	ds := writeChart(t)
	input := strings.Join([]string{
		"1", "comedy", "politics",
		"2", "abc",
		"2", "1",
		"9",
		"3", "2",
		"4",
	}, "\n") + "\n"

	out, _, err := run(t, input, "--dataset", ds, "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "==== Podcast Genre Network Menu =====")
	assert.Contains(t, out, "PODCASTSERIES_COMEDY --> PODCASTSERIES_NEWS --> PODCASTSERIES_POLITICS")
	assert.Contains(t, out, "Please enter a valid number.")
	assert.Contains(t, out, "PODCASTSERIES_NEWS: connected to 2 genres")
	assert.Contains(t, out, "Invalid choice. Please enter a number between 1 and 4.")
	assert.Contains(t, out, "top_2_genres")
	assert.True(t, strings.HasSuffix(out, "Okay! Goodbye!\n"))
}

func TestInteractive_EOF(t *testing.T) {
	out, _, err := run(t, "1\ncomedy\n", "--dataset", writeChart(t), "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter destination genre")
}
