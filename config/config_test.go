package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/genremap/builder"
	"github.com/katalvlaran/genremap/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "top_US_podcasts.json", cfg.Dataset.Path)
	require.Equal(t, config.DefaultLabelPrefix, cfg.Dataset.LabelPrefix)
	require.Equal(t, "skip", cfg.Ingest.Policy)
}

func TestDecode_MergesOverDefaults(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(`
dataset:
  path: charts/us.json
ingest:
  policy: abort
  workers: 8
log:
  level: debug
  development: true
`))
	require.NoError(t, err)
	require.Equal(t, "charts/us.json", cfg.Dataset.Path)
	require.Equal(t, config.DefaultLabelPrefix, cfg.Dataset.LabelPrefix) // untouched default
	require.Equal(t, "abort", cfg.Ingest.Policy)
	require.Equal(t, 8, cfg.Ingest.Workers)
	require.Equal(t, 10, cfg.Query.DefaultTop)

	zc, err := cfg.ZapConfig()
	require.NoError(t, err)
	require.True(t, zc.Development)
	require.Equal(t, zapcore.DebugLevel, zc.Level.Level())
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestDecode_Invalid(t *testing.T) {
	cases := []struct {
		name, yaml, msg string
	}{
		{"bad policy", "ingest:\n  policy: retry\n", "ingest.policy must be one of: skip abort"},
		{"zero workers", "ingest:\n  workers: 0\n", "ingest.workers must be at least 1"},
		{"too many workers", "ingest:\n  workers: 65\n", "ingest.workers must be at most 64"},
		{"negative cache", "query:\n  path_cache_size: -1\n", "query.path_cache_size must be at least 0"},
		{"zero top", "query:\n  default_top: 0\n", "query.default_top must be at least 1"},
		{"bad level", "log:\n  level: loud\n", "log.level must be one of"},
		{"empty path", "dataset:\n  path: \"\"\n", "dataset.path is required"},
		{"unknown key", "dataset:\n  file: x.json\n", "field file not found"},
		{"not yaml", "dataset: [", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(tc.yaml))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genremap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("query:\n  path_cache_size: 0\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Zero(t, cfg.Query.PathCacheSize)

	_, err = config.Load(filepath.Join(dir, "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLabels(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "PODCASTSERIES_COMEDY", cfg.QualifyLabel(" comedy "))
	require.Equal(t, "PODCASTSERIES_NEWS", cfg.QualifyLabel("PODCASTSERIES_NEWS"))
	require.Equal(t, "COMEDY", cfg.DisplayLabel("PODCASTSERIES_COMEDY"))

	cfg.Dataset.LabelPrefix = ""
	require.Equal(t, "COMEDY", cfg.QualifyLabel("comedy"))
	require.Equal(t, "X_COMEDY", cfg.DisplayLabel("X_COMEDY"))
}

func TestBuilderOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Ingest.Policy = "abort"
	b := builder.New(cfg.BuilderOptions()...)
	_, err := b.Ingest([]builder.Record{{Labels: []string{"A", "  "}}})
	require.ErrorIs(t, err, builder.ErrEmptyLabel)
}
