// Package config loads the genremap YAML configuration, merges it over
// defaults and validates it.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/genremap/builder"
)

// ErrInvalidConfig wraps every load or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultLabelPrefix is the category prefix used by the chart catalog.
const DefaultLabelPrefix = "PODCASTSERIES_"

// Config is the full application configuration.
type Config struct {
	Dataset Dataset `yaml:"dataset"`
	Ingest  Ingest  `yaml:"ingest"`
	Query   Query   `yaml:"query"`
	Log     Log     `yaml:"log"`
}

// Dataset locates the record file.
type Dataset struct {
	Path string `yaml:"path" validate:"required"`
	// LabelPrefix qualifies user-typed labels and is stripped for display.
	LabelPrefix string `yaml:"label_prefix"`
}

// Ingest tunes graph construction.
type Ingest struct {
	Policy  string `yaml:"policy" validate:"oneof=skip abort"`
	Workers int    `yaml:"workers" validate:"min=1,max=64"`
}

// Query tunes the query engine.
type Query struct {
	PathCacheSize int `yaml:"path_cache_size" validate:"min=0"`
	DefaultTop    int `yaml:"default_top" validate:"min=1"`
}

// Log configures zap.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dataset: Dataset{Path: "top_US_podcasts.json", LabelPrefix: DefaultLabelPrefix},
		Ingest:  Ingest{Policy: builder.PolicySkip.String(), Workers: builder.DefaultWorkers},
		Query:   Query{PathCacheSize: 256, DefaultTop: 10},
		Log:     Log{Level: "info"},
	}
}

// Load reads the YAML file at path over Default() and validates the result.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode is Load for an already opened source. An empty source yields the
// defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report yaml key names, not Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func formatFieldError(fe validator.FieldError) string {
	// drop the root type name: "Config.ingest.workers" -> "ingest.workers"
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// BuilderOptions translates the ingest section into builder options.
func (c Config) BuilderOptions() []builder.Option {
	policy, _ := builder.ParsePolicy(c.Ingest.Policy)
	return []builder.Option{
		builder.WithPolicy(policy),
		builder.WithWorkers(c.Ingest.Workers),
		builder.WithLabelFunc(builder.TrimSpaceLabel),
	}
}

// QualifyLabel maps user input such as "comedy" to the catalog label
// "PODCASTSERIES_COMEDY".
func (c Config) QualifyLabel(s string) string {
	return builder.ChainLabel(
		builder.TrimSpaceLabel,
		builder.UpperLabel,
		builder.PrefixLabel(c.Dataset.LabelPrefix),
	)(s)
}

// DisplayLabel strips the catalog prefix.
func (c Config) DisplayLabel(s string) string {
	if c.Dataset.LabelPrefix == "" {
		return s
	}
	return strings.TrimPrefix(s, c.Dataset.LabelPrefix)
}

// ZapConfig returns the zap configuration for the log section.
func (c Config) ZapConfig() (zap.Config, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc, nil
}
