package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathviz/driver"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

// Sentinel errors.
var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrNoGrid is returned by BuildGrid when neither grid nor grid_file is set.
	ErrNoGrid = errors.New("config: no grid layout given")
)

// Environment variables read by Load.
const (
	EnvAlgorithm   = "PATHVIZ_ALGORITHM"
	EnvSpeed       = "PATHVIZ_SPEED"
	EnvTrapWeight  = "PATHVIZ_TRAP_WEIGHT"
	EnvLogLevel    = "PATHVIZ_LOG_LEVEL"
	EnvMetricsAddr = "PATHVIZ_METRICS_ADDR"
)

// Config is the full pathviz configuration.
type Config struct {
	Algorithm   search.Algorithm `yaml:"algorithm" validate:"algorithm"`
	Speed       int              `yaml:"speed" validate:"min=1,max=10"`
	TrapWeight  int              `yaml:"trap_weight" validate:"min=1"`
	LogLevel    string           `yaml:"log_level" validate:"oneof=debug info warn error"`
	MetricsAddr string           `yaml:"metrics_addr,omitempty" validate:"omitempty,hostname_port"`

	// Grid is an inline layout; GridFile names a file holding one.
	// At most one may be set.
	Grid     string `yaml:"grid,omitempty" validate:"excluded_with=GridFile"`
	GridFile string `yaml:"grid_file,omitempty"`

	// dir is the directory of the loaded file; relative GridFile paths
	// resolve against it.
	dir string
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("algorithm", validateAlgorithm); err != nil {
		panic(fmt.Sprintf("config: register algorithm validation: %v", err))
	}
}

func validateAlgorithm(fl validator.FieldLevel) bool {
	a, ok := fl.Field().Interface().(search.Algorithm)
	return ok && a.Valid()
}

// Default returns BFS at speed 5 with the default trap weight.
func Default() Config {
	return Config{
		Algorithm:  search.BFS,
		Speed:      driver.DefaultSpeed,
		TrapWeight: gridgraph.DefaultTrapWeight,
		LogLevel:   "info",
	}
}

// Load merges Default(), the YAML file at path (skipped when path is
// empty) and the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	cfg.dir = filepath.Dir(path)
	return nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv(EnvAlgorithm); v != "" {
		a, err := search.ParseAlgorithm(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvAlgorithm, err)
		}
		cfg.Algorithm = a
	}
	if v := os.Getenv(EnvSpeed); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvSpeed, err)
		}
		cfg.Speed = i
	}
	if v := os.Getenv(EnvTrapWeight); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvTrapWeight, err)
		}
		cfg.TrapWeight = i
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvMetricsAddr); v != "" {
		cfg.MetricsAddr = v
	}
	return nil
}

// Validate checks every field. Failures wrap ErrInvalidConfig and name
// the offending YAML keys.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s fails %q (got %v)", yamlKey(fe.StructField()), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func yamlKey(field string) string {
	switch field {
	case "TrapWeight":
		return "trap_weight"
	case "LogLevel":
		return "log_level"
	case "MetricsAddr":
		return "metrics_addr"
	case "GridFile":
		return "grid_file"
	default:
		return strings.ToLower(field)
	}
}

// GridOptions returns the grid options implied by c.
func (c Config) GridOptions() gridgraph.GridOptions {
	return gridgraph.GridOptions{TrapWeight: c.TrapWeight}
}

// BuildGrid parses the inline grid or reads GridFile.
func (c Config) BuildGrid() (*gridgraph.Grid, error) {
	layout := c.Grid
	if c.GridFile != "" {
		path := c.GridFile
		if !filepath.IsAbs(path) && c.dir != "" {
			path = filepath.Join(c.dir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read grid: %w", err)
		}
		layout = string(data)
	}
	if strings.TrimSpace(layout) == "" {
		return nil, ErrNoGrid
	}
	g, err := gridgraph.Parse(layout, c.GridOptions())
	if err != nil {
		return nil, fmt.Errorf("config: parse grid: %w", err)
	}
	return g, nil
}
