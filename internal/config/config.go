package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"stepslider/internal/domain"
	"stepslider/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version" yaml:"version"`
	Slider     Slider     `toml:"slider" yaml:"slider"`
	UISettings UISettings `toml:"ui" yaml:"ui"`
}

// Slider holds the range slider options. Steps wins over Start/End/Increment
// when both are given.
type Slider struct {
	Steps              []float64 `toml:"steps,omitempty" yaml:"steps,omitempty"`
	Start              float64   `toml:"start,omitempty" yaml:"start,omitempty"`
	End                float64   `toml:"end,omitempty" yaml:"end,omitempty"`
	Increment          float64   `toml:"increment,omitempty" yaml:"increment,omitempty"`
	InitialLower       int       `toml:"initial_lower" yaml:"initial_lower"`
	InitialUpper       *int      `toml:"initial_upper,omitempty" yaml:"initial_upper,omitempty"` // nil selects the last step
	HandleRadius       float64   `toml:"handle_radius" yaml:"handle_radius"`
	TickRadius         float64   `toml:"tick_radius" yaml:"tick_radius"`
	TouchTolerance     float64   `toml:"touch_tolerance" yaml:"touch_tolerance"`
	MinSeparationSteps int       `toml:"min_separation_steps" yaml:"min_separation_steps"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowLabels bool   `toml:"show_labels" yaml:"show_labels"`
	ShowHelp   bool   `toml:"show_help" yaml:"show_help"`
	Title      string `toml:"title,omitempty" yaml:"title,omitempty"`
}

// maxGeneratedSteps bounds Start/End/Increment expansion
const maxGeneratedSteps = 1000

// ResolveSteps returns the explicit step list, or expands Start..End by
// Increment (both ends included when End lands on a step).
func (s Slider) ResolveSteps() ([]float64, error) {
	if len(s.Steps) > 0 {
		out := make([]float64, len(s.Steps))
		copy(out, s.Steps)
		return out, nil
	}
	for _, v := range []float64{s.Start, s.End, s.Increment} {
		if !finite(v) {
			return nil, fmt.Errorf("%w: start, end and increment must be finite (%g..%g by %g)",
				domain.ErrInvalidConfiguration, s.Start, s.End, s.Increment)
		}
	}
	if s.Increment <= 0 || s.End <= s.Start {
		return nil, fmt.Errorf("%w: no steps and no usable start/end/increment (%g..%g by %g)",
			domain.ErrInvalidConfiguration, s.Start, s.End, s.Increment)
	}
	count := math.Floor((s.End-s.Start)/s.Increment+1e-9) + 1
	if math.IsInf(count, 0) || count > maxGeneratedSteps {
		return nil, fmt.Errorf("%w: %g..%g by %g yields more than %d steps",
			domain.ErrInvalidConfiguration, s.Start, s.End, s.Increment, maxGeneratedSteps)
	}
	n := int(count)
	if n < 1 {
		return nil, fmt.Errorf("%w: %g..%g by %g yields no steps",
			domain.ErrInvalidConfiguration, s.Start, s.End, s.Increment)
	}
	steps := make([]float64, n)
	for i := range steps {
		steps[i] = s.Start + float64(i)*s.Increment
	}
	return steps, nil
}

// Upper resolves the initial upper index against the number of steps.
func (s Slider) Upper(n int) int {
	if s.InitialUpper == nil {
		return n - 1
	}
	return *s.InitialUpper
}

// Validate checks what can be checked without building a slider.
func (c *Config) Validate() error {
	steps, err := c.Slider.ResolveSteps()
	if err != nil {
		return err
	}
	if len(steps) < 3 {
		return fmt.Errorf("%w: need at least 3 steps, got %d", domain.ErrInvalidConfiguration, len(steps))
	}
	for i, v := range steps {
		if !finite(v) {
			return fmt.Errorf("%w: step %d is %g, steps must be finite", domain.ErrInvalidConfiguration, i, v)
		}
	}
	for i := 1; i < len(steps); i++ {
		if steps[i] <= steps[i-1] {
			return fmt.Errorf("%w: steps must be distinct and increasing (%g then %g)",
				domain.ErrInvalidConfiguration, steps[i-1], steps[i])
		}
	}
	lower, upper := c.Slider.InitialLower, c.Slider.Upper(len(steps))
	if lower < 0 || upper >= len(steps) || lower > upper {
		return fmt.Errorf("%w: initial range [%d, %d] outside [0, %d] or inverted",
			domain.ErrInvalidConfiguration, lower, upper, len(steps)-1)
	}
	for _, v := range []float64{c.Slider.HandleRadius, c.Slider.TickRadius, c.Slider.TouchTolerance} {
		if !finite(v) || v < 0 {
			return fmt.Errorf("%w: radii and touch tolerance must be finite and not negative", domain.ErrInvalidConfiguration)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "stepslider", "config.toml")
}

// NewConfigService creates a new config service for the default location
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithBus creates a config service bound to path that
// publishes load and save events. An empty path means the default location.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{bus: bus, filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		steps, _ := cfg.Slider.ResolveSteps()
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:  cs.filePath,
			Steps: len(steps),
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep sensible values
	cfg := DefaultConfig()
	cfg.Slider.Steps = nil
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.Slider.Steps) == 0 && cfg.Slider.Increment == 0 {
		cfg.Slider.Steps = DefaultConfig().Slider.Steps
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = toml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// DefaultConfig returns the default configuration: 0 to 100 in steps of 10,
// sized for a terminal where one unit is one cell
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Slider: Slider{
			Steps:              []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			InitialLower:       0,
			HandleRadius:       2,
			TickRadius:         1,
			TouchTolerance:     4,
			MinSeparationSteps: 1,
		},
		UISettings: UISettings{
			ShowLabels: true,
			ShowHelp:   true,
		},
	}
}
