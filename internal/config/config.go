package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vango-dev/accordion/internal/errors"
	"github.com/vango-dev/accordion/pkg/accordion"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "accordion.json"

	// DefaultAddr is the default live server address.
	DefaultAddr = "localhost:3000"

	// DefaultDurationMS is the default transition duration in milliseconds.
	DefaultDurationMS = 300
)

// Config represents the complete accordion.json configuration.
type Config struct {
	// BreakAbove disables collapsing at viewport widths >= this value.
	BreakAbove *float64 `json:"break_above" validate:"omitempty,gte=0"`

	// BreakBelow disables collapsing at viewport widths <= this value.
	BreakBelow *float64 `json:"break_below" validate:"omitempty,gte=0"`

	// Duration is the transition duration in milliseconds.
	Duration int `json:"duration,omitempty" validate:"gte=0,lte=60000"`

	// AutoClose closes other items when one opens.
	AutoClose bool `json:"auto_close,omitempty"`

	// Classes overrides the marker classes.
	Classes accordion.Classes `json:"classes,omitempty"`

	// Server contains live server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains live server settings.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `json:"addr,omitempty" validate:"omitempty,hostname_port"`

	// Metrics exposes /metrics when true.
	Metrics bool `json:"metrics,omitempty"`

	// ReducedMotionDefault is the reduced-motion preference assumed until a
	// client reports its own.
	ReducedMotionDefault bool `json:"reduced_motion_default,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Duration: DefaultDurationMS,
		Classes:  accordion.DefaultClasses(),
		Server: ServerConfig{
			Addr:    DefaultAddr,
			Metrics: true,
		},
	}
}

// LoadFromDir looks for accordion.json in dir and its parents and loads the
// first one found.
func LoadFromDir(dir string) (*Config, error) {
	root, err := FindRoot(dir)
	if err != nil {
		return nil, err
	}
	return Load(filepath.Join(root, ConfigFileName))
}

// Load reads configuration from the specified file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigRead).
				WithDetail("No " + ConfigFileName + " found at " + path).
				Wrap(err)
		}
		return nil, errors.New(errors.CodeConfigRead).Wrap(err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.configPath = path
	return cfg, nil
}

// Parse decodes and validates configuration data. Missing fields keep their
// defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CodeConfigRead).
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON").
			Wrap(err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Duration == 0 {
		c.Duration = DefaultDurationMS
	}
	c.Classes = mergeClasses(c.Classes, accordion.DefaultClasses())
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
}

func mergeClasses(c, base accordion.Classes) accordion.Classes {
	if c.Item == "" {
		c.Item = base.Item
	}
	if c.Head == "" {
		c.Head = base.Head
	}
	if c.Content == "" {
		c.Content = base.Content
	}
	if c.Icon == "" {
		c.Icon = base.Icon
	}
	return c
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fields []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
		}
	} else {
		fields = append(fields, err.Error())
	}
	return errors.New(errors.CodeConfigInvalid).
		WithDetail(strings.Join(fields, "; ")).
		Wrap(err)
}

// Options maps the configuration to accordion options.
func (c *Config) Options() []accordion.Option {
	return []accordion.Option{
		accordion.WithBreakpoints(c.BreakAbove, c.BreakBelow),
		accordion.WithDuration(c.DurationValue()),
		accordion.WithAutoClose(c.AutoClose),
		accordion.WithClasses(c.Classes),
	}
}

// DurationValue returns the duration as a time.Duration.
func (c *Config) DurationValue() time.Duration {
	return time.Duration(c.Duration) * time.Millisecond
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CodeConfigRead).Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigRead).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindRoot walks up directories from startDir to the first one holding
// accordion.json.
func FindRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.CodeConfigRead).
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory").
				WithSuggestion("Create " + ConfigFileName + " or pass --config")
		}
		dir = parent
	}
}
