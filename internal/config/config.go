package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"selectree/internal/domain"
	"selectree/internal/eventbus"
)

// Config represents an options file
type Config struct {
	Version     int                 `toml:"version"`
	Multiple    bool                `toml:"multiple"`
	Placeholder string              `toml:"placeholder,omitempty"`
	Value       []string            `toml:"value,omitempty"`
	UISettings  UISettings          `toml:"ui"`
	Options     []domain.OptionSpec `toml:"options"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Height       int  `toml:"height"`
	ShowDisabled bool `toml:"show_disabled"`
	SkipGroups   bool `toml:"skip_groups"`
	Suggestions  int  `toml:"suggestions"`
}

// fileConfig is Config as it is written to disk
type fileConfig struct {
	Version     int          `toml:"version"`
	Multiple    bool         `toml:"multiple"`
	Placeholder string       `toml:"placeholder,omitempty"`
	Value       []string     `toml:"value,omitempty"`
	UISettings  UISettings   `toml:"ui"`
	Options     []fileOption `toml:"options"`
}

// fileOption holds its children in an interface so that a nil list is left
// out while a declared empty one is written as children = []
type fileOption struct {
	Value    string `toml:"value"`
	Label    string `toml:"label"`
	Disabled bool   `toml:"disabled,omitempty"`
	Children any    `toml:"children,omitempty"`
}

func toFile(c *Config) fileConfig {
	return fileConfig{
		Version:     c.Version,
		Multiple:    c.Multiple,
		Placeholder: c.Placeholder,
		Value:       c.Value,
		UISettings:  c.UISettings,
		Options:     toFileOptions(c.Options),
	}
}

func toFileOptions(specs []domain.OptionSpec) []fileOption {
	out := make([]fileOption, len(specs))
	for i, spec := range specs {
		out[i] = fileOption{Value: spec.Value, Label: spec.Label, Disabled: spec.Disabled}
		if spec.HasChildList() {
			out[i].Children = toFileOptions(spec.Children)
		}
	}
	return out
}

// ErrNoOptions is returned by Validate for a file without options
var ErrNoOptions = errors.New("no options defined")

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

// DefaultPath returns the options file location used when none is given
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "selectree", "options.toml")
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithBus creates a config service for path that publishes
// load and save events. An empty path means the default location.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{bus: bus, filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file. A missing file
// yields the default configuration.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, OptionCount: domain.CountOptions(cfg.Options)})
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
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

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cs.publish(eventbus.ConfigLoadedEvent{Path: path, OptionCount: domain.CountOptions(cfg.Options)})
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(toFile(config))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cs.publish(eventbus.ConfigSavedEvent{Path: path})
	return nil
}

func (cs *configService) publish(event eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(event)
	}
}

// Parse decodes and validates an options file
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse config at line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every option has a value
func (c *Config) Validate() error {
	if len(c.Options) == 0 {
		return ErrNoOptions
	}
	return validateOptions(c.Options, "options")
}

func validateOptions(specs []domain.OptionSpec, path string) error {
	for i, spec := range specs {
		where := fmt.Sprintf("%s[%d]", path, i)
		if spec.Value == "" {
			return fmt.Errorf("%s: option %q has no value", where, spec.Label)
		}
		if err := validateOptions(spec.Children, where+".children"); err != nil {
			return err
		}
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			Height:       10,
			ShowDisabled: true,
			Suggestions:  3,
		},
	}
}

// SampleConfig returns a small option tree used by `selectree init`
func SampleConfig() *Config {
	cfg := DefaultConfig()
	cfg.Multiple = true
	cfg.Placeholder = "Pick some produce"
	cfg.Value = []string{"apple"}
	cfg.Options = []domain.OptionSpec{
		{Value: "fruits", Label: "Fruits", Children: []domain.OptionSpec{
			{Value: "apple", Label: "Apple"},
			{Value: "banana", Label: "Banana"},
			{Value: "citrus", Label: "Citrus", Children: []domain.OptionSpec{
				{Value: "lemon", Label: "Lemon"},
				{Value: "lime", Label: "Lime"},
			}},
		}},
		{Value: "vegetables", Label: "Vegetables", Children: []domain.OptionSpec{
			{Value: "carrot", Label: "Carrot"},
			{Value: "jalapeno", Label: "Jalapeño"},
			{Value: "okra", Label: "Okra", Disabled: true},
		}},
		{Value: "cafe", Label: "Café au lait"},
	}
	return cfg
}
