package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrContextNotFound is returned for a context name missing from the config file
var ErrContextNotFound = errors.New("context not found")

// Context is a named AWS profile and region pair
type Context struct {
	Profile string `yaml:"profile,omitempty"` // AWS profile name
	Region  string `yaml:"region,omitempty"`
}

// Defaults represents default settings
type Defaults struct {
	Output           string `yaml:"output,omitempty"`            // table, json, yaml
	ConfirmThreshold string `yaml:"confirm_threshold,omitempty"` // none, low, medium, high
}

// ChimeConfig represents the main configuration file (~/.chimectl.yaml)
type ChimeConfig struct {
	CurrentContext string              `yaml:"current_context,omitempty"`
	Contexts       map[string]*Context `yaml:"contexts,omitempty"`
	Aliases        map[string]string   `yaml:"aliases,omitempty"` // alias -> operation
	Defaults       *Defaults           `yaml:"defaults,omitempty"`
}

func defaultDefaults() *Defaults {
	return &Defaults{Output: "table", ConfirmThreshold: "high"}
}

// GetConfigPath returns the config file path, $CHIMECTL_CONFIG or ~/.chimectl.yaml
func GetConfigPath() string {
	if path := os.Getenv("CHIMECTL_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chimectl.yaml"
	}
	return filepath.Join(home, ".chimectl.yaml")
}

// LoadConfig loads the configuration file. A missing file yields defaults.
func LoadConfig() (*ChimeConfig, error) {
	data, err := os.ReadFile(GetConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &ChimeConfig{
				Contexts: make(map[string]*Context),
				Aliases:  make(map[string]string),
				Defaults: defaultDefaults(),
			}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ChimeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Contexts == nil {
		cfg.Contexts = make(map[string]*Context)
	}
	if cfg.Aliases == nil {
		cfg.Aliases = make(map[string]string)
	}
	if cfg.Defaults == nil {
		cfg.Defaults = defaultDefaults()
	}
	if cfg.Defaults.Output == "" {
		cfg.Defaults.Output = "table"
	}
	if cfg.Defaults.ConfirmThreshold == "" {
		cfg.Defaults.ConfirmThreshold = "high"
	}

	return &cfg, nil
}

// SaveConfig writes the configuration file
func SaveConfig(cfg *ChimeConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetCurrentContext returns the current active context, or nil when none is set
func GetCurrentContext() (*Context, string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, "", err
	}

	if cfg.CurrentContext == "" {
		return nil, "", nil
	}

	ctx, ok := cfg.Contexts[cfg.CurrentContext]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrContextNotFound, cfg.CurrentContext)
	}

	return ctx, cfg.CurrentContext, nil
}

// SetCurrentContext sets the current active context
func SetCurrentContext(name string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	if _, ok := cfg.Contexts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrContextNotFound, name)
	}

	cfg.CurrentContext = name
	return SaveConfig(cfg)
}

// AddContext adds or updates a context
func AddContext(name string, ctx *Context) error {
	if name == "" {
		return errors.New("context name is required")
	}
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	cfg.Contexts[name] = ctx
	return SaveConfig(cfg)
}

// DeleteContext removes a context
func DeleteContext(name string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	if _, ok := cfg.Contexts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrContextNotFound, name)
	}
	delete(cfg.Contexts, name)

	// Clear current context if it was the deleted one
	if cfg.CurrentContext == name {
		cfg.CurrentContext = ""
	}

	return SaveConfig(cfg)
}

// ListContexts returns all configured contexts
func ListContexts() (map[string]*Context, string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, "", err
	}

	return cfg.Contexts, cfg.CurrentContext, nil
}

// ContextNames returns the configured context names in sorted order
func ContextNames(contexts map[string]*Context) []string {
	names := make([]string, 0, len(contexts))
	for name := range contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveAlias resolves an operation alias to its target
func ResolveAlias(alias string) (string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return "", err
	}

	if target, ok := cfg.Aliases[alias]; ok {
		return target, nil
	}

	return alias, nil // Return original if not an alias
}
