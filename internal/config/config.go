package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"beerrank-cli/internal/source"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Source is an http(s) URL or a local JSON file path.
	Source string `yaml:"source,omitempty"`
	// Timeout bounds the single fetch, e.g. "15s".
	Timeout Duration      `yaml:"timeout,omitempty"`
	Fields  source.Fields `yaml:"fields,omitempty"`
	LogFile string        `yaml:"log_file,omitempty"`
	TUI     TUIConfig     `yaml:"tui,omitempty"`
}

type TUIConfig struct {
	// Theme is "light", "dark" or "auto".
	Theme string `yaml:"theme,omitempty"`
	// Glyphs selects the glyph set ("unicode", "ascii").
	Glyphs string `yaml:"glyphs,omitempty"`
}

// Duration lets the YAML file use Go duration strings.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func Default() *Config {
	return &Config{
		Source:  source.DefaultURL,
		Timeout: Duration(source.DefaultTimeout),
		Fields:  source.DefaultFields(),
		LogFile: filepath.Join(os.TempDir(), "beerrank.log"),
		TUI:     TUIConfig{Theme: "auto", Glyphs: "unicode"},
	}
}

func Dir() (string, error) {
	// Keeps unit tests from touching ~/.beerrank.
	if v := strings.TrimSpace(os.Getenv("BEERRANK_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".beerrank"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads path (or the default location when path is empty) on top of
// Default. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		path = p
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	var file Config
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.merge(file)
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if strings.TrimSpace(o.Source) != "" {
		c.Source = strings.TrimSpace(o.Source)
	}
	if o.Timeout > 0 {
		c.Timeout = o.Timeout
	}
	if o.Fields.Name != "" {
		c.Fields.Name = o.Fields.Name
	}
	if o.Fields.Fame != "" {
		c.Fields.Fame = o.Fields.Fame
	}
	if o.Fields.Popularity != "" {
		c.Fields.Popularity = o.Fields.Popularity
	}
	if strings.TrimSpace(o.LogFile) != "" {
		c.LogFile = strings.TrimSpace(o.LogFile)
	}
	if o.TUI.Theme != "" {
		c.TUI.Theme = o.TUI.Theme
	}
	if o.TUI.Glyphs != "" {
		c.TUI.Glyphs = o.TUI.Glyphs
	}
}

// ApplyEnv overlays BEERRANK_* variables. Flags are applied by the CLI after this.
func (c *Config) ApplyEnv() error {
	if v := strings.TrimSpace(os.Getenv("BEERRANK_SOURCE")); v != "" {
		c.Source = v
	}
	if v := strings.TrimSpace(os.Getenv("BEERRANK_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("BEERRANK_TIMEOUT: %w", err)
		}
		c.Timeout = Duration(d)
	}
	if v := strings.TrimSpace(os.Getenv("BEERRANK_LOG_FILE")); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("BEERRANK_TUI_THEME")); v != "" {
		c.TUI.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("BEERRANK_TUI_GLYPHS")); v != "" {
		c.TUI.Glyphs = v
	}
	return nil
}

func (c *Config) Loader() source.Loader {
	return source.Open(c.Source,
		source.WithTimeout(time.Duration(c.Timeout)),
		source.WithFields(c.Fields),
	)
}
