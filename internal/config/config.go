package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the fixed location of the configuration file, relative to
// the working directory.
const DefaultPath = "configs/config.yaml"

// ReportConfig selects the summary report format.
type ReportConfig struct {
	Format string `yaml:"format"`
}

// ViewerConfig holds the configuration for the plot viewer.
type ViewerConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ListenAddr string `yaml:"listen_addr"`
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
}

// NotifyConfig configures the optional NATS broadcast of the summary.
type NotifyConfig struct {
	NATSURL string `yaml:"nats_url"`
	Subject string `yaml:"subject"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Report ReportConfig `yaml:"report"`
	Viewer ViewerConfig `yaml:"viewer"`
	Notify NotifyConfig `yaml:"notify"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Report: ReportConfig{Format: "text"},
		Viewer: ViewerConfig{
			Enabled:    true,
			ListenAddr: "127.0.0.1:0",
			Title:      "average euclidean difference per timestep",
			Width:      1024,
			Height:     512,
		},
		Notify: NotifyConfig{Subject: "netsyncdiff.summary"},
	}
}

// LoadConfig reads the configuration from a YAML file on top of Default.
// A missing file is not an error; Default is returned as is.
func LoadConfig(filePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filePath, err)
	}

	return cfg, nil
}

// Validate checks the fields the pipeline cannot run without.
func (c *Config) Validate() error {
	if c.Viewer.Enabled && (c.Viewer.Width <= 0 || c.Viewer.Height <= 0) {
		return fmt.Errorf("viewer size must be positive, got %dx%d", c.Viewer.Width, c.Viewer.Height)
	}
	if c.Notify.NATSURL != "" && c.Notify.Subject == "" {
		return errors.New("notify.subject must be set when notify.nats_url is")
	}
	return nil
}
