/*
File: config.go
Version: 1.0.0
Description: Optional YAML configuration with built-in defaults. Without a
             configuration file the extractor reads ../data next to its binary,
             keeps the top 40 keywords and prints plain text.
*/

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultMaliciousFile = "malicious_urls.txt"
	defaultBenignFile    = "benign_urls.txt"
	defaultEncoding      = "utf-8"
)

// executablePath locates the running binary; tests replace it.
var executablePath = os.Executable

// --- Configuration Structures ---

type Config struct {
	Input   InputConfig   `yaml:"input"`
	Extract ExtractConfig `yaml:"extract"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type InputConfig struct {
	DataDir       string `yaml:"data_dir"`       // Default: <binary dir>/../data
	MaliciousFile string `yaml:"malicious_file"` // Relative to data_dir unless absolute
	BenignFile    string `yaml:"benign_file"`
	Encoding      string `yaml:"encoding"`       // WHATWG label, e.g. "utf-8", "windows-1252"
	MaxLineBytes  int    `yaml:"max_line_bytes"` // 0 = no limit
}

type ExtractConfig struct {
	MinCount int `yaml:"min_count"`
	TopN     int `yaml:"top_n"`
}

type OutputConfig struct {
	Format string `yaml:"format"` // "text" (default) or "json"
}

type LoggingConfig struct {
	Level   string   `yaml:"level"`
	Format  string   `yaml:"format"`
	Outputs []string `yaml:"outputs"`

	File struct {
		Path        string `yaml:"path"`
		Permissions uint32 `yaml:"permissions"`
	} `yaml:"file"`
}

// DefaultConfig is the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{
		Input: InputConfig{
			DataDir:       defaultDataDir(),
			MaliciousFile: defaultMaliciousFile,
			BenignFile:    defaultBenignFile,
			Encoding:      defaultEncoding,
		},
		Extract: ExtractConfig{
			MinCount: defaultMinCount,
			TopN:     defaultTopN,
		},
		Output: OutputConfig{Format: FormatText},
		Logging: LoggingConfig{
			Level:   "WARN",
			Format:  "text",
			Outputs: []string{"console"},
		},
	}
	return cfg
}

// defaultDataDir is the "data" directory one level above the directory that
// holds the running executable.
func defaultDataDir() string {
	exe, err := executablePath()
	if err != nil {
		LogWarn("[CONFIG] Cannot locate executable (%v), using ../data", err)
		return filepath.Join("..", "data")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "..", "data")
}

// --- Configuration Loading ---

// LoadConfig reads a YAML file on top of DefaultConfig. A relative data_dir is
// taken relative to the configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Input.DataDir = ""
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Input.DataDir == "" {
		cfg.Input.DataDir = defaultDataDir()
	} else if !filepath.IsAbs(cfg.Input.DataDir) {
		cfg.Input.DataDir = filepath.Join(filepath.Dir(path), cfg.Input.DataDir)
	}
	if cfg.Input.MaliciousFile == "" {
		cfg.Input.MaliciousFile = defaultMaliciousFile
	}
	if cfg.Input.BenignFile == "" {
		cfg.Input.BenignFile = defaultBenignFile
	}
	if cfg.Input.Encoding == "" {
		cfg.Input.Encoding = defaultEncoding
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "WARN"
	}
	if len(cfg.Logging.Outputs) == 0 {
		cfg.Logging.Outputs = []string{"console"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Extract.TopN <= 0 {
		return fmt.Errorf("extract.top_n must be positive, got %d", c.Extract.TopN)
	}
	if c.Extract.MinCount < 0 {
		return fmt.Errorf("extract.min_count must not be negative, got %d", c.Extract.MinCount)
	}
	if c.Input.MaxLineBytes < 0 {
		return fmt.Errorf("input.max_line_bytes must not be negative, got %d", c.Input.MaxLineBytes)
	}
	if _, _, err := resolveEncoding(c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: %w", err)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatJSON, c.Output.Format)
	}
	for _, out := range c.Logging.Outputs {
		if !strings.EqualFold(out, "console") && !strings.EqualFold(out, "file") {
			return fmt.Errorf("unknown logging output %q", out)
		}
	}
	return nil
}

func (c *Config) corpusPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Input.DataDir, name)
}

func (c *Config) MaliciousPath() string {
	return c.corpusPath(c.Input.MaliciousFile)
}

func (c *Config) BenignPath() string {
	return c.corpusPath(c.Input.BenignFile)
}
