// Package config loads the settings of the golox host program.
//
// A configuration file is optional. Its format follows the file extension:
// .toml files are read with BurntSushi/toml, .yaml and .yml with yaml.v3.
// Keys missing from the file keep their default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Printers lists the accepted values of Config.Printer.
var Printers = []string{"ast", "rpn", "tree"}

var (
	ErrUnknownFormat  = errors.New("unknown config format")
	ErrInvalidPrinter = errors.New("invalid printer")
)

type Config struct {
	// Prompt is shown by the interactive mode.
	Prompt string `toml:"prompt" yaml:"prompt"`
	// HistoryFile keeps interactive input between sessions. Empty disables history.
	HistoryFile string `toml:"history_file" yaml:"history_file"`
	// Printer selects how parsed expressions are rendered: ast, rpn or tree.
	Printer string `toml:"printer" yaml:"printer"`
	// ShowTokens prints every scanned token before parsing.
	ShowTokens bool `toml:"show_tokens" yaml:"show_tokens"`
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose" yaml:"verbose"`
}

func Default() Config {
	return Config{
		Prompt:  "> ",
		Printer: "ast",
	}
}

// Load reads the configuration file at path on top of the defaults.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(content, DetectFormat(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes content on top of the defaults and validates the result.
func Parse(content []byte, format Format) (Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return Config{}, ErrUnknownFormat
	}

	return cfg, cfg.Validate()
}

func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

func (c Config) Validate() error {
	if !slices.Contains(Printers, c.Printer) {
		return fmt.Errorf("%w %q, expected one of %s", ErrInvalidPrinter, c.Printer, strings.Join(Printers, ", "))
	}
	return nil
}
