package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding an explicit config path
const EnvVar = "IBLANG_CONFIG"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings shared by the iblang binaries
type Config struct {
	Color  string       `toml:"color" yaml:"color"`
	Lexer  LexerConfig  `toml:"lexer" yaml:"lexer"`
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Golden GoldenConfig `toml:"golden" yaml:"golden"`

	path string
}

// LexerConfig holds token echo settings
type LexerConfig struct {
	ShowWhitespace bool `toml:"show_whitespace" yaml:"show_whitespace"`
}

// ParserConfig holds parser settings
type ParserConfig struct {
	Trace bool `toml:"trace" yaml:"trace"`
}

// LogConfig holds commonlog settings. An empty File logs to stderr.
type LogConfig struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	File      string `toml:"file" yaml:"file"`
}

// GoldenConfig holds golden harness settings
type GoldenConfig struct {
	Extension string `toml:"extension" yaml:"extension"`
	Parallel  int    `toml:"parallel" yaml:"parallel"`
}

// Format is a config file syntax
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	default:
		return "yaml"
	}
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		Color: ColorAuto,
		Log: LogConfig{
			Verbosity: 1,
		},
		Golden: GoldenConfig{
			Extension: ".ib",
		},
	}
}

// Load reads a YAML or TOML file, chosen by extension, on top of the defaults
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(content, detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// Parse decodes content on top of the defaults and validates the result
func Parse(content []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(content)).Decode(cfg); err != nil {
			return nil, err
		}
	default:
		if len(bytes.TrimSpace(content)) > 0 {
			if err := yaml.Unmarshal(content, cfg); err != nil {
				return nil, err
			}
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover finds the config file to use. The first match wins: explicit, the
// IBLANG_CONFIG variable, ./.iblang.yaml, ./.iblang.yml, ./.iblang.toml and
// $HOME/.config/iblang/config.yaml. Without any file the defaults are used.
func Discover(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if env := os.Getenv(EnvVar); env != "" {
		return Load(env)
	}

	for _, candidate := range SearchPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
	}
	return Default(), nil
}

// SearchPaths lists the implicit config locations in lookup order
func SearchPaths() []string {
	paths := []string{
		".iblang.yaml",
		".iblang.yml",
		".iblang.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "iblang", "config.yaml"))
	}
	return paths
}

// Validate rejects settings no binary can honour
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want %s, %s or %s)", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if c.Golden.Parallel < 0 {
		return fmt.Errorf("golden.parallel must not be negative, got %d", c.Golden.Parallel)
	}
	return nil
}

// Path returns the file the config was loaded from, or "" for defaults
func (c *Config) Path() string {
	return c.path
}

// ApplyColor switches fatih/color output on or off. Auto keeps the terminal
// detection done by the color package.
func (c *Config) ApplyColor() {
	switch c.Color {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	}
}

// LogPath returns the log file for commonlog.Configure, nil meaning stderr
func (c *Config) LogPath() *string {
	if c.Log.File == "" {
		return nil
	}
	path := c.Log.File
	return &path
}

func (c *Config) applyDefaults() {
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.Golden.Extension == "" {
		c.Golden.Extension = ".ib"
	}
	if !strings.HasPrefix(c.Golden.Extension, ".") {
		c.Golden.Extension = "." + c.Golden.Extension
	}
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}
