package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/tinymark/tinymark"
)

// Config holds the settings shared by the command line tool and the HTTP
// server.
type Config struct {
	Extensions Extensions `toml:"extensions" yaml:"extensions"`
	HTML       HTML       `toml:"html" yaml:"html"`
	Server     Server     `toml:"server" yaml:"server"`
	LogLevel   string     `toml:"log_level" yaml:"log_level"`
}

// Extensions selects the optional markdown constructs.
type Extensions struct {
	Tables          bool `toml:"tables" yaml:"tables"`
	Strikethrough   bool `toml:"strikethrough" yaml:"strikethrough"`
	Images          bool `toml:"images" yaml:"images"`
	HorizontalRules bool `toml:"horizontal_rules" yaml:"horizontal_rules"`
}

// HTML configures the renderer.
type HTML struct {
	HeaderIDs    bool `toml:"header_ids" yaml:"header_ids"`
	TOC          bool `toml:"toc" yaml:"toc"`
	Safelink     bool `toml:"safelink" yaml:"safelink"`
	Nofollow     bool `toml:"nofollow" yaml:"nofollow"`
	Noreferrer   bool `toml:"noreferrer" yaml:"noreferrer"`
	TargetBlank  bool `toml:"target_blank" yaml:"target_blank"`
	SkipImages   bool `toml:"skip_images" yaml:"skip_images"`
	XHTML        bool `toml:"xhtml" yaml:"xhtml"`
	CompletePage bool `toml:"complete_page" yaml:"complete_page"`

	AbsolutePrefix string `toml:"absolute_prefix" yaml:"absolute_prefix"`
	HeaderIDPrefix string `toml:"header_id_prefix" yaml:"header_id_prefix"`
	HeaderIDSuffix string `toml:"header_id_suffix" yaml:"header_id_suffix"`
	Title          string `toml:"title" yaml:"title"`
	CSS            string `toml:"css" yaml:"css"`
}

// Server configures the HTTP server.
type Server struct {
	Addr         string `toml:"addr" yaml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes" yaml:"max_body_bytes"`
}

// DefaultConfig returns the configuration used when no file is present:
// every extension on, header ids and safe links.
func DefaultConfig() *Config {
	return &Config{
		Extensions: Extensions{
			Tables:          true,
			Strikethrough:   true,
			Images:          true,
			HorizontalRules: true,
		},
		HTML: HTML{
			HeaderIDs: true,
			Safelink:  true,
		},
		Server: Server{
			Addr:         ":8080",
			MaxBodyBytes: 1 << 20,
		},
		LogLevel: "info",
	}
}

// DefaultPath returns the path of the config file.
// Can be overridden for testing
var DefaultPath = func() string {
	return filepath.Join(xdg.ConfigHome, "tinymark", "config.toml")
}

// Load reads the configuration file name from fsys and lays it over
// DefaultConfig. The format follows the extension: .toml, .yaml or .yml.
// A missing file is not an error.
func Load(fsys FileSystem, name string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := fsys.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level '%s': %w", c.LogLevel, err)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr cannot be empty")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive")
	}
	return nil
}

// Level returns the parsed log level; Validate has checked it.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Options returns the scanner and parser options.
func (c *Config) Options(logger *log.Logger) tinymark.Options {
	var ext tinymark.Extensions
	if c.Extensions.Tables {
		ext |= tinymark.Tables
	}
	if c.Extensions.Strikethrough {
		ext |= tinymark.Strikethrough
	}
	if c.Extensions.Images {
		ext |= tinymark.Images
	}
	if c.Extensions.HorizontalRules {
		ext |= tinymark.HorizontalRules
	}
	return tinymark.Options{Extensions: ext, Logger: logger}
}

// Renderer returns a new HTML renderer for the configuration.
func (c *Config) Renderer() *tinymark.HTMLRenderer {
	flags := tinymark.HTMLFlagsNone
	set := func(on bool, f tinymark.HTMLFlags) {
		if on {
			flags |= f
		}
	}
	set(c.HTML.HeaderIDs, tinymark.HeaderIDs)
	set(c.HTML.TOC, tinymark.TOC)
	set(c.HTML.Safelink, tinymark.Safelink)
	set(c.HTML.Nofollow, tinymark.NofollowLinks)
	set(c.HTML.Noreferrer, tinymark.NoreferrerLinks)
	set(c.HTML.TargetBlank, tinymark.HrefTargetBlank)
	set(c.HTML.SkipImages, tinymark.SkipImages)
	set(c.HTML.XHTML, tinymark.UseXHTML)
	set(c.HTML.CompletePage, tinymark.CompletePage)

	return tinymark.NewHTMLRenderer(flags, tinymark.HTMLRendererParameters{
		AbsolutePrefix: c.HTML.AbsolutePrefix,
		HeaderIDPrefix: c.HTML.HeaderIDPrefix,
		HeaderIDSuffix: c.HTML.HeaderIDSuffix,
		Title:          c.HTML.Title,
		CSS:            c.HTML.CSS,
	})
}
