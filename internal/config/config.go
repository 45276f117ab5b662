package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/ukaji3/csvpeek-go/pkg/csvpeek"
	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/render"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "CSVPEEK"

// DefaultConfigFile is read from the working directory when no path is given.
const DefaultConfigFile = "csvpeek.yaml"

// Config represents the complete application configuration
type Config struct {
	Preview PreviewConfig `yaml:"preview" envconfig:"PREVIEW"`
	Parse   ParseConfig   `yaml:"parse" envconfig:"PARSE"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// PreviewConfig controls how tables are rendered
type PreviewConfig struct {
	Limit        int    `yaml:"limit" envconfig:"LIMIT" validate:"gte=0"`
	Align        string `yaml:"align" envconfig:"ALIGN" validate:"oneof=left right"`
	MissingToken string `yaml:"missing_token" envconfig:"MISSING_TOKEN" validate:"required"`
	MaxColWidth  int    `yaml:"max_col_width" envconfig:"MAX_COL_WIDTH" validate:"gte=0"`
	ShowIndex    bool   `yaml:"show_index" envconfig:"SHOW_INDEX"`
}

// ParseConfig controls how input is split into a table
type ParseConfig struct {
	Delimiter      string   `yaml:"delimiter" envconfig:"DELIMITER" validate:"omitempty,delimiter"`
	Sniff          bool     `yaml:"sniff" envconfig:"SNIFF"`
	NoHeader       bool     `yaml:"no_header" envconfig:"NO_HEADER"`
	KeepBlankLines bool     `yaml:"keep_blank_lines" envconfig:"KEEP_BLANK_LINES"`
	MissingTokens  []string `yaml:"missing_tokens" envconfig:"MISSING_TOKENS"`
	Sheet          string   `yaml:"sheet" envconfig:"SHEET"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Preview: PreviewConfig{
			Limit:        render.DefaultLimit,
			Align:        "right",
			MissingToken: render.DefaultMissingToken,
			MaxColWidth:  render.DefaultMaxColWidth,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path,
// then CSVPEEK_* environment variables. An empty path falls back to
// $CSVPEEK_CONFIG and then to ./csvpeek.yaml if it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultConfigFile
	}

	if err := loadFromFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Variables that are not set leave the field untouched.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile overlays the YAML file at path onto cfg
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate lower-cases the enumerated fields and checks field constraints.
func (c *Config) Validate() error {
	c.normalize()

	v := validator.New()
	if err := v.RegisterValidation("delimiter", isDelimiter); err != nil {
		return err
	}
	return v.Struct(c)
}

func (c *Config) normalize() {
	c.Preview.Align = strings.ToLower(strings.TrimSpace(c.Preview.Align))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

func isDelimiter(fl validator.FieldLevel) bool {
	_, err := ParseDelimiter(fl.Field().String())
	return err == nil
}

// ParseDelimiter accepts a single ASCII character or the names "tab",
// "comma", "semicolon" and "pipe". An empty string yields 0.
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	}
	if len(s) != 1 || s[0] >= 0x80 || s[0] == '"' || s[0] == '\n' || s[0] == '\r' {
		return 0, fmt.Errorf("%w: %q", csvpeek.ErrInvalidDelimiter, s)
	}
	return rune(s[0]), nil
}

// ParseOptions converts the parse section into library options.
func (c *Config) ParseOptions() (csvpeek.Options, error) {
	delim, err := ParseDelimiter(c.Parse.Delimiter)
	if err != nil {
		return csvpeek.Options{}, err
	}
	skip := !c.Parse.KeepBlankLines
	opts := csvpeek.DefaultOptions()
	opts.Delimiter = delim
	opts.SniffDelimiter = c.Parse.Sniff
	opts.NoHeader = c.Parse.NoHeader
	opts.SkipBlankLines = &skip
	opts.MissingTokens = c.Parse.MissingTokens
	opts.Sheet = c.Parse.Sheet
	return opts, nil
}

// PreviewOptions converts the preview section into library options.
func (c *Config) PreviewOptions() (csvpeek.PreviewOptions, error) {
	align, err := render.ParseAlign(c.Preview.Align)
	if err != nil {
		return csvpeek.PreviewOptions{}, err
	}
	return csvpeek.PreviewOptions{
		Limit:        c.Preview.Limit,
		Align:        align,
		MissingToken: c.Preview.MissingToken,
		MaxColWidth:  c.Preview.MaxColWidth,
		ShowIndex:    c.Preview.ShowIndex,
	}, nil
}
