package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"namesplit/pkg/parser"
	"namesplit/pkg/schema"
)

// Config holds all namesplit configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Parser  ParserConfig  `yaml:"parser"`
	Schema  SchemaConfig  `yaml:"schema"`
	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
}

// InputConfig locates the name field and decodes the source table.
type InputConfig struct {
	NameColumn int    `yaml:"name_column"` // 1-based
	NameHeader string `yaml:"name_header"` // overrides name_column when set
	Encoding   string `yaml:"encoding"`    // auto, utf-8, utf-16le, windows-1252, ...
	Sheet      string `yaml:"sheet"`       // xlsx only; first sheet when empty
}

// OutputConfig controls the written table.
type OutputConfig struct {
	Format string `yaml:"format"` // csv, xlsx; empty = by extension
	Sheet  string `yaml:"sheet"`
}

// ParserConfig toggles the optional cleaning and parsing behaviour.
type ParserConfig struct {
	FoldDiacritics bool `yaml:"fold_diacritics"`
	StripTitles    bool `yaml:"strip_titles"`
	RomanSuffixes  bool `yaml:"roman_suffixes"`
}

// SchemaConfig names the administrative and computed columns.
type SchemaConfig struct {
	AdminColumns []string `yaml:"admin_columns"`
	NameColumns  []string `yaml:"name_columns"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`
}

// ReportConfig configures the run summary.
type ReportConfig struct {
	Summary string `yaml:"summary"` // path; .yaml/.yml for YAML, JSON otherwise
}

var (
	validOutputFormats = []string{"", "csv", "xlsx"}
	validLogLevels     = []string{"debug", "info", "warn", "error"}
	validLogFormats    = []string{"json", "console"}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			NameColumn: 1,
			Encoding:   string(parser.EncodingAuto),
		},
		Output: OutputConfig{
			Sheet: "Sheet1",
		},
		Parser: ParserConfig{
			FoldDiacritics: true,
			StripTitles:    true,
		},
		Schema: SchemaConfig{
			AdminColumns: schema.DefaultAdminColumns.Clone(),
			NameColumns:  schema.DefaultNameColumns.Clone(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// DefaultFile is read from the working directory when no config path is given.
const DefaultFile = "namesplit.yaml"

// LoadFile is Load for a path the user named explicitly: the file must exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Load(path)
}

// Load reads path over the defaults. A missing file is not an error.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("NAMESPLIT_NAME_COLUMN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NAMESPLIT_NAME_COLUMN: %w", err)
		}
		c.Input.NameColumn = n
	}
	if v := os.Getenv("NAMESPLIT_NAME_HEADER"); v != "" {
		c.Input.NameHeader = v
	}
	if v := os.Getenv("NAMESPLIT_ENCODING"); v != "" {
		c.Input.Encoding = v
	}
	if v := os.Getenv("NAMESPLIT_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("NAMESPLIT_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	return nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Input.NameHeader == "" && c.Input.NameColumn < 1 {
		return fmt.Errorf("input.name_column must be >= 1, got %d", c.Input.NameColumn)
	}
	if _, err := parser.ParseEncoding(c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: %w", err)
	}
	if !oneOf(c.Output.Format, validOutputFormats) {
		return fmt.Errorf("invalid output.format: %s (valid: csv, xlsx)", c.Output.Format)
	}
	if len(c.Schema.NameColumns) != 4 {
		return fmt.Errorf("schema.name_columns needs exactly 4 names, got %d", len(c.Schema.NameColumns))
	}
	if !oneOf(c.Logging.Level, validLogLevels) {
		return fmt.Errorf("invalid logging.level: %s (valid: %v)", c.Logging.Level, validLogLevels)
	}
	if !oneOf(c.Logging.Format, validLogFormats) {
		return fmt.Errorf("invalid logging.format: %s (valid: %v)", c.Logging.Format, validLogFormats)
	}
	return nil
}

// Reconciler builds the schema reconciler for the configured column sets.
func (c *Config) Reconciler() (*schema.Reconciler, error) {
	return schema.NewReconciler(schema.ColumnSet(c.Schema.AdminColumns), schema.ColumnSet(c.Schema.NameColumns))
}

func oneOf(v string, valid []string) bool {
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}
