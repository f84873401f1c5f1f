package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/frherrer/go-testsheet/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Parser  ParserConfig  `yaml:"parser"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	DryRun  bool          `yaml:"dry_run"`
}

type InputConfig struct {
	Include   []string `yaml:"include"`
	Exclude   []string `yaml:"exclude"`
	Recursive *bool    `yaml:"recursive"` // pointer to distinguish unset from false
}

type ParserConfig struct {
	FunctionPattern         string `yaml:"function_pattern"`
	FallbackFunctionPattern string `yaml:"fallback_function_pattern"`
}

type OutputConfig struct {
	Directory    string  `yaml:"directory"`
	Suffix       string  `yaml:"suffix"`
	SheetName    string  `yaml:"sheet_name"`
	SheetPerFile bool    `yaml:"sheet_per_file"`
	ColumnWidth  float64 `yaml:"column_width"`
	HeaderFill   string  `yaml:"header_fill"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML configuration file and returns a Config. Values not set
// in the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", path, 0, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", path, 0, "failed to parse config file", err)
	}

	return cfg, nil
}
