package config

import "github.com/frherrer/go-testsheet/internal/parser"

// DefaultConfigFile is the config path probed when --config is not given.
const DefaultConfigFile = "testsheet.yaml"

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	recursive := true
	return &Config{
		Input: InputConfig{
			Include:   []string{"test_*.py"},
			Exclude:   []string{"site-packages/**", "vendor/**", "node_modules/**"},
			Recursive: &recursive,
		},
		Parser: ParserConfig{
			FunctionPattern:         parser.DefaultFunctionPattern,
			FallbackFunctionPattern: parser.DefaultFallbackFunctionPattern,
		},
		Output: OutputConfig{
			Directory:    ".",
			Suffix:       "_test_documentation.xlsx",
			SheetName:    "Test Cases",
			SheetPerFile: false,
			ColumnWidth:  30,
			HeaderFill:   "D3D3D3",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		DryRun: false,
	}
}
