package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/frherrer/go-testsheet/internal/domain"
)

var hexFillRe = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	if len(cfg.Input.Include) == 0 {
		errs = append(errs, "input.include must not be empty")
	}

	if cfg.Parser.FunctionPattern == "" {
		errs = append(errs, "parser.function_pattern must not be empty")
	} else if _, err := regexp.Compile(cfg.Parser.FunctionPattern); err != nil {
		errs = append(errs, fmt.Sprintf("parser.function_pattern is not a valid regex: %v", err))
	}
	if cfg.Parser.FallbackFunctionPattern != "" {
		if _, err := regexp.Compile(cfg.Parser.FallbackFunctionPattern); err != nil {
			errs = append(errs, fmt.Sprintf("parser.fallback_function_pattern is not a valid regex: %v", err))
		}
	}

	if cfg.Output.Directory == "" {
		errs = append(errs, "output.directory must not be empty")
	}
	if cfg.Output.Suffix == "" {
		errs = append(errs, "output.suffix must not be empty")
	}
	if !strings.HasSuffix(cfg.Output.Suffix, ".xlsx") {
		errs = append(errs, "output.suffix must end with .xlsx")
	}
	if !cfg.Output.SheetPerFile && cfg.Output.SheetName == "" {
		errs = append(errs, "output.sheet_name must not be empty")
	}
	if cfg.Output.ColumnWidth <= 0 {
		errs = append(errs, "output.column_width must be positive")
	}
	if cfg.Output.HeaderFill != "" && !hexFillRe.MatchString(cfg.Output.HeaderFill) {
		errs = append(errs, fmt.Sprintf("output.header_fill must be a 6-digit hex color (got %q)", cfg.Output.HeaderFill))
	}

	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", 0, fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
