package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/frherrer/go-testsheet/internal/config"
	"github.com/frherrer/go-testsheet/internal/converter"
	"github.com/frherrer/go-testsheet/internal/generator"
	"github.com/frherrer/go-testsheet/internal/parser"
	"github.com/frherrer/go-testsheet/internal/report"
	"github.com/frherrer/go-testsheet/internal/scanner"
)

var (
	cfgFile string
	verbose bool
	dryRun  bool
	log     *logrus.Logger
)

// rootCmd is the base command for testsheet.
var rootCmd = &cobra.Command{
	Use:   "testsheet <path>",
	Short: "Compile tagged test-script comments into a spreadsheet report",
	Long: `testsheet scans test scripts for tagged comments (Description,
Precondition, Step, Expected Output) and compiles them into an Excel
report, one row group per test function.

The input is a single test script or a directory of them. Optional
settings are read from testsheet.yaml.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
		applyLogLevel(cfg)
		if dryRun {
			cfg.DryRun = true
		}

		log.Debugf("Include patterns: %v", cfg.Input.Include)
		return runGenerate(cfg, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "scan and assemble but don't write the spreadsheet")

	log = logrus.New()
	log.SetOutput(os.Stderr)
}

// loadConfig reads the config file. A missing file at the default path falls
// back to defaults; an explicitly given missing path is an error.
func loadConfig() (*config.Config, error) {
	if cfgFile == config.DefaultConfigFile {
		if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
			return config.DefaultConfig(), nil
		}
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// applyLogLevel sets the logrus level from config unless --verbose won.
func applyLogLevel(cfg *config.Config) {
	if verbose {
		return
	}
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		log.SetLevel(level)
	}
}

// runGenerate wires all components and runs the generator.
func runGenerate(cfg *config.Config, inputPath string) error {
	recursive := true
	if cfg.Input.Recursive != nil {
		recursive = *cfg.Input.Recursive
	}
	s := scanner.NewScanner(recursive)

	registry := parser.NewRegistry()
	py, err := parser.NewPythonParser(cfg.Parser.FunctionPattern)
	if err != nil {
		return fmt.Errorf("failed to create python parser: %w", err)
	}
	registry.Register(py)

	fallbackPattern := cfg.Parser.FallbackFunctionPattern
	if fallbackPattern == "" {
		fallbackPattern = parser.DefaultFallbackFunctionPattern
	}
	cp, err := parser.NewCommentParser(fallbackPattern)
	if err != nil {
		return fmt.Errorf("failed to create fallback parser: %w", err)
	}
	registry.Register(cp)
	registry.SetFallback(cp)

	asm := converter.NewAssembler()
	writer := report.NewExcelWriter(report.Options{
		SheetName:    cfg.Output.SheetName,
		SheetPerFile: cfg.Output.SheetPerFile,
		ColumnWidth:  cfg.Output.ColumnWidth,
		HeaderFill:   cfg.Output.HeaderFill,
	})

	gen := generator.NewGenerator(s, registry, asm, writer, log)
	return gen.Run(cfg, inputPath)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
