package generator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/frherrer/go-testsheet/internal/config"
	"github.com/frherrer/go-testsheet/internal/converter"
	"github.com/frherrer/go-testsheet/internal/domain"
	"github.com/frherrer/go-testsheet/internal/parser"
	"github.com/frherrer/go-testsheet/internal/report"
	"github.com/frherrer/go-testsheet/internal/scanner"
)

// Generator is the top-level orchestrator.
type Generator interface {
	Run(cfg *config.Config, inputPath string) error
}

// DefaultGenerator implements Generator by wiring all components together.
type DefaultGenerator struct {
	scanner   scanner.Scanner
	registry  parser.ParserRegistry
	assembler converter.Assembler
	writer    report.Writer
	log       *logrus.Logger
}

// NewGenerator creates a new DefaultGenerator with all dependencies.
func NewGenerator(
	s scanner.Scanner,
	r parser.ParserRegistry,
	a converter.Assembler,
	w report.Writer,
	log *logrus.Logger,
) *DefaultGenerator {
	return &DefaultGenerator{
		scanner:   s,
		registry:  r,
		assembler: a,
		writer:    w,
		log:       log,
	}
}

// Run executes the full pipeline: discover → extract → assemble → write.
//
// A missing input path is fatal. An unreadable file among several discovered
// ones only produces a warning and is skipped, so one broken file never sinks
// the whole report. Zero assembled records means no output file is written.
func (g *DefaultGenerator) Run(cfg *config.Config, inputPath string) error {
	info, err := os.Stat(inputPath)
	if err != nil {
		return domain.NewErrorWithSuggestion("scan", inputPath, 0,
			"input path does not exist",
			"pass a test script file or a directory containing test scripts",
			err)
	}

	var files []string
	if info.IsDir() {
		g.log.Debugf("Scanning directory: %s", inputPath)
		files, err = g.scanner.Scan(inputPath, cfg.Input.Include, cfg.Input.Exclude)
		if err != nil {
			return err
		}
	} else {
		files = []string{inputPath}
	}

	if len(files) == 0 {
		g.log.Warn("No test script files found")
		return nil
	}
	g.log.Infof("Found %d test script file(s)", len(files))

	var records []domain.TestCaseRecord
	for _, filePath := range files {
		g.log.Debugf("Processing: %s", filePath)

		content, err := os.ReadFile(filePath)
		if err != nil {
			g.log.Warnf("Skipping unreadable file %s: %v", filePath, err)
			continue
		}

		p, err := g.registry.ParserFor(filepath.Ext(filePath))
		if err != nil {
			g.log.Warnf("No parser for %s, skipping %s", filepath.Ext(filePath), filePath)
			continue
		}

		fragments := p.Parse(filePath, content)
		if len(fragments) == 0 {
			g.log.Debugf("No tagged comments found in %s", filePath)
			continue
		}
		g.log.Debugf("Found %d tag fragment(s) in %s", len(fragments), filePath)

		records = append(records, g.assembler.Assemble(filePath, fragments)...)
	}

	if len(records) == 0 {
		g.log.Warn("No tagged test cases found, nothing to write")
		return nil
	}

	rowCount := 0
	for _, rec := range records {
		rows := len(rec.Pairs)
		if rows == 0 {
			rows = 1
		}
		rowCount += rows
	}

	outputPath := OutputPath(inputPath, cfg.Output.Directory, cfg.Output.Suffix)
	if cfg.DryRun {
		g.log.Infof("[DRY-RUN] Would write %d test case(s) (%d row(s)) to %s", len(records), rowCount, outputPath)
		return nil
	}

	if err := g.writer.Write(records, outputPath); err != nil {
		return err
	}
	g.log.Infof("Wrote %d test case(s) (%d row(s)) to %s", len(records), rowCount, outputPath)
	return nil
}

// OutputPath derives the spreadsheet path from the input path: the input's
// basename without extension plus the configured suffix, placed in dir.
func OutputPath(inputPath, dir, suffix string) string {
	base := filepath.Base(filepath.Clean(inputPath))
	if base == "." || base == string(filepath.Separator) {
		if abs, err := filepath.Abs(inputPath); err == nil {
			base = filepath.Base(abs)
		}
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+suffix)
}
