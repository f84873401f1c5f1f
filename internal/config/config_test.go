package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/go-testsheet/internal/config"
)

var _ = Describe("Config", func() {
	Describe("Load", func() {
		It("should load minimal config and keep defaults for unset fields", func() {
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "minimal.yaml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg).ToNot(BeNil())
			Expect(cfg.Input.Include).To(Equal([]string{"test_*.py"}))
			Expect(cfg.Output.Suffix).To(Equal("_test_documentation.xlsx"))
			Expect(cfg.Output.SheetName).To(Equal("Test Cases"))
		})

		It("should load full config", func() {
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "full.yaml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg).ToNot(BeNil())
			Expect(cfg.Input.Include).To(ContainElements("test_*.py", "*_test.sh"))
			Expect(cfg.Input.Exclude).To(ContainElement("site-packages/**"))
			Expect(*cfg.Input.Recursive).To(BeTrue())
			Expect(cfg.Parser.FunctionPattern).To(ContainSubstring("def"))
			Expect(cfg.Output.HeaderFill).To(Equal("D3D3D3"))
			Expect(cfg.Logging.Level).To(Equal("debug"))
		})

		It("should return error for nonexistent file", func() {
			_, err := config.Load("nonexistent.yaml")
			Expect(err).To(HaveOccurred())
		})

		It("should return error for invalid YAML", func() {
			tmpFile := filepath.Join(os.TempDir(), "invalid_testsheet.yaml")
			err := os.WriteFile(tmpFile, []byte("{{invalid yaml}}"), 0644)
			Expect(err).ToNot(HaveOccurred())
			defer os.Remove(tmpFile)

			_, loadErr := config.Load(tmpFile)
			Expect(loadErr).To(HaveOccurred())
		})
	})

	Describe("DefaultConfig", func() {
		It("should return config with sensible defaults", func() {
			cfg := config.DefaultConfig()
			Expect(cfg).ToNot(BeNil())
			Expect(cfg.Input.Include).To(ContainElement("test_*.py"))
			Expect(cfg.Input.Exclude).To(ContainElement("site-packages/**"))
			Expect(*cfg.Input.Recursive).To(BeTrue())
			Expect(cfg.Output.Directory).To(Equal("."))
			Expect(cfg.Output.Suffix).To(Equal("_test_documentation.xlsx"))
			Expect(cfg.Output.SheetPerFile).To(BeFalse())
			Expect(cfg.Output.ColumnWidth).To(BeNumerically("==", 30))
			Expect(cfg.Logging.Level).To(Equal("info"))
		})
	})

	Describe("Validate", func() {
		It("should pass for the default config", func() {
			Expect(config.Validate(config.DefaultConfig())).To(Succeed())
		})

		It("should pass for the full config fixture", func() {
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "full.yaml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(config.Validate(cfg)).To(Succeed())
		})

		It("should fail if include patterns are empty", func() {
			cfg := config.DefaultConfig()
			cfg.Input.Include = nil
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("input.include"))
		})

		It("should fail for an invalid function pattern", func() {
			cfg := config.DefaultConfig()
			cfg.Parser.FunctionPattern = "[invalid"
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("parser.function_pattern"))
		})

		It("should fail if the output suffix doesn't end with .xlsx", func() {
			cfg := config.DefaultConfig()
			cfg.Output.Suffix = "_report.csv"
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("output.suffix"))
		})

		It("should fail for a malformed header fill", func() {
			cfg := config.DefaultConfig()
			cfg.Output.HeaderFill = "grey"
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("output.header_fill"))
		})

		It("should fail for invalid log level", func() {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = "verbose"
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("logging.level"))
		})
	})
})
