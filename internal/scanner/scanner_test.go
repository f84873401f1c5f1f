package scanner_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/go-testsheet/internal/scanner"
)

var _ = Describe("Scanner", func() {
	var (
		s          *scanner.FileScanner
		scriptsDir string
	)

	BeforeEach(func() {
		s = scanner.NewScanner(true)
		scriptsDir = filepath.Join("..", "..", "testdata", "scripts")
	})

	It("should find python test scripts matching the include pattern", func() {
		files, err := s.Scan(scriptsDir, []string{"test_*.py"}, []string{"site-packages/**"})
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(2))
		Expect(filepath.Base(files[0])).To(Equal("test_checkout.py"))
		Expect(filepath.Base(files[1])).To(Equal("test_login.py"))
	})

	It("should skip directories matching an exclude pattern", func() {
		withExclude, err := s.Scan(scriptsDir, []string{"test_*.py"}, []string{"site-packages/**"})
		Expect(err).ToNot(HaveOccurred())
		withoutExclude, err := s.Scan(scriptsDir, []string{"test_*.py"}, nil)
		Expect(err).ToNot(HaveOccurred())

		Expect(withoutExclude).To(HaveLen(3))
		Expect(withExclude).To(HaveLen(2))
		for _, f := range withExclude {
			Expect(f).ToNot(ContainSubstring("site-packages"))
		}
	})

	It("should match multiple include patterns", func() {
		files, err := s.Scan(scriptsDir, []string{"test_*.py", "*_test.sh"}, []string{"site-packages/**"})
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(3))
		Expect(filepath.Base(files[0])).To(Equal("backup_test.sh"))
	})

	It("should exclude individual files by name", func() {
		files, err := s.Scan(scriptsDir, []string{"test_*.py"}, []string{"site-packages/**", "test_login.py"})
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(1))
		Expect(filepath.Base(files[0])).To(Equal("test_checkout.py"))
	})

	It("should not descend into subdirectories in non-recursive mode", func() {
		s = scanner.NewScanner(false)
		files, err := s.Scan(filepath.Join("..", "..", "testdata"), []string{"test_*.py"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(BeEmpty())
	})

	It("should return error for nonexistent directory", func() {
		_, err := s.Scan("nonexistent_dir", []string{"test_*.py"}, nil)
		Expect(err).To(HaveOccurred())
	})
})
