package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/frherrer/go-testsheet/internal/domain"
)

// DefaultFallbackFunctionPattern matches shell-style function definitions,
// e.g. "test_backup() {" or "function test_backup() {".
const DefaultFallbackFunctionPattern = `^\s*(?:function\s+)?([A-Za-z_]\w*)\s*\(\)\s*\{`

// CommentParser is the fallback for scripts without triple-quoted literals.
// It only recognizes single-line "# <Label>:" comment tags, with a
// configurable function-definition pattern.
type CommentParser struct {
	funcPattern *regexp.Regexp
}

// NewCommentParser creates a CommentParser with the given function-definition
// pattern. The pattern must contain one capture group for the function name.
func NewCommentParser(funcPattern string) (*CommentParser, error) {
	re, err := regexp.Compile(funcPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid fallback function pattern: %w", err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("fallback function pattern %q must capture the function name", funcPattern)
	}
	return &CommentParser{funcPattern: re}, nil
}

// SupportedExtensions returns the file extensions this parser handles.
func (p *CommentParser) SupportedExtensions() []string {
	return []string{".sh", ".bash"}
}

// Parse scans the script line by line, with the same held-back handling of
// fragments that appear before the first function as the Python parser.
func (p *CommentParser) Parse(filePath string, content []byte) []domain.TagFragment {
	lines := strings.Split(string(content), "\n")

	var frags []domain.TagFragment
	var pending []domain.TagFragment
	current := ""

	for i, line := range lines {
		if m := p.funcPattern.FindStringSubmatch(line); m != nil {
			current = m[1]
			for _, f := range pending {
				f.Function = current
				frags = append(frags, f)
			}
			pending = nil
			continue
		}

		m := tagLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		f := domain.TagFragment{
			Kind:     domain.TagKind(m[1]),
			Text:     strings.TrimSpace(m[2]),
			Function: current,
			Line:     i + 1,
		}
		if current == "" {
			pending = append(pending, f)
			continue
		}
		frags = append(frags, f)
	}

	return frags
}
