package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/frherrer/go-testsheet/internal/domain"
)

// DefaultFunctionPattern matches a Python function-definition line and
// captures the function name.
const DefaultFunctionPattern = `^\s*def\s+(\w+)\s*\(`

// PythonParser extracts tagged comments from Python test scripts. It
// recognizes single-line "# <Label>:" comments and triple-quoted literals
// whose body starts with "<Label>:".
type PythonParser struct {
	funcPattern *regexp.Regexp
}

// NewPythonParser creates a PythonParser with the given function-definition
// pattern. The pattern must contain one capture group for the function name.
func NewPythonParser(funcPattern string) (*PythonParser, error) {
	re, err := regexp.Compile(funcPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid function pattern: %w", err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("function pattern %q must capture the function name", funcPattern)
	}
	return &PythonParser{funcPattern: re}, nil
}

// SupportedExtensions returns the file extensions this parser handles.
func (p *PythonParser) SupportedExtensions() []string {
	return []string{".py"}
}

// Parse scans the script line by line and returns the tag fragments in
// source order, each owned by its enclosing test function.
//
// Fragments found before the first function definition are held back and
// assigned to the next function that opens, matching the convention of
// writing a Description comment directly above the "def" line. Held-back
// fragments with no following function are dropped.
func (p *PythonParser) Parse(filePath string, content []byte) []domain.TagFragment {
	lines := strings.Split(string(content), "\n")

	var frags []domain.TagFragment
	var pending []domain.TagFragment
	current := ""

	emit := func(kind domain.TagKind, text string, line int) {
		f := domain.TagFragment{Kind: kind, Text: text, Function: current, Line: line}
		if current == "" {
			pending = append(pending, f)
			return
		}
		frags = append(frags, f)
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if m := p.funcPattern.FindStringSubmatch(line); m != nil {
			current = m[1]
			for _, f := range pending {
				f.Function = current
				frags = append(frags, f)
			}
			pending = nil
			continue
		}

		trimmed := strings.TrimSpace(line)
		if delim := quoteDelim(trimmed); delim != "" {
			body := strings.TrimSpace(strings.TrimPrefix(trimmed, delim))
			m := tagOpenRe.FindStringSubmatch(body)
			if m == nil {
				continue
			}
			kind := domain.TagKind(m[1])
			startLine := i + 1
			first := m[2]

			if idx := strings.Index(first, delim); idx >= 0 {
				// Opening and closing delimiter on the same line.
				emit(kind, strings.TrimSpace(first[:idx]), startLine)
				continue
			}

			parts := []string{strings.TrimSpace(first)}
			for i++; i < len(lines); i++ {
				l := lines[i]
				if idx := strings.Index(l, delim); idx >= 0 {
					if rest := strings.TrimSpace(l[:idx]); rest != "" {
						parts = append(parts, rest)
					}
					break
				}
				parts = append(parts, strings.TrimSpace(l))
			}
			emit(kind, strings.TrimSpace(strings.Join(parts, "\n")), startLine)
			continue
		}

		if m := tagLineRe.FindStringSubmatch(line); m != nil {
			emit(domain.TagKind(m[1]), strings.TrimSpace(m[2]), i+1)
		}
	}

	return frags
}

// quoteDelim reports the triple-quote delimiter opening the line, or "".
func quoteDelim(trimmed string) string {
	if strings.HasPrefix(trimmed, `"""`) {
		return `"""`
	}
	if strings.HasPrefix(trimmed, "'''") {
		return "'''"
	}
	return ""
}
