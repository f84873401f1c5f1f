package converter

import (
	"github.com/frherrer/go-testsheet/internal/domain"
)

// Assembler groups a file's tag fragments into flat test-case records.
type Assembler interface {
	Assemble(filePath string, fragments []domain.TagFragment) []domain.TestCaseRecord
}

// DefaultAssembler implements Assembler.
type DefaultAssembler struct{}

// NewAssembler creates a new DefaultAssembler.
func NewAssembler() *DefaultAssembler {
	return &DefaultAssembler{}
}

// Assemble produces one TestCaseRecord per distinct function name, in
// first-seen order. The first Description and Precondition fragments win;
// later ones are ignored. Steps and expected outputs are collected into two
// ordered lists and zipped positionally, padding the shorter list with
// blanks. Fragments without an owning function are discarded.
func (a *DefaultAssembler) Assemble(filePath string, fragments []domain.TagFragment) []domain.TestCaseRecord {
	var order []string
	groups := make(map[string][]domain.TagFragment)
	for _, f := range fragments {
		if f.Function == "" {
			continue
		}
		if _, seen := groups[f.Function]; !seen {
			order = append(order, f.Function)
		}
		groups[f.Function] = append(groups[f.Function], f)
	}

	var records []domain.TestCaseRecord
	for _, name := range order {
		rec := domain.TestCaseRecord{File: filePath, Function: name}

		var steps, outputs []string
		descSet, precondSet := false, false
		for _, f := range groups[name] {
			switch f.Kind {
			case domain.TagDescription:
				if !descSet {
					rec.Description = f.Text
					descSet = true
				}
			case domain.TagPrecondition:
				if !precondSet {
					rec.Precondition = f.Text
					precondSet = true
				}
			case domain.TagStep:
				steps = append(steps, f.Text)
			case domain.TagExpectedOutput:
				outputs = append(outputs, f.Text)
			}
		}

		rec.Pairs = zipPairs(steps, outputs)
		records = append(records, rec)
	}

	return records
}

// zipPairs pairs the Nth step with the Nth expected output regardless of how
// they interleaved in source. The result has max(len(steps), len(outputs))
// entries, blank-padded on the shorter side.
func zipPairs(steps, outputs []string) []domain.StepPair {
	n := len(steps)
	if len(outputs) > n {
		n = len(outputs)
	}
	if n == 0 {
		return nil
	}

	pairs := make([]domain.StepPair, n)
	for i := 0; i < n; i++ {
		if i < len(steps) {
			pairs[i].Step = steps[i]
		}
		if i < len(outputs) {
			pairs[i].Expected = outputs[i]
		}
	}
	return pairs
}
