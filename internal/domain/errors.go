package domain

import "fmt"

// SheetError is the base error type with context.
type SheetError struct {
	Phase      string // "config", "scan", "parse", "assemble", "write"
	File       string
	LineNumber int
	Message    string
	Suggestion string
	Cause      error
}

func (e *SheetError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.File != "" {
		s += fmt.Sprintf(" %s", e.File)
	}
	if e.LineNumber > 0 {
		s += fmt.Sprintf(":%d", e.LineNumber)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	if e.Suggestion != "" {
		s += fmt.Sprintf(" (hint: %s)", e.Suggestion)
	}
	return s
}

func (e *SheetError) Unwrap() error {
	return e.Cause
}

// NewError creates a new SheetError.
func NewError(phase, file string, line int, message string, cause error) *SheetError {
	return &SheetError{
		Phase:      phase,
		File:       file,
		LineNumber: line,
		Message:    message,
		Cause:      cause,
	}
}

// NewErrorWithSuggestion creates a new SheetError carrying a user-facing hint.
func NewErrorWithSuggestion(phase, file string, line int, message, suggestion string, cause error) *SheetError {
	return &SheetError{
		Phase:      phase,
		File:       file,
		LineNumber: line,
		Message:    message,
		Suggestion: suggestion,
		Cause:      cause,
	}
}
