package domain

// TagKind identifies which tag label a fragment was parsed from.
type TagKind string

const (
	TagDescription    TagKind = "Description"
	TagPrecondition   TagKind = "Precondition"
	TagStep           TagKind = "Step"
	TagExpectedOutput TagKind = "Expected Output"
)

// TagFragment is a single parsed tag occurrence in a test script.
type TagFragment struct {
	Kind     TagKind
	Text     string // tag content, trimmed; may span lines for quoted tags
	Function string // owning test function name
	Line     int    // 1-based line number where the tag begins
}

// StepPair is one step/expected-output pairing within a test case.
// Either side may be blank when the step and output counts differ.
type StepPair struct {
	Step     string
	Expected string
}

// TestCaseRecord is the flattened, export-ready form of one test case.
// Pairs preserve the order the steps and outputs appeared in source.
type TestCaseRecord struct {
	File         string
	Function     string
	Description  string
	Precondition string
	Pairs        []StepPair
}
