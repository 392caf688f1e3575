// Package result defines the in-memory test tree consumed by the
// nunit3 serializer: test definitions with run states and properties,
// and the execution results attached to them after a run.
//
// The tree is produced in full by the test execution engine before it
// reaches this module; nothing here mutates it.
package result

import "fmt"

// RunState describes whether a test definition is eligible to execute.
type RunState int

const (
	// Runnable marks a test that can be executed.
	Runnable RunState = iota
	// NotRunnable marks a test that is invalid and can never run.
	NotRunnable
	// Explicit marks a test that only runs when selected directly.
	Explicit
	// Ignored marks a test excluded from runs until further notice.
	Ignored
	// Skipped marks a test excluded from the current run.
	Skipped
)

// String returns the vocabulary word rendered into the runstate attribute.
func (s RunState) String() string {
	switch s {
	case Runnable:
		return "Runnable"
	case NotRunnable:
		return "NotRunnable"
	case Explicit:
		return "Explicit"
	case Ignored:
		return "Ignored"
	case Skipped:
		return "Skipped"
	}
	return fmt.Sprintf("RunState(%d)", int(s))
}

// ParseRunState maps a vocabulary word back to its RunState.
func ParseRunState(s string) (RunState, error) {
	switch s {
	case "Runnable":
		return Runnable, nil
	case "NotRunnable":
		return NotRunnable, nil
	case "Explicit":
		return Explicit, nil
	case "Ignored":
		return Ignored, nil
	case "Skipped":
		return Skipped, nil
	}
	return Runnable, fmt.Errorf("unknown run state %q", s)
}

// TestNode is a single node of the definition tree: a suite when Suite
// is true (and then it owns Children), otherwise a leaf case.
type TestNode struct {
	ID         int
	Name       string
	FullName   string
	Suite      bool
	TestType   string // suites only, e.g. "TestFixture" or "Assembly"
	RunState   RunState
	Properties *PropertyBag
	Children   []*TestNode // suites only
}

// TestCaseCount returns the number of leaf cases under the node.
// A case counts as one; a suite sums over its children.
func (n *TestNode) TestCaseCount() int {
	if !n.Suite {
		return 1
	}
	count := 0
	for _, child := range n.Children {
		count += child.TestCaseCount()
	}
	return count
}
