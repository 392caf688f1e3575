package result

import "fmt"

// ResultState is the executed verdict of a node. It is distinct from
// RunState: a test that was Runnable before the run may still end up
// Skipped, and an Ignored test produces an Ignored verdict.
type ResultState int

const (
	StateInconclusive ResultState = iota
	StateNotRunnable
	StateSkipped
	StateIgnored
	StateSuccess
	StateFailure
	StateError
	StateCancelled
)

// String returns the verdict name.
func (s ResultState) String() string {
	switch s {
	case StateInconclusive:
		return "Inconclusive"
	case StateNotRunnable:
		return "NotRunnable"
	case StateSkipped:
		return "Skipped"
	case StateIgnored:
		return "Ignored"
	case StateSuccess:
		return "Success"
	case StateFailure:
		return "Failure"
	case StateError:
		return "Error"
	case StateCancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("ResultState(%d)", int(s))
}

// ParseResultState maps a verdict name back to its ResultState.
func ParseResultState(s string) (ResultState, error) {
	switch s {
	case "Inconclusive":
		return StateInconclusive, nil
	case "NotRunnable":
		return StateNotRunnable, nil
	case "Skipped":
		return StateSkipped, nil
	case "Ignored":
		return StateIgnored, nil
	case "Success":
		return StateSuccess, nil
	case "Failure":
		return StateFailure, nil
	case "Error":
		return StateError, nil
	case "Cancelled":
		return StateCancelled, nil
	}
	return StateInconclusive, fmt.Errorf("unknown result state %q", s)
}

// FailureSite identifies the phase that produced a failure. SiteTest is
// the default and is never rendered explicitly.
type FailureSite int

const (
	SiteTest FailureSite = iota
	SiteSetUp
	SiteTearDown
	SiteParent
	SiteChild
)

// String returns the site name rendered into the site attribute.
func (s FailureSite) String() string {
	switch s {
	case SiteTest:
		return "Test"
	case SiteSetUp:
		return "SetUp"
	case SiteTearDown:
		return "TearDown"
	case SiteParent:
		return "Parent"
	case SiteChild:
		return "Child"
	}
	return fmt.Sprintf("FailureSite(%d)", int(s))
}

// ParseFailureSite maps a site name back to its FailureSite.
func ParseFailureSite(s string) (FailureSite, error) {
	switch s {
	case "Test":
		return SiteTest, nil
	case "SetUp":
		return SiteSetUp, nil
	case "TearDown":
		return SiteTearDown, nil
	case "Parent":
		return SiteParent, nil
	case "Child":
		return SiteChild, nil
	}
	return SiteTest, fmt.Errorf("unknown failure site %q", s)
}

// TestResult carries the outcome of one executed node. Children mirror
// Node.Children in arity and order. Message and StackTrace are
// independently optional; the empty string means absent.
type TestResult struct {
	Node        *TestNode
	State       ResultState
	Site        FailureSite
	Elapsed     float64 // seconds
	AssertCount int
	Message     string
	StackTrace  string
	Children    []*TestResult
}
