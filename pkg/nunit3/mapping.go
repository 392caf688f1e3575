package nunit3

import (
	"fmt"

	"github.com/resultfmt/nunit3xml/pkg/result"
)

// mapState translates an executed verdict into the result/label
// attribute pair of the v3 vocabulary. The label is empty when the new
// vocabulary has no label for the state; callers must omit the
// attribute then, never emit it empty.
//
// The switch is exhaustive over result.ResultState. A value outside the
// enum is a programming error in the caller's enum set, not a runtime
// condition, so it panics instead of mapping to a fallback.
func mapState(state result.ResultState) (res, label string) {
	switch state {
	case result.StateInconclusive:
		return "Inconclusive", ""
	case result.StateNotRunnable:
		return "Failed", "Invalid"
	case result.StateSkipped:
		return "Skipped", ""
	case result.StateIgnored:
		return "Skipped", "Ignored"
	case result.StateSuccess:
		return "Passed", ""
	case result.StateFailure:
		return "Failed", ""
	case result.StateError:
		return "Failed", "Error"
	case result.StateCancelled:
		return "Failed", "Cancelled"
	}
	panic(fmt.Sprintf("nunit3: unknown result state %d", int(state)))
}

// hasFailureChild reports whether the state renders a failure element.
func hasFailureChild(state result.ResultState) bool {
	switch state {
	case result.StateFailure, result.StateError, result.StateCancelled, result.StateNotRunnable:
		return true
	}
	return false
}

// hasReasonChild reports whether the state renders a reason element.
func hasReasonChild(state result.ResultState) bool {
	return state == result.StateSkipped || state == result.StateIgnored
}
