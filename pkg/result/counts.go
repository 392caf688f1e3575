package result

// Counts holds aggregated verdict counts for a finished result tree.
//
// The XML serializer deliberately does not use it: the per-suite
// passed/failed/inconclusive/skipped attributes it emits stay at their
// legacy literal zeros. Counts exists for reporting on top of a result
// tree, the same way a run summary is printed after a test session.
type Counts struct {
	Passed       int
	Failed       int
	Skipped      int
	Inconclusive int
	Total        int
	Asserts      int
}

// Add accumulates another Counts into this one.
func (c *Counts) Add(other Counts) {
	c.Passed += other.Passed
	c.Failed += other.Failed
	c.Skipped += other.Skipped
	c.Inconclusive += other.Inconclusive
	c.Total += other.Total
	c.Asserts += other.Asserts
}

// Summarize walks a result tree and counts leaf-case verdicts. Assert
// counts are summed over every node, suites included.
func Summarize(r *TestResult) Counts {
	var c Counts
	if r == nil {
		return c
	}
	c.Asserts = r.AssertCount
	if r.Node != nil && r.Node.Suite {
		for _, child := range r.Children {
			c.Add(Summarize(child))
		}
		return c
	}
	c.Total = 1
	switch r.State {
	case StateSuccess:
		c.Passed = 1
	case StateFailure, StateError, StateCancelled, StateNotRunnable:
		c.Failed = 1
	case StateSkipped, StateIgnored:
		c.Skipped = 1
	case StateInconclusive:
		c.Inconclusive = 1
	}
	return c
}
