// Package nunit3 serializes a result tree into the v3 test-result XML
// vocabulary: one test-suite or test-case element per node, attributes
// before any child content, then properties, then the failure or reason
// block, then child test elements in original order.
//
// Known limitation, carried over from the behavior being modeled: the
// passed/failed/inconclusive/skipped counters on suite elements are
// emitted as literal zeros; only total carries the real case count.
// Use result.Summarize for real aggregation.
//
// Serialization is a pure function of its input: no state is retained
// between calls, so concurrent use needs no coordination.
package nunit3

import (
	"strconv"

	"github.com/resultfmt/nunit3xml/internal/errors"
	"github.com/resultfmt/nunit3xml/internal/xmlbuf"
	"github.com/resultfmt/nunit3xml/pkg/result"
)

// WriteDefinition serializes a definition tree without outcome data.
// With recursive false only the root element is emitted; a suite root
// still carries the testcasecount of its full subtree.
func WriteDefinition(node *result.TestNode, recursive bool) string {
	var w xmlbuf.Writer
	writeNode(&w, node, recursive)
	return w.String()
}

// WriteResult serializes a result tree, outcome data included. The
// whole-tree entry point always walks the full tree; the recursive flag
// is accepted for symmetry with WriteDefinition but has no effect,
// matching the legacy writer it models.
//
// Contract violations (a result detached from its definition, a case
// result carrying child results, a skipped result without a reason
// message) fail fast with a KindContract error rather than producing a
// corrupt or misleading document.
func WriteResult(res *result.TestResult, recursive bool) (string, error) {
	var w xmlbuf.Writer
	if err := writeResultNode(&w, res, true); err != nil {
		return "", err
	}
	return w.String(), nil
}

// writeNode emits one definition element and, if recursive, its subtree.
func writeNode(w *xmlbuf.Writer, node *result.TestNode, recursive bool) {
	start(w, node)
	writeProperties(w, node)
	if recursive && node.Suite {
		for _, child := range node.Children {
			writeNode(w, child, true)
		}
	}
	w.End()
}

// start opens the element for a node and writes its structural
// attributes in the fixed order of the output vocabulary.
func start(w *xmlbuf.Writer, node *result.TestNode) {
	if node.Suite {
		w.Start("test-suite")
		w.Attr("type", node.TestType)
	} else {
		w.Start("test-case")
	}
	w.Attr("id", strconv.Itoa(node.ID))
	w.Attr("name", node.Name)
	w.Attr("fullname", node.FullName)
	w.Attr("runstate", node.RunState.String())
	if node.Suite {
		w.Attr("testcasecount", strconv.Itoa(node.TestCaseCount()))
	}
}

// writeResultNode emits one element with outcome data, recursing into
// child results per the flag.
func writeResultNode(w *xmlbuf.Writer, res *result.TestResult, recursive bool) error {
	if res == nil {
		return errors.Contract("nil result node")
	}
	node := res.Node
	if node == nil {
		return errors.Contract("result node without a test definition")
	}
	if !node.Suite && len(res.Children) > 0 {
		return errors.NodeContract(node.FullName, "case result carrying child results")
	}
	start(w, node)

	mapped, label := mapState(res.State)
	w.Attr("result", mapped)
	if label != "" {
		w.Attr("label", label)
	}
	if res.Site != result.SiteTest {
		w.Attr("site", res.Site.String())
	}
	w.Attr("duration", formatDuration(res.Elapsed))
	if node.Suite {
		w.Attr("total", strconv.Itoa(node.TestCaseCount()))
		// Aggregation is stubbed in the modeled writer; see package doc.
		w.Attr("passed", "0")
		w.Attr("failed", "0")
		w.Attr("inconclusive", "0")
		w.Attr("skipped", "0")
	}
	w.Attr("asserts", strconv.Itoa(res.AssertCount))

	writeProperties(w, node)

	switch {
	case hasFailureChild(res.State):
		w.Start("failure")
		if res.Message != "" {
			w.Start("message")
			w.CDATA(res.Message)
			w.End()
		}
		if res.StackTrace != "" {
			w.Start("stack-trace")
			w.CDATA(res.StackTrace)
			w.End()
		}
		w.End()
	case hasReasonChild(res.State):
		if res.Message == "" {
			return errors.NodeContract(node.FullName, "skipped result without a reason message")
		}
		w.Start("reason")
		w.Start("message")
		w.CDATA(res.Message)
		w.End()
		w.End()
	}

	if recursive && node.Suite {
		for _, child := range res.Children {
			if err := writeResultNode(w, child, true); err != nil {
				return err
			}
		}
	}
	w.End()
	return nil
}

// writeProperties emits the properties block, or nothing for an empty bag.
func writeProperties(w *xmlbuf.Writer, node *result.TestNode) {
	if node.Properties.Len() == 0 {
		return
	}
	w.Start("properties")
	for _, p := range node.Properties.Entries() {
		w.Start("property")
		w.Attr("name", p.Name)
		w.Attr("value", p.Value)
		w.End()
	}
	w.End()
}

// formatDuration renders seconds with six fractional digits, always
// using '.' as the decimal separator regardless of host locale.
func formatDuration(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 6, 64)
}
