package fixture

import (
	"github.com/resultfmt/nunit3xml/internal/errors"
	"github.com/resultfmt/nunit3xml/pkg/result"
)

// BuildNode converts the fixture into a definition tree.
func (f *Fixture) BuildNode() (*result.TestNode, error) {
	if f.Tree == nil {
		return nil, errors.Fixturef("fixture %s has no tree", f.Name)
	}
	return buildNode(f.Tree)
}

// BuildResult converts the fixture into a result tree. Every node in
// the fixture must carry a result block.
func (f *Fixture) BuildResult() (*result.TestResult, error) {
	node, err := f.BuildNode()
	if err != nil {
		return nil, err
	}
	return buildResult(f.Tree, node)
}

func buildNode(spec *NodeSpec) (*result.TestNode, error) {
	runState := result.Runnable
	if spec.RunState != "" {
		var err error
		runState, err = result.ParseRunState(spec.RunState)
		if err != nil {
			return nil, errors.FixtureWrap(err, "node "+spec.FullName)
		}
	}

	bag := result.NewPropertyBag()
	for _, p := range spec.Properties {
		bag.Set(p.Name, p.Value)
	}
	for _, c := range spec.Categories {
		bag.AddCategory(c)
	}

	node := &result.TestNode{
		ID:         spec.ID,
		Name:       spec.Name,
		FullName:   spec.FullName,
		Suite:      spec.Suite,
		TestType:   spec.Type,
		RunState:   runState,
		Properties: bag,
	}
	for _, childSpec := range spec.Children {
		child, err := buildNode(childSpec)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// buildResult mirrors the already-built definition tree so each result
// points at its own node.
func buildResult(spec *NodeSpec, node *result.TestNode) (*result.TestResult, error) {
	if spec.Result == nil {
		return nil, errors.Fixturef("node %s has no result block", spec.FullName)
	}

	state, err := result.ParseResultState(spec.Result.State)
	if err != nil {
		return nil, errors.FixtureWrap(err, "node "+spec.FullName)
	}
	site := result.SiteTest
	if spec.Result.Site != "" {
		site, err = result.ParseFailureSite(spec.Result.Site)
		if err != nil {
			return nil, errors.FixtureWrap(err, "node "+spec.FullName)
		}
	}

	res := &result.TestResult{
		Node:        node,
		State:       state,
		Site:        site,
		Elapsed:     spec.Result.Elapsed,
		AssertCount: spec.Result.Asserts,
		Message:     spec.Result.Message,
		StackTrace:  spec.Result.StackTrace,
	}
	for i, childSpec := range spec.Children {
		child, err := buildResult(childSpec, node.Children[i])
		if err != nil {
			return nil, err
		}
		res.Children = append(res.Children, child)
	}
	return res, nil
}
