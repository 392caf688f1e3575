// Package fixture loads test-tree fixtures for the nunit3xml tests.
// Fixtures are YAML or JSON documents describing a definition tree with
// optional inline results; they are validated against the embedded JSON
// schema before decoding.
package fixture

// Fixture is one fixture document.
type Fixture struct {
	// Name is the fixture name (defaults to the file name).
	Name string `json:"name"`

	// Description provides optional documentation.
	Description string `json:"description,omitempty"`

	// Tree is the root of the definition tree.
	Tree *NodeSpec `json:"tree"`
}

// NodeSpec describes one node of the definition tree, plus its inline
// result when the fixture models an executed run.
type NodeSpec struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	FullName   string      `json:"fullname"`
	Suite      bool        `json:"suite,omitempty"`
	Type       string      `json:"type,omitempty"`
	RunState   string      `json:"runstate,omitempty"` // defaults to Runnable
	Properties []PropSpec  `json:"properties,omitempty"`
	Categories []string    `json:"categories,omitempty"`
	Children   []*NodeSpec `json:"children,omitempty"`
	Result     *ResultSpec `json:"result,omitempty"`
}

// PropSpec is one single-valued property entry.
type PropSpec struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ResultSpec describes the outcome attached to a node.
type ResultSpec struct {
	State      string  `json:"state"`
	Site       string  `json:"site,omitempty"` // defaults to Test
	Elapsed    float64 `json:"elapsed,omitempty"`
	Asserts    int     `json:"asserts,omitempty"`
	Message    string  `json:"message,omitempty"`
	StackTrace string  `json:"stacktrace,omitempty"`
}
