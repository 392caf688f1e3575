package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/resultfmt/nunit3xml/internal/errors"
	schemafs "github.com/resultfmt/nunit3xml/schema"
)

var (
	fixtureSchema *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
)

// compileSchema compiles the embedded fixture schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		data, err := schemafs.FS.ReadFile("fixture.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read fixture schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal fixture schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("fixture.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add fixture schema resource: %w", err)
			return
		}

		fixtureSchema, err = compiler.Compile("fixture.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile fixture schema: %w", err)
			return
		}
	})

	return compileErr
}

// Validate checks JSON fixture data against the embedded schema.
func Validate(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.FixtureWrap(err, "invalid JSON")
	}

	if err := fixtureSchema.Validate(v); err != nil {
		return errors.SchemaWrap(err, "fixture validation failed")
	}

	return nil
}
