package fixture

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/resultfmt/nunit3xml/internal/errors"
)

// Load reads, validates, and decodes a single fixture file. YAML
// fixtures are normalized to JSON first so both formats go through the
// same schema validation.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("fixture", path)
		}
		return nil, errors.FixtureWrap(err, "read fixture")
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, errors.FixtureWrap(err, "parse fixture YAML")
		}
	}

	if err := Validate(data); err != nil {
		return nil, err
	}

	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.FixtureWrap(err, "decode fixture")
	}

	if f.Name == "" {
		base := filepath.Base(path)
		f.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &f, nil
}

// LoadDir loads every fixture file in a directory, sorted by file name.
func LoadDir(dir string) ([]*Fixture, error) {
	pattern := filepath.Join(dir, "*")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.FixtureWrap(err, "list fixtures")
	}

	var fixtures []*Fixture
	for _, path := range files {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		f, err := Load(path)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, nil
}

// yamlToJSON converts a YAML document to its JSON rendering.
func yamlToJSON(data []byte) ([]byte, error) {
	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
