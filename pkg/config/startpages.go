package config

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/derivative-programming/pagenav/pkg/nav"
)

//go:embed schema/startpages.schema.json
var schemaFS embed.FS

const startPagesKey = "startPages"

// compileSchema builds the validator for the start-page side file. The
// schema ships embedded so validation works offline.
func compileSchema() (*jsonschema.Schema, error) {
	raw, err := schemaFS.ReadFile("schema/startpages.schema.json")
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("startpages.schema.json", doc); err != nil {
		return nil, err
	}
	return c.Compile("startpages.schema.json")
}

// StartPageFile is a read-modify-write handle on the JSON side file
// holding per-role start pages. Fields other than "startPages" are
// carried through untouched, so the file can be shared with other
// tools.
type StartPageFile struct {
	path string
	raw  map[string]json.RawMessage

	// Starts maps role name to start page name.
	Starts nav.StartPages
}

// LoadStartPages reads the side file at path. A missing file yields an
// empty mapping; saving will then create the file.
func LoadStartPages(path string) (*StartPageFile, error) {
	f := &StartPageFile{
		path:   path,
		raw:    map[string]json.RawMessage{},
		Starts: nav.StartPages{},
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read start pages: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile start-page schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid start-page file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &f.raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if msg, ok := f.raw[startPagesKey]; ok {
		if err := json.Unmarshal(msg, &f.Starts); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return f, nil
}

// Set records the start page for a role.
func (f *StartPageFile) Set(role, page string) {
	f.Starts[role] = page
}

// Remove drops a role's start page.
func (f *StartPageFile) Remove(role string) {
	delete(f.Starts, role)
}

// Roles returns the configured role names in sorted order.
func (f *StartPageFile) Roles() []string {
	roles := make([]string, 0, len(f.Starts))
	for role := range f.Starts {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// Save writes the side file back, preserving unrelated fields.
func (f *StartPageFile) Save() error {
	starts, err := json.Marshal(f.Starts)
	if err != nil {
		return err
	}
	f.raw[startPagesKey] = starts

	data, err := json.MarshalIndent(f.raw, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write start pages: %w", err)
	}
	return nil
}

// Path returns the underlying file path.
func (f *StartPageFile) Path() string {
	return f.path
}
