package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// SchemaValidator checks configuration documents against JSON schemas
type SchemaValidator interface {
	// ValidateFile decodes YAML (.yaml, .yml) or JSON and validates it
	ValidateFile(dataPath, schemaPath string) error
	// ValidateDocument validates data already in JSON form
	ValidateDocument(data []byte, schemaPath string) error
}

// Violation is one failed schema keyword at a document location
type Violation struct {
	Path    string
	Keyword string
}

func (v Violation) String() string {
	if v.Keyword == "" {
		return fmt.Sprintf("at %s: validation failed", v.Path)
	}
	return fmt.Sprintf("at %s: %s validation failed", v.Path, v.Keyword)
}

// SchemaError lists every leaf violation found in a document
type SchemaError struct {
	Violations []Violation
}

func (e *SchemaError) Error() string {
	lines := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		lines[i] = "  - " + v.String()
	}
	return "schema validation failed:\n" + strings.Join(lines, "\n")
}

type validator struct {
	mu      sync.Mutex
	schemas map[string]*jsonschema.Schema
}

// NewSchemaValidator returns a validator that compiles each schema once
func NewSchemaValidator() SchemaValidator {
	return &validator{schemas: make(map[string]*jsonschema.Schema)}
}

func (v *validator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}

	switch strings.ToLower(filepath.Ext(dataPath)) {
	case ".yaml", ".yml":
		if data, err = yamlToJSON(data); err != nil {
			return err
		}
	}
	return v.ValidateDocument(data, schemaPath)
}

func (v *validator) ValidateDocument(data []byte, schemaPath string) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	schema, err := v.compiled(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaPath, err)
	}

	err = schema.Validate(doc)
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		se := &SchemaError{}
		collectViolations(verr, se)
		return se
	}
	return err
}

// yamlToJSON re-encodes YAML so numbers reach the validator as JSON numbers
func yamlToJSON(data []byte) ([]byte, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML data: %w", err)
	}
	out, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	return out, nil
}

func (v *validator) compiled(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.schemas[schemaPath]; ok {
		return s, nil
	}

	resolved, err := resolveSchemaPath(schemaPath)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaPath, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	s, err := c.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaPath] = s
	return s, nil
}

// collectViolations keeps only leaves; parent errors repeat their causes
func collectViolations(err *jsonschema.ValidationError, se *SchemaError) {
	if len(err.Causes) > 0 {
		for _, c := range err.Causes {
			collectViolations(c, se)
		}
		return
	}

	path := "(root)"
	if len(err.InstanceLocation) > 0 {
		path = "/" + strings.Join(err.InstanceLocation, "/")
	}
	var keyword string
	if err.ErrorKind != nil {
		keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	se.Violations = append(se.Violations, Violation{Path: path, Keyword: keyword})
}

// resolveSchemaPath finds a relative schema path from the working directory
// or any parent up to the module root, so tests and CLIs agree on paths.
func resolveSchemaPath(schemaPath string) (string, error) {
	if filepath.IsAbs(schemaPath) {
		return schemaPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for {
		candidate := filepath.Join(dir, schemaPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		_, modErr := os.Stat(filepath.Join(dir, "go.mod"))
		parent := filepath.Dir(dir)
		if modErr == nil || parent == dir {
			return "", fmt.Errorf("schema file not found: %s (searched from %s)", schemaPath, cwd)
		}
		dir = parent
	}
}
