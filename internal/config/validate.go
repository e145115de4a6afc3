package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/config.schema.json
var schemaBytes []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
	printer    = message.NewPrinter(language.English)
)

// Report is the outcome of checking the config file against its schema.
type Report struct {
	OK       bool
	Problems []Problem
}

// Problem is a single schema violation.
type Problem struct {
	Field   string // instance path, e.g. "/default-mode"
	Detail  string // human-readable description
	Keyword string // schema keyword that failed
}

// configSchema compiles the embedded JSON Schema once.
func configSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			schemaErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("config.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		if schema, err = compiler.Compile("config.schema.json"); err != nil {
			schemaErr = fmt.Errorf("compiling schema: %w", err)
		}
	})
	return schema, schemaErr
}

// Check validates raw config YAML against the schema. The error return is
// for unreadable input or schema compilation failures; schema violations
// come back inside the Report.
func Check(data []byte) (*Report, error) {
	s, err := configSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if doc == nil {
		// An empty config file is fine.
		return &Report{OK: true}, nil
	}

	// Round-trip through JSON so the validator sees json.Number values
	// rather than YAML's native ints and floats.
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting config to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing config for validation: %w", err)
	}

	err = s.Validate(inst)
	if err == nil {
		return &Report{OK: true}, nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	problems := flatten(ve)
	if len(problems) == 0 {
		problems = []Problem{{Detail: ve.Error()}}
	}
	return &Report{Problems: dedupe(problems)}, nil
}

// CheckFile reads the config file at path and validates it.
func CheckFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Check(data)
}

// flatten walks the validation error tree and returns the leaf problems.
// Container keywords (oneOf, allOf, $ref) are skipped: the leaves under
// them carry the property-level detail.
func flatten(ve *jsonschema.ValidationError) []Problem {
	if len(ve.Causes) > 0 {
		var out []Problem
		for _, cause := range ve.Causes {
			out = append(out, flatten(cause)...)
		}
		return out
	}
	if ve.ErrorKind == nil {
		return nil
	}

	keyword := ""
	if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
		keyword = kw[len(kw)-1]
	}
	switch keyword {
	case "", "oneOf", "allOf", "$ref":
		return nil
	}

	field := ""
	if len(ve.InstanceLocation) > 0 {
		field = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	return []Problem{{
		Field:   field,
		Detail:  ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	}}
}

// dedupe drops repeated problems; branching schemas report the same leaf
// more than once.
func dedupe(problems []Problem) []Problem {
	seen := make(map[Problem]bool, len(problems))
	out := problems[:0]
	for _, p := range problems {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
