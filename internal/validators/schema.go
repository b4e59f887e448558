package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Location is the part of the request a field is read from.
type Location string

const (
	InBody   Location = "body"
	InQuery  Location = "query"
	InParams Location = "params"
)

// Input holds the decoded request values by location. Query and path values
// are strings.
type Input struct {
	Body   map[string]any
	Query  map[string]any
	Params map[string]any
}

func (in *Input) values(loc Location) map[string]any {
	var m *map[string]any
	switch loc {
	case InBody:
		m = &in.Body
	case InQuery:
		m = &in.Query
	default:
		m = &in.Params
	}
	if *m == nil {
		*m = make(map[string]any)
	}
	return *m
}

// DecodeBody binds the (sanitized) body to dst.
func (in *Input) DecodeBody(dst any) error {
	raw, err := json.Marshal(in.values(InBody))
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// Check is a domain rule evaluated after the JSON-Schema fragment accepted
// the value. The error text is reported to the client.
type Check func(ctx context.Context, value any) error

// Sanitizer rewrites a value that passed every rule.
type Sanitizer func(value any) any

// Field is one row of a rule table. Rule is a JSON-Schema fragment for the
// value, e.g. {"type": "string", "minLength": 5}. Missing is reported when a
// required field is absent and defaults to Invalid.
type Field struct {
	Name     string
	In       Location
	Optional bool
	Rule     map[string]any
	Missing  string
	Invalid  string
	Checks   []Check
	Sanitize Sanitizer
}

// Schema is a compiled rule table.
type Schema struct {
	fields   []Field
	compiled map[Location]*gojsonschema.Schema
}

// NewSchema compiles fields into one JSON-Schema document per location.
func NewSchema(fields ...Field) (*Schema, error) {
	properties := make(map[Location]map[string]any)
	required := make(map[Location][]string)
	for _, f := range fields {
		if properties[f.In] == nil {
			properties[f.In] = make(map[string]any)
		}
		rule := f.Rule
		if rule == nil {
			rule = map[string]any{}
		}
		properties[f.In][f.Name] = rule
		if !f.Optional {
			required[f.In] = append(required[f.In], f.Name)
		}
	}

	s := &Schema{fields: fields, compiled: make(map[Location]*gojsonschema.Schema, len(properties))}
	for loc, props := range properties {
		doc := map[string]any{"type": "object", "properties": props}
		if req := required[loc]; len(req) > 0 {
			doc["required"] = req
		}
		compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCompilingSchema, loc, err)
		}
		s.compiled[loc] = compiled
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on a malformed rule table.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

type outcome int

const (
	passed outcome = iota
	missing
	invalid
)

// Validate implements Validator.
func (s *Schema) Validate(ctx context.Context, in *Input) error {
	if in == nil {
		in = &Input{}
	}

	outcomes := make(map[Location]map[string]outcome, len(s.compiled))
	for loc, compiled := range s.compiled {
		values := in.values(loc)
		for name, v := range values {
			if v == nil {
				delete(values, name)
			}
		}
		res, err := compiled.Validate(gojsonschema.NewGoLoader(values))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEvaluatingInput, err)
		}
		outcomes[loc] = fieldOutcomes(res)
	}

	var messages []string
	for _, f := range s.fields {
		values := in.values(f.In)
		switch outcomes[f.In][f.Name] {
		case missing:
			messages = append(messages, f.missingMessage())
			continue
		case invalid:
			messages = append(messages, f.Invalid)
			continue
		}

		value, ok := values[f.Name]
		if !ok {
			continue
		}
		if err := runChecks(ctx, f.Checks, value); err != nil {
			messages = append(messages, err.Error())
			continue
		}
		if f.Sanitize != nil {
			values[f.Name] = f.Sanitize(value)
		}
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

func (f Field) missingMessage() string {
	if f.Missing != "" {
		return f.Missing
	}
	return f.Invalid
}

func runChecks(ctx context.Context, checks []Check, value any) error {
	for _, check := range checks {
		if err := check(ctx, value); err != nil {
			return err
		}
	}
	return nil
}

// fieldOutcomes maps every failing top-level property to its failure kind.
func fieldOutcomes(res *gojsonschema.Result) map[string]outcome {
	out := make(map[string]outcome)
	for _, e := range res.Errors() {
		if e.Type() == "required" {
			if name, ok := e.Details()["property"].(string); ok {
				out[name] = missing
			}
			continue
		}
		name := e.Field()
		if i := strings.IndexByte(name, '.'); i >= 0 {
			name = name[:i]
		}
		if _, seen := out[name]; !seen {
			out[name] = invalid
		}
	}
	return out
}
