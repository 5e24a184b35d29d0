// Package bind coerces untyped configuration into declared types: YAML is
// decoded into generic values, every declared key is guessed against its
// candidate types and cast to the winner. Undeclared keys pass through.
package bind

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"typeguess/cast"
	"typeguess/guess"
	"typeguess/internal/diagnostic"
	"typeguess/options"
	"typeguess/typeref"
)

// Schema maps configuration keys to their declared type expressions,
// e.g. {"port": "integer", "hosts": "string[]", "verbose": "boolean"}.
// An expression may list several candidates separated by "|".
type Schema map[string]string

// Binder runs the guess-then-cast pipeline over configuration maps.
type Binder struct {
	guesser *guess.Guesser
	casters *cast.Registry
}

// New returns a Binder. A nil guesser or registry falls back to the default
// guesser and a registry allowing every conversion category.
func New(g *guess.Guesser, reg *cast.Registry) *Binder {
	if g == nil {
		g = guess.New()
	}
	if reg == nil {
		reg = cast.NewRegistry(options.CategoryAll)
	}
	return &Binder{guesser: g, casters: reg}
}

// Bind coerces every schema-declared key present in values. Keys missing
// from values are not an error; impossible coercions surface as diagnostics
// with the original value kept. The input map is not modified.
func (b *Binder) Bind(values map[string]any, schema Schema) (map[string]any, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}

	for key, expr := range schema {
		value, ok := out[key]
		if !ok {
			continue
		}

		types, err := typeref.ParseExpr(expr)
		if err != nil {
			return nil, diags, fmt.Errorf("schema key %q: %w", key, err)
		}

		coerced, _, d := cast.Apply(b.guesser, b.casters, key, value, types)
		diags.Merge(d)
		out[key] = coerced
	}

	return out, diags, nil
}

// Bytes decodes YAML data into a map and binds it against the schema.
func (b *Binder) Bytes(data []byte, schema Schema) (map[string]any, diagnostic.Diagnostics, error) {
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return b.Bind(values, schema)
}

// File loads a YAML config file and binds it against the schema.
func (b *Binder) File(path string, schema Schema) (map[string]any, diagnostic.Diagnostics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return b.Bytes(data, schema)
}

// LoadSchema reads a schema file: a flat YAML mapping of key to type
// expression.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}
	return schema, nil
}
