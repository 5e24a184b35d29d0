package cast

import (
	"fmt"

	"typeguess/guess"
	"typeguess/internal/diagnostic"
	"typeguess/typeref"
)

// Diagnostic codes reported by Apply.
const (
	CodeAmbiguous  = "ambiguous-type"
	CodeNoCaster   = "no-caster"
	CodeCastFailed = "cast-failed"
)

// Apply guesses which declared type the value should take and runs the
// matching handler. The value is returned unchanged when no decision is
// reached, when no handler is registered, or when the cast turns out to be
// impossible; each of those is reported as a diagnostic, never an error.
// The key names the value in diagnostics, e.g. a config key.
func Apply(g *guess.Guesser, reg *Registry, key string, value any, types typeref.Set) (any, typeref.Ref, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	resolved, ok := g.GuessFor(value, types)
	if !ok {
		diags.AddWarning(CodeAmbiguous,
			fmt.Sprintf("no single type for value %v", value),
			key, types.Names()...)
		return value, typeref.Ref{}, diags
	}

	if resolved.IsUnion() {
		// either half of the union accepts the value as-is
		diags.AddInfo(CodeAmbiguous,
			fmt.Sprintf("value kept as %s", resolved), key)
		return value, resolved, diags
	}

	caster, ok := reg.For(resolved)
	if !ok {
		diags.AddWarning(CodeNoCaster,
			fmt.Sprintf("no caster for type %s", resolved),
			key, resolved.String())
		return value, resolved, diags
	}

	out, err := caster.Cast(value)
	if err != nil {
		diags.AddWarning(CodeCastFailed,
			fmt.Sprintf("cast to %s failed: %v", resolved, err),
			key, resolved.String())
		return value, resolved, diags
	}

	return out, resolved, diags
}
