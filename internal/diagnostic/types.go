package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Diagnostics holds everything a cast or binding pass reported.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Key identifies which input key or path this relates to (if any).
	Key string
	// Candidates lists the declared type names involved (if any).
	Candidates []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, key string, candidates ...string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:   SeverityError,
		Code:       code,
		Message:    message,
		Key:        key,
		Candidates: candidates,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, key string, candidates ...string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:   SeverityWarning,
		Code:       code,
		Message:    message,
		Key:        key,
		Candidates: candidates,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, key string, candidates ...string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:   SeverityInfo,
		Code:       code,
		Message:    message,
		Key:        key,
		Candidates: candidates,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasWarnings returns true if there are any warning diagnostics.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Emit logs every diagnostic through the given zap logger at its severity.
func (d *Diagnostics) Emit(logger *zap.Logger) {
	for _, diag := range d.Infos {
		logger.Info(diag.Message, diag.fields()...)
	}
	for _, diag := range d.Warnings {
		logger.Warn(diag.Message, diag.fields()...)
	}
	for _, diag := range d.Errors {
		logger.Error(diag.Message, diag.fields()...)
	}
}

func (d Diagnostic) fields() []zap.Field {
	fields := []zap.Field{zap.String("code", d.Code)}
	if d.Key != "" {
		fields = append(fields, zap.String("key", d.Key))
	}
	if len(d.Candidates) > 0 {
		fields = append(fields, zap.Strings("candidates", d.Candidates))
	}
	return fields
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Key != "" {
		return d.Key + ": " + msg
	}
	return msg
}
