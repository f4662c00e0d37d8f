package dmp

import (
	"fmt"
	"strings"
)

// UnknownVersionError reports a request for a schema revision this package
// does not ship. It lists the supported revisions so callers can surface
// them.
type UnknownVersionError struct {
	Version   string
	Supported []string
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("unknown schema version %q, supported versions: %s",
		e.Version, strings.Join(e.Supported, ", "))
}

// MalformedJSONError reports input that could not be decoded into the
// document model at all: broken JSON syntax, a missing dmp wrapper, or a
// value of the wrong JSON type. There is no partial result to recover.
type MalformedJSONError struct {
	Err error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed document: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}

// SchemaViolationError reports that an entity handed to a bundle constructor
// is not acceptable under that bundle's revision. The list is complete: the
// constructor never stops at the first offending field and no partial entity
// is produced.
type SchemaViolationError struct {
	Entity     string
	Violations []Violation
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("%s rejected: %s", e.Entity, summarize(e.Violations))
}

// ValidationError is the aggregated outcome of a failed validation pass.
// Violations are reported in document order and cover the whole entity
// graph; the engine never fails fast.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document is not valid: %s", summarize(e.Violations))
}

// VersionMismatchError reports an attempt to validate a document under a
// revision other than the one it was built or parsed against. The document
// is never silently re-interpreted.
type VersionMismatchError struct {
	Want string
	Got  string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("document carries schema version %s, bundle validates %s", e.Got, e.Want)
}

// summarize renders the first few violations plus a total, keeping error
// strings readable for large reports.
func summarize(violations []Violation) string {
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(violations)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", violations[i].Rule, violations[i].Path)
	}
	if n := len(violations); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}
