package model

import "fmt"

// ValidationError reports a builder finished without a mandatory field.
// No entity is produced when it is returned.
type ValidationError struct {
	Entity string // "field", "method", "type", ...
	Field  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: missing mandatory %s", e.Entity, e.Field)
}

// ModelIntegrityError reports a contract violation on an aggregate:
// use of an unsealed type, mutation after sealing, duplicate identities
// or a digest that does not match the content it was stored with.
type ModelIntegrityError struct {
	Type   string // qualified name, empty when unknown
	Reason string
}

func (e *ModelIntegrityError) Error() string {
	if e.Type == "" {
		return "model integrity: " + e.Reason
	}

	return fmt.Sprintf("model integrity: %s: %s", e.Type, e.Reason)
}

// UnknownEntityKind reports a variant outside a closed set, which
// indicates a bug in whatever produced the model.
type UnknownEntityKind struct {
	Kind string
}

func (e *UnknownEntityKind) Error() string {
	return "unknown entity kind: " + e.Kind
}

func integrityErr(typeName, format string, args ...any) error {
	return &ModelIntegrityError{Type: typeName, Reason: fmt.Sprintf(format, args...)}
}

// Must panics if err is non-nil. It is meant for fixtures built from constants.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
