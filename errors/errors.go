package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which verification stage observed the failure
type Phase string

const (
	PhaseLayout    Phase = "layout"    // struct size and field offset checks
	PhaseConstants Phase = "constants" // result/state value checks
	PhaseCallbacks Phase = "callbacks" // callback shape proofs
	PhaseReport    Phase = "report"    // report emission
)

// Kind categorizes the failure
type Kind string

const (
	KindSizeMismatch   Kind = "size_mismatch"
	KindOffsetMismatch Kind = "offset_mismatch"
	KindValueMismatch  Kind = "value_mismatch"
	KindFieldCount     Kind = "field_count"
	KindBadDescriptor  Kind = "bad_descriptor"
	KindNotStruct      Kind = "not_struct"
	KindNilHandler     Kind = "nil_handler"
	KindWriteFailed    Kind = "write_failed"
)

// Error is the structured failure type used throughout the checker
type Error struct {
	Expected any
	Actual   any
	Cause    error
	Phase    Phase
	Kind     Kind
	Entity   string
	Field    string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Entity != "" {
		b.WriteString(" at ")
		b.WriteString(e.Entity)
		if e.Field != "" {
			b.WriteByte('.')
			b.WriteString(e.Field)
		}
	}

	if e.Expected != nil || e.Actual != nil {
		b.WriteString(": expected ")
		fmt.Fprintf(&b, "%v", e.Expected)
		b.WriteString(", actual ")
		fmt.Fprintf(&b, "%v", e.Actual)
	}

	if e.Detail != "" {
		if e.Expected != nil || e.Actual != nil {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Entity sets the entity under check
func (b *Builder) Entity(name string) *Builder {
	b.err.Entity = name
	return b
}

// Field sets the field under check
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
	return b
}

// Expected sets the value the contract requires
func (b *Builder) Expected(v any) *Builder {
	b.err.Expected = v
	return b
}

// Actual sets the value actually measured
func (b *Builder) Actual(v any) *Builder {
	b.err.Actual = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common failure patterns

// SizeMismatch creates a total-size drift error for an entity
func SizeMismatch(entity string, expected, actual uint32) *Error {
	return &Error{
		Phase:    PhaseLayout,
		Kind:     KindSizeMismatch,
		Entity:   entity,
		Expected: expected,
		Actual:   actual,
	}
}

// OffsetMismatch creates a field-offset drift error
func OffsetMismatch(entity, field string, expected, actual uint32) *Error {
	return &Error{
		Phase:    PhaseLayout,
		Kind:     KindOffsetMismatch,
		Entity:   entity,
		Field:    field,
		Expected: expected,
		Actual:   actual,
	}
}

// ValueMismatch creates a constant drift error
func ValueMismatch(name string, expected, actual int32) *Error {
	return &Error{
		Phase:    PhaseConstants,
		Kind:     KindValueMismatch,
		Entity:   name,
		Expected: expected,
		Actual:   actual,
	}
}

// FieldCount creates a field-count drift error
func FieldCount(entity string, expected, actual int) *Error {
	return &Error{
		Phase:    PhaseLayout,
		Kind:     KindFieldCount,
		Entity:   entity,
		Expected: expected,
		Actual:   actual,
		Detail:   "descriptor and mirror declare different field counts",
	}
}

// BadDescriptor creates a descriptor self-consistency error
func BadDescriptor(entity, detail string) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindBadDescriptor,
		Entity: entity,
		Detail: detail,
	}
}

// NotStruct reports a mirror value that is not a struct type
func NotStruct(entity, goType string) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindNotStruct,
		Entity: entity,
		Detail: fmt.Sprintf("mirror is %s, not a struct", goType),
	}
}

// NilHandler reports a callback whose address could not be obtained
func NilHandler(name string) *Error {
	return &Error{
		Phase:  PhaseCallbacks,
		Kind:   KindNilHandler,
		Entity: name,
		Detail: "handler address is null",
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
