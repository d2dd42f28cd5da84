package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in generation the error occurred
type Phase string

const (
	PhaseLoad     Phase = "load"     // contract description decoding
	PhaseValidate Phase = "validate" // receiver invariants
	PhaseHash     Phase = "hash"     // pseudo-opcode and method id hashing
	PhaseRoute    Phase = "route"    // router generation
	PhaseReceive  Phase = "receive"  // receiver function emission
	PhaseEntry    Phase = "entry"    // entry points, getters, introspection
	PhaseWrite    Phase = "write"    // module assembly
	PhaseLower    Phase = "lower"    // reference lowering collaborators
)

// Kind categorizes the error
type Kind string

const (
	KindMissingHeader     Kind = "missing_header"
	KindUnknownSelector   Kind = "unknown_selector"
	KindMissingSelf       Kind = "missing_self"
	KindDuplicateSelector Kind = "duplicate_selector"
	KindHashCollision     Kind = "hash_collision"
	KindHeaderCollision   Kind = "header_collision"
	KindCellOverflow      Kind = "cell_overflow"
	KindNotFound          Kind = "not_found"
	KindInvalidInput      Kind = "invalid_input"
	KindLowering          Kind = "lowering"
)

// Error is the structured error type used throughout the generator
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Type     string
	Selector string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" || e.Selector != "" {
		b.WriteString(": ")
		switch {
		case e.Type != "" && e.Selector != "":
			b.WriteString("type ")
			b.WriteString(e.Type)
			b.WriteString(", selector ")
			b.WriteString(e.Selector)
		case e.Type != "":
			b.WriteString("type ")
			b.WriteString(e.Type)
		default:
			b.WriteString("selector ")
			b.WriteString(e.Selector)
		}
	}

	if e.Detail != "" {
		if e.Type != "" || e.Selector != "" {
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

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err's chain holds an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
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

// Path sets the location path, e.g. contract.receiver index
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the contract or message type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Selector sets the selector description
func (b *Builder) Selector(s string) *Builder {
	b.err.Selector = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// Convenience constructors for common error patterns

// MissingHeader reports a message type referenced by a binary selector
// that has no allocated header. It always indicates a resolver defect.
func MissingHeader(phase Phase, contract, message string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMissingHeader,
		Path:   []string{contract},
		Type:   message,
		Detail: "message type has no allocated header",
	}
}

// UnknownSelector reports a selector value outside the closed variant set
func UnknownSelector(phase Phase, contract string, selector any) *Error {
	e := &Error{
		Phase:  phase,
		Kind:   KindUnknownSelector,
		Detail: fmt.Sprintf("unknown selector %T", selector),
		Value:  selector,
	}
	if contract != "" {
		e.Path = []string{contract}
	}
	return e
}

// MissingSelf reports a getter without an owning contract type
func MissingSelf(function string) *Error {
	return &Error{
		Phase:  PhaseEntry,
		Kind:   KindMissingSelf,
		Detail: fmt.Sprintf("no self type for getter %q", function),
	}
}

// DuplicateSelector reports two receivers claiming the same dispatch slot
func DuplicateSelector(contract, selector string) *Error {
	return &Error{
		Phase:    PhaseValidate,
		Kind:     KindDuplicateSelector,
		Path:     []string{contract},
		Selector: selector,
		Detail:   "declared more than once",
	}
}

// HashCollision reports two distinct comment literals with the same pseudo-opcode
func HashCollision(contract, a, b string) *Error {
	return &Error{
		Phase:  PhaseRoute,
		Kind:   KindHashCollision,
		Path:   []string{contract},
		Detail: fmt.Sprintf("comments %q and %q share a pseudo-opcode", a, b),
	}
}

// CellOverflow reports data that does not fit into a single cell
func CellOverflow(phase Phase, bits, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCellOverflow,
		Detail: fmt.Sprintf("%d bits do not fit into a cell (max %d)", bits, limit),
		Value:  bits,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Path:   path,
		Detail: detail,
	}
}

// Lowering wraps a failure reported by a lowering collaborator
func Lowering(phase Phase, path []string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLowering,
		Path:   path,
		Detail: "lowering failed",
		Cause:  cause,
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

// ParseFailed creates a contract description parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidInput,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
