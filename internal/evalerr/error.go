// Package evalerr is the evaluator's error model: one Kind per spec §7,
// each carrying an optional source position and wrapped cause so callers
// can use errors.Is/errors.As across import/include boundaries.
//
// This is deliberately a Go `error` type rather than a boxed runtime value
// threaded through the same switch as ordinary data (the way the teacher's
// interpreter represents runtime errors as an *Object* it can bind and
// inspect from script code) because this module is a library: callers
// outside the evaluator need the standard error-handling idiom.
package evalerr

import (
	"fmt"

	"github.com/jfranklin9000/ucg/internal/ast"
)

// Kind identifies one of the error categories spec.md §7 enumerates.
type Kind string

const (
	TypeFail         Kind = "TypeFail"
	DuplicateBinding Kind = "DuplicateBinding"
	Unsupported      Kind = "Unsupported"
	NoSuchSymbol     Kind = "NoSuchSymbol"
	BadArgLen        Kind = "BadArgLen"
	FormatError      Kind = "FormatError"
	IncludeError     Kind = "IncludeError"
	ImportError      Kind = "ImportError"
	ReservedWord     Kind = "ReservedWordError"
	ParseError       Kind = "ParseError"
	AssertError      Kind = "AssertError"
	OSError          Kind = "OSError"
	ConvertError     Kind = "ConvertError"
	UserDefined      Kind = "UserDefined"
)

// Error is the single carrier type for every evaluator error.
type Error struct {
	Kind    Kind
	Message string
	Pos     *ast.Position
	Cause   error
}

func (e *Error) Error() string {
	loc := ""
	if e.Pos != nil && e.Pos.File != "" {
		loc = fmt.Sprintf(" (%s:%d:%d)", e.Pos.File, e.Pos.Line, e.Pos.Column)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s%s: %v", e.Kind, e.Message, loc, e.Cause)
	}
	return fmt.Sprintf("%s: %s%s", e.Kind, e.Message, loc)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, &evalerr.Error{Kind: evalerr.TypeFail}) match by
// Kind alone when the target carries no message, cause or position, since
// Kind is not itself an error value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message == "" && t.Cause == nil && t.Pos == nil {
		return e.Kind == t.Kind
	}
	return e == t
}

// New builds an Error with no position, for situations the evaluator will
// stamp with a position as the error propagates (mirrors the teacher's
// newError / newErrorWithLocation split in helpers.go).
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At builds an Error already carrying a source position.
func At(kind Kind, pos ast.Position, format string, args ...interface{}) *Error {
	p := pos
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: &p}
}

// Wrap builds an Error that carries cause as the wrapped inner error, used
// for the cross-file boundary spec §7 calls out explicitly (import/include
// errors wrap the importing site's position and the inner error).
func Wrap(kind Kind, pos ast.Position, cause error, format string, args ...interface{}) *Error {
	p := pos
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: &p, Cause: cause}
}

// KindOf returns the Kind of err if it is (or wraps) an *Error, and ok=false
// otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if ok := asError(err, &e); ok {
		return e.Kind, true
	}
	return "", false
}

func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}
