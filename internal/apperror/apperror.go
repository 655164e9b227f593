// Package apperror defines the error taxonomy shared by every ledger.
// All business failures surface as *Error so callers can branch on Kind
// without parsing the user-facing message.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a business failure.
type Kind string

const (
	// KindValidation: malformed or missing input. The operation performed
	// no side effects.
	KindValidation Kind = "validation"
	// KindNotFound: a referenced entity is absent.
	KindNotFound Kind = "not_found"
	// KindPrecondition: the operation's gate failed (no session, caja
	// cerrada).
	KindPrecondition Kind = "precondition"
	// KindInvariant: the operation would leave an entity in an invalid
	// state (stock negativo, total inconsistente).
	KindInvariant Kind = "invariant"
)

// Error is the canonical business error. Detail is the message shown to the
// user, always in the business' language.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func Validation(detail string) *Error   { return New(KindValidation, detail) }
func NotFound(detail string) *Error     { return New(KindNotFound, detail) }
func Precondition(detail string) *Error { return New(KindPrecondition, detail) }
func Invariant(detail string) *Error    { return New(KindInvariant, detail) }

func Validationf(format string, args ...any) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

func Invariantf(format string, args ...any) *Error {
	return Invariant(fmt.Sprintf(format, args...))
}

// KindOf extracts the Kind from err, unwrapping as needed. Returns "" for
// errors that did not originate in this package (store failures, etc.).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsValidation(err error) bool   { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsPrecondition(err error) bool { return KindOf(err) == KindPrecondition }
func IsInvariant(err error) bool    { return KindOf(err) == KindInvariant }
