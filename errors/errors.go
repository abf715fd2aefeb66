/*
File   : errors/errors.go
Package: errors

The closed error taxonomy shared by every stage of the pipeline. Each
error carries a positioned payload {kind, span, message, optional
context} and, for runtime errors, the call-stack chain recorded with
Error.Push as the error unwinds through each function call.
*/
package errors

import (
	"fmt"
	"strings"

	"github.com/shepherdp/SAFyR-dev/source"
)

// Kind is one tag from the closed taxonomy in §7 of the specification.
type Kind string

const (
	// Lex errors.
	IllegalInputCharacter Kind = "IllegalInputCharacter"
	IllegalTokenFormat    Kind = "IllegalTokenFormat"
	UnmatchedQuote        Kind = "UnmatchedQuote"

	// Parse errors.
	InvalidSyntax Kind = "InvalidSyntax"
	UnopenedScope Kind = "UnopenedScope"
	UnclosedScope Kind = "UnclosedScope"
	PrematureEOF  Kind = "PrematureEOF"

	// Runtime errors.
	RuntimeErr         Kind = "RuntimeError"
	NotImplementedErr  Kind = "NotImplemented"
	OutOfBounds        Kind = "OutOfBounds"
	VariableAccess     Kind = "VariableAccess"
	ConstantViolation  Kind = "ConstantViolation"
	StaticViolation    Kind = "StaticViolation"
	BuiltinViolation   Kind = "BuiltinViolation"
	InvalidSpecifier   Kind = "InvalidSpecifier"
	InvalidArgumentSet Kind = "InvalidArgumentSet"
	ModuleNotFound     Kind = "ModuleNotFound"
	ModuleImport       Kind = "ModuleImport"
)

// Error is a positioned, categorized diagnostic. It implements the
// standard `error` interface and additionally exposes the call-stack
// chain it was raised through, when one is available.
type Error struct {
	Kind    Kind
	Span    source.Span
	Message string
	Context string // e.g. the display name of the Context it was raised in
	Trace   []string
}

func New(kind Kind, span source.Span, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Span: span, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s %s", e.Kind, e.Span.String(), e.Message)
	if len(e.Trace) > 0 {
		b.WriteString("\n")
		b.WriteString(e.Traceback())
	}
	return b.String()
}

// Traceback renders the call-stack chain, outermost call first and most
// recent call last.
func (e *Error) Traceback() string {
	var b strings.Builder
	b.WriteString("Traceback (most recent call last):\n")
	for i := len(e.Trace) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "  in %s\n", e.Trace[i])
	}
	return b.String()
}

// Push records a call-stack frame name, innermost call first.
func (e *Error) Push(frame string) *Error {
	e.Trace = append(e.Trace, frame)
	return e
}
