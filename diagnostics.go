package main

import "fmt"

// DiagnosticKind is the flat taxonomy of errors the compiler can raise.
// Exactly one diagnostic is ever produced per compilation: the pipeline
// fails fast at the first error and later stages never run.
type DiagnosticKind string

const (
	DiagUnexpectedCharacter DiagnosticKind = "UnexpectedCharacter"
	DiagIntegerOutOfRange   DiagnosticKind = "IntegerOutOfRange"
	DiagUnexpectedToken     DiagnosticKind = "UnexpectedToken"
	DiagUnexpectedEOF       DiagnosticKind = "UnexpectedEndOfInput"
	DiagNestingTooDeep      DiagnosticKind = "NestingTooDeep"
	DiagUndefinedVariable   DiagnosticKind = "UndefinedVariable"
	DiagTooManyLets         DiagnosticKind = "TooManyLets"
	DiagToolchainFailure    DiagnosticKind = "ToolchainFailure"
)

// Diagnostic is the single error a failed compilation surfaces: a kind, a
// span, and a human-readable message.
type Diagnostic struct {
	Kind    DiagnosticKind
	Span    Span
	Message string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Span.Line, d.Span.Col, d.Kind, d.Message)
}

func newDiagnostic(kind DiagnosticKind, span Span, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Span: span, Message: fmt.Sprintf(format, args...)}
}
