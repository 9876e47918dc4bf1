// Package diag collects categorized, located diagnostic messages produced by
// every stage of the compiler. It never alters a message once emitted; the
// only externally observable state besides the message list itself is the
// running error/warning count, which is what the driver uses to decide
// whether to suppress lowering to object code.
package diag

import (
	"fmt"

	"github.com/cwbudde/slc/internal/lexer"
)

// Severity classifies how serious a diagnostic is. Internal and fatal
// diagnostics both count as errors; only warning leaves the error count
// untouched.
type Severity int

const (
	Error Severity = iota
	Internal
	Fatal
	Warning
)

func (s Severity) String() string {
	switch s {
	case Internal:
		return "internal error"
	case Fatal:
		return "fatal error"
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "diagnostic"
	}
}

// Kind identifies the exact diagnostic being reported; see the taxonomy in
// SPEC_FULL.md §7. Kinds, not message text, are what callers and tests key
// off of.
type Kind int

const (
	UnknownChar Kind = iota
	InvalidInt
	OverflowDetected
	ExpectedButFound
	UnexpectedToken
	Funception
	DuplicateType
	DuplicateField
	FuncAlreadyDefined
	FuncNamedAfterType
	InvalidParamType
	InvalidVarType
	MismatchingVarTypes
	VarAlreadyDefined
	MissingReturn
	RetvalMismatchesRetType
	CantReturnVoidValue
	UnknownIdent
	NotAFunction
	MismatchingArgCount
	CannotConvert
	LhsNotAssignable
	InvalidUnary
	InvalidBinary
	NotABinaryOp
	TernaryTypeMismatch
	TopLevelCtrlFlow
	FuncInFunc
	InvalidIntWidth
)

var kindNames = [...]string{
	UnknownChar:             "UnknownChar",
	InvalidInt:              "InvalidInt",
	OverflowDetected:        "OverflowDetected",
	ExpectedButFound:        "ExpectedButFound",
	UnexpectedToken:         "UnexpectedToken",
	Funception:              "Funception",
	DuplicateType:           "DuplicateType",
	DuplicateField:          "DuplicateField",
	FuncAlreadyDefined:      "FuncAlreadyDefined",
	FuncNamedAfterType:      "FuncNamedAfterType",
	InvalidParamType:        "InvalidParamType",
	InvalidVarType:          "InvalidVarType",
	MismatchingVarTypes:     "MismatchingVarTypes",
	VarAlreadyDefined:       "VarAlreadyDefined",
	MissingReturn:           "MissingReturn",
	RetvalMismatchesRetType: "RetvalMismatchesRetType",
	CantReturnVoidValue:     "CantReturnVoidValue",
	UnknownIdent:            "UnknownIdent",
	NotAFunction:            "NotAFunction",
	MismatchingArgCount:     "MismatchingArgCount",
	CannotConvert:           "CannotConvert",
	LhsNotAssignable:        "LhsNotAssignable",
	InvalidUnary:            "InvalidUnary",
	InvalidBinary:           "InvalidBinary",
	NotABinaryOp:            "NotABinaryOp",
	TernaryTypeMismatch:     "TernaryTypeMismatch",
	TopLevelCtrlFlow:        "TopLevelCtrlFlow",
	FuncInFunc:              "FuncInFunc",
	InvalidIntWidth:         "InvalidIntWidth",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "UnknownKind"
	}
	return kindNames[k]
}

// severityOf is the fixed severity for each kind, per SPEC_FULL.md §7.
var severityOf = [...]Severity{
	UnknownChar:             Error,
	InvalidInt:              Error,
	OverflowDetected:        Warning,
	ExpectedButFound:        Error,
	UnexpectedToken:         Error,
	Funception:              Error,
	DuplicateType:           Error,
	DuplicateField:          Error,
	FuncAlreadyDefined:      Error,
	FuncNamedAfterType:      Error,
	InvalidParamType:        Error,
	InvalidVarType:          Error,
	MismatchingVarTypes:     Error,
	VarAlreadyDefined:       Error,
	MissingReturn:           Error,
	RetvalMismatchesRetType: Error,
	CantReturnVoidValue:     Error,
	UnknownIdent:            Error,
	NotAFunction:            Error,
	MismatchingArgCount:     Error,
	CannotConvert:           Error,
	LhsNotAssignable:        Error,
	InvalidUnary:            Error,
	InvalidBinary:           Error,
	NotABinaryOp:            Error,
	TernaryTypeMismatch:     Error,
	TopLevelCtrlFlow:        Error,
	FuncInFunc:              Error,
	InvalidIntWidth:         Error,
}

// Diagnostic is one reported message: its kind, severity, location and the
// already-formatted text. Once appended to a Bag it is never mutated.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Pos      lexer.Position
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Severity, d.Message)
}

// Bag is the diagnostics sink shared by every compiler stage. It is passed
// explicitly as a collaborator to each pass; there is no process-global
// sink, matching the "Diagnostics as global state" design note.
type Bag struct {
	diagnostics []Diagnostic
	errors      int
	warnings    int
}

// NewBag returns an empty diagnostics bag.
func NewBag() *Bag {
	return &Bag{}
}

// report appends one diagnostic and updates the running counters. It is the
// only place that ever mutates Bag's counts.
func (b *Bag) report(kind Kind, pos lexer.Position, msg string) {
	sev := Error
	if int(kind) >= 0 && int(kind) < len(severityOf) {
		sev = severityOf[kind]
	}
	b.diagnostics = append(b.diagnostics, Diagnostic{
		Kind:     kind,
		Severity: sev,
		Pos:      pos,
		Message:  msg,
	})
	switch sev {
	case Internal, Fatal, Error:
		b.errors++
	case Warning:
		b.warnings++
	}
}

// HasErrors reports whether any error-or-worse diagnostic has been emitted.
func (b *Bag) HasErrors() bool {
	return b.errors > 0
}

// ErrorCount returns the number of error/fatal/internal diagnostics emitted.
func (b *Bag) ErrorCount() int {
	return b.errors
}

// WarningCount returns the number of warning diagnostics emitted.
func (b *Bag) WarningCount() int {
	return b.warnings
}

// All returns every diagnostic emitted so far, in emission order.
func (b *Bag) All() []Diagnostic {
	return b.diagnostics
}

// CountOf returns how many diagnostics of the given kind were emitted.
func (b *Bag) CountOf(kind Kind) int {
	n := 0
	for _, d := range b.diagnostics {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
