// Package merrors defines the typed, fatal error kinds the core surfaces
// to its driver. The core never recovers from these; it returns them.
package merrors

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind is one of the fatal error categories from the error handling design.
type Kind struct {
	name string
}

func (k Kind) String() string { return k.name }
func (k Kind) Error() string  { return k.name }

var (
	// IoError: file missing, read/write failure.
	IoError = Kind{"IoError"}
	// ParseError: malformed graph, grammar, MEM, or tag-index line.
	ParseError = Kind{"ParseError"}
	// BadGrammar: size or structure invariants broken in a straight-line grammar.
	BadGrammar = Kind{"BadGrammar"}
	// NoTriggers: empty trigger set at build time.
	NoTriggers = Kind{"NoTriggers"}
	// PFPInvariantViolation: internal consistency check failed during indexing.
	PFPInvariantViolation = Kind{"PFPInvariantViolation"}
	// OutOfRange: predecessor query precondition violated, or LCE past text end.
	OutOfRange = Kind{"OutOfRange"}
	// IdMismatch: MEM and PTR files disagree on a record id.
	IdMismatch = Kind{"IdMismatch"}
	// EmptyIndex: the PFP dictionary has no phrases to build derived arrays from.
	EmptyIndex = Kind{"EmptyIndex"}
)

// wrapped pairs a Kind with a causal chain, and unwraps to the Kind so
// errors.Is(err, merrors.BadGrammar) works without exposing this type.
type wrapped struct {
	kind Kind
	err  error
}

func (w *wrapped) Error() string { return fmt.Sprintf("%s: %v", w.kind.name, w.err) }
func (w *wrapped) Unwrap() error { return w.kind }
func (w *wrapped) Cause() error  { return w.err }

// Wrap annotates err with a Kind and a formatted message, preserving the
// causal chain for diagnostics.
func Wrap(kind Kind, err error, format string, args ...any) error {
	return &wrapped{kind: kind, err: pkgerrors.Wrapf(err, format, args...)}
}

// New creates a fresh error of the given Kind with no wrapped cause.
func New(kind Kind, format string, args ...any) error {
	return &wrapped{kind: kind, err: fmt.Errorf(format, args...)}
}

// Is reports whether err (or anything in its chain) is of the given Kind.
func Is(err error, kind Kind) bool {
	return errors.Is(err, kind)
}
