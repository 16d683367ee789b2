// Package remap builds the sparse Spectral-Element-to-Finite-Volume remap
// operator: per-element weight assembly, the Schur-complement constraint
// reconciliation that forces consistency/conservation/monotonicity, and
// the accumulation of reconciled weights into the global sparse map.
package remap

import "fmt"

// ErrorKind distinguishes the fatal failure modes construction can hit.
// All of them abort the whole map: no partial operator is ever returned
// alongside a non-nil error.
type ErrorKind int

const (
	// KindMalformedOverlap: the inverse parametric map produced
	// coordinates outside the accepted [-eps, 1+eps] range, meaning a
	// quadrature point was not actually inside the source element it was
	// attributed to.
	KindMalformedOverlap ErrorKind = iota
	// KindWrongElementShape: a source face referenced by the overlap
	// mesh is not a quadrilateral.
	KindWrongElementShape
	// KindIndefiniteSchur: the Cholesky factorization of the
	// consistency/conservation Schur complement failed, meaning the
	// constraint system for this element was not positive definite.
	KindIndefiniteSchur
)

// Error is the fatal-error type construction returns. Non-fatal
// conditions (partial element cover, global partial cover) are reported
// through a diagnostics.Logger instead, never through this type.
type Error struct {
	Kind        ErrorKind
	SourceFace  int
	Alpha, Beta float64 // populated for KindMalformedOverlap
	Info        int     // populated for KindIndefiniteSchur; always 1, gonum's Cholesky exposes no LAPACK info code
	msg         string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMalformedOverlap:
		return fmt.Sprintf("remap: inverse map out of range (%1.5e, %1.5e) at source face %d", e.Alpha, e.Beta, e.SourceFace)
	case KindWrongElementShape:
		return fmt.Sprintf("remap: only quadrilateral elements allowed, source face %d: %s", e.SourceFace, e.msg)
	case KindIndefiniteSchur:
		return fmt.Sprintf("remap: unable to solve SPD Schur system at source face %d, info=%d", e.SourceFace, e.Info)
	default:
		return fmt.Sprintf("remap: %s", e.msg)
	}
}
