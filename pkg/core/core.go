package core

import (
	"context"

	"github.com/varalys/luhnkit/internal/engine"
	"github.com/varalys/luhnkit/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Sequence = types.Sequence
type Step = types.Step
type Trace = types.Trace
type Correction = types.Correction
type CorrectionKind = types.CorrectionKind
type BatchResult = types.BatchResult
type BatchOptions = engine.BatchOptions
type InvalidInputError = engine.InvalidInputError

const (
	KindSubstitution  = types.KindSubstitution
	KindTransposition = types.KindTransposition
)

// ErrInvalidInput is returned (wrapped) for empty input or any non-digit
// character.
var ErrInvalidInput = engine.ErrInvalidInput

// Checksum returns the Luhn sum of s.
func Checksum(s string) (int, error) { return engine.Checksum(s) }

// IsValid reports whether s passes the Luhn check.
func IsValid(s string) (bool, error) { return engine.IsValid(s) }

// CheckDigit returns the digit that makes partial+digit valid.
func CheckDigit(partial string) (int, error) { return engine.CheckDigit(partial) }

// Complete returns partial with its check digit appended.
func Complete(partial string) (string, error) { return engine.Complete(partial) }

// Explain returns the per-digit trace of the checksum walk.
func Explain(s string) (Trace, error) { return engine.Explain(s) }

// DetectCorrections lists single-digit substitutions and adjacent
// transpositions of s that pass the check. An empty slice means none exist.
func DetectCorrections(s string) ([]Correction, error) { return engine.DetectCorrections(s) }

// ValidateBatch validates inputs concurrently, keeping input order.
func ValidateBatch(ctx context.Context, inputs []string, opts BatchOptions) ([]BatchResult, error) {
	return engine.ValidateBatch(ctx, inputs, opts)
}
