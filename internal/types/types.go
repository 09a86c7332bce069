package types

import (
	"strings"
)

// Sequence is an ordered run of decimal digits stored left to right. Every
// element is in [0,9]; engine.Parse is the only constructor that enforces it.
type Sequence []uint8

// String renders the sequence back to ASCII digits.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, d := range s {
		b.WriteByte('0' + d)
	}
	return b.String()
}

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Step is one position of a checksum walk. Position counts from the right
// (0 = rightmost digit), Index from the left.
type Step struct {
	Position int  `json:"position"`
	Index    int  `json:"index"`
	Digit    int  `json:"digit"`
	Doubled  bool `json:"doubled"`
	Value    int  `json:"value"`
	Running  int  `json:"running"`
}

// Trace is the full record of an explained checksum walk. Steps are in walk
// order, rightmost digit first.
type Trace struct {
	Input    string `json:"input"`
	Steps    []Step `json:"steps"`
	Checksum int    `json:"checksum"`
	Valid    bool   `json:"valid"`
}

// CorrectionKind names the edit that produced a correction candidate.
type CorrectionKind string

const (
	KindSubstitution  CorrectionKind = "substitution"
	KindTransposition CorrectionKind = "transposition"
)

// Correction is an alternate sequence that passes the checksum. For
// transpositions Index is the left element of the swapped pair and
// Replacement is -1.
type Correction struct {
	Kind        CorrectionKind `json:"kind"`
	Index       int            `json:"index"`
	Replacement int            `json:"replacement"`
	Candidate   string         `json:"candidate"`
	Description string         `json:"description"`
}

// BatchResult is the outcome for one item of a batch validation. Error is
// set instead of Valid/Checksum when the item was not a digit string.
type BatchResult struct {
	Input    string `json:"input"`
	Valid    bool   `json:"valid"`
	Checksum int    `json:"checksum"`
	Error    string `json:"error,omitempty"`
}
