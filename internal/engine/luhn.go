package engine

import (
	"fmt"

	"github.com/varalys/luhnkit/internal/types"
)

// Adjust applies the doubling rule to a single digit: d*2, minus 9 when the
// product exceeds 9.
func Adjust(d int) int {
	d *= 2
	if d > 9 {
		d -= 9
	}
	return d
}

// sum walks seq from the rightmost digit leftward. doubleFirst selects
// whether the rightmost digit is doubled.
func sum(seq types.Sequence, doubleFirst bool) int {
	total := 0
	double := doubleFirst
	for i := len(seq) - 1; i >= 0; i-- {
		d := int(seq[i])
		if double {
			d = Adjust(d)
		}
		total += d
		double = !double
	}
	return total
}

// SumOf returns the Luhn checksum of an already parsed sequence.
func SumOf(seq types.Sequence) int { return sum(seq, false) }

// ValidSeq reports whether an already parsed sequence passes the checksum.
func ValidSeq(seq types.Sequence) bool { return sum(seq, false)%10 == 0 }

// Checksum returns the Luhn sum of s.
func Checksum(s string) (int, error) {
	seq, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return SumOf(seq), nil
}

// IsValid reports whether the Luhn sum of s is a multiple of 10.
func IsValid(s string) (bool, error) {
	seq, err := Parse(s)
	if err != nil {
		return false, err
	}
	return ValidSeq(seq), nil
}

// CheckDigit returns the digit that, appended to partial, makes it valid.
// The rightmost digit of partial is doubled because the check digit will
// take the undoubled position to its right.
func CheckDigit(partial string) (int, error) {
	seq, err := Parse(partial)
	if err != nil {
		return 0, err
	}
	return (10 - sum(seq, true)%10) % 10, nil
}

// Complete returns partial with its check digit appended.
func Complete(partial string) (string, error) {
	d, err := CheckDigit(partial)
	if err != nil {
		return "", err
	}
	return partial + string(rune('0'+d)), nil
}

// Explain performs the checksum walk and records every step.
func Explain(s string) (types.Trace, error) {
	seq, err := Parse(s)
	if err != nil {
		return types.Trace{}, err
	}
	steps := make([]types.Step, 0, len(seq))
	total := 0
	double := false
	for i := len(seq) - 1; i >= 0; i-- {
		d := int(seq[i])
		v := d
		if double {
			v = Adjust(d)
		}
		total += v
		steps = append(steps, types.Step{
			Position: len(seq) - 1 - i,
			Index:    i,
			Digit:    d,
			Doubled:  double,
			Value:    v,
			Running:  total,
		})
		double = !double
	}
	return types.Trace{
		Input:    s,
		Steps:    steps,
		Checksum: total,
		Valid:    total%10 == 0,
	}, nil
}

// DetectCorrections searches single-digit substitutions and adjacent
// transpositions that turn s into a valid sequence. Substitutions come first,
// by index then replacement digit; transpositions follow by index. Swapping
// two equal digits is never a candidate. The result is empty, not nil, when
// nothing validates.
func DetectCorrections(s string) ([]types.Correction, error) {
	seq, err := Parse(s)
	if err != nil {
		return nil, err
	}
	out := []types.Correction{}

	work := seq.Clone()
	for i := range work {
		orig := work[i]
		for d := uint8(0); d <= 9; d++ {
			if d == orig {
				continue
			}
			work[i] = d
			if ValidSeq(work) {
				cand := work.String()
				out = append(out, types.Correction{
					Kind:        types.KindSubstitution,
					Index:       i,
					Replacement: int(d),
					Candidate:   cand,
					Description: fmt.Sprintf("Single digit correction at index %d: %s", i, cand),
				})
			}
		}
		work[i] = orig
	}

	for i := 0; i+1 < len(work); i++ {
		if work[i] == work[i+1] {
			continue
		}
		work[i], work[i+1] = work[i+1], work[i]
		if ValidSeq(work) {
			cand := work.String()
			out = append(out, types.Correction{
				Kind:        types.KindTransposition,
				Index:       i,
				Replacement: -1,
				Candidate:   cand,
				Description: fmt.Sprintf("Transposition correction between index %d and %d: %s", i, i+1, cand),
			})
		}
		work[i], work[i+1] = work[i+1], work[i]
	}
	return out, nil
}
