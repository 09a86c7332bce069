// Package engine contains the Luhn checksum logic for luhnkit: checksum,
// validity, check-digit generation, step-by-step traces, correction search
// and parallel batch validation. Every operation is a pure function of its
// input string. This package is internal; external consumers should use the
// stable facade in pkg/core.
package engine
