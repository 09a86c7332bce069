package core

import (
	"encoding/json"
	"io"
)

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// MarshalTrace pretty-prints a trace as JSON for humans or pipelines.
func MarshalTrace(w io.Writer, tr Trace) error { return encode(w, tr) }

// MarshalCorrections pretty-prints correction candidates as JSON.
func MarshalCorrections(w io.Writer, cs []Correction) error {
	if cs == nil {
		cs = []Correction{}
	}
	return encode(w, cs)
}

// MarshalBatch pretty-prints batch results as JSON.
func MarshalBatch(w io.Writer, rs []BatchResult) error { return encode(w, rs) }

// UnmarshalTrace decodes trace JSON, useful for ingestion tests.
func UnmarshalTrace(r io.Reader) (Trace, error) {
	var tr Trace
	if err := json.NewDecoder(r).Decode(&tr); err != nil {
		return Trace{}, err
	}
	return tr, nil
}
