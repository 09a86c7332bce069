// Package core provides a small, stable facade over luhnkit's internal
// engine for external integrations. It re-exports a narrow API surface so
// other programs can depend on a stable import path without importing
// internal packages.
//
// Example:
//
//	ok, err := core.IsValid("79927398713")
//	if err != nil { /* handle core.ErrInvalidInput */ }
//	tr, _ := core.Explain("79927398713")
//	_ = core.MarshalTrace(os.Stdout, tr)
package core
