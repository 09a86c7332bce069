package core

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestFacade_Smoke(t *testing.T) {
	sum, err := Checksum("79927398713")
	if err != nil || sum != 70 {
		t.Fatalf("Checksum = %d, %v; want 70", sum, err)
	}
	ok, err := IsValid("79927398710")
	if err != nil || ok {
		t.Fatalf("IsValid(79927398710) = %v, %v; want false", ok, err)
	}
	if _, err := IsValid(""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty input, got %v", err)
	}
	var iie *InvalidInputError
	if _, err := Explain("1x"); !errors.As(err, &iie) || iie.Offset != 1 {
		t.Fatalf("expected InvalidInputError at offset 1, got %v", err)
	}
}

func TestValidateBatch_Facade(t *testing.T) {
	rs, err := ValidateBatch(context.Background(), []string{"0", "1"}, BatchOptions{Workers: 2})
	if err != nil {
		t.Fatalf("ValidateBatch: %v", err)
	}
	if len(rs) != 2 || !rs[0].Valid || rs[1].Valid {
		t.Fatalf("unexpected results: %+v", rs)
	}
}

func TestMarshalTrace_RoundTrip(t *testing.T) {
	tr, err := Explain("4539148803436467")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := MarshalTrace(&buf, tr); err != nil {
		t.Fatalf("MarshalTrace: %v", err)
	}
	got, err := UnmarshalTrace(&buf)
	if err != nil {
		t.Fatalf("UnmarshalTrace: %v", err)
	}
	if got.Checksum != 80 || !got.Valid || len(got.Steps) != 16 {
		t.Fatalf("unexpected decoded trace: %+v", got)
	}
}

func TestMarshalCorrections_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := MarshalCorrections(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
}

func TestMarshalBatch_OmitsEmptyError(t *testing.T) {
	var buf bytes.Buffer
	if err := MarshalBatch(&buf, []BatchResult{{Input: "0", Valid: true}}); err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(buf.Bytes(), []byte(`"error"`)) {
		t.Fatalf("error key should be omitted: %s", buf.String())
	}
}
