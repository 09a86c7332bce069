package validate

import "testing"

func TestIsAlphabet(t *testing.T) {
	if !IsAlphabet("0110", "01") {
		t.Fatal("expected binary digits to be allowed")
	}
	if IsAlphabet("012", "01") {
		t.Fatal("expected false when char not allowed")
	}
	if IsAlphabet("", "01") {
		t.Fatal("expected false for empty string")
	}
}

func TestIsDigits(t *testing.T) {
	if !IsDigits("79927398713") {
		t.Fatal("expected digits")
	}
	for _, s := range []string{"", "12a3", "12 3", "-1", "١٢"} {
		if IsDigits(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestStripSeparators(t *testing.T) {
	got := StripSeparators("4539 1488-0343.6467")
	if got != "4539148803436467" {
		t.Fatalf("unexpected strip result: %q", got)
	}
	if got := StripSeparators("12a3"); got != "12a3" {
		t.Fatalf("non-separators must survive: %q", got)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  4539 1488  ", false); got != "4539 1488" {
		t.Fatalf("expected only trimming without strip: %q", got)
	}
	if got := Normalize("  4539 1488  ", true); got != "45391488" {
		t.Fatalf("expected separators removed: %q", got)
	}
}
