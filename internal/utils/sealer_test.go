package utils

import (
	"strings"
	"testing"
)

func TestSealerRoundTrip(t *testing.T) {
	s, err := NewSealer("a1b2c3d4e5f6")
	if err != nil {
		t.Fatalf("NewSealer returned error: %v", err)
	}

	sealed, err := s.Seal("tenant@example.com")
	if err != nil {
		t.Fatalf("Seal returned error: %v", err)
	}
	if strings.Contains(sealed, "tenant") {
		t.Fatalf("sealed value leaks plaintext: %s", sealed)
	}

	opened, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if opened != "tenant@example.com" {
		t.Fatalf("expected tenant@example.com, got %q", opened)
	}

	again, _ := s.Seal("tenant@example.com")
	if again == sealed {
		t.Fatal("expected a fresh nonce per Seal call")
	}
}

func TestSealerRejectsTampering(t *testing.T) {
	s, _ := NewSealer("secret")
	sealed, _ := s.Seal("hello")

	raw := []byte(sealed)
	if raw[len(raw)-3] == 'A' {
		raw[len(raw)-3] = 'B'
	} else {
		raw[len(raw)-3] = 'A'
	}
	if _, err := s.Open(string(raw)); err == nil {
		t.Fatal("expected error opening a tampered value")
	}
	if _, err := s.Open("!!"); err == nil {
		t.Fatal("expected error for invalid base64")
	}

	other, _ := NewSealer("other-secret")
	if _, err := other.Open(sealed); err == nil {
		t.Fatal("expected error opening with a different secret")
	}
}

func TestFingerprint(t *testing.T) {
	a, _ := NewSealer("secret")
	b, _ := NewSealer("other")

	if a.Fingerprint("x@y.z") != a.Fingerprint("x@y.z") {
		t.Fatal("fingerprint must be deterministic")
	}
	if a.Fingerprint("x@y.z") == b.Fingerprint("x@y.z") {
		t.Fatal("fingerprint must depend on the secret")
	}
	if len(a.Fingerprint("")) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a.Fingerprint("")))
	}
	if _, err := NewSealer(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
