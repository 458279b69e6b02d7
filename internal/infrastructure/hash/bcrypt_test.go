package hash

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4) // minimum cost keeps the test fast

	digest, err := h.Hash("letmein")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "letmein" {
		t.Fatal("digest equals plaintext")
	}

	if !h.Verify("letmein", digest) {
		t.Fatal("correct password did not verify")
	}
	if h.Verify("wrong", digest) {
		t.Fatal("incorrect password verified")
	}
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(99)

	digest, err := h.Hash("x")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !h.Verify("x", digest) {
		t.Fatal("round trip failed with fallback cost")
	}
}
