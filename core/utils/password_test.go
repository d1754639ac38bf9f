package utils

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Passw0rd")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "Passw0rd" {
		t.Fatal("hash equals the plaintext password")
	}

	if !ComparePassword(hash, "Passw0rd") {
		t.Error("ComparePassword rejected the correct password")
	}
	if ComparePassword(hash, "wrong-password") {
		t.Error("ComparePassword accepted a wrong password")
	}
}
