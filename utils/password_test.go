package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3nha-admin")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3nha-admin" {
		t.Fatal("hash must not equal the raw password")
	}
	if !CheckPassword(hash, "s3nha-admin") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "errada") {
		t.Error("wrong password accepted")
	}
}
