package auth_test

import (
	"strings"
	"testing"

	"github.com/shashiranjanraj/platter/pkg/auth"
)

func TestSignVerifyRoundtrip(t *testing.T) {
	token, err := auth.Sign(42)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	id, err := auth.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id != 42 {
		t.Errorf("user id = %d, want 42", id)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	token, err := auth.Sign(42)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token segments = %d, want 3", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := auth.Verify(tampered); err == nil {
		t.Error("tampered token verified")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "abc", "a.b.c"} {
		if _, err := auth.Verify(token); err == nil {
			t.Errorf("garbage token %q verified", token)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret" {
		t.Fatal("password stored in plain text")
	}
	if !auth.CheckPassword(hash, "secret") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
