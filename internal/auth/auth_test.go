package auth

import (
	"strings"
	"testing"
)

const testKey = "planner:00112233445566778899aabbccddeeff"

func TestMintAndVerify(t *testing.T) {
	token, err := MintToken(testKey)
	if err != nil {
		t.Fatalf("MintToken: %v", err)
	}

	if err := VerifyToken(testKey, token); err != nil {
		t.Errorf("Expected token to verify, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := MintToken(testKey)
	if err != nil {
		t.Fatalf("MintToken: %v", err)
	}

	if err := VerifyToken("planner:ffeeddccbbaa99887766554433221100", token); err == nil {
		t.Error("Expected verification to fail for a different secret")
	}
}

func TestVerifyRejectsWrongKeyID(t *testing.T) {
	token, err := MintToken(testKey)
	if err != nil {
		t.Fatalf("MintToken: %v", err)
	}

	if err := VerifyToken("other:00112233445566778899aabbccddeeff", token); err == nil {
		t.Error("Expected verification to fail for a different key id")
	}
}

func TestMintRejectsMalformedKey(t *testing.T) {
	if _, err := MintToken("no-separator"); err == nil {
		t.Error("Expected an error for a key without id:secret format")
	}

	_, err := MintToken("id:not-hex")
	if err == nil || !strings.Contains(err.Error(), "hex") {
		t.Errorf("Expected a hex decode error, got %v", err)
	}
}
