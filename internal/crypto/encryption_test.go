package crypto

import (
	"encoding/base64"
	"testing"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	if err := InitEncryption(""); err != nil {
		t.Fatalf("InitEncryption: %v", err)
	}

	plaintext := "sk-test-api-key-1234567890"

	ciphertext, err := Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if ciphertext == plaintext {
		t.Fatal("ciphertext equals plaintext")
	}

	decrypted, err := Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if decrypted != plaintext {
		t.Errorf("round trip = %q, want %q", decrypted, plaintext)
	}
}

func TestEncryptUniqueNonces(t *testing.T) {
	if err := InitEncryption(""); err != nil {
		t.Fatal(err)
	}

	a, err := Encrypt("same input")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encrypt("same input")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two encryptions of the same plaintext produced identical ciphertexts")
	}
}

func TestInitEncryptionRejectsBadKeys(t *testing.T) {
	if err := InitEncryption("not base64!!!"); err == nil {
		t.Error("invalid base64 accepted")
	}

	short := base64.StdEncoding.EncodeToString([]byte("too short"))
	if err := InitEncryption(short); err == nil {
		t.Error("short key accepted")
	}
}

func TestDecryptRejectsTamperedInput(t *testing.T) {
	if err := InitEncryption(""); err != nil {
		t.Fatal(err)
	}

	ciphertext, err := Encrypt("secret")
	if err != nil {
		t.Fatal(err)
	}

	raw, _ := base64.StdEncoding.DecodeString(ciphertext)
	raw[len(raw)-1] ^= 0xFF
	tampered := base64.StdEncoding.EncodeToString(raw)

	if _, err := Decrypt(tampered); err == nil {
		t.Error("tampered ciphertext decrypted without error")
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"short", "***"},
		{"sk-abcdefghijklmnop", "sk-...mnop"},
	}
	for _, tt := range tests {
		if got := MaskAPIKey(tt.in); got != tt.want {
			t.Errorf("MaskAPIKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
