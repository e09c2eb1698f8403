// Package crypto encrypts LLM provider API keys at rest with AES-256-GCM.
// Ciphertexts are self-contained: nonce prepended, base64 encoded.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

var errKeyNotInitialized = errors.New("encryption key not initialized")

// key holds the active AES-256 key. Set once at startup via InitEncryption.
var key []byte

// InitEncryption sets the process-wide key from a base64-encoded 32-byte
// string. An empty string generates an ephemeral key: stored ciphertexts
// then survive only until the next restart, which is acceptable for
// development but means ENCRYPTION_KEY must be set in any real deployment.
func InitEncryption(encoded string) error {
	if encoded == "" {
		key = make([]byte, 32)
		_, err := io.ReadFull(rand.Reader, key)
		return err
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return err
	}
	if len(decoded) != 32 {
		return errors.New("encryption key must be 32 bytes for AES-256")
	}

	key = decoded
	return nil
}

// Encrypt seals plaintext with a fresh random nonce.
func Encrypt(plaintext string) (string, error) {
	gcm, err := newGCM()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a ciphertext produced by Encrypt.
func Decrypt(ciphertext string) (string, error) {
	gcm, err := newGCM()
	if err != nil {
		return "", err
	}

	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}
	if len(data) < gcm.NonceSize() {
		return "", errors.New("ciphertext too short")
	}

	nonce, sealed := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

func newGCM() (cipher.AEAD, error) {
	if len(key) == 0 {
		return nil, errKeyNotInitialized
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// MaskAPIKey renders a key safe for display, e.g. "sk-...f3a9".
func MaskAPIKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	if len(apiKey) <= 10 {
		return "***"
	}
	return apiKey[:3] + "..." + apiKey[len(apiKey)-4:]
}
