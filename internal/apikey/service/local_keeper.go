package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// LocalKeeper is a ChaCha20-Poly1305 keeper for deployments without an
// external KMS. The nonce is prepended to the ciphertext.
type LocalKeeper struct {
	key []byte
}

// NewLocalKeeper creates a LocalKeeper from a base64-encoded 32-byte secret.
func NewLocalKeeper(encodedSecret string) (*LocalKeeper, error) {
	key, err := base64.StdEncoding.DecodeString(encodedSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to decode local keeper secret: %w", err)
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("local keeper secret must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	return &LocalKeeper{key: key}, nil
}

// Encrypt encrypts the plaintext and returns nonce||ciphertext.
func (k *LocalKeeper) Encrypt(_ context.Context, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(k.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt decrypts a nonce||ciphertext payload produced by Encrypt.
func (k *LocalKeeper) Decrypt(_ context.Context, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(k.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	if len(ciphertext) < aead.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short: %d bytes", len(ciphertext))
	}

	nonce, sealed := ciphertext[:aead.NonceSize()], ciphertext[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}
