// Package service provides the encryption keepers that protect API key
// material at rest.
package service

import (
	"context"
	"fmt"

	"gocloud.dev/secrets"
	_ "gocloud.dev/secrets/hashivault" // Vault Transit provider
)

// Keeper encrypts and decrypts API key material. It is satisfied by
// *secrets.Keeper and by the local ChaCha20-Poly1305 keeper.
type Keeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
}

// OpenKMSKeeper opens a gocloud.dev secrets keeper for the given key URI,
// for example "hashivault://my-key".
func OpenKMSKeeper(ctx context.Context, keyURI string) (*secrets.Keeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open keeper for URI %s: %w", keyURI, err)
	}
	return keeper, nil
}
