// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the size in bytes of every random salt (password digests and
// cipher bundles alike).
const SaltSize = 16

// Argon2Params are the Argon2id tuning parameters. They are kept in a value
// so they can be adjusted per deployment target (e.g. mobile vs. desktop) and
// lowered in tests.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params returns the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
		KeyLen:  32, // 256 bits
	}
}

func (p Argon2Params) valid() bool {
	return p.Time > 0 && p.Memory >= 8*uint32(p.Threads) && p.Threads > 0 && p.KeyLen >= 16
}

// keyChain derives symmetric keys from passphrases. It exists only in
// process memory; derived keys are never persisted.
type keyChain struct {
	params Argon2Params
	rand   io.Reader
}

func newKeyChain(params Argon2Params, random io.Reader) *keyChain {
	if random == nil {
		random = rand.Reader
	}
	return &keyChain{params: params, rand: random}
}

// generateSalt reads SaltSize random bytes from the CSPRNG.
func (k *keyChain) generateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(k.rand, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// deriveKey derives a 256-bit key from passphrase and salt using Argon2id.
// The key length is fixed at 32 bytes regardless of params.KeyLen because
// both AES-256 and secretbox need exactly that.
func (k *keyChain) deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.params.Time,
		k.params.Memory,
		k.params.Threads,
		32,
	)
}

// sealGCM encrypts plaintext with key using AES-256-GCM. A random nonce is
// generated and returned separately; aad is authenticated but not encrypted.
func (k *keyChain) sealGCM(key, plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, fmt.Errorf("create gcm: %w", err)
	}

	nonce = make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(k.rand, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nil, nonce, plaintext, aad), nonce, nil
}

// openGCM decrypts and authenticates ciphertext. An error here almost always
// means the passphrase was wrong.
func (k *keyChain) openGCM(key, nonce, ciphertext, aad []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("invalid nonce size")
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	return plaintext, nil
}
