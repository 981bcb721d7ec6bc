// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/MKhiriev/team-vault/internal/utils"
	"github.com/MKhiriev/team-vault/models"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/nacl/secretbox"
)

// Algorithm tags written into [models.CipherBundle.Algorithm].
const (
	AlgorithmAESGCM    = "aes-256-gcm"
	AlgorithmSecretbox = "xsalsa20-poly1305"
	AlgorithmXOR       = "xor-fallback"
)

// FallbackIV is the IV marker of bundles produced by the XOR cipher.
const FallbackIV = "fallback"

const secretboxNonceSize = 24

var (
	errBadBundle      = errors.New("malformed bundle")
	errChecksumFailed = errors.New("checksum mismatch")
)

// aesGCMCipher derives a key with Argon2id and seals with AES-256-GCM. The
// algorithm tag is bound as additional data.
type aesGCMCipher struct {
	kc *keyChain
}

func (c *aesGCMCipher) Algorithm() string { return AlgorithmAESGCM }

func (c *aesGCMCipher) Seal(plaintext []byte, passphrase, saltHex string) (models.CipherBundle, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return models.CipherBundle{}, fmt.Errorf("decode salt: %w", err)
	}

	key := c.kc.deriveKey(passphrase, salt)
	ciphertext, nonce, err := c.kc.sealGCM(key, plaintext, []byte(AlgorithmAESGCM))
	if err != nil {
		return models.CipherBundle{}, err
	}

	return models.CipherBundle{
		Encrypted: base64.StdEncoding.EncodeToString(ciphertext),
		Salt:      saltHex,
		IV:        base64.StdEncoding.EncodeToString(nonce),
		Algorithm: AlgorithmAESGCM,
	}, nil
}

func (c *aesGCMCipher) Open(bundle models.CipherBundle, passphrase string) ([]byte, error) {
	salt, nonce, ciphertext, err := decodeBundle(bundle)
	if err != nil {
		return nil, err
	}

	key := c.kc.deriveKey(passphrase, salt)
	return c.kc.openGCM(key, nonce, ciphertext, []byte(AlgorithmAESGCM))
}

// secretboxCipher derives a key with Argon2id and seals with NaCl secretbox.
type secretboxCipher struct {
	kc *keyChain
}

func (c *secretboxCipher) Algorithm() string { return AlgorithmSecretbox }

func (c *secretboxCipher) Seal(plaintext []byte, passphrase, saltHex string) (models.CipherBundle, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return models.CipherBundle{}, fmt.Errorf("decode salt: %w", err)
	}

	var key [32]byte
	copy(key[:], c.kc.deriveKey(passphrase, salt))

	var nonce [secretboxNonceSize]byte
	if _, err := c.kc.rand.Read(nonce[:]); err != nil {
		return models.CipherBundle{}, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nil, plaintext, &nonce, &key)

	return models.CipherBundle{
		Encrypted: base64.StdEncoding.EncodeToString(sealed),
		Salt:      saltHex,
		IV:        base64.StdEncoding.EncodeToString(nonce[:]),
		Algorithm: AlgorithmSecretbox,
	}, nil
}

func (c *secretboxCipher) Open(bundle models.CipherBundle, passphrase string) ([]byte, error) {
	salt, rawNonce, sealed, err := decodeBundle(bundle)
	if err != nil {
		return nil, err
	}
	if len(rawNonce) != secretboxNonceSize {
		return nil, errBadBundle
	}

	var key [32]byte
	copy(key[:], c.kc.deriveKey(passphrase, salt))
	var nonce [secretboxNonceSize]byte
	copy(nonce[:], rawNonce)

	plaintext, ok := secretbox.Open(nil, sealed, &nonce, &key)
	if !ok {
		return nil, errChecksumFailed
	}
	return plaintext, nil
}

// xorCipher is the NON-CRYPTOGRAPHIC fallback cipher. Its keystream is a run
// of xxhash64 blocks seeded by the fallback digest of passphrase||saltHex, so
// it offers obfuscation only. An HMAC over the ciphertext lets Open reject a
// wrong passphrase instead of returning garbage.
type xorCipher struct{}

func (xorCipher) Algorithm() string { return AlgorithmXOR }

func (xorCipher) Seal(plaintext []byte, passphrase, saltHex string) (models.CipherBundle, error) {
	seed := fallbackSum(passphrase + saltHex)
	encrypted := base64.StdEncoding.EncodeToString(xorKeystream(seed, plaintext))

	return models.CipherBundle{
		Encrypted: encrypted,
		Salt:      saltHex,
		IV:        FallbackIV,
		Algorithm: AlgorithmXOR,
		Checksum:  utils.HashString(encrypted, seed),
	}, nil
}

func (xorCipher) Open(bundle models.CipherBundle, passphrase string) ([]byte, error) {
	seed := fallbackSum(passphrase + bundle.Salt)
	if !utils.EqualHashString(bundle.Encrypted, seed, bundle.Checksum) {
		return nil, errChecksumFailed
	}

	data, err := base64.StdEncoding.DecodeString(bundle.Encrypted)
	if err != nil {
		return nil, errBadBundle
	}
	return xorKeystream(seed, data), nil
}

// xorKeystream XORs data with 8-byte blocks xxhash64(seed||counter).
func xorKeystream(seed, data []byte) []byte {
	out := make([]byte, len(data))
	block := make([]byte, 0, 8)
	counter := make([]byte, 0, len(seed)+8)

	for i := range data {
		if i%8 == 0 {
			counter = binary.BigEndian.AppendUint64(append(counter[:0], seed...), uint64(i/8))
			block = binary.BigEndian.AppendUint64(block[:0], xxhash.Sum64(counter))
		}
		out[i] = data[i] ^ block[i%8]
	}
	return out
}

func decodeBundle(bundle models.CipherBundle) (salt, nonce, ciphertext []byte, err error) {
	if salt, err = hex.DecodeString(bundle.Salt); err != nil {
		return nil, nil, nil, errBadBundle
	}
	if nonce, err = base64.StdEncoding.DecodeString(bundle.IV); err != nil {
		return nil, nil, nil, errBadBundle
	}
	if ciphertext, err = base64.StdEncoding.DecodeString(bundle.Encrypted); err != nil {
		return nil, nil, nil, errBadBundle
	}
	return salt, nonce, ciphertext, nil
}
