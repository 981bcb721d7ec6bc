// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testArgon2Params keeps Argon2 cheap enough for unit tests.
var testArgon2Params = Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32}

func TestKeyChain_GenerateSalt_LengthAndRandomness(t *testing.T) {
	kc := newKeyChain(testArgon2Params, nil)

	s1, err := kc.generateSalt()
	require.NoError(t, err)
	s2, err := kc.generateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, SaltSize)
	assert.Len(t, s2, SaltSize)
	assert.NotEqual(t, s1, s2)
}

func TestKeyChain_DeriveKey(t *testing.T) {
	kc := newKeyChain(testArgon2Params, nil)
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1 := kc.deriveKey("correct horse battery staple", salt)
	k2 := kc.deriveKey("correct horse battery staple", salt)
	k3 := kc.deriveKey("correct horse battery staple", bytes.Repeat([]byte{0xCD}, SaltSize))
	k4 := kc.deriveKey("another passphrase", salt)

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2, "same inputs must derive the same key")
	assert.NotEqual(t, k1, k3, "salt must change the key")
	assert.NotEqual(t, k1, k4, "passphrase must change the key")
}

func TestKeyChain_GCMRoundTrip(t *testing.T) {
	kc := newKeyChain(testArgon2Params, nil)
	key := kc.deriveKey("pass", bytes.Repeat([]byte{1}, SaltSize))
	plaintext := []byte("top secret")

	ciphertext, nonce, err := kc.sealGCM(key, plaintext, []byte("aad"))
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	got, err := kc.openGCM(key, nonce, ciphertext, []byte("aad"))
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestKeyChain_OpenGCM_Failures(t *testing.T) {
	kc := newKeyChain(testArgon2Params, nil)
	key := kc.deriveKey("pass", bytes.Repeat([]byte{1}, SaltSize))
	wrongKey := kc.deriveKey("wrong", bytes.Repeat([]byte{1}, SaltSize))

	ciphertext, nonce, err := kc.sealGCM(key, []byte("data"), []byte("aad"))
	require.NoError(t, err)

	tampered := append([]byte(nil), ciphertext...)
	tampered[0] ^= 0xFF

	tests := []struct {
		name       string
		key        []byte
		nonce      []byte
		ciphertext []byte
		aad        []byte
	}{
		{name: "wrong key", key: wrongKey, nonce: nonce, ciphertext: ciphertext, aad: []byte("aad")},
		{name: "tampered ciphertext", key: key, nonce: nonce, ciphertext: tampered, aad: []byte("aad")},
		{name: "wrong aad", key: key, nonce: nonce, ciphertext: ciphertext, aad: []byte("other")},
		{name: "short nonce", key: key, nonce: nonce[:4], ciphertext: ciphertext, aad: []byte("aad")},
		{name: "bad key size", key: key[:7], nonce: nonce, ciphertext: ciphertext, aad: []byte("aad")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kc.openGCM(tt.key, tt.nonce, tt.ciphertext, tt.aad)
			assert.Error(t, err)
		})
	}
}

func TestArgon2Params_Valid(t *testing.T) {
	assert.True(t, DefaultArgon2Params().valid())
	assert.True(t, testArgon2Params.valid())
	assert.False(t, Argon2Params{}.valid())
	assert.False(t, Argon2Params{Time: 1, Memory: 64, Threads: 1, KeyLen: 8}.valid())
}
