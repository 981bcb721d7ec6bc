package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes an HMAC-SHA256 signature over data keyed with key.
//
// A new HMAC instance is created on each call, so Hash is safe for
// concurrent use without any setup.
func Hash(data, key []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// HashString computes an HMAC-SHA256 signature over data and returns it
// hex-encoded.
//
// Example usage:
//
//	checksum := utils.HashString(ciphertext, derivedKey)
func HashString(data string, key []byte) string {
	return hex.EncodeToString(Hash([]byte(data), key))
}

// EqualHashString reports whether sig is the hex HMAC of data under key.
// The comparison is constant-time; malformed hex never matches.
func EqualHashString(data string, key []byte, sig string) bool {
	raw, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	return hmac.Equal(raw, Hash([]byte(data), key))
}
