package models

// CipherBundle is a self-describing encrypted payload.
//
// The field names are a superset of the browser client's encrypted export
// ({encrypted, salt, iv}); Algorithm tells the decrypting side which cipher
// produced the bundle, so no out-of-band knowledge is needed.
type CipherBundle struct {
	// Encrypted is the base64 (standard encoding) ciphertext.
	Encrypted string `json:"encrypted"`

	// Salt is the hex-encoded per-bundle key-derivation salt.
	Salt string `json:"salt"`

	// IV is the base64 nonce, or the literal "fallback" for the XOR cipher.
	IV string `json:"iv"`

	// Algorithm names the cipher, e.g. "aes-256-gcm".
	Algorithm string `json:"algorithm,omitempty"`

	// Checksum is an integrity tag, set only by ciphers without built-in
	// authentication.
	Checksum string `json:"checksum,omitempty"`
}

// Strength levels returned by the password strength scorer.
const (
	StrengthWeak       = "weak"
	StrengthMedium     = "medium"
	StrengthStrong     = "strong"
	StrengthVeryStrong = "very_strong"
)

// Strength is an advisory password strength estimate.
type Strength struct {
	Level string `json:"level"`
	Score int    `json:"score"`
	Label string `json:"label"`
}
