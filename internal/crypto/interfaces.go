// Package crypto holds every cryptographic building block of the vault:
// the salted password digest used for login, the passphrase-based symmetric
// cipher used for snapshot export, and the random credential generator.
//
// The package knows nothing about storage, users or teams.
package crypto

import "github.com/MKhiriev/team-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// DigestEngine hashes and verifies login passwords.
//
// Callers never learn which [Primitive] produced a hash: the stored contract
// is only "hex digest + hex salt".
type DigestEngine interface {
	// HashPassword draws a fresh random salt and returns the hex digest of
	// password||hex(salt) together with the hex salt. A salt is never reused.
	HashPassword(password string) (hash, salt string, err error)

	// VerifyPassword recomputes the digest with salt and compares it with
	// storedHash in constant time.
	VerifyPassword(password, storedHash, salt string) bool
}

// Primitive is a one-way digest strategy plugged into a [DigestEngine].
type Primitive interface {
	// Name identifies the primitive in configuration, e.g. "argon2id".
	Name() string

	// Available reports whether the primitive can be used in this process.
	Available() bool

	// Sum returns the raw digest of password||saltHex. It must be
	// deterministic, salt-sensitive and of fixed length.
	Sum(password, saltHex string) []byte
}

// SymmetricCipher encrypts arbitrary JSON-serializable values under a
// user-supplied passphrase.
//
// Round-trip law: Decrypt(Encrypt(x, p), p) yields x for every serializable x
// and every passphrase p.
type SymmetricCipher interface {
	// Encrypt serializes v to JSON, derives a per-call salt and seals the
	// bytes with the configured algorithm.
	Encrypt(v any, passphrase string) (models.CipherBundle, error)

	// Decrypt opens bundle and unmarshals the plaintext into target, which
	// must be a non-nil pointer. Every failure is errs.ErrDecryption.
	Decrypt(bundle models.CipherBundle, passphrase string, target any) error
}

// Cipher is one symmetric algorithm usable by a [SymmetricCipher].
type Cipher interface {
	// Algorithm is the tag written into [models.CipherBundle.Algorithm].
	Algorithm() string

	// Seal encrypts plaintext and fills Encrypted, IV and, when the algorithm
	// is not authenticated, Checksum.
	Seal(plaintext []byte, passphrase, saltHex string) (models.CipherBundle, error)

	// Open reverses Seal. It must fail rather than return unauthenticated
	// bytes.
	Open(bundle models.CipherBundle, passphrase string) ([]byte, error)
}

// CredentialGenerator produces random secrets.
type CredentialGenerator interface {
	// GeneratePassword returns a random password of length characters drawn
	// uniformly from the charset selected by opts.
	GeneratePassword(length int, opts ...CharsetOption) (string, error)

	// GenerateInviteCode returns an 8-character code over [A-Z0-9]. The
	// caller is responsible for checking it against live codes.
	GenerateInviteCode() (string, error)
}
