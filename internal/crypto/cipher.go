package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/MKhiriev/team-vault/internal/errs"
	"github.com/MKhiriev/team-vault/models"
)

// symmetricCipher encrypts with one configured [Cipher] and decrypts with
// whichever cipher the bundle names.
type symmetricCipher struct {
	primary Cipher
	ciphers map[string]Cipher
	kc      *keyChain
}

// NewSymmetricCipher returns a [SymmetricCipher] that encrypts with algorithm
// ("" selects AES-256-GCM) and can decrypt bundles of every built-in algorithm.
func NewSymmetricCipher(algorithm string, params Argon2Params) (SymmetricCipher, error) {
	return newSymmetricCipher(algorithm, params, rand.Reader)
}

func newSymmetricCipher(algorithm string, params Argon2Params, random io.Reader) (*symmetricCipher, error) {
	if !params.valid() {
		return nil, ErrInvalidArgon2Params
	}
	if algorithm == "" {
		algorithm = AlgorithmAESGCM
	}

	kc := newKeyChain(params, random)
	ciphers := map[string]Cipher{
		AlgorithmAESGCM:    &aesGCMCipher{kc: kc},
		AlgorithmSecretbox: &secretboxCipher{kc: kc},
		AlgorithmXOR:       xorCipher{},
	}

	primary, ok := ciphers[algorithm]
	if !ok {
		return nil, fmt.Errorf("cipher %q: %w", algorithm, ErrUnknownAlgorithm)
	}

	return &symmetricCipher{primary: primary, ciphers: ciphers, kc: kc}, nil
}

// Encrypt implements [SymmetricCipher].
func (s *symmetricCipher) Encrypt(v any, passphrase string) (models.CipherBundle, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return models.CipherBundle{}, fmt.Errorf("marshal plaintext: %w", err)
	}

	salt, err := s.kc.generateSalt()
	if err != nil {
		return models.CipherBundle{}, err
	}

	return s.primary.Seal(plaintext, passphrase, hex.EncodeToString(salt))
}

// Decrypt implements [SymmetricCipher]. The cause of a failure is
// deliberately dropped.
func (s *symmetricCipher) Decrypt(bundle models.CipherBundle, passphrase string, target any) error {
	if rv := reflect.ValueOf(target); rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errs.ErrDecryption
	}

	c, ok := s.ciphers[s.algorithmOf(bundle)]
	if !ok {
		return errs.ErrDecryption
	}

	plaintext, err := c.Open(bundle, passphrase)
	if err != nil {
		return errs.ErrDecryption
	}
	if err := json.Unmarshal(plaintext, target); err != nil {
		return errs.ErrDecryption
	}
	return nil
}

// algorithmOf resolves bundles without an algorithm tag. An iv of "fallback"
// selects the XOR cipher, which still needs the checksum this program
// writes; the browser client's untagged export has none and is rejected.
// Anything else is assumed to be AES-GCM.
func (s *symmetricCipher) algorithmOf(bundle models.CipherBundle) string {
	if bundle.Algorithm != "" {
		return bundle.Algorithm
	}
	if bundle.IV == FallbackIV {
		return AlgorithmXOR
	}
	return AlgorithmAESGCM
}
