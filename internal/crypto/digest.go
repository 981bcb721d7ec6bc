package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
)

// digestEngine is the private implementation of [DigestEngine].
//
// chain is ordered by preference: HashPassword uses the first available
// primitive, VerifyPassword accepts a match from any available one so that
// hashes written by the browser client (sha256) keep verifying.
type digestEngine struct {
	chain []Primitive
	rand  io.Reader
}

// NewDigestEngine builds a [DigestEngine] over the given primitives, most
// preferred first.
func NewDigestEngine(chain ...Primitive) DigestEngine {
	return &digestEngine{chain: chain, rand: rand.Reader}
}

// NewDigestEngineFor builds the chain argon2id → sha256 with primary moved
// to the front. The xxhash fallback only joins the chain when it is the
// configured primary, so a strong configuration never accepts a fallback
// digest.
func NewDigestEngineFor(primary string, params Argon2Params) (DigestEngine, error) {
	names := []string{PrimitiveArgon2id, PrimitiveSHA256}
	if primary == "" {
		primary = PrimitiveArgon2id
	}

	first, err := NewPrimitive(primary, params)
	if err != nil {
		return nil, fmt.Errorf("digest primitive %q: %w", primary, err)
	}

	chain := []Primitive{first}
	for _, name := range names {
		if name == primary {
			continue
		}
		p, err := NewPrimitive(name, params)
		if err != nil {
			// argon2id with unusable params is simply left out of the chain
			continue
		}
		chain = append(chain, p)
	}

	return NewDigestEngine(chain...), nil
}

// HashPassword implements [DigestEngine].
func (e *digestEngine) HashPassword(password string) (string, string, error) {
	p := e.primary()
	if p == nil {
		return "", "", ErrNoPrimitiveAvailable
	}

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(e.rand, salt); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)

	return hex.EncodeToString(p.Sum(password, saltHex)), saltHex, nil
}

// VerifyPassword implements [DigestEngine]. Every available primitive is
// evaluated, match or not, so the running time does not reveal which one
// produced the stored hash.
func (e *digestEngine) VerifyPassword(password, storedHash, salt string) bool {
	want, err := hex.DecodeString(storedHash)
	if err != nil || len(want) == 0 {
		return false
	}

	match := 0
	for _, p := range e.chain {
		if !p.Available() {
			continue
		}
		match |= subtle.ConstantTimeCompare(p.Sum(password, salt), want)
	}
	return match == 1
}

func (e *digestEngine) primary() Primitive {
	for _, p := range e.chain {
		if p.Available() {
			return p
		}
	}
	return nil
}
