package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/MKhiriev/team-vault/internal/errs"
	"github.com/MKhiriev/team-vault/models"
)

// Character classes used by the password generator.
const (
	CharsetLowercase = "abcdefghijklmnopqrstuvwxyz"
	CharsetUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetNumbers   = "0123456789"
	CharsetSymbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	inviteCharset = CharsetUppercase + CharsetNumbers
)

// DefaultPasswordLength is used by callers that do not ask for a length.
const DefaultPasswordLength = 16

type charsetOptions struct {
	lowercase, uppercase, numbers, symbols bool
}

// CharsetOption switches a character class off.
type CharsetOption func(*charsetOptions)

// WithoutLowercase excludes a-z.
func WithoutLowercase() CharsetOption { return func(o *charsetOptions) { o.lowercase = false } }

// WithoutUppercase excludes A-Z.
func WithoutUppercase() CharsetOption { return func(o *charsetOptions) { o.uppercase = false } }

// WithoutNumbers excludes 0-9.
func WithoutNumbers() CharsetOption { return func(o *charsetOptions) { o.numbers = false } }

// WithoutSymbols excludes [CharsetSymbols].
func WithoutSymbols() CharsetOption { return func(o *charsetOptions) { o.symbols = false } }

func (o charsetOptions) charset() string {
	var s string
	if o.lowercase {
		s += CharsetLowercase
	}
	if o.uppercase {
		s += CharsetUppercase
	}
	if o.numbers {
		s += CharsetNumbers
	}
	if o.symbols {
		s += CharsetSymbols
	}
	if s == "" {
		// every class disabled: fall back to alphanumerics
		s = CharsetLowercase + CharsetUppercase + CharsetNumbers
	}
	return s
}

type generator struct {
	rand io.Reader
}

// NewGenerator returns a [CredentialGenerator] backed by crypto/rand.
func NewGenerator() CredentialGenerator {
	return &generator{rand: rand.Reader}
}

func (g *generator) GeneratePassword(length int, opts ...CharsetOption) (string, error) {
	if length < 1 {
		return "", errs.NewValidationError("length", "must be at least 1")
	}

	o := charsetOptions{lowercase: true, uppercase: true, numbers: true, symbols: true}
	for _, opt := range opts {
		opt(&o)
	}

	return g.draw(o.charset(), length)
}

func (g *generator) GenerateInviteCode() (string, error) {
	return g.draw(inviteCharset, models.InviteCodeLength)
}

// draw picks n characters uniformly from charset.
func (g *generator) draw(charset string, n int) (string, error) {
	limit := big.NewInt(int64(len(charset)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(g.rand, limit)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		out[i] = charset[idx.Int64()]
	}
	return string(out), nil
}
