package crypto

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/argon2"
)

// Names of the built-in digest primitives.
const (
	PrimitiveArgon2id = "argon2id"
	PrimitiveSHA256   = "sha256"
	PrimitiveFallback = "fallback"
)

// argon2idPrimitive is the strong, memory-hard password digest.
type argon2idPrimitive struct {
	params Argon2Params
}

// NewArgon2idPrimitive returns the Argon2id primitive. The per-user salt is
// used both inside the hashed input and as the Argon2 salt.
func NewArgon2idPrimitive(params Argon2Params) Primitive {
	return &argon2idPrimitive{params: params}
}

func (p *argon2idPrimitive) Name() string { return PrimitiveArgon2id }

func (p *argon2idPrimitive) Available() bool { return p.params.valid() }

func (p *argon2idPrimitive) Sum(password, saltHex string) []byte {
	return argon2.IDKey(
		[]byte(password+saltHex),
		[]byte(saltHex),
		p.params.Time,
		p.params.Memory,
		p.params.Threads,
		p.params.KeyLen,
	)
}

// sha256Primitive computes SHA-256(password||saltHex). This is exactly what
// the browser client stores, so accounts imported from its snapshots can
// still log in.
type sha256Primitive struct{}

// NewSHA256Primitive returns the SHA-256 primitive.
func NewSHA256Primitive() Primitive {
	return sha256Primitive{}
}

func (sha256Primitive) Name() string { return PrimitiveSHA256 }

func (sha256Primitive) Available() bool { return true }

func (sha256Primitive) Sum(password, saltHex string) []byte {
	sum := sha256.Sum256([]byte(password + saltHex))
	return sum[:]
}

// fallbackRounds * 8 bytes gives the 64-hex-character output.
const fallbackRounds = 4

// fallbackPrimitive is a NON-CRYPTOGRAPHIC digest built from chained xxhash64
// rounds. It is deterministic, salt-sensitive and fixed-length, and that is
// all it is: xxhash is fast and invertible in practice, so a leaked
// hash/salt pair can be brute-forced cheaply. It only exists as a last resort
// when no real primitive is available and must never be the configured
// default.
type fallbackPrimitive struct{}

// NewFallbackPrimitive returns the weak fallback primitive.
func NewFallbackPrimitive() Primitive {
	return fallbackPrimitive{}
}

func (fallbackPrimitive) Name() string { return PrimitiveFallback }

func (fallbackPrimitive) Available() bool { return true }

func (fallbackPrimitive) Sum(password, saltHex string) []byte {
	return fallbackSum(password + saltHex)
}

// fallbackSum mixes a base hash of data into fallbackRounds further rounds,
// each keyed by the round number.
func fallbackSum(data string) []byte {
	base := strconv.FormatUint(xxhash.Sum64String(data), 16)
	out := make([]byte, 0, fallbackRounds*8)
	for i := 0; i < fallbackRounds; i++ {
		out = binary.BigEndian.AppendUint64(out, xxhash.Sum64String(base+strconv.Itoa(i)+data))
	}
	return out
}

// NewPrimitive returns the built-in primitive called name.
func NewPrimitive(name string, params Argon2Params) (Primitive, error) {
	switch name {
	case PrimitiveArgon2id:
		if !params.valid() {
			return nil, ErrInvalidArgon2Params
		}
		return NewArgon2idPrimitive(params), nil
	case PrimitiveSHA256:
		return NewSHA256Primitive(), nil
	case PrimitiveFallback:
		return NewFallbackPrimitive(), nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}
