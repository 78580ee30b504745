// Package digest computes the salted one-way hashes GameBox stores for
// passwords and recovery phrases, and generates random hex salts.
//
// The scheme is deliberately simple: digest(salt + ":" + secret) with no
// iteration count and no key derivation. GameBox trusts only the local
// machine; an attacker who can read the storage medium is outside the
// threat model, and the scheme must stay reproducible across versions.
package digest

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	mrand "math/rand/v2"
)

// randRead is a test seam for crypto/rand.Read. In tests it can be replaced
// with a failing stub to exercise the weak-RNG fallback.
var randRead = rand.Read

// Service computes digests. The zero value is not usable; construct with
// New (strong sha256 digest) or NewWeak (degraded djb2 mode, for platforms
// or deployments where the strong primitive is unavailable).
type Service struct {
	strong bool
}

func New() *Service {
	return &Service{strong: true}
}

func NewWeak() *Service {
	return &Service{strong: false}
}

// Strong reports whether the service hashes with the strong digest.
func (s *Service) Strong() bool {
	return s.strong
}

// Digest returns a one-way hash of text: hex-encoded SHA-256 in strong
// mode, a 32-bit djb2 hash in degraded mode. Deterministic for equal input;
// the empty string is valid input, not an error.
//
// Credential operations treat hashing as a suspending step, so Digest
// honors context cancellation.
func (s *Service) Digest(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if s.strong {
		sum := sha256.Sum256([]byte(text))
		return hex.EncodeToString(sum[:]), nil
	}
	return djb2Hex(text), nil
}

// SaltedDigest returns Digest(salt + ":" + secret). The salt is always
// prepended with a literal separator.
func (s *Service) SaltedDigest(ctx context.Context, secret, salt string) (string, error) {
	return s.Digest(ctx, salt+":"+secret)
}

// RandomHex returns 2*size hex characters of randomness. Bytes come from
// the cryptographically strong RNG; if that fails the weak RNG keeps the
// system functional in degraded mode.
func (s *Service) RandomHex(size int) string {
	b := make([]byte, size)
	if _, err := randRead(b); err != nil {
		for i := range b {
			b[i] = byte(mrand.Uint32())
		}
	}
	return hex.EncodeToString(b)
}

// djb2Hex is the degraded-mode hash: djb2 over the input bytes, truncated
// to 32 bits and hex-encoded.
func djb2Hex(text string) string {
	h := uint32(5381)
	for i := 0; i < len(text); i++ {
		h = h*33 + uint32(text[i])
	}
	var out [4]byte
	out[0] = byte(h >> 24)
	out[1] = byte(h >> 16)
	out[2] = byte(h >> 8)
	out[3] = byte(h)
	return hex.EncodeToString(out[:])
}
