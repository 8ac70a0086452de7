package kdf

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ──────────────────────────────────────────────────────────────────────────────
// Frozen derivation contract
// ──────────────────────────────────────────────────────────────────────────────

const (
	// KeyLen is the derived key length in bytes.
	KeyLen = 32

	// SaltLen is the site-bound salt length in bytes (a SHA-256 prefix).
	SaltLen = 16

	// Memory is the Argon2id memory cost in KiB (64 MiB).
	Memory uint32 = 65536

	// Time is the Argon2id iteration count.
	Time uint32 = 3

	// Threads is the Argon2id degree of parallelism.
	Threads uint8 = 1

	// saltPrefix domain-separates the site salt from any other SHA-256 use.
	saltPrefix = "pwgen-salt-v1:"
)

// NormalizeSite trims surrounding whitespace and ASCII-lowercases a site
// identifier. Only 'A'–'Z' are folded; non-ASCII letters pass through
// unchanged, keeping the salt bytes identical across locales. Normalization
// is idempotent, and the generator applies the same transformation when
// building the stream context, so both sides of the derivation always see
// an identical site string.
func NormalizeSite(site string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, strings.TrimSpace(site))
}

// DeriveSiteKey derives the 32-byte site key for (secret, site).
//
// The site is normalized via [NormalizeSite], the salt is the first
// [SaltLen] bytes of SHA-256("pwgen-salt-v1:" || normalized site), and the
// key is Argon2id(secret, salt) with the fixed [Memory]/[Time]/[Threads]
// costs. Binding the salt to the site gives per-site domain separation
// without any stored state.
//
// The returned key is secret material owned by the caller, who must zero it
// as soon as it has been consumed. The secret copy and the salt are zeroed
// here before returning, on every path.
func DeriveSiteKey(secret, site string) ([KeyLen]byte, error) {
	var key [KeyLen]byte

	if err := validateParams(); err != nil {
		return key, err
	}

	h := sha256.New()
	h.Write([]byte(saltPrefix))
	h.Write([]byte(NormalizeSite(site)))
	digest := h.Sum(nil)
	salt := digest[:SaltLen]

	secretBytes := []byte(secret)
	derived := argon2.IDKey(secretBytes, salt, Time, Memory, Threads, KeyLen)
	copy(key[:], derived)

	Wipe(secretBytes)
	Wipe(derived)
	Wipe(digest)
	return key, nil
}

// validateParams re-checks the fixed constants against Argon2's own minima.
// It cannot fail with the constants above; it exists so that a future
// constant change that breaks the algorithm's contract surfaces as a typed
// error instead of a panic deep inside the hash.
func validateParams() error {
	if Time < 1 {
		return fmt.Errorf("%w: time must be ≥ 1, got %d", ErrInvalidParams, Time)
	}
	if Threads < 1 {
		return fmt.Errorf("%w: threads must be ≥ 1, got %d", ErrInvalidParams, Threads)
	}
	if Memory < 8*uint32(Threads) {
		return fmt.Errorf("%w: memory (%d KiB) must be ≥ 8×threads (%d KiB)",
			ErrInvalidParams, Memory, 8*uint32(Threads))
	}
	return nil
}

// Wipe overwrites b with zeros. It is the module's single zeroization
// helper; every buffer holding secret-derived bytes goes through it on
// disposal.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
