// Package stream expands a derived key and a context byte string into an
// unbounded deterministic byte stream, and provides unbiased index sampling
// on top of it.
//
// # Construction
//
// The stream is a feedback-mode HKDF over HMAC-SHA-256. [New] performs the
// Extract step with the fixed literal salt "pwgen-hkdf-salt-v1"; each
// 32-byte output block is then
//
//	T(1) = HMAC(prk, context || 0x01)
//	T(n) = HMAC(prk, T(n-1) || context || n)    for n ≥ 2
//
// Because every block mixes in the previous block, the output is a
// cryptographically ordered stream, not a set of independently addressable
// blocks — the standard counter-only HKDF-Expand would produce different
// bytes and is not interchangeable.
//
// # Sampling
//
// [Stream.NextIndex] draws unbiased integers via rejection sampling. The
// rejection bound is mandatory: a naive modulo would bias every n that does
// not divide 256, making some characters of a policy alphabet measurably
// more likely.
//
// # Security
//
// The stream is exclusively derived from its key and context and is NOT a
// general-purpose CSPRNG: it has no entropy input and its output is exactly
// as secret as the key it was seeded with. A Stream is owned by a single
// generation call; it is not safe for concurrent use, and [Stream.Close]
// must be called on every path to zero the key schedule and block buffers.
package stream
