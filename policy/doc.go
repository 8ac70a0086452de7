// Package policy defines the character-composition policy of a derived
// password and is the single source of truth for policy invariants.
//
// # Architecture
//
// A caller-constructed [Policy] is an untrusted value. [Validate] is the only
// way to obtain a [Canonical] policy, and [Canonical] is the only policy
// representation the rest of the pipeline accepts — validation is encoded in
// the type system rather than in documentation.
//
// A [Canonical] policy guarantees:
//
//   - 1 ≤ Min ≤ Max ≤ 128 (out-of-range bounds are clamped, not rejected)
//   - at least one charset is allowed
//   - every forced charset is also allowed
//   - Min is at least the number of forced charsets
//
// # Wire contract
//
// [Canonical.Encode] produces the canonical textual encoding that is mixed
// into the key-stream context:
//
//	min=12;max=16;allow=lower,upper,digit,symbol;force=
//
// The charset order (lower, upper, digit, symbol), the literal alphabets, and
// the encoding format are all byte-stable contracts: changing any of them
// silently changes every password derived under the policy.
package policy
