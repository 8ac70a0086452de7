package policy

import "strconv"

// ──────────────────────────────────────────────────────────────────────────────
// Policy (untrusted input)
// ──────────────────────────────────────────────────────────────────────────────

// Policy is a caller-constructed, not-yet-validated character-composition
// policy. Allow and Force are indexed by [Charset] in the fixed order
// lower, upper, digit, symbol.
//
// A Policy carries no guarantees; pass it through [Validate] to obtain a
// [Canonical] policy before use.
type Policy struct {
	// Min is the minimum password length. Clamped into [1,128] by [Validate].
	Min uint8

	// Max is the maximum password length. Clamped into [1,128] by [Validate].
	Max uint8

	// Allow marks the charsets characters may be drawn from.
	Allow [NumCharsets]bool

	// Force marks the charsets that must each contribute at least one
	// character. Must be a subset of Allow.
	Force [NumCharsets]bool
}

// Default returns the default policy: length 12–16, all four charsets
// allowed, none forced.
func Default() Policy {
	return Policy{
		Min:   12,
		Max:   16,
		Allow: [NumCharsets]bool{true, true, true, true},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Canonical (validated)
// ──────────────────────────────────────────────────────────────────────────────

// Canonical is a policy after validation: bounds clamped, invariants
// guaranteed, safe to encode and consume. The zero value is not a valid
// policy (no charset allowed) and is rejected by the generator.
//
// Canonical is immutable and safe for concurrent use.
type Canonical struct {
	min   uint8
	max   uint8
	allow [NumCharsets]bool
	force [NumCharsets]bool
}

// Validate checks a [Policy]'s invariants and returns its canonical form.
//
// Min and Max are independently clamped into [1,128] first; clamping, not
// rejection, is the defined behaviour for out-of-range bounds. After
// clamping, Validate fails with [ErrInvalidBounds] if min > max, with
// [ErrEmptyAllowed] if no charset is allowed, with [ErrForceNotSubset] if a
// forced charset is not allowed, and with [ErrMinBelowForced] if min is
// smaller than the number of forced charsets.
//
// If Validate returns nil, the generator does not need to re-check any
// policy-related invariant.
func Validate(p Policy) (Canonical, error) {
	min := clamp(p.Min)
	max := clamp(p.Max)

	if min > max {
		return Canonical{}, ErrInvalidBounds
	}
	allowed := false
	for _, a := range p.Allow {
		if a {
			allowed = true
			break
		}
	}
	if !allowed {
		return Canonical{}, ErrEmptyAllowed
	}
	forced := uint8(0)
	for c := 0; c < NumCharsets; c++ {
		if p.Force[c] {
			if !p.Allow[c] {
				return Canonical{}, ErrForceNotSubset
			}
			forced++
		}
	}
	if min < forced {
		return Canonical{}, ErrMinBelowForced
	}

	return Canonical{min: min, max: max, allow: p.Allow, force: p.Force}, nil
}

func clamp(v uint8) uint8 {
	if v < 1 {
		return 1
	}
	if v > 128 {
		return 128
	}
	return v
}

// Min returns the validated minimum length.
func (c Canonical) Min() uint8 { return c.min }

// Max returns the validated maximum length.
func (c Canonical) Max() uint8 { return c.max }

// Allows reports whether characters may be drawn from cs.
func (c Canonical) Allows(cs Charset) bool { return c.allow[cs] }

// Forces reports whether cs must contribute at least one character.
func (c Canonical) Forces(cs Charset) bool { return c.force[cs] }

// IsZero reports whether c is the zero value, i.e. was not produced by
// [Validate]. The generator uses this to reject bypassed policies.
func (c Canonical) IsZero() bool { return c == Canonical{} }

// Encode returns the canonical, order-stable text encoding:
//
//	min=<n>;max=<n>;allow=<csv>;force=<csv>
//
// where each csv lists charset names in the fixed order
// lower,upper,digit,symbol, omitting absent ones, and is the empty string
// when the set is empty. The encoding is mixed into the key-stream context
// and must never change format — it is part of the wire contract.
func (c Canonical) Encode() string {
	buf := make([]byte, 0, 64)
	buf = append(buf, "min="...)
	buf = strconv.AppendUint(buf, uint64(c.min), 10)
	buf = append(buf, ";max="...)
	buf = strconv.AppendUint(buf, uint64(c.max), 10)
	buf = append(buf, ";allow="...)
	buf = appendCSV(buf, c.allow)
	buf = append(buf, ";force="...)
	buf = appendCSV(buf, c.force)
	return string(buf)
}

func appendCSV(buf []byte, flags [NumCharsets]bool) []byte {
	first := true
	for cs := Charset(0); cs < NumCharsets; cs++ {
		if !flags[cs] {
			continue
		}
		if !first {
			buf = append(buf, ',')
		}
		buf = append(buf, cs.String()...)
		first = false
	}
	return buf
}

// AllowedAlphabet returns the concatenation of the fixed alphabets of every
// allowed charset, in the fixed charset order. The result is deterministic
// and duplicate-free by construction. The returned slice is freshly
// allocated and safe to modify.
func (c Canonical) AllowedAlphabet() []byte {
	out := make([]byte, 0, 93)
	for cs := Charset(0); cs < NumCharsets; cs++ {
		if c.allow[cs] {
			out = append(out, cs.Alphabet()...)
		}
	}
	return out
}

// ForcedSet pairs a forced charset with its fixed alphabet.
type ForcedSet struct {
	Charset  Charset
	Alphabet []byte
}

// ForcedSets returns the charsets that are both forced and allowed, in the
// fixed charset order. Forced-but-not-allowed combinations are silently
// dropped rather than erroring; [Validate] already guarantees they cannot
// occur in a Canonical policy.
func (c Canonical) ForcedSets() []ForcedSet {
	out := make([]ForcedSet, 0, NumCharsets)
	for cs := Charset(0); cs < NumCharsets; cs++ {
		if c.force[cs] && c.allow[cs] {
			out = append(out, ForcedSet{Charset: cs, Alphabet: cs.Alphabet()})
		}
	}
	return out
}
