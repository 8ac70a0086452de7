package policy

import "errors"

// Sentinel errors returned by [Validate].
//
// All of them indicate caller-input problems; none are retryable. Use
// [errors.Is] for comparisons:
//
//	_, err := policy.Validate(p)
//	if errors.Is(err, policy.ErrEmptyAllowed) {
//	    // at least one charset must be allowed
//	}
var (
	// ErrInvalidBounds is returned when, after clamping into [1,128],
	// the minimum length still exceeds the maximum length.
	ErrInvalidBounds = errors.New("policy: invalid length bounds (require 1 ≤ min ≤ max ≤ 128)")

	// ErrEmptyAllowed is returned when no charset is allowed.
	ErrEmptyAllowed = errors.New("policy: allowed character sets must be nonempty")

	// ErrForceNotSubset is returned when a forced charset is not also allowed.
	ErrForceNotSubset = errors.New("policy: forced sets must be a subset of allowed sets")

	// ErrMinBelowForced is returned when the minimum length is smaller than
	// the number of forced charsets, which would make forced coverage
	// impossible.
	ErrMinBelowForced = errors.New("policy: min length must be at least the number of forced sets")
)
