package kdf

import "errors"

// Sentinel errors returned by key derivation.
//
// Use [errors.Is] for comparisons:
//
//	_, err := kdf.DeriveSiteKey(secret, site)
//	if errors.Is(err, kdf.ErrInvalidParams) {
//	    // environment rejected the fixed Argon2id parameters
//	}
var (
	// ErrInvalidParams is returned when the Argon2id parameters are rejected.
	// With the fixed constants in this package it is only reachable in an
	// environment that enforces tighter limits than the algorithm itself;
	// it is fatal and never retryable.
	ErrInvalidParams = errors.New("kdf: invalid key derivation parameters")
)
