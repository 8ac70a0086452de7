// Package kdf stretches a master secret and a site identifier into a
// fixed-size key using Argon2id with a site-bound deterministic salt.
//
// The parameters are a frozen contract: the salt prefix, the Argon2id cost
// constants, and the output length together determine every derived password.
// Changing any of them silently changes all outputs for all users, so they
// are exported as documented constants and must never be altered without an
// explicit versioning scheme.
//
// The derivation is fully deterministic — the same (secret, site) pair always
// produces the same key — and keeps no state between calls. Sensitive
// intermediates (the secret copy and the salt) are zeroed before the function
// returns, on success and on error alike.
package kdf
