// Package generator assembles deterministic passwords from a master secret,
// a site identifier, an optional username, a validated policy, and a
// rotation version.
//
// [Generate] is the module's single entry point. It composes the pipeline
// leaf to root: kdf stretches the secret into a site key, stream expands the
// key plus a context string into a deterministic byte source, and the
// assembler draws a length, forced picks, free fills, and a Fisher–Yates
// shuffle from it. Identical inputs always produce the identical password;
// nothing is persisted and no state survives the call.
//
// The context string — "pwgen-v1|site=…|user=…|policy=…|version=…" — is a
// byte-stable wire contract shared with the policy encoding. Reordering the
// fields, changing a separator, or altering the policy encoding silently
// changes every derived password.
//
// Generate only accepts a [github.com/hasbyte1/pwgen/policy.Canonical],
// which can only be produced by policy.Validate, so an unvalidated policy
// cannot reach the assembler by construction. A zero Canonical smuggled in
// anyway is rejected with [ErrInvalidInput] rather than risking undefined
// numeric behaviour.
package generator
