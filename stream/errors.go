package stream

import "errors"

// Sentinel errors returned by stream operations.
//
// All of them indicate programming defects rather than recoverable runtime
// conditions; none are retryable. Use [errors.Is] for comparisons.
var (
	// ErrKeySize is returned by [New] when the seed key is not exactly
	// [KeySize] bytes.
	ErrKeySize = errors.New("stream: seed key must be exactly 32 bytes")

	// ErrClosed is returned when drawing from a stream after [Stream.Close].
	ErrClosed = errors.New("stream: draw from closed stream")

	// ErrExhausted is returned when a draw would advance the one-byte block
	// counter past its final value. At 32 bytes per block this allows 8160
	// bytes per stream — far beyond any password-scale use — so hitting it
	// signals a defect in the caller, not a condition to recover from.
	ErrExhausted = errors.New("stream: block counter exhausted")

	// ErrInvalidBound is returned by [Stream.NextIndex] when n is not a
	// positive integer or exceeds 256, the range one byte can cover.
	ErrInvalidBound = errors.New("stream: index bound must be in [1,256]")
)
