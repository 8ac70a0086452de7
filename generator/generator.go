package generator

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/pwgen/kdf"
	"github.com/hasbyte1/pwgen/policy"
	"github.com/hasbyte1/pwgen/stream"
)

// contextTag versions the stream context format, not the KDF parameters.
const contextTag = "pwgen-v1"

// Generate derives the password for (secret, site, username, pol, version).
//
// The site is normalized exactly as [kdf.DeriveSiteKey] normalizes it, so
// "  EXAMPLE.COM " and "example.com" name the same site. An empty username
// and an absent username are the same input. The policy must come from
// [policy.Validate]; version is the caller's rotation counter and is the
// cheapest way to roll a password without changing any other input.
//
// Either a complete password is returned or an error and no output; there
// is no partial result and nothing to retry. All key material created
// during the call is zeroed before Generate returns, on every path.
func Generate(secret, site, username string, pol policy.Canonical, version uint32) (string, error) {
	if pol.IsZero() {
		return "", fmt.Errorf("%w: policy was not produced by policy.Validate", ErrInvalidInput)
	}

	siteID := kdf.NormalizeSite(site)

	key, err := kdf.DeriveSiteKey(secret, siteID)
	if err != nil {
		return "", fmt.Errorf("generator: derive site key: %w", err)
	}

	context := buildContext(siteID, username, pol, version)

	rng, err := stream.New(key[:], context)
	kdf.Wipe(key[:]) // the stream holds its own schedule now
	if err != nil {
		return "", fmt.Errorf("generator: seed stream: %w", err)
	}
	defer rng.Close()

	out, err := assemble(rng, pol)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// buildContext serialises the generation inputs into the stream context.
// Field order and the literal separators are a frozen wire contract.
func buildContext(siteID, username string, pol policy.Canonical, version uint32) []byte {
	ctx := make([]byte, 0, 64)
	ctx = append(ctx, contextTag...)
	ctx = append(ctx, "|site="...)
	ctx = append(ctx, siteID...)
	ctx = append(ctx, "|user="...)
	ctx = append(ctx, username...)
	ctx = append(ctx, "|policy="...)
	ctx = append(ctx, pol.Encode()...)
	ctx = append(ctx, "|version="...)
	ctx = strconv.AppendUint(ctx, uint64(version), 10)
	return ctx
}

// assemble draws the password characters from the stream under pol.
//
// The numeric relationships re-checked up front cannot be violated by a
// Canonical policy; they guard the arithmetic below against a future
// refactor weakening the Validate contract.
func assemble(rng *stream.Stream, pol policy.Canonical) ([]byte, error) {
	min, max := int(pol.Min()), int(pol.Max())
	forcedSets := pol.ForcedSets()
	union := pol.AllowedAlphabet()

	switch {
	case min < 1 || max > 128 || min > max:
		return nil, fmt.Errorf("%w: length bounds %d..%d", ErrInvalidInput, min, max)
	case len(forcedSets) > min:
		return nil, fmt.Errorf("%w: %d forced sets exceed min length %d", ErrInvalidInput, len(forcedSets), min)
	case len(union) == 0:
		return nil, fmt.Errorf("%w: empty allowed alphabet", ErrInvalidInput)
	}

	// Choose the output length. A fixed-length policy draws nothing, so
	// min==max policies consume exactly the same stream prefix regardless
	// of how the bounds were specified.
	length := min
	if min != max {
		draw, err := rng.NextIndex(max - min + 1)
		if err != nil {
			return nil, fmt.Errorf("generator: draw length: %w", err)
		}
		length = min + draw
	}

	out := make([]byte, 0, length)

	// Forced picks first, in the fixed lower→upper→digit→symbol order, so
	// every forced class is represented before the shuffle.
	for _, fs := range forcedSets {
		idx, err := rng.NextIndex(len(fs.Alphabet))
		if err != nil {
			return nil, fmt.Errorf("generator: draw forced %s: %w", fs.Charset, err)
		}
		out = append(out, fs.Alphabet[idx])
	}

	for len(out) < length {
		idx, err := rng.NextIndex(len(union))
		if err != nil {
			return nil, fmt.Errorf("generator: draw fill: %w", err)
		}
		out = append(out, union[idx])
	}

	// Fisher–Yates, last index down to 1, inclusive swap target. This exact
	// iteration order is part of the output contract.
	for i := len(out) - 1; i >= 1; i-- {
		j, err := rng.NextIndex(i + 1)
		if err != nil {
			return nil, fmt.Errorf("generator: draw shuffle: %w", err)
		}
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}
