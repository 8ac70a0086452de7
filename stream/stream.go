package stream

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"

	"github.com/hasbyte1/pwgen/kdf"
)

const (
	// KeySize is the required seed key length in bytes.
	KeySize = 32

	// BlockSize is the size of one expansion block: one HMAC-SHA-256 output.
	BlockSize = sha256.Size

	// extractSalt is the fixed HKDF-Extract salt. Part of the frozen wire
	// contract: changing it changes every derived password.
	extractSalt = "pwgen-hkdf-salt-v1"
)

// Stream is the keyed deterministic byte stream. Create one with [New],
// draw with [Stream.NextByte], [Stream.Fill], or [Stream.NextIndex], and
// always [Stream.Close] it to wipe the key schedule.
type Stream struct {
	prk     [BlockSize]byte // HKDF-Extract output, secret
	context []byte          // private copy, replayed into every block
	counter uint8           // index of the last generated block; 0 = none yet
	block   [BlockSize]byte // current block T(counter)
	pos     int             // read offset into block
	prev    [BlockSize]byte // T(counter-1), fed back into the next block
	closed  bool
}

// New seeds a Stream from a [KeySize]-byte key and a context byte string.
//
// The key is HKDF-Extracted into a pseudorandom key immediately; the caller
// keeps ownership of the key array and should wipe it as soon as New
// returns. The context is copied, so the caller's slice may be reused; the
// copy is treated as sensitive and wiped on [Stream.Close].
func New(key []byte, context []byte) (*Stream, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrKeySize, len(key))
	}

	mac := hmac.New(sha256.New, []byte(extractSalt))
	mac.Write(key)
	prk := mac.Sum(nil)

	s := &Stream{
		context: append([]byte(nil), context...),
		pos:     BlockSize, // force a refill on the first draw
	}
	copy(s.prk[:], prk)
	kdf.Wipe(prk)
	return s, nil
}

// refill generates the next block T(counter+1). The first block omits the
// previous-block feedback; every later block chains on it.
func (s *Stream) refill() error {
	if s.counter == ^uint8(0) {
		return ErrExhausted
	}
	s.counter++

	mac := hmac.New(sha256.New, s.prk[:])
	if s.counter > 1 {
		mac.Write(s.prev[:])
	}
	mac.Write(s.context)
	mac.Write([]byte{s.counter})
	t := mac.Sum(nil)

	copy(s.block[:], t)
	copy(s.prev[:], t)
	kdf.Wipe(t)
	s.pos = 0
	return nil
}

// NextByte returns the next byte of the stream, generating a new block when
// the current one is exhausted.
func (s *Stream) NextByte() (byte, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if s.pos >= BlockSize {
		if err := s.refill(); err != nil {
			return 0, err
		}
	}
	b := s.block[s.pos]
	s.pos++
	return b, nil
}

// Fill overwrites out with the next len(out) bytes of the stream.
func (s *Stream) Fill(out []byte) error {
	for i := range out {
		b, err := s.NextByte()
		if err != nil {
			return err
		}
		out[i] = b
	}
	return nil
}

// NextIndex draws an unbiased integer in [0, n) via rejection sampling:
// with limit = (256/n)*n, bytes ≥ limit are discarded and the first byte
// below it is reduced mod n. NextIndex(1) always returns 0 but still
// consumes one stream byte.
func (s *Stream) NextIndex(n int) (int, error) {
	if n < 1 || n > 256 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidBound, n)
	}
	limit := (256 / n) * n
	for {
		b, err := s.NextByte()
		if err != nil {
			return 0, err
		}
		if int(b) < limit {
			return int(b) % n, nil
		}
	}
}

// Close wipes the pseudorandom key, the context copy, and both block
// buffers, and marks the stream unusable. Close is idempotent.
func (s *Stream) Close() {
	if s.closed {
		return
	}
	kdf.Wipe(s.prk[:])
	kdf.Wipe(s.context)
	kdf.Wipe(s.block[:])
	kdf.Wipe(s.prev[:])
	s.pos = BlockSize
	s.closed = true
}
