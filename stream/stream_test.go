package stream_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/hasbyte1/pwgen/stream"
)

func newTestStream(t *testing.T) *stream.Stream {
	t.Helper()
	key := make([]byte, stream.KeySize)
	s, err := stream.New(key, []byte("test-context"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Construction
// ──────────────────────────────────────────────────────────────────────────────

func TestNew_KeySize(t *testing.T) {
	for _, n := range []int{0, 1, 16, 31, 33, 64} {
		if _, err := stream.New(make([]byte, n), nil); !errors.Is(err, stream.ErrKeySize) {
			t.Errorf("key len %d: expected ErrKeySize, got %v", n, err)
		}
	}
	if _, err := stream.New(make([]byte, 32), nil); err != nil {
		t.Errorf("32-byte key: unexpected error %v", err)
	}
}

func TestNew_ContextIsCopied(t *testing.T) {
	ctx := []byte("mutable-context")
	s, err := stream.New(make([]byte, stream.KeySize), ctx)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	first64 := make([]byte, 64)
	if err := s.Fill(first64); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	// Mutating the caller's slice must not affect a fresh stream with the
	// original context bytes.
	for i := range ctx {
		ctx[i] = 'X'
	}
	s2, err := stream.New(make([]byte, stream.KeySize), []byte("mutable-context"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s2.Close()
	again := make([]byte, 64)
	if err := s2.Fill(again); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if !bytes.Equal(first64, again) {
		t.Error("streams with identical context bytes diverged")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Frozen vectors
// ──────────────────────────────────────────────────────────────────────────────

// The first 64 bytes for an all-zero key and context "test-context" pin the
// extract salt, the feedback chaining, and the counter encoding.
func TestStream_FrozenVector(t *testing.T) {
	s := newTestStream(t)
	defer s.Close()

	got := make([]byte, 64)
	if err := s.Fill(got); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	want, err := hex.DecodeString(
		"60489ecf0a1ea2cebff7a50a2186bdf8" +
			"0bcb795f53171ab484f6173119e09187" +
			"c5b41d0cda9cdda20829928dfe648f00" +
			"64810f1a44fa7d6ad6c60a6e1c9010af")
	if err != nil {
		t.Fatalf("bad hex in test: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("first 64 bytes = %x, want %x", got, want)
	}
}

func TestNextIndex_FrozenVector(t *testing.T) {
	s := newTestStream(t)
	defer s.Close()

	want := []int{6, 2, 8, 7, 0, 0, 2, 6, 1, 7, 5, 0, 3, 4, 9, 8, 1, 3, 1, 5}
	for i, w := range want {
		got, err := s.NextIndex(10)
		if err != nil {
			t.Fatalf("NextIndex #%d: %v", i, err)
		}
		if got != w {
			t.Errorf("NextIndex #%d = %d, want %d", i, got, w)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Stream behaviour
// ──────────────────────────────────────────────────────────────────────────────

func TestStream_Deterministic(t *testing.T) {
	a := newTestStream(t)
	defer a.Close()
	b := newTestStream(t)
	defer b.Close()

	bufA := make([]byte, 300) // spans multiple blocks
	bufB := make([]byte, 300)
	if err := a.Fill(bufA); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if err := b.Fill(bufB); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if !bytes.Equal(bufA, bufB) {
		t.Error("identical seeds produced different streams")
	}
}

func TestStream_ContextSensitivity(t *testing.T) {
	key := make([]byte, stream.KeySize)
	a, err := stream.New(key, []byte("context-a"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()
	b, err := stream.New(key, []byte("context-b"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Close()

	bufA := make([]byte, 32)
	bufB := make([]byte, 32)
	a.Fill(bufA)
	b.Fill(bufB)
	if bytes.Equal(bufA, bufB) {
		t.Error("different contexts produced identical output")
	}
}

func TestNextIndex_One(t *testing.T) {
	s := newTestStream(t)
	defer s.Close()

	for i := 0; i < 16; i++ {
		idx, err := s.NextIndex(1)
		if err != nil {
			t.Fatalf("NextIndex(1): %v", err)
		}
		if idx != 0 {
			t.Fatalf("NextIndex(1) = %d, want 0", idx)
		}
	}
}

func TestNextIndex_InvalidBound(t *testing.T) {
	s := newTestStream(t)
	defer s.Close()

	for _, n := range []int{0, -1, 257} {
		if _, err := s.NextIndex(n); !errors.Is(err, stream.ErrInvalidBound) {
			t.Errorf("NextIndex(%d): expected ErrInvalidBound, got %v", n, err)
		}
	}
}

// Rejection sampling must be uniform over [0, n). A hundred thousand draws
// put the expected count well above the ±20% tolerance band, so a
// modulo-bias regression (which skews low residues for any n that does not
// divide 256) fails deterministically. One stream caps out at 255 blocks,
// so the sample is aggregated over many streams with distinct contexts.
func TestNextIndex_Uniform(t *testing.T) {
	key := make([]byte, stream.KeySize)
	for _, n := range []int{2, 7, 10, 93} { // 93 = full union alphabet size
		const perStream = 4000
		const streams = 25
		counts := make([]int, n)
		for sn := 0; sn < streams; sn++ {
			s, err := stream.New(key, []byte{byte(sn)})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			for i := 0; i < perStream; i++ {
				idx, err := s.NextIndex(n)
				if err != nil {
					t.Fatalf("n=%d stream %d draw %d: %v", n, sn, i, err)
				}
				if idx < 0 || idx >= n {
					t.Fatalf("n=%d: index %d out of range", n, idx)
				}
				counts[idx]++
			}
			s.Close()
		}

		expected := perStream * streams / n
		for v, c := range counts {
			if c < expected*8/10 || c > expected*12/10 {
				t.Errorf("n=%d: value %d drawn %d times, expected ≈%d", n, v, c, expected)
			}
		}
	}
}

func TestStream_Exhaustion(t *testing.T) {
	s := newTestStream(t)
	defer s.Close()

	// 255 blocks of 32 bytes are available; the draw after that must fail
	// with ErrExhausted.
	buf := make([]byte, 255*stream.BlockSize)
	if err := s.Fill(buf); err != nil {
		t.Fatalf("Fill to capacity: %v", err)
	}
	if _, err := s.NextByte(); !errors.Is(err, stream.ErrExhausted) {
		t.Errorf("expected ErrExhausted, got %v", err)
	}
}

func TestStream_Close(t *testing.T) {
	s := newTestStream(t)
	if _, err := s.NextByte(); err != nil {
		t.Fatalf("NextByte: %v", err)
	}

	s.Close()
	s.Close() // idempotent

	if _, err := s.NextByte(); !errors.Is(err, stream.ErrClosed) {
		t.Errorf("NextByte after Close: expected ErrClosed, got %v", err)
	}
	if _, err := s.NextIndex(10); !errors.Is(err, stream.ErrClosed) {
		t.Errorf("NextIndex after Close: expected ErrClosed, got %v", err)
	}
	if err := s.Fill(make([]byte, 4)); !errors.Is(err, stream.ErrClosed) {
		t.Errorf("Fill after Close: expected ErrClosed, got %v", err)
	}
}
