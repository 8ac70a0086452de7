package policy

// Charset identifies one of the four fixed categories of ASCII characters.
// Using a small named type prevents accidental confusion with plain ints and
// doubles as the index into per-charset tables.
type Charset uint8

const (
	// Lower is the lowercase letters a–z.
	Lower Charset = iota
	// Upper is the uppercase letters A–Z.
	Upper
	// Digit is the decimal digits 0–9.
	Digit
	// Symbol is the 31 printable ASCII punctuation characters listed in
	// [Charset.Alphabet].
	Symbol

	// NumCharsets is the number of defined charsets; Allow/Force arrays are
	// indexed by [Charset] up to this bound.
	NumCharsets = 4
)

// Fixed, ordered literal alphabets. The ordering within each alphabet and the
// lower→upper→digit→symbol charset order are wire contracts (see package doc).
var alphabets = [NumCharsets][]byte{
	Lower:  []byte("abcdefghijklmnopqrstuvwxyz"),
	Upper:  []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
	Digit:  []byte("0123456789"),
	Symbol: []byte("!\"#$%&'()*+,-./:;<=>?@[\\]^_{|}~"),
}

var names = [NumCharsets]string{
	Lower:  "lower",
	Upper:  "upper",
	Digit:  "digit",
	Symbol: "symbol",
}

// Alphabet returns the charset's fixed literal alphabet. The returned slice
// is shared; callers must not modify it.
func (c Charset) Alphabet() []byte { return alphabets[c] }

// String returns the charset's canonical name as used in policy encodings:
// "lower", "upper", "digit", or "symbol".
func (c Charset) String() string { return names[c] }

// ParseCharset maps a canonical charset name back to its [Charset].
// The second return value is false when the name is not recognised.
func ParseCharset(name string) (Charset, bool) {
	for c := Charset(0); c < NumCharsets; c++ {
		if names[c] == name {
			return c, true
		}
	}
	return 0, false
}
