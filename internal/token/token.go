package token

import "io"

// Kind enumerates token kinds emitted by a document source.
type Kind int

const (
	BeginObject Kind = iota
	EndObject
	BeginArray
	EndArray
	Key
	String
	Number
	Bool
	Null
)

// Name returns a short human-readable label for the kind, used in shape
// diagnostics ("value at key \"a\" is a string, not an object").
func (k Kind) Name() string {
	switch k {
	case BeginObject, EndObject:
		return "an object"
	case BeginArray, EndArray:
		return "an array"
	case Key:
		return "a key"
	case String:
		return "a string"
	case Number:
		return "a number"
	case Bool:
		return "a bool"
	case Null:
		return "null"
	default:
		return "an unknown token"
	}
}

// Token is one element of a tokenized document. Offset records the byte
// position in the input when the producing driver knows it (-1 otherwise).
type Token struct {
	Kind   Kind
	String string // key and string tokens
	Number string // numbers kept as text; interpretation is deferred
	Bool   bool
	Offset int64
}

// Source yields tokens in document order. It is the only interface a driver
// has to implement.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset of the last token; -1 if unknown
}

// Slice adapts an in-memory token slice to Source. It is how buffered
// subtrees are re-fed to the decoding helpers.
type Slice struct {
	toks []Token
	next int
}

func NewSlice(toks []Token) *Slice { return &Slice{toks: toks} }

func (s *Slice) NextToken() (Token, error) {
	if s.next >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.next]
	s.next++
	return t, nil
}

func (s *Slice) Location() int64 {
	if s.next == 0 || s.next > len(s.toks) {
		return -1
	}
	return s.toks[s.next-1].Offset
}
