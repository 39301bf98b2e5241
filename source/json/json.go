package json

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/mizumaki/pluck/internal/token"
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

// frame tracks whether the enclosing object expects a key next, which is how
// member keys are told apart from string values.
type frame struct {
	kind         containerKind
	expectingKey bool
}

type jsonSource struct {
	dec        *json.Decoder
	stack      []frame
	lastOffset int64
}

// NewReader wraps an io.Reader into a token.Source for JSON.
func NewReader(r io.Reader) token.Source {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into a token.Source for JSON.
func NewBytes(b []byte) token.Source { return NewReader(bytes.NewReader(b)) }

func (s *jsonSource) NextToken() (token.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return token.Token{}, io.EOF
		}
		return token.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return token.Token{Kind: token.BeginObject, Offset: s.lastOffset}, nil
		case '}':
			s.pop()
			return token.Token{Kind: token.EndObject, Offset: s.lastOffset}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return token.Token{Kind: token.BeginArray, Offset: s.lastOffset}, nil
		case ']':
			s.pop()
			return token.Token{Kind: token.EndArray, Offset: s.lastOffset}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return token.Token{Kind: token.Key, String: v, Offset: s.lastOffset}, nil
			}
		}
		s.noteValue()
		return token.Token{Kind: token.String, String: v, Offset: s.lastOffset}, nil
	case bool:
		s.noteValue()
		return token.Token{Kind: token.Bool, Bool: v, Offset: s.lastOffset}, nil
	case json.Number:
		s.noteValue()
		return token.Token{Kind: token.Number, Number: string(v), Offset: s.lastOffset}, nil
	case float64:
		s.noteValue()
		return token.Token{Kind: token.Number, Number: formatFloat(v), Offset: s.lastOffset}, nil
	case nil:
		s.noteValue()
		return token.Token{Kind: token.Null, Offset: s.lastOffset}, nil
	}

	s.noteValue()
	return token.Token{Kind: token.Null, Offset: s.lastOffset}, nil
}

// noteValue records that the enclosing object consumed a member value, so the
// next string token reads as a key again.
func (s *jsonSource) noteValue() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (s *jsonSource) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.noteValue()
}

func (s *jsonSource) Location() int64 { return s.lastOffset }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
