//go:build gojson

package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	pluck "github.com/mizumaki/pluck"
	"github.com/mizumaki/pluck/internal/token"
)

// Driver returns a pluck.Driver backed by goccy/go-json.
func Driver() pluck.Driver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) pluck.TokenSource {
	return pluck.SourceFromTokens(NewReader(r))
}
func (driverGoJSON) NewBytes(b []byte) pluck.TokenSource {
	return pluck.SourceFromTokens(NewBytes(b))
}
func (driverGoJSON) Name() string { return "go-json" }

// ---- token.Source implementation using the go-json Decoder ----

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type source struct {
	dec   *j.Decoder
	stack []frame
}

// NewReader wraps an io.Reader into a token.Source for JSON using go-json.
func NewReader(r io.Reader) token.Source {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into a token.Source for JSON using go-json.
func NewBytes(b []byte) token.Source { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (token.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return token.Token{}, io.EOF
		}
		return token.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return token.Token{Kind: token.BeginObject, Offset: -1}, nil
		case '}':
			s.pop()
			return token.Token{Kind: token.EndObject, Offset: -1}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return token.Token{Kind: token.BeginArray, Offset: -1}, nil
		case ']':
			s.pop()
			return token.Token{Kind: token.EndArray, Offset: -1}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return token.Token{Kind: token.Key, String: v, Offset: -1}, nil
			}
		}
		s.noteValue()
		return token.Token{Kind: token.String, String: v, Offset: -1}, nil
	case bool:
		s.noteValue()
		return token.Token{Kind: token.Bool, Bool: v, Offset: -1}, nil
	case j.Number:
		s.noteValue()
		return token.Token{Kind: token.Number, Number: string(v), Offset: -1}, nil
	case float64:
		s.noteValue()
		return token.Token{Kind: token.Number, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}, nil
	case nil:
		s.noteValue()
		return token.Token{Kind: token.Null, Offset: -1}, nil
	}
	s.noteValue()
	return token.Token{Kind: token.Null, Offset: -1}, nil
}

func (s *source) noteValue() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.noteValue()
}

func (s *source) Location() int64 { return -1 }
