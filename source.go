package pluck

import (
	"io"
	"sync"

	"github.com/mizumaki/pluck/internal/token"
	jsonsrc "github.com/mizumaki/pluck/source/json"
)

// TokenKind enumerates token kinds in the public driver SPI.
type TokenKind int

const (
	TokenBeginObject TokenKind = iota
	TokenEndObject
	TokenBeginArray
	TokenEndArray
	TokenKey
	TokenString
	TokenNumber
	TokenBool
	TokenNull
)

// Token describes a token in the input stream. Offset records the byte
// position when known (-1 otherwise).
type Token struct {
	Kind   TokenKind
	String string // key and string tokens
	Number string // numbers as text; interpretation is deferred to decode time
	Bool   bool
	Offset int64
}

// TokenSource abstracts over polymorphic input sources.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// Driver converts serialized input into a TokenSource via a pluggable SPI.
// The default implementation is based on encoding/json and may be swapped
// with SetDriver.
type Driver interface {
	NewReader(r io.Reader) TokenSource
	NewBytes(b []byte) TokenSource
	Name() string
}

var (
	driverMu      sync.RWMutex
	currentDriver Driver = defaultDriver{}
)

// SetDriver replaces the global input driver; nil values are ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the default encoding/json-backed driver.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = defaultDriver{}
	driverMu.Unlock()
}

func getDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

// defaultDriver wraps the encoding/json implementation.
type defaultDriver struct{}

func (defaultDriver) NewReader(r io.Reader) TokenSource {
	return &tokenSourceAdapter{inner: jsonsrc.NewReader(r)}
}
func (defaultDriver) NewBytes(b []byte) TokenSource {
	return &tokenSourceAdapter{inner: jsonsrc.NewBytes(b)}
}
func (defaultDriver) Name() string { return "encoding/json" }

// SourceFromTokens lifts an internal token source into the public SPI. It
// exists for the in-repo drivers under source/; external drivers implement
// TokenSource directly.
func SourceFromTokens(inner token.Source) TokenSource {
	return &tokenSourceAdapter{inner: inner}
}

// tokenSourceAdapter lifts an internal token.Source into the public SPI.
type tokenSourceAdapter struct {
	inner token.Source
}

func (s *tokenSourceAdapter) NextToken() (Token, error) {
	t, err := s.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: fromInternalKind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}
func (s *tokenSourceAdapter) Location() int64 { return s.inner.Location() }

// internalSource projects a public TokenSource back onto the internal token
// machinery. Sources produced by in-repo drivers unwrap directly, avoiding a
// public<->internal adapter round-trip.
func internalSource(s TokenSource) token.Source {
	if a, ok := s.(*tokenSourceAdapter); ok {
		return a.inner
	}
	return &publicSourceAdapter{inner: s}
}

type publicSourceAdapter struct {
	inner TokenSource
}

func (s *publicSourceAdapter) NextToken() (token.Token, error) {
	t, err := s.inner.NextToken()
	if err != nil {
		return token.Token{}, err
	}
	return token.Token{Kind: toInternalKind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}
func (s *publicSourceAdapter) Location() int64 { return s.inner.Location() }

func fromInternalKind(k token.Kind) TokenKind {
	switch k {
	case token.BeginObject:
		return TokenBeginObject
	case token.EndObject:
		return TokenEndObject
	case token.BeginArray:
		return TokenBeginArray
	case token.EndArray:
		return TokenEndArray
	case token.Key:
		return TokenKey
	case token.String:
		return TokenString
	case token.Number:
		return TokenNumber
	case token.Bool:
		return TokenBool
	case token.Null:
		return TokenNull
	default:
		return TokenNull
	}
}

func toInternalKind(k TokenKind) token.Kind {
	switch k {
	case TokenBeginObject:
		return token.BeginObject
	case TokenEndObject:
		return token.EndObject
	case TokenBeginArray:
		return token.BeginArray
	case TokenEndArray:
		return token.EndArray
	case TokenKey:
		return token.Key
	case TokenString:
		return token.String
	case TokenNumber:
		return token.Number
	case TokenBool:
		return token.Bool
	case TokenNull:
		return token.Null
	default:
		return token.Null
	}
}
