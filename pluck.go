package pluck

import (
	"io"

	"github.com/mizumaki/pluck/internal/token"
)

// NumberMode controls how numeric leaves materialize from token-backed
// documents.
type NumberMode int

const (
	// NumberJSONNumber keeps numbers as json.Number (default).
	NumberJSONNumber NumberMode = iota
	// NumberFloat64 eagerly converts numbers to float64.
	NumberFloat64
)

// Option tunes parsing. Pass at most one; when several are given the last
// wins.
type Option struct {
	// MaxDepth bounds container nesting. 0 means unlimited; exceeding it
	// fails with malformed_input.
	MaxDepth int
	// MaxBytes bounds input size in bytes. 0 means unlimited; exceeding it
	// fails with malformed_input.
	MaxBytes int64
	// Numbers selects the numeric materialization mode.
	Numbers NumberMode
}

func lastOpt(opts []Option) Option {
	if len(opts) == 0 {
		return Option{}
	}
	return opts[len(opts)-1]
}

// Bytes extracts the value addressed by a dotted path from serialized data,
// decoded as T. It is the one-call form of ParseBytes + ParsePath + Decode.
func Bytes[T any](data []byte, path string, opts ...Option) (T, error) {
	var zero T
	p, err := ParsePath(path)
	if err != nil {
		return zero, err
	}
	return BytesAt[T](data, p, opts...)
}

// BytesAt is Bytes with a pre-built Path.
func BytesAt[T any](data []byte, p Path, opts ...Option) (T, error) {
	var zero T
	doc, err := ParseBytes(data, opts...)
	if err != nil {
		return zero, err
	}
	return DecodeAt[T](Root(doc), p)
}

// Reader extracts the value addressed by a dotted path from r, decoded as T.
func Reader[T any](r io.Reader, path string, opts ...Option) (T, error) {
	var zero T
	p, err := ParsePath(path)
	if err != nil {
		return zero, err
	}
	return ReaderAt[T](r, p, opts...)
}

// ReaderAt is Reader with a pre-built Path.
func ReaderAt[T any](r io.Reader, p Path, opts ...Option) (T, error) {
	var zero T
	doc, err := ParseReader(r, opts...)
	if err != nil {
		return zero, err
	}
	return DecodeAt[T](Root(doc), p)
}

// Value extracts the value addressed by a dotted path from a pre-parsed tree
// (map[string]any, []any and scalar leaves), decoded as T.
func Value[T any](v any, path string) (T, error) {
	var zero T
	p, err := ParsePath(path)
	if err != nil {
		return zero, err
	}
	return ValueAt[T](v, p)
}

// ValueAt is Value with a pre-built Path.
func ValueAt[T any](v any, p Path) (T, error) {
	return DecodeAt[T](Root(FromValue(v)), p)
}

// ParseBytes tokenizes one complete top-level value from data with the
// active driver and returns it as a navigable Document. Tokenization reads
// eagerly; traversal over the result is lazy.
func ParseBytes(data []byte, opts ...Option) (Document, error) {
	opt := lastOpt(opts)
	src := getDriver().NewBytes(data)
	toks, err := token.Tokenize(internalSource(src), token.Limits{MaxDepth: opt.MaxDepth, MaxBytes: opt.MaxBytes})
	if err != nil {
		return nil, wrapIssue(err, "")
	}
	return &tokenDocument{toks: toks, mode: opt.Numbers}, nil
}

// ParseReader is ParseBytes over an io.Reader. MaxBytes additionally caps the
// reader itself so an oversized input stops early instead of buffering.
func ParseReader(r io.Reader, opts ...Option) (Document, error) {
	opt := lastOpt(opts)
	rr := r
	if opt.MaxBytes > 0 {
		rr = io.LimitReader(r, opt.MaxBytes+1)
	}
	src := getDriver().NewReader(rr)
	toks, err := token.Tokenize(internalSource(src), token.Limits{MaxDepth: opt.MaxDepth, MaxBytes: opt.MaxBytes})
	if err != nil {
		return nil, wrapIssue(err, "")
	}
	return &tokenDocument{toks: toks, mode: opt.Numbers}, nil
}

// FromValue wraps an already-parsed value tree as a Document. No copy is
// made; the tree must not be mutated while cursors read it.
func FromValue(v any) Document {
	return valueDocument{v: v}
}
