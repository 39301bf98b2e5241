package token

import (
	"errors"
	"fmt"
	"io"
)

// Limits bounds the tokenizer. Zero values mean unlimited.
type Limits struct {
	MaxDepth int
	MaxBytes int64
}

// ErrTooLarge reports input that ran past Limits.MaxBytes. Tokenize chains it
// so size overruns stay distinguishable from malformed bytes via errors.Is.
var ErrTooLarge = errors.New("input too large")

// Tokenize drains exactly one complete top-level value from src into a slice.
// Containers are balanced before it returns; trailing input after the value is
// left untouched. Depth and byte budgets are enforced as tokens arrive so a
// hostile document fails before it is fully buffered.
func Tokenize(src Source, lim Limits) ([]Token, error) {
	var (
		out   []Token
		depth int
	)
	for {
		tok, err := src.NextToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(out) == 0 {
					return nil, io.ErrUnexpectedEOF
				}
				return nil, fmt.Errorf("unexpected end of input at depth %d: %w", depth, io.ErrUnexpectedEOF)
			}
			return nil, err
		}
		if lim.MaxBytes > 0 {
			if off := src.Location(); off > lim.MaxBytes {
				return nil, fmt.Errorf("input exceeds %d bytes: %w", lim.MaxBytes, ErrTooLarge)
			}
		}
		switch tok.Kind {
		case BeginObject, BeginArray:
			depth++
			if lim.MaxDepth > 0 && depth > lim.MaxDepth {
				return nil, fmt.Errorf("nesting exceeds depth %d", lim.MaxDepth)
			}
		case EndObject, EndArray:
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced close of %s", tok.Kind.Name())
			}
		}
		out = append(out, tok)
		if depth == 0 && tok.Kind != Key {
			return out, nil
		}
	}
}

// Subtree returns the token span of one complete value starting at toks[start],
// along with the index just past it. start must point at a value token, not a
// key or a container close.
func Subtree(toks []Token, start int) ([]Token, int, error) {
	if start < 0 || start >= len(toks) {
		return nil, 0, fmt.Errorf("token index %d out of range", start)
	}
	depth := 0
	for i := start; i < len(toks); i++ {
		switch toks[i].Kind {
		case BeginObject, BeginArray:
			depth++
		case EndObject, EndArray:
			depth--
			if depth < 0 {
				return nil, 0, fmt.Errorf("unbalanced close at token %d", i)
			}
		case Key:
			if i == start {
				return nil, 0, fmt.Errorf("token %d is a key, not a value", i)
			}
		}
		if depth == 0 {
			return toks[start : i+1], i + 1, nil
		}
	}
	return nil, 0, io.ErrUnexpectedEOF
}
