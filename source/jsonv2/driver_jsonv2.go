//go:build jsonv2

package jsonv2

import (
	v2json "encoding/json/v2"
	"io"
	"sort"
	"strconv"

	pluck "github.com/mizumaki/pluck"
)

// Driver returns a pluck.Driver backed by encoding/json/v2.
// Note: requires building with -tags jsonv2 and GOEXPERIMENT=jsonv2.
func Driver() pluck.Driver { return driverV2{} }

type driverV2 struct{}

func (driverV2) NewReader(r io.Reader) pluck.TokenSource {
	data, err := io.ReadAll(r)
	if err != nil {
		return &v2Source{err: err}
	}
	return newV2SourceFromBytes(data)
}

func (driverV2) NewBytes(b []byte) pluck.TokenSource { return newV2SourceFromBytes(b) }
func (driverV2) Name() string                        { return "encoding/json/v2" }

// v2Source replays tokens materialized from a decoded any tree. Offsets are
// unknown, so byte budgets do not apply to this driver.
type v2Source struct {
	tokens []pluck.Token
	idx    int
	err    error
}

func newV2SourceFromBytes(b []byte) pluck.TokenSource {
	var v any
	if err := v2json.Unmarshal(b, &v); err != nil {
		return &v2Source{err: err}
	}
	buf := make([]pluck.Token, 0, 64)
	buf = appendValueTokens(buf, v)
	return &v2Source{tokens: buf}
}

func (s *v2Source) NextToken() (pluck.Token, error) {
	if s.err != nil {
		return pluck.Token{}, s.err
	}
	if s.idx >= len(s.tokens) {
		return pluck.Token{}, io.EOF
	}
	t := s.tokens[s.idx]
	s.idx++
	return t, nil
}

func (s *v2Source) Location() int64 { return -1 }

func appendValueTokens(out []pluck.Token, v any) []pluck.Token {
	switch x := v.(type) {
	case map[string]any:
		out = append(out, pluck.Token{Kind: pluck.TokenBeginObject, Offset: -1})
		// stable order for determinism
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, pluck.Token{Kind: pluck.TokenKey, String: k, Offset: -1})
			out = appendValueTokens(out, x[k])
		}
		out = append(out, pluck.Token{Kind: pluck.TokenEndObject, Offset: -1})
	case []any:
		out = append(out, pluck.Token{Kind: pluck.TokenBeginArray, Offset: -1})
		for _, e := range x {
			out = appendValueTokens(out, e)
		}
		out = append(out, pluck.Token{Kind: pluck.TokenEndArray, Offset: -1})
	case string:
		out = append(out, pluck.Token{Kind: pluck.TokenString, String: x, Offset: -1})
	case bool:
		out = append(out, pluck.Token{Kind: pluck.TokenBool, Bool: x, Offset: -1})
	case nil:
		out = append(out, pluck.Token{Kind: pluck.TokenNull, Offset: -1})
	case float64:
		out = append(out, pluck.Token{Kind: pluck.TokenNumber, Number: strconv.FormatFloat(x, 'g', -1, 64), Offset: -1})
	case int64:
		out = append(out, pluck.Token{Kind: pluck.TokenNumber, Number: strconv.FormatInt(x, 10), Offset: -1})
	default:
		out = append(out, pluck.Token{Kind: pluck.TokenNull, Offset: -1})
	}
	return out
}
