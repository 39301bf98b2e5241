// Package jsonpath converts RFC 9535 JSONPath queries to pluck paths. Only
// singular queries are accepted: every segment must carry exactly one name or
// index selector. Wildcards, slices, filters and descendant segments address
// zero or many values and are rejected up front, keeping the one-path
// one-value contract.
package jsonpath

import (
	"fmt"

	"github.com/theory/jsonpath"
	"github.com/theory/jsonpath/spec"

	pluck "github.com/mizumaki/pluck"
)

// Convert parses query and maps it onto a pluck.Path. "$" alone converts to
// the empty path.
func Convert(query string) (pluck.Path, error) {
	parsed, err := jsonpath.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %q: %w", query, err)
	}
	p := pluck.Path{}
	for _, seg := range parsed.Query().Segments() {
		if seg.IsDescendant() {
			return nil, fmt.Errorf("JSONPath %q: descendant segments select multiple values", query)
		}
		sels := seg.Selectors()
		if len(sels) != 1 {
			return nil, fmt.Errorf("JSONPath %q: segment with %d selectors is not singular", query, len(sels))
		}
		switch s := sels[0].(type) {
		case spec.Name:
			p = p.Field(string(s))
		case spec.Index:
			p = p.At(int(s))
		default:
			return nil, fmt.Errorf("JSONPath %q: unsupported selector %T; only names and indexes are singular", query, sels[0])
		}
	}
	return p, nil
}

// Bytes extracts the value addressed by a singular JSONPath query from
// serialized data, decoded as T.
func Bytes[T any](data []byte, query string, opts ...pluck.Option) (T, error) {
	p, err := Convert(query)
	if err != nil {
		var zero T
		return zero, err
	}
	return pluck.BytesAt[T](data, p, opts...)
}
