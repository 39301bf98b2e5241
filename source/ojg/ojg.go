// Package ojg adapts ohler55/ojg parsing to pluck documents. oj.Parse
// materializes the whole input as JSON-like shapes (map[string]any, []any,
// int64/float64 leaves) which back a value-backed pluck.Document.
package ojg

import (
	"io"

	"github.com/ohler55/ojg/oj"

	pluck "github.com/mizumaki/pluck"
)

// FromBytes parses data with oj.Parse. Failures come back as a
// malformed_input issue.
func FromBytes(data []byte) (pluck.Document, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, &pluck.Issue{Code: pluck.CodeMalformedInput, Message: err.Error(), Cause: err}
	}
	return pluck.FromValue(v), nil
}

// FromReader reads r fully and parses it like FromBytes.
func FromReader(r io.Reader) (pluck.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &pluck.Issue{Code: pluck.CodeMalformedInput, Message: err.Error(), Cause: err}
	}
	return FromBytes(data)
}
