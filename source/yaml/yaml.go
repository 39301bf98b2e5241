// Package yaml adapts YAML input to pluck documents. The first document in
// the input is parsed with gopkg.in/yaml.v3, normalized to JSON-like shapes
// (map[string]any, []any) and wrapped as a value-backed pluck.Document.
package yaml

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	pluck "github.com/mizumaki/pluck"
)

// FromBytes parses the first YAML document in data. Failures come back as a
// malformed_input issue.
func FromBytes(data []byte) (pluck.Document, error) {
	return FromReader(bytes.NewReader(data))
}

// FromReader parses the first YAML document from r. Documents after the
// first are not read.
func FromReader(r io.Reader) (pluck.Document, error) {
	dec := yaml.NewDecoder(r)
	var node any
	if err := dec.Decode(&node); err != nil {
		if err == io.EOF {
			return nil, &pluck.Issue{Code: pluck.CodeMalformedInput, Message: "no YAML document in input"}
		}
		return nil, &pluck.Issue{Code: pluck.CodeMalformedInput, Message: err.Error(), Cause: err}
	}
	norm, err := normalize(node)
	if err != nil {
		return nil, &pluck.Issue{Code: pluck.CodeMalformedInput, Message: err.Error(), Cause: err}
	}
	return pluck.FromValue(norm), nil
}

// normalize converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-string mapping keys are an
// error: silently dropping them would make the member unaddressable and turn
// a caller's path into a misleading key_not_found.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			nv, err := normalize(vv)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key %v (%T) is not a string", k, k)
			}
			nv, err := normalize(vv)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i := range t {
			nv, err := normalize(t[i])
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		return v, nil
	}
}
