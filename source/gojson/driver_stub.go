//go:build !gojson

package gojson

import (
	"io"

	pluck "github.com/mizumaki/pluck"
	jsonsrc "github.com/mizumaki/pluck/source/json"
)

// Driver returns a stub driver when the gojson tag is not enabled. It
// delegates to the encoding/json-based source directly to avoid recursion.
func Driver() pluck.Driver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) pluck.TokenSource {
	return pluck.SourceFromTokens(jsonsrc.NewReader(r))
}
func (stub) NewBytes(b []byte) pluck.TokenSource {
	return pluck.SourceFromTokens(jsonsrc.NewBytes(b))
}
func (stub) Name() string { return "encoding/json (gojson stub)" }
