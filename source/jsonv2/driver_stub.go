//go:build !jsonv2

package jsonv2

import (
	"io"

	pluck "github.com/mizumaki/pluck"
	jsonsrc "github.com/mizumaki/pluck/source/json"
)

// Driver returns a fallback driver when the jsonv2 build tag is not enabled.
// It delegates to the default encoding/json-based source.
func Driver() pluck.Driver { return driverStub{} }

type driverStub struct{}

func (driverStub) NewReader(r io.Reader) pluck.TokenSource {
	return pluck.SourceFromTokens(jsonsrc.NewReader(r))
}

func (driverStub) NewBytes(b []byte) pluck.TokenSource {
	return pluck.SourceFromTokens(jsonsrc.NewBytes(b))
}

func (driverStub) Name() string { return "encoding/json (jsonv2 stub)" }
