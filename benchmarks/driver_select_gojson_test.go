//go:build gojson

package pluck_test

import (
	pluck "github.com/mizumaki/pluck"
	drv "github.com/mizumaki/pluck/source/gojson"
)

func init() {
	pluck.SetDriver(drv.Driver())
}
