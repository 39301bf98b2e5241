//go:build jsonv2

package pluck_test

import (
	pluck "github.com/mizumaki/pluck"
	drv "github.com/mizumaki/pluck/source/jsonv2"
)

func init() {
	pluck.SetDriver(drv.Driver())
}
