package source

import (
	pluck "github.com/mizumaki/pluck"
	drvgojson "github.com/mizumaki/pluck/source/gojson"
)

// init in a separate package to avoid an import cycle in root. Importing this
// package makes go-json the default driver.
func init() { pluck.SetDriver(drvgojson.Driver()) }
