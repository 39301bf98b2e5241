package pluck

// Package pluck provides:
//
// - Path-addressed extraction of one typed value from a tree document (Bytes/Reader/Value)
// - A lazy traversal Cursor over object/array contexts with deferred errors
// - A stable error model via Issue (dotted sub-path, code, message)
// - Dotted mini-paths and RFC 6901 JSON Pointers (ParsePath/ParsePointer)
// - A pluggable token driver SPI (encoding/json default, goccy behind the gojson tag)
//
// Design policy:
// - Keep only public APIs in the root package; put token machinery under internal/.
// - Place input drivers under source/, the JSONPath front-end under jsonpath/, and the CLI under cmd/pluck.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	price, err := pluck.Bytes[float64](data, "items.2.price")
//
//	doc, err := pluck.ParseBytes(data)
//	name, err := pluck.Decode[string](pluck.Root(doc).Field("user").Field("name"))
//
// Traversal errors are deferred: stepping never fails in place, and the first
// failure surfaces when the terminal decode runs.
