package pluck

import (
	"encoding/json"
	"fmt"
)

// Document is a parsed input positioned at its top-level value. Cursors step
// through documents exclusively via Document, Object and Array; the two
// in-repo implementations (token-backed and value-backed) are interchangeable
// behind them.
type Document interface {
	// Object opens the top-level value as an object context. Fails with
	// shape_mismatch when the root is anything else.
	Object() (Object, error)
	// Array opens the top-level value as an array context. Fails with
	// shape_mismatch when the root is anything else.
	Array() (Array, error)
}

// Object is a decode context over one object value. Lookups by key are
// independent of each other; reading one member never affects access to its
// siblings.
type Object interface {
	// Object opens the member at key as a nested object context.
	Object(key string) (Object, error)
	// Array opens the member at key as a nested array context.
	Array(key string) (Array, error)
	// Decode decodes the member at key into the pointed-to value.
	Decode(key string, into any) error
	// LastKey reports the most recently consumed key, if any member has been
	// consumed through this context yet.
	LastKey() (string, bool)
}

// Array is a forward-only decode context over one array value. Pos starts at
// zero and advances by exactly one per consumed element; elements behind Pos
// are unreachable through this context.
type Array interface {
	// Pos is the index of the next unread element.
	Pos() int
	// Discard reads the element at Pos and drops it. Fails with
	// index_out_of_range when the array is exhausted.
	Discard() error
	// Object opens the element at Pos as a nested object context and
	// advances. Pos does not move when the element has the wrong shape.
	Object() (Object, error)
	// Array opens the element at Pos as a nested array context and advances.
	Array() (Array, error)
	// Decode decodes the element at Pos into the pointed-to value and
	// advances. Pos does not move on failure.
	Decode(into any) error
	// Branch returns an independent view of the same array with a fresh
	// position counter at zero.
	Branch() Array
}

// describe names a decoded value's shape for diagnostics.
func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a bool"
	case json.Number, float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "a number"
	default:
		return fmt.Sprintf("a %T", v)
	}
}

// valueDocument adapts a pre-parsed value tree (map[string]any, []any and
// scalar leaves, the shapes encoding/json and the yaml/ojg sources produce)
// to Document.
type valueDocument struct {
	v any
}

func (d valueDocument) Object() (Object, error) {
	m, ok := d.v.(map[string]any)
	if !ok {
		return nil, issuef(CodeShapeMismatch, "", "document root is %s, not an object", describe(d.v))
	}
	return &valueObject{m: m}, nil
}

func (d valueDocument) Array() (Array, error) {
	s, ok := d.v.([]any)
	if !ok {
		return nil, issuef(CodeShapeMismatch, "", "document root is %s, not an array", describe(d.v))
	}
	return &valueArray{s: s}, nil
}

type valueObject struct {
	m       map[string]any
	lastKey string
	hasLast bool
}

func (o *valueObject) member(key string) (any, error) {
	v, ok := o.m[key]
	if !ok {
		return nil, issuef(CodeKeyNotFound, "", "key %q not found", key)
	}
	o.lastKey, o.hasLast = key, true
	return v, nil
}

func (o *valueObject) Object(key string) (Object, error) {
	v, err := o.member(key)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, issuef(CodeShapeMismatch, "", "value at key %q is %s, not an object", key, describe(v))
	}
	return &valueObject{m: m}, nil
}

func (o *valueObject) Array(key string) (Array, error) {
	v, err := o.member(key)
	if err != nil {
		return nil, err
	}
	s, ok := v.([]any)
	if !ok {
		return nil, issuef(CodeShapeMismatch, "", "value at key %q is %s, not an array", key, describe(v))
	}
	return &valueArray{s: s}, nil
}

func (o *valueObject) Decode(key string, into any) error {
	v, err := o.member(key)
	if err != nil {
		return err
	}
	return coerceInto(v, into)
}

func (o *valueObject) LastKey() (string, bool) { return o.lastKey, o.hasLast }

type valueArray struct {
	s   []any
	pos int
}

func (a *valueArray) Pos() int { return a.pos }

func (a *valueArray) current() (any, error) {
	if a.pos >= len(a.s) {
		return nil, issuef(CodeIndexOutOfRange, "", "array has only %d elements", len(a.s))
	}
	return a.s[a.pos], nil
}

func (a *valueArray) Discard() error {
	if _, err := a.current(); err != nil {
		return err
	}
	a.pos++
	return nil
}

func (a *valueArray) Object() (Object, error) {
	v, err := a.current()
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, issuef(CodeShapeMismatch, "", "element %d is %s, not an object", a.pos, describe(v))
	}
	a.pos++
	return &valueObject{m: m}, nil
}

func (a *valueArray) Array() (Array, error) {
	v, err := a.current()
	if err != nil {
		return nil, err
	}
	s, ok := v.([]any)
	if !ok {
		return nil, issuef(CodeShapeMismatch, "", "element %d is %s, not an array", a.pos, describe(v))
	}
	a.pos++
	return &valueArray{s: s}, nil
}

func (a *valueArray) Decode(into any) error {
	v, err := a.current()
	if err != nil {
		return err
	}
	if err := coerceInto(v, into); err != nil {
		return err
	}
	a.pos++
	return nil
}

func (a *valueArray) Branch() Array { return &valueArray{s: a.s} }
