package pluck

import (
	"github.com/mizumaki/pluck/internal/token"
)

// tokenDocument adapts one tokenized top-level value to Document. Produced by
// ParseBytes and ParseReader via the driver SPI.
type tokenDocument struct {
	toks []token.Token
	mode NumberMode
}

func (d *tokenDocument) Object() (Object, error) {
	if len(d.toks) == 0 || d.toks[0].Kind != token.BeginObject {
		return nil, issuef(CodeShapeMismatch, "", "document root is %s, not an object", spanName(d.toks))
	}
	return &tokenObject{toks: d.toks, mode: d.mode}, nil
}

func (d *tokenDocument) Array() (Array, error) {
	if len(d.toks) == 0 || d.toks[0].Kind != token.BeginArray {
		return nil, issuef(CodeShapeMismatch, "", "document root is %s, not an array", spanName(d.toks))
	}
	return &tokenArray{toks: d.toks, mode: d.mode, tpos: 1}, nil
}

func spanName(toks []token.Token) string {
	if len(toks) == 0 {
		return "empty"
	}
	return toks[0].Kind.Name()
}

// tokenObject is an object context over a balanced BeginObject..EndObject
// token span. Every lookup scans the span from its start, so member reads
// stay independent of each other.
type tokenObject struct {
	toks    []token.Token
	mode    NumberMode
	lastKey string
	hasLast bool
}

// find returns the token index of the value for key. With duplicate keys the
// last occurrence wins, matching what materializing the object into a map
// would yield.
func (o *tokenObject) find(key string) (int, error) {
	found := -1
	i := 1
	for i < len(o.toks)-1 {
		t := o.toks[i]
		if t.Kind != token.Key {
			return 0, issuef(CodeMalformedInput, "", "unexpected %s token inside object", t.Kind.Name())
		}
		valStart := i + 1
		if t.String == key {
			found = valStart
		}
		_, next, err := token.Subtree(o.toks, valStart)
		if err != nil {
			return 0, wrapIssue(err, "")
		}
		i = next
	}
	if found < 0 {
		return 0, issuef(CodeKeyNotFound, "", "key %q not found", key)
	}
	o.lastKey, o.hasLast = key, true
	return found, nil
}

func (o *tokenObject) Object(key string) (Object, error) {
	at, err := o.find(key)
	if err != nil {
		return nil, err
	}
	if o.toks[at].Kind != token.BeginObject {
		return nil, issuef(CodeShapeMismatch, "", "value at key %q is %s, not an object", key, o.toks[at].Kind.Name())
	}
	span, _, err := token.Subtree(o.toks, at)
	if err != nil {
		return nil, wrapIssue(err, "")
	}
	return &tokenObject{toks: span, mode: o.mode}, nil
}

func (o *tokenObject) Array(key string) (Array, error) {
	at, err := o.find(key)
	if err != nil {
		return nil, err
	}
	if o.toks[at].Kind != token.BeginArray {
		return nil, issuef(CodeShapeMismatch, "", "value at key %q is %s, not an array", key, o.toks[at].Kind.Name())
	}
	span, _, err := token.Subtree(o.toks, at)
	if err != nil {
		return nil, wrapIssue(err, "")
	}
	return &tokenArray{toks: span, mode: o.mode, tpos: 1}, nil
}

func (o *tokenObject) Decode(key string, into any) error {
	at, err := o.find(key)
	if err != nil {
		return err
	}
	span, _, err := token.Subtree(o.toks, at)
	if err != nil {
		return wrapIssue(err, "")
	}
	v, err := materialize(span, o.mode)
	if err != nil {
		return wrapIssue(err, "")
	}
	return coerceInto(v, into)
}

func (o *tokenObject) LastKey() (string, bool) { return o.lastKey, o.hasLast }

// tokenArray is a forward-only array context over a balanced
// BeginArray..EndArray token span. tpos tracks the token index of the next
// unread element; it never moves backwards.
type tokenArray struct {
	toks []token.Token
	mode NumberMode
	tpos int
	pos  int
}

func (a *tokenArray) Pos() int { return a.pos }

func (a *tokenArray) exhausted() error {
	if a.tpos >= len(a.toks)-1 {
		return issuef(CodeIndexOutOfRange, "", "array has only %d elements", a.pos)
	}
	return nil
}

func (a *tokenArray) Discard() error {
	if err := a.exhausted(); err != nil {
		return err
	}
	_, next, err := token.Subtree(a.toks, a.tpos)
	if err != nil {
		return wrapIssue(err, "")
	}
	a.tpos = next
	a.pos++
	return nil
}

func (a *tokenArray) Object() (Object, error) {
	if err := a.exhausted(); err != nil {
		return nil, err
	}
	if a.toks[a.tpos].Kind != token.BeginObject {
		return nil, issuef(CodeShapeMismatch, "", "element %d is %s, not an object", a.pos, a.toks[a.tpos].Kind.Name())
	}
	span, next, err := token.Subtree(a.toks, a.tpos)
	if err != nil {
		return nil, wrapIssue(err, "")
	}
	a.tpos = next
	a.pos++
	return &tokenObject{toks: span, mode: a.mode}, nil
}

func (a *tokenArray) Array() (Array, error) {
	if err := a.exhausted(); err != nil {
		return nil, err
	}
	if a.toks[a.tpos].Kind != token.BeginArray {
		return nil, issuef(CodeShapeMismatch, "", "element %d is %s, not an array", a.pos, a.toks[a.tpos].Kind.Name())
	}
	span, next, err := token.Subtree(a.toks, a.tpos)
	if err != nil {
		return nil, wrapIssue(err, "")
	}
	a.tpos = next
	a.pos++
	return &tokenArray{toks: span, mode: a.mode, tpos: 1}, nil
}

func (a *tokenArray) Decode(into any) error {
	if err := a.exhausted(); err != nil {
		return err
	}
	span, next, err := token.Subtree(a.toks, a.tpos)
	if err != nil {
		return wrapIssue(err, "")
	}
	v, err := materialize(span, a.mode)
	if err != nil {
		return wrapIssue(err, "")
	}
	if err := coerceInto(v, into); err != nil {
		return err
	}
	a.tpos = next
	a.pos++
	return nil
}

func (a *tokenArray) Branch() Array {
	return &tokenArray{toks: a.toks, mode: a.mode, tpos: 1}
}

func materialize(span []token.Token, mode NumberMode) (any, error) {
	src := token.NewSlice(span)
	if mode == NumberFloat64 {
		return token.DecodeAnyFloat64(src)
	}
	return token.DecodeAny(src)
}
