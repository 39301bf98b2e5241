package pluck

// cursorState tags the active variant of a Cursor.
type cursorState int

const (
	stateInvalid cursorState = iota // zero value; never positioned
	stateError                      // absorbed a traversal failure
	stateRoot                       // at the document root
	stateKeyed                      // inside an object, one key pending
	stateUnkeyed                    // inside an array, one index pending
)

// Cursor addresses one position inside a document. It is an immutable value:
// every step returns a new Cursor and never mutates the receiver. A cursor is
// always in exactly one of four conditions: at the root, inside an object
// with a pending key, inside an array with a pending index, or carrying an
// absorbed error. Once a step fails the error sticks; further steps are
// no-ops and the terminal decode surfaces the first failure.
//
// Cursors are single-goroutine values. Stepped cursors share the underlying
// array contexts of their ancestors, and those replay forward only: reusing a
// cursor whose array context has already advanced past its pending index
// fails with index_out_of_range.
type Cursor struct {
	state cursorState
	issue *Issue
	doc   Document
	obj   Object
	arr   Array
	key   string
	idx   int
	trail Path // consumed segments, pending one included
}

// Root positions a cursor at the top of d. It always succeeds for a non-nil
// document.
func Root(d Document) Cursor {
	if d == nil {
		return Cursor{state: stateError, issue: issuef(CodeUnpositionedRoot, "", "cannot anchor a cursor on a nil document")}
	}
	return Cursor{state: stateRoot, doc: d}
}

// FromObject anchors a cursor on an existing object context, re-addressing
// the member that context consumed last. It fails when no member has been
// consumed yet, since there is no key to anchor on.
func FromObject(o Object) Cursor {
	if o == nil {
		return Cursor{state: stateError, issue: issuef(CodeUnpositionedRoot, "", "cannot anchor a cursor on a nil object context")}
	}
	k, ok := o.LastKey()
	if !ok {
		return Cursor{state: stateError, issue: issuef(CodeUnpositionedRoot, "", "object context has no consumed key to anchor a cursor")}
	}
	return Cursor{state: stateKeyed, obj: o, key: k, trail: Path{}.Field(k)}
}

// FromArray anchors a cursor on an existing array context at the position
// that context has reached. The cursor gets an independent branch of the
// array, so stepping it never advances the source context.
func FromArray(a Array) Cursor {
	if a == nil {
		return Cursor{state: stateError, issue: issuef(CodeUnpositionedRoot, "", "cannot anchor a cursor on a nil array context")}
	}
	pos := a.Pos()
	return Cursor{state: stateUnkeyed, arr: a.Branch(), idx: pos, trail: Path{}.At(pos)}
}

// Field steps the cursor by an object key.
func (c Cursor) Field(key string) Cursor {
	switch c.state {
	case stateError:
		return c
	case stateRoot:
		o, err := c.doc.Object()
		if err != nil {
			return c.fail(err)
		}
		return Cursor{state: stateKeyed, obj: o, key: key, trail: c.trail.Field(key)}
	case stateKeyed:
		o, err := c.obj.Object(c.key)
		if err != nil {
			return c.fail(err)
		}
		return Cursor{state: stateKeyed, obj: o, key: key, trail: c.trail.Field(key)}
	case stateUnkeyed:
		if err := seek(c.arr, c.idx); err != nil {
			return c.fail(err)
		}
		o, err := c.arr.Object()
		if err != nil {
			return c.fail(err)
		}
		return Cursor{state: stateKeyed, obj: o, key: key, trail: c.trail.Field(key)}
	default:
		return c.failUnpositioned()
	}
}

// Index steps the cursor by an array index.
func (c Cursor) Index(i int) Cursor {
	switch c.state {
	case stateError:
		return c
	case stateRoot:
		a, err := c.doc.Array()
		if err != nil {
			return c.fail(err)
		}
		return Cursor{state: stateUnkeyed, arr: a, idx: i, trail: c.trail.At(i)}
	case stateKeyed:
		a, err := c.obj.Array(c.key)
		if err != nil {
			return c.fail(err)
		}
		return Cursor{state: stateUnkeyed, arr: a, idx: i, trail: c.trail.At(i)}
	case stateUnkeyed:
		if err := seek(c.arr, c.idx); err != nil {
			return c.fail(err)
		}
		a, err := c.arr.Array()
		if err != nil {
			return c.fail(err)
		}
		return Cursor{state: stateUnkeyed, arr: a, idx: i, trail: c.trail.At(i)}
	default:
		return c.failUnpositioned()
	}
}

// Step dispatches on the segment kind.
func (c Cursor) Step(s Segment) Cursor {
	if s.IsIndex() {
		return c.Index(s.IndexValue())
	}
	return c.Field(s.KeyName())
}

// Walk folds Step over the path.
func (c Cursor) Walk(p Path) Cursor {
	for _, s := range p {
		c = c.Step(s)
	}
	return c
}

// Err reports the absorbed traversal failure, if any. Steps defer their
// errors, so Err is how an intermediate cursor is inspected without decoding.
func (c Cursor) Err() error {
	if c.state == stateError {
		return c.issue
	}
	return nil
}

func (c Cursor) fail(err error) Cursor {
	return Cursor{state: stateError, issue: wrapIssue(err, c.trail.String()), trail: c.trail}
}

func (c Cursor) failUnpositioned() Cursor {
	return Cursor{state: stateError, issue: issuef(CodeUnpositionedRoot, "", "cursor is not positioned on any document")}
}

// seek replays a forward-only array context up to target. Elements before
// the target are decoded and discarded; running out of elements, a negative
// target, and a context already past the target all fail with
// index_out_of_range.
func seek(a Array, target int) error {
	if target < 0 {
		return issuef(CodeIndexOutOfRange, "", "index %d is negative", target)
	}
	if p := a.Pos(); p > target {
		return issuef(CodeIndexOutOfRange, "", "array context already advanced to %d, cannot reach %d", p, target)
	}
	for a.Pos() < target {
		if err := a.Discard(); err != nil {
			return err
		}
	}
	return nil
}

// Decode resolves the cursor to a value of type T. This is the single point
// where deferred traversal errors surface: an error cursor yields its
// absorbed issue, a root cursor yields unpositioned_root, and positioned
// cursors decode the addressed member or element.
func Decode[T any](c Cursor) (T, error) {
	var out T
	switch c.state {
	case stateError:
		return out, c.issue
	case stateRoot:
		return out, issuef(CodeUnpositionedRoot, "", "cursor is still at the document root; step to a key or index first")
	case stateKeyed:
		if err := c.obj.Decode(c.key, &out); err != nil {
			return out, wrapIssue(err, c.trail.String())
		}
		return out, nil
	case stateUnkeyed:
		if err := seek(c.arr, c.idx); err != nil {
			return out, wrapIssue(err, c.trail.String())
		}
		if err := c.arr.Decode(&out); err != nil {
			return out, wrapIssue(err, c.trail.String())
		}
		return out, nil
	default:
		return out, issuef(CodeUnpositionedRoot, "", "cursor is not positioned on any document")
	}
}

// DecodeAt walks p from the cursor and decodes at the end position.
func DecodeAt[T any](c Cursor, p Path) (T, error) {
	return Decode[T](c.Walk(p))
}
