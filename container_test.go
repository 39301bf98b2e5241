package pluck_test

import (
	"strings"
	"testing"

	pluck "github.com/mizumaki/pluck"
)

func TestDocument_ShapeSelection(t *testing.T) {
	bothBackings(t, `{"a":1}`, func(t *testing.T, doc pluck.Document) {
		if _, err := doc.Object(); err != nil {
			t.Fatalf("Object() on object root: %v", err)
		}
		_, err := doc.Array()
		wantCode(t, err, pluck.CodeShapeMismatch, "")
		if !strings.Contains(err.Error(), "not an array") {
			t.Fatalf("message should name the expectation: %v", err)
		}
	})
	bothBackings(t, `[1]`, func(t *testing.T, doc pluck.Document) {
		if _, err := doc.Array(); err != nil {
			t.Fatalf("Array() on array root: %v", err)
		}
		_, err := doc.Object()
		wantCode(t, err, pluck.CodeShapeMismatch, "")
	})
	bothBackings(t, `"leaf"`, func(t *testing.T, doc pluck.Document) {
		_, err := doc.Object()
		wantCode(t, err, pluck.CodeShapeMismatch, "")
		_, err = doc.Array()
		wantCode(t, err, pluck.CodeShapeMismatch, "")
	})
}

func TestObject_DecodeAndLastKey(t *testing.T) {
	bothBackings(t, `{"a":1,"b":{"c":2}}`, func(t *testing.T, doc pluck.Document) {
		o, err := doc.Object()
		if err != nil {
			t.Fatalf("Object(): %v", err)
		}
		if k, ok := o.LastKey(); ok {
			t.Fatalf("fresh context reports last key %q", k)
		}

		var n int
		if err := o.Decode("a", &n); err != nil || n != 1 {
			t.Fatalf("Decode(a) = %d, %v", n, err)
		}
		if k, ok := o.LastKey(); !ok || k != "a" {
			t.Fatalf("LastKey after Decode = %q, %v", k, ok)
		}

		// A miss leaves the anchor untouched.
		err = o.Decode("zzz", &n)
		wantCode(t, err, pluck.CodeKeyNotFound, "")
		if k, ok := o.LastKey(); !ok || k != "a" {
			t.Fatalf("LastKey after miss = %q, %v; want a", k, ok)
		}

		if _, err := o.Object("b"); err != nil {
			t.Fatalf("Object(b): %v", err)
		}
		if k, ok := o.LastKey(); !ok || k != "b" {
			t.Fatalf("LastKey after Object = %q, %v", k, ok)
		}
	})
}

func TestObject_LookupOrderIsFree(t *testing.T) {
	bothBackings(t, `{"a":1,"b":2,"c":3}`, func(t *testing.T, doc pluck.Document) {
		o, err := doc.Object()
		if err != nil {
			t.Fatalf("Object(): %v", err)
		}
		for _, want := range []struct {
			key string
			n   int
		}{{"c", 3}, {"a", 1}, {"b", 2}, {"a", 1}} {
			var n int
			if err := o.Decode(want.key, &n); err != nil || n != want.n {
				t.Fatalf("Decode(%s) = %d, %v; want %d", want.key, n, err, want.n)
			}
		}
	})
}

func TestObject_DuplicateKeysLastWins(t *testing.T) {
	bothBackings(t, `{"k":1,"k":2}`, func(t *testing.T, doc pluck.Document) {
		o, err := doc.Object()
		if err != nil {
			t.Fatalf("Object(): %v", err)
		}
		var n int
		if err := o.Decode("k", &n); err != nil || n != 2 {
			t.Fatalf("duplicate key = %d, %v; want the last occurrence", n, err)
		}
	})
}

func TestArray_PosDiscardDecode(t *testing.T) {
	bothBackings(t, `[10,20,30]`, func(t *testing.T, doc pluck.Document) {
		a, err := doc.Array()
		if err != nil {
			t.Fatalf("Array(): %v", err)
		}
		if a.Pos() != 0 {
			t.Fatalf("fresh Pos = %d", a.Pos())
		}
		if err := a.Discard(); err != nil || a.Pos() != 1 {
			t.Fatalf("after Discard: pos %d, %v", a.Pos(), err)
		}
		var n int
		if err := a.Decode(&n); err != nil || n != 20 || a.Pos() != 2 {
			t.Fatalf("Decode = %d, pos %d, %v", n, a.Pos(), err)
		}
		if err := a.Discard(); err != nil || a.Pos() != 3 {
			t.Fatalf("after third Discard: pos %d, %v", a.Pos(), err)
		}

		err = a.Discard()
		wantCode(t, err, pluck.CodeIndexOutOfRange, "")
		if a.Pos() != 3 {
			t.Fatalf("exhaustion must not move Pos: %d", a.Pos())
		}
	})
}

func TestArray_FailedDecodeDoesNotAdvance(t *testing.T) {
	bothBackings(t, `[1,"two"]`, func(t *testing.T, doc pluck.Document) {
		a, err := doc.Array()
		if err != nil {
			t.Fatalf("Array(): %v", err)
		}
		var n int
		if err := a.Decode(&n); err != nil || n != 1 {
			t.Fatalf("first element = %d, %v", n, err)
		}

		err = a.Decode(&n)
		wantCode(t, err, pluck.CodeTypeMismatch, "")
		if a.Pos() != 1 {
			t.Fatalf("failed decode must not advance: pos %d", a.Pos())
		}

		// The same element is still current and decodes with the right type.
		var s string
		if err := a.Decode(&s); err != nil || s != "two" || a.Pos() != 2 {
			t.Fatalf("retry = %q, pos %d, %v", s, a.Pos(), err)
		}
	})
}

func TestArray_NestedContexts(t *testing.T) {
	bothBackings(t, `[[1,2],{"k":3}]`, func(t *testing.T, doc pluck.Document) {
		a, err := doc.Array()
		if err != nil {
			t.Fatalf("Array(): %v", err)
		}

		// Wrong shape for the current element: no advance.
		_, err = a.Object()
		wantCode(t, err, pluck.CodeShapeMismatch, "")
		if a.Pos() != 0 {
			t.Fatalf("shape failure must not advance: pos %d", a.Pos())
		}

		inner, err := a.Array()
		if err != nil || a.Pos() != 1 {
			t.Fatalf("Array element: pos %d, %v", a.Pos(), err)
		}
		var n int
		if err := inner.Decode(&n); err != nil || n != 1 {
			t.Fatalf("inner first = %d, %v", n, err)
		}

		o, err := a.Object()
		if err != nil || a.Pos() != 2 {
			t.Fatalf("Object element: pos %d, %v", a.Pos(), err)
		}
		if err := o.Decode("k", &n); err != nil || n != 3 {
			t.Fatalf("nested object k = %d, %v", n, err)
		}
	})
}

func TestArray_BranchIndependence(t *testing.T) {
	bothBackings(t, `["a","b","c"]`, func(t *testing.T, doc pluck.Document) {
		a, err := doc.Array()
		if err != nil {
			t.Fatalf("Array(): %v", err)
		}
		if err := a.Discard(); err != nil {
			t.Fatalf("Discard: %v", err)
		}

		b := a.Branch()
		if b.Pos() != 0 {
			t.Fatalf("branch must restart: pos %d", b.Pos())
		}
		var s string
		if err := b.Decode(&s); err != nil || s != "a" {
			t.Fatalf("branch first = %q, %v", s, err)
		}
		if a.Pos() != 1 {
			t.Fatalf("branch moved the source: pos %d", a.Pos())
		}
	})
}
