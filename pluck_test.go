package pluck_test

import (
	"encoding/json"
	"strings"
	"testing"

	pluck "github.com/mizumaki/pluck"
)

func TestBytes(t *testing.T) {
	data := []byte(`{"items":[{"name":"a","price":1.5},{"name":"b","price":2.5}],"count":2}`)

	name, err := pluck.Bytes[string](data, "items.1.name")
	if err != nil || name != "b" {
		t.Fatalf("items.1.name = %q, %v; want %q", name, err, "b")
	}
	price, err := pluck.Bytes[float64](data, "items.0.price")
	if err != nil || price != 1.5 {
		t.Fatalf("items.0.price = %v, %v; want 1.5", price, err)
	}
	count, err := pluck.Bytes[int](data, "count")
	if err != nil || count != 2 {
		t.Fatalf("count = %d, %v; want 2", count, err)
	}
	item, err := pluck.Bytes[map[string]any](data, "items.1")
	if err != nil || item["name"] != "b" {
		t.Fatalf("items.1 = %v, %v; want name b", item, err)
	}
}

func TestBytes_EmptyPathIsUnpositioned(t *testing.T) {
	_, err := pluck.Bytes[any]([]byte(`{"a":1}`), "")
	wantCode(t, err, pluck.CodeUnpositionedRoot, "")
}

func TestBytes_PathSyntaxError(t *testing.T) {
	_, err := pluck.Bytes[int]([]byte(`{"a":1}`), "a..b")
	if err == nil {
		t.Fatalf("expected path syntax error")
	}
	// Path syntax problems are caller mistakes, not document conditions; they
	// stay outside the Issue taxonomy.
	if _, ok := pluck.AsIssue(err); ok {
		t.Fatalf("path syntax error must not be an Issue: %v", err)
	}
}

func TestBytes_MalformedInput(t *testing.T) {
	for _, js := range []string{``, `{`, `{"a":`, `[1,2`, `{"a":1]`} {
		_, err := pluck.Bytes[int]([]byte(js), "a")
		wantCode(t, err, pluck.CodeMalformedInput, "")
	}
}

func TestBytes_TrailingDataTolerated(t *testing.T) {
	// One complete value is drained; whatever follows is never read.
	n, err := pluck.Bytes[int]([]byte(`{"a":1} this is not JSON`), "a")
	if err != nil || n != 1 {
		t.Fatalf("got %d, %v; want 1", n, err)
	}
}

func TestBytes_RootScalar(t *testing.T) {
	_, err := pluck.Bytes[int]([]byte(`42`), "a")
	wantCode(t, err, pluck.CodeShapeMismatch, "")

	_, err = pluck.Bytes[int]([]byte(`42`), "0")
	wantCode(t, err, pluck.CodeShapeMismatch, "")
}

func TestOptions_MaxDepth(t *testing.T) {
	data := []byte(`{"a":{"b":{"c":1}}}`)

	_, err := pluck.Bytes[int](data, "a.b.c", pluck.Option{MaxDepth: 2})
	wantCode(t, err, pluck.CodeMalformedInput, "")

	n, err := pluck.Bytes[int](data, "a.b.c", pluck.Option{MaxDepth: 3})
	if err != nil || n != 1 {
		t.Fatalf("depth 3 should fit: %d, %v", n, err)
	}
}

func TestOptions_MaxBytes(t *testing.T) {
	data := []byte(`{"key":"0123456789abcdef0123456789abcdef"}`)

	_, err := pluck.Bytes[string](data, "key", pluck.Option{MaxBytes: 8})
	wantCode(t, err, pluck.CodeMalformedInput, "")

	s, err := pluck.Bytes[string](data, "key", pluck.Option{MaxBytes: int64(len(data))})
	if err != nil || s != "0123456789abcdef0123456789abcdef" {
		t.Fatalf("within budget: %q, %v", s, err)
	}
}

func TestOptions_LastWins(t *testing.T) {
	data := []byte(`{"a":{"b":1}}`)
	n, err := pluck.Bytes[int](data, "a.b", pluck.Option{MaxDepth: 1}, pluck.Option{})
	if err != nil || n != 1 {
		t.Fatalf("later option should override: %d, %v", n, err)
	}
}

func TestOptions_NumberMode(t *testing.T) {
	data := []byte(`{"n":42}`)

	v, err := pluck.Bytes[any](data, "n")
	if err != nil {
		t.Fatalf("default mode: %v", err)
	}
	if num, ok := v.(json.Number); !ok || num != "42" {
		t.Fatalf("default mode = %T %v; want json.Number 42", v, v)
	}

	v, err = pluck.Bytes[any](data, "n", pluck.Option{Numbers: pluck.NumberFloat64})
	if err != nil {
		t.Fatalf("float64 mode: %v", err)
	}
	if f, ok := v.(float64); !ok || f != 42 {
		t.Fatalf("float64 mode = %T %v; want float64 42", v, v)
	}
}

func TestReader(t *testing.T) {
	r := strings.NewReader(`{"items":["a","b","c"]}`)
	s, err := pluck.Reader[string](r, "items.2")
	if err != nil || s != "c" {
		t.Fatalf("items.2 = %q, %v; want %q", s, err, "c")
	}
}

func TestReader_MaxBytes(t *testing.T) {
	r := strings.NewReader(`{"key":"0123456789abcdef0123456789abcdef"}`)
	_, err := pluck.Reader[string](r, "key", pluck.Option{MaxBytes: 8})
	wantCode(t, err, pluck.CodeMalformedInput, "")
}

func TestValue(t *testing.T) {
	tree := map[string]any{
		"users": []any{
			map[string]any{"name": "ann"},
			map[string]any{"name": "bob"},
		},
	}
	name, err := pluck.Value[string](tree, "users.1.name")
	if err != nil || name != "bob" {
		t.Fatalf("users.1.name = %q, %v; want %q", name, err, "bob")
	}

	_, err = pluck.Value[string](tree, "users.5.name")
	wantCode(t, err, pluck.CodeIndexOutOfRange, "users.5")
}

func TestValueAt(t *testing.T) {
	tree := map[string]any{"a": []any{int64(7)}}
	p := pluck.Path{}.Field("a").At(0)
	n, err := pluck.ValueAt[int](tree, p)
	if err != nil || n != 7 {
		t.Fatalf("a.0 = %d, %v; want 7", n, err)
	}
}

func TestBytesAt(t *testing.T) {
	p := pluck.Path{}.Field("a").At(1)
	n, err := pluck.BytesAt[int]([]byte(`{"a":[1,2,3]}`), p)
	if err != nil || n != 2 {
		t.Fatalf("a.1 = %d, %v; want 2", n, err)
	}
}

func TestIsCode(t *testing.T) {
	_, err := pluck.Bytes[int]([]byte(`{"a":1}`), "b")
	if !pluck.IsCode(err, pluck.CodeKeyNotFound) {
		t.Fatalf("IsCode(key_not_found) = false for %v", err)
	}
	if pluck.IsCode(err, pluck.CodeTypeMismatch) {
		t.Fatalf("IsCode should match the code exactly: %v", err)
	}
	if pluck.IsCode(nil, pluck.CodeKeyNotFound) {
		t.Fatalf("IsCode(nil) must be false")
	}
}

func TestIssue_ErrorRendering(t *testing.T) {
	_, err := pluck.Bytes[int]([]byte(`{"a":{"b":true}}`), "a.b")
	iss, ok := pluck.AsIssue(err)
	if !ok {
		t.Fatalf("expected Issue, got %v", err)
	}
	if iss.Code != pluck.CodeTypeMismatch || iss.Path != "a.b" {
		t.Fatalf("unexpected issue: %+v", iss)
	}
	if !strings.Contains(err.Error(), `at sub-path "a.b"`) {
		t.Fatalf("message should carry the sub-path: %v", err)
	}

	_, err = pluck.Bytes[int]([]byte(`{`), "a")
	if strings.Contains(err.Error(), "sub-path") {
		t.Fatalf("root issues should not mention a sub-path: %v", err)
	}
}
