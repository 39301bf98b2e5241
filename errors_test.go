package pluck_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	pluck "github.com/mizumaki/pluck"
)

func TestIssue_Unwrap(t *testing.T) {
	sentinel := errors.New("boom")
	iss := &pluck.Issue{Code: pluck.CodeMalformedInput, Message: "bad", Cause: sentinel}
	if !errors.Is(iss, sentinel) {
		t.Fatalf("Issue should unwrap to its cause")
	}
}

func TestAsIssue_ThroughWrapping(t *testing.T) {
	iss := &pluck.Issue{Code: pluck.CodeKeyNotFound, Path: "a.b", Message: "no such key"}
	wrapped := fmt.Errorf("loading config: %w", iss)

	got, ok := pluck.AsIssue(wrapped)
	if !ok || got.Code != pluck.CodeKeyNotFound || got.Path != "a.b" {
		t.Fatalf("AsIssue through fmt.Errorf = %+v, %v", got, ok)
	}
	if !pluck.IsCode(wrapped, pluck.CodeKeyNotFound) {
		t.Fatalf("IsCode should see through wrapping")
	}
}

func TestMalformedInput_KeepsCause(t *testing.T) {
	_, err := pluck.Bytes[int]([]byte(`{"a":`), "a")
	if !pluck.IsCode(err, pluck.CodeMalformedInput) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("truncation cause should survive wrapping: %v", err)
	}
}

func TestMaxBytes_KeepsSentinel(t *testing.T) {
	data := []byte(`{"key":"0123456789abcdef0123456789abcdef"}`)
	_, err := pluck.Bytes[string](data, "key", pluck.Option{MaxBytes: 8})
	if !pluck.IsCode(err, pluck.CodeMalformedInput) {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, pluck.ErrTooLarge) {
		t.Fatalf("size overrun should surface ErrTooLarge: %v", err)
	}
}
