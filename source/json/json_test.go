package json_test

import (
	"errors"
	"io"
	"testing"

	"github.com/mizumaki/pluck/internal/token"
	jsonsrc "github.com/mizumaki/pluck/source/json"
)

func drain(t *testing.T, src token.Source) []token.Token {
	t.Helper()
	var out []token.Token
	for {
		tok, err := src.NextToken()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		out = append(out, tok)
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestNextToken_KindSequence(t *testing.T) {
	toks := drain(t, jsonsrc.NewBytes([]byte(`{"a":[1,"x",true,null],"b":"y"}`)))
	want := []token.Kind{
		token.BeginObject,
		token.Key, token.BeginArray, token.Number, token.String, token.Bool, token.Null, token.EndArray,
		token.Key, token.String,
		token.EndObject,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}

	// Strings inside arrays are values, strings in key position are keys.
	if toks[1].String != "a" || toks[4].String != "x" || toks[8].String != "b" || toks[9].String != "y" {
		t.Fatalf("string payloads wrong: %+v", toks)
	}
}

func TestNextToken_KeyStateSurvivesNesting(t *testing.T) {
	toks := drain(t, jsonsrc.NewBytes([]byte(`{"a":{},"d":[{}],"e":1}`)))
	want := []token.Kind{
		token.BeginObject,
		token.Key, token.BeginObject, token.EndObject,
		token.Key, token.BeginArray, token.BeginObject, token.EndObject, token.EndArray,
		token.Key, token.Number,
		token.EndObject,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNextToken_TopLevelString(t *testing.T) {
	toks := drain(t, jsonsrc.NewBytes([]byte(`"hello"`)))
	if len(toks) != 1 || toks[0].Kind != token.String || toks[0].String != "hello" {
		t.Fatalf("got %+v", toks)
	}
}

func TestNextToken_NumbersKeepSourceText(t *testing.T) {
	toks := drain(t, jsonsrc.NewBytes([]byte(`[1e3,0.50,-7]`)))
	want := []string{"1e3", "0.50", "-7"}
	for i, w := range want {
		if toks[i+1].Number != w {
			t.Fatalf("number %d = %q, want %q", i, toks[i+1].Number, w)
		}
	}
}

func TestNextToken_Malformed(t *testing.T) {
	src := jsonsrc.NewBytes([]byte(`{]`))
	if _, err := src.NextToken(); err != nil {
		t.Fatalf("open brace should tokenize: %v", err)
	}
	_, err := src.NextToken()
	if err == nil || errors.Is(err, io.EOF) {
		t.Fatalf("expected a syntax error, got %v", err)
	}
}

func TestLocation(t *testing.T) {
	src := jsonsrc.NewBytes([]byte(`{"a":1}`))
	if src.Location() != -1 {
		t.Fatalf("fresh Location = %d, want -1", src.Location())
	}
	last := int64(0)
	for {
		_, err := src.NextToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		loc := src.Location()
		if loc < last {
			t.Fatalf("Location went backwards: %d after %d", loc, last)
		}
		last = loc
	}
	if last != int64(len(`{"a":1}`)) {
		t.Fatalf("final Location = %d, want %d", last, len(`{"a":1}`))
	}
}
