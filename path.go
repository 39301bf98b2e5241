package pluck

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a path: either a string key into an object or a
// non-negative integer index into an array.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// Key builds a key segment. Any string is a valid key, including "" and
// strings that look numeric.
func Key(name string) Segment { return Segment{key: name} }

// Index builds an index segment. Negative indices are representable but fail
// with index_out_of_range when stepped.
func Index(i int) Segment { return Segment{index: i, isIndex: true} }

func (s Segment) IsKey() bool     { return !s.isIndex }
func (s Segment) IsIndex() bool   { return s.isIndex }
func (s Segment) KeyName() string { return s.key }
func (s Segment) IndexValue() int { return s.index }

// String renders the segment in dotted-path form. Dots and backslashes inside
// keys are escaped so the rendering stays splittable.
func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return escapeKey(s.key)
}

func escapeKey(k string) string {
	if !strings.ContainsAny(k, `.\`) {
		return k
	}
	return strings.ReplaceAll(strings.ReplaceAll(k, `\`, `\\`), ".", `\.`)
}

// Path is an ordered sequence of segments addressing one position in a
// document. The zero value addresses the root itself.
type Path []Segment

// Field appends a key segment in a chain-safe way: the receiver is copied, so
// branching builders never share backing storage.
func (p Path) Field(name string) Path {
	return append(append(Path{}, p...), Key(name))
}

// At appends an index segment, copying the receiver like Field.
func (p Path) At(i int) Path {
	return append(append(Path{}, p...), Index(i))
}

// String renders the path in dotted form, e.g. "items.2.price".
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// isCanonicalIndex reports whether s spells an array index in canonical form:
// "0", or digits with no leading zero. Anything else ("01", "-", "1e3") is a
// key so that object members with those spellings stay addressable.
func isCanonicalIndex(s string) bool {
	if s == "" {
		return false
	}
	if s == "0" {
		return true
	}
	if s[0] < '1' || s[0] > '9' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func classify(s string) Segment {
	if isCanonicalIndex(s) {
		if n, err := strconv.Atoi(s); err == nil {
			return Index(n)
		}
	}
	return Key(s)
}

// ParsePath parses a dotted mini-path such as "a.1.b". Segments that spell a
// canonical non-negative integer become indices; everything else is a key.
// `\.` and `\\` escape literal dots and backslashes inside keys; a segment
// containing an escape is always a key. The empty string is the empty path.
// Empty segments (leading, trailing or doubled dots) are an error.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	var (
		p       Path
		cur     strings.Builder
		escaped bool
		hadEsc  bool
	)
	flush := func() error {
		seg := cur.String()
		if seg == "" && !hadEsc {
			return fmt.Errorf("empty segment in path %q", s)
		}
		if hadEsc {
			p = append(p, Key(seg))
		} else {
			p = append(p, classify(seg))
		}
		cur.Reset()
		hadEsc = false
		return nil
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			switch c {
			case '.', '\\':
				cur.WriteByte(c)
			default:
				return nil, fmt.Errorf("invalid escape %q in path %q", `\`+string(c), s)
			}
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
			hadEsc = true
		case '.':
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			cur.WriteByte(c)
		}
	}
	if escaped {
		return nil, fmt.Errorf("trailing backslash in path %q", s)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParsePointer parses an RFC 6901 JSON Pointer such as "/a/1/b". "" is the
// empty path; any other pointer must start with '/'. `~1` unescapes to '/'
// and `~0` to '~'. Canonical integer tokens become indices; all other tokens,
// including "-", are keys.
func ParsePointer(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	if s[0] != '/' {
		return nil, fmt.Errorf("pointer %q does not start with '/'", s)
	}
	var p Path
	for _, tok := range strings.Split(s[1:], "/") {
		unesc, err := unescapePointerToken(tok)
		if err != nil {
			return nil, fmt.Errorf("pointer %q: %w", s, err)
		}
		if unesc == tok {
			p = append(p, classify(tok))
		} else {
			p = append(p, Key(unesc))
		}
	}
	return p, nil
}

func unescapePointerToken(tok string) (string, error) {
	if !strings.Contains(tok, "~") {
		return tok, nil
	}
	var b strings.Builder
	for i := 0; i < len(tok); i++ {
		if tok[i] != '~' {
			b.WriteByte(tok[i])
			continue
		}
		if i+1 >= len(tok) {
			return "", fmt.Errorf("dangling '~' in token %q", tok)
		}
		i++
		switch tok[i] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return "", fmt.Errorf("invalid escape %q in token %q", "~"+string(tok[i]), tok)
		}
	}
	return b.String(), nil
}
