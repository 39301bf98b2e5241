package pluck

import (
	"errors"
	"fmt"

	"github.com/mizumaki/pluck/internal/token"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeMalformedInput reports input the active driver could not tokenize,
	// or a traversal over input that turned out to be truncated or invalid.
	CodeMalformedInput = "malformed_input"
	// CodeShapeMismatch reports a container of the wrong kind: stepping by key
	// into an array, by index into an object, or into a scalar.
	CodeShapeMismatch = "shape_mismatch"
	// CodeKeyNotFound reports an object that ended without the requested key.
	CodeKeyNotFound = "key_not_found"
	// CodeIndexOutOfRange reports an array that ended before the requested
	// index, a negative index, or an index behind an already-advanced reader.
	CodeIndexOutOfRange = "index_out_of_range"
	// CodeTypeMismatch reports a leaf whose value does not fit the requested
	// Go type.
	CodeTypeMismatch = "type_mismatch"
	// CodeUnpositionedRoot reports a terminal decode on a cursor that never
	// left the root, or a cursor that could not be anchored at all.
	CodeUnpositionedRoot = "unpositioned_root"
)

// ErrTooLarge is the cause chained by malformed_input Issues when tokenization
// stopped because Option.MaxBytes was exceeded. Test for it with errors.Is.
var ErrTooLarge = token.ErrTooLarge

// Issue is the single error value every failed traversal resolves to. Path is
// the dotted trail walked so far, including the segment being attempted when
// the failure struck.
type Issue struct {
	Path    string // dotted trail, e.g. items.2.price
	Code    string // one of the codes listed above
	Message string
	Cause   error // optional: underlying driver or decode error
}

func (i *Issue) Error() string {
	if i.Path == "" {
		return fmt.Sprintf("decoding failed: %s", i.Message)
	}
	return fmt.Sprintf("decoding failed at sub-path %q: %s", i.Path, i.Message)
}

func (i *Issue) Unwrap() error { return i.Cause }

// AsIssue extracts an Issue from an error using errors.As internally.
func AsIssue(err error) (*Issue, bool) {
	if err == nil {
		return nil, false
	}
	var iss *Issue
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsCode reports whether err carries an Issue with the given code.
func IsCode(err error, code string) bool {
	iss, ok := AsIssue(err)
	return ok && iss.Code == code
}

func issuef(code, path, format string, args ...any) *Issue {
	return &Issue{Path: path, Code: code, Message: fmt.Sprintf(format, args...)}
}

// wrapIssue folds an arbitrary error into the traversal taxonomy. Errors that
// already are Issues pass through, gaining the path if they carry none;
// anything else is treated as malformed input from the underlying source.
func wrapIssue(err error, path string) *Issue {
	if err == nil {
		return nil
	}
	var iss *Issue
	if errors.As(err, &iss) {
		if iss.Path == "" && path != "" {
			cp := *iss
			cp.Path = path
			return &cp
		}
		return iss
	}
	return &Issue{Path: path, Code: CodeMalformedInput, Message: err.Error(), Cause: err}
}
