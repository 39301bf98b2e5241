package pluck

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// coerceInto assigns a decoded leaf or subtree value to the pointed-to
// target. Scalar targets are strict: numbers never stringify, strings never
// parse into numbers or bools. Composite targets (structs, maps, slices)
// go through an encoding/json roundtrip of the materialized subtree.
func coerceInto(v any, into any) error {
	if into == nil {
		return issuef(CodeTypeMismatch, "", "decode target must be a non-nil pointer")
	}
	switch t := into.(type) {
	case *any:
		*t = v
		return nil
	case *string:
		s, ok := v.(string)
		if !ok {
			return issuef(CodeTypeMismatch, "", "value is %s, not a string", describe(v))
		}
		*t = s
		return nil
	case *bool:
		b, ok := v.(bool)
		if !ok {
			return issuef(CodeTypeMismatch, "", "value is %s, not a bool", describe(v))
		}
		*t = b
		return nil
	case *json.Number:
		return numberInto(v, t)
	case *int:
		return intInto(v, math.MinInt, math.MaxInt, func(i int64) { *t = int(i) })
	case *int8:
		return intInto(v, math.MinInt8, math.MaxInt8, func(i int64) { *t = int8(i) })
	case *int16:
		return intInto(v, math.MinInt16, math.MaxInt16, func(i int64) { *t = int16(i) })
	case *int32:
		return intInto(v, math.MinInt32, math.MaxInt32, func(i int64) { *t = int32(i) })
	case *int64:
		return intInto(v, math.MinInt64, math.MaxInt64, func(i int64) { *t = i })
	case *uint:
		return uintInto(v, math.MaxUint, func(u uint64) { *t = uint(u) })
	case *uint8:
		return uintInto(v, math.MaxUint8, func(u uint64) { *t = uint8(u) })
	case *uint16:
		return uintInto(v, math.MaxUint16, func(u uint64) { *t = uint16(u) })
	case *uint32:
		return uintInto(v, math.MaxUint32, func(u uint64) { *t = uint32(u) })
	case *uint64:
		return uintInto(v, math.MaxUint64, func(u uint64) { *t = u })
	case *float64:
		f, err := asFloat64(v)
		if err != nil {
			return err
		}
		*t = f
		return nil
	case *float32:
		f, err := asFloat64(v)
		if err != nil {
			return err
		}
		if f > math.MaxFloat32 || f < -math.MaxFloat32 {
			return issuef(CodeTypeMismatch, "", "number %v overflows float32", f)
		}
		*t = float32(f)
		return nil
	case *map[string]any:
		if m, ok := v.(map[string]any); ok {
			*t = m
			return nil
		}
		return roundtrip(v, into)
	case *[]any:
		if s, ok := v.([]any); ok {
			*t = s
			return nil
		}
		return roundtrip(v, into)
	}
	return roundtrip(v, into)
}

func intInto(v any, min, max int64, set func(int64)) error {
	i, err := asInt64(v)
	if err != nil {
		return err
	}
	if i < min || i > max {
		return issuef(CodeTypeMismatch, "", "number %d overflows the target integer type", i)
	}
	set(i)
	return nil
}

func uintInto(v any, max uint64, set func(uint64)) error {
	u, err := asUint64(v)
	if err != nil {
		return err
	}
	if u > max {
		return issuef(CodeTypeMismatch, "", "number %d overflows the target integer type", u)
	}
	set(u)
	return nil
}

func asInt64(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, issuef(CodeTypeMismatch, "", "invalid number %q", string(n))
		}
		return floatAsInt64(f)
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return asInt64(uint64(n))
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, issuef(CodeTypeMismatch, "", "number %d overflows the target integer type", n)
		}
		return int64(n), nil
	case float32:
		return floatAsInt64(float64(n))
	case float64:
		return floatAsInt64(n)
	default:
		return 0, issuef(CodeTypeMismatch, "", "value is %s, not an integer", describe(v))
	}
}

func floatAsInt64(f float64) (int64, error) {
	if f != math.Trunc(f) {
		return 0, issuef(CodeTypeMismatch, "", "number %v is not an integer", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, issuef(CodeTypeMismatch, "", "number %v overflows the target integer type", f)
	}
	return int64(f), nil
}

func asUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case json.Number:
		// Full uint64 range first; values above MaxInt64 have no int64 form.
		if u, err := strconv.ParseUint(string(n), 10, 64); err == nil {
			return u, nil
		}
	case uint64:
		return n, nil
	case uint:
		return uint64(n), nil
	case uint8:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint32:
		return uint64(n), nil
	}
	i, err := asInt64(v)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, issuef(CodeTypeMismatch, "", "number %d is negative", i)
	}
	return uint64(i), nil
}

func asFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, issuef(CodeTypeMismatch, "", "invalid number %q", string(n))
		}
		return f, nil
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, issuef(CodeTypeMismatch, "", "value is %s, not a number", describe(v))
	}
}

func numberInto(v any, t *json.Number) error {
	switch n := v.(type) {
	case json.Number:
		*t = n
	case int:
		*t = json.Number(strconv.FormatInt(int64(n), 10))
	case int64:
		*t = json.Number(strconv.FormatInt(n, 10))
	case uint64:
		*t = json.Number(strconv.FormatUint(n, 10))
	case float64:
		*t = json.Number(strconv.FormatFloat(n, 'g', -1, 64))
	default:
		return issuef(CodeTypeMismatch, "", "value is %s, not a number", describe(v))
	}
	return nil
}

// roundtrip covers composite targets by re-encoding the materialized value
// with encoding/json and unmarshalling into the target.
func roundtrip(v any, into any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &Issue{Code: CodeTypeMismatch, Message: fmt.Sprintf("value of type %T cannot be re-encoded: %v", v, err), Cause: err}
	}
	if err := json.Unmarshal(data, into); err != nil {
		return &Issue{Code: CodeTypeMismatch, Message: fmt.Sprintf("value does not fit target %T: %v", into, err), Cause: err}
	}
	return nil
}
