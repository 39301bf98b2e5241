package token

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type numberConv func(text string) (any, error)

func numberAsJSONNumber(text string) (any, error) { return json.Number(text), nil }

func numberAsFloat64(text string) (any, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", text, err)
	}
	return f, nil
}

// DecodeAny materializes one complete value from src as Go natives. Numbers
// come back as json.Number so callers can defer precision decisions.
func DecodeAny(src Source) (any, error) {
	return decodeValue(src, numberAsJSONNumber)
}

// DecodeAnyFloat64 is DecodeAny with numbers eagerly converted to float64.
func DecodeAnyFloat64(src Source) (any, error) {
	return decodeValue(src, numberAsFloat64)
}

func decodeValue(src Source, conv numberConv) (any, error) {
	tok, err := src.NextToken()
	if err != nil {
		return nil, err
	}
	return decodeFrom(src, tok, conv)
}

func decodeFrom(src Source, tok Token, conv numberConv) (any, error) {
	switch tok.Kind {
	case BeginObject:
		return decodeObject(src, conv)
	case BeginArray:
		return decodeArray(src, conv)
	case String:
		return tok.String, nil
	case Number:
		return conv(tok.Number)
	case Bool:
		return tok.Bool, nil
	case Null:
		return nil, nil
	case Key:
		return nil, fmt.Errorf("unexpected key %q outside object", tok.String)
	default:
		return nil, fmt.Errorf("unexpected %s token", tok.Kind.Name())
	}
}

func decodeObject(src Source, conv numberConv) (map[string]any, error) {
	out := map[string]any{}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case EndObject:
			return out, nil
		case Key:
			v, err := decodeValue(src, conv)
			if err != nil {
				return nil, err
			}
			out[tok.String] = v
		default:
			return nil, fmt.Errorf("unexpected %s token inside object", tok.Kind.Name())
		}
	}
}

func decodeArray(src Source, conv numberConv) ([]any, error) {
	out := []any{}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case EndArray:
			return out, nil
		default:
			v, err := decodeFrom(src, tok, conv)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
}
