package storage

import (
	"bytes"
	"encoding/json"
)

// JSON stores strings as is and everything else as JSON. Strings that would
// read back as another JSON value ("true", "42", `{"a":1}`) are quoted.
// Parse falls back to the raw text when it is not valid JSON, so cookies
// written by other code remain readable.
var JSON Serializer[any] = jsonSerializer{}

type jsonSerializer struct{}

func (jsonSerializer) Parse(text string) (any, error) {
	if !looksLikeJSON(text) {
		return text, nil
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text, nil
	}
	return v, nil
}

func (jsonSerializer) Stringify(value any) (string, error) {
	if s, ok := value.(string); ok && !(looksLikeJSON(s) && json.Valid([]byte(s))) {
		return s, nil
	}
	return marshal(value)
}

// JSONOf returns a strict JSON serializer for T. Unlike JSON it never falls
// back to raw text and reports malformed input as an error.
func JSONOf[T any]() Serializer[T] {
	return typedJSON[T]{}
}

type typedJSON[T any] struct{}

func (typedJSON[T]) Parse(text string) (T, error) {
	var v T
	err := json.Unmarshal([]byte(text), &v)
	return v, err
}

func (typedJSON[T]) Stringify(value T) (string, error) {
	return marshal(value)
}

// looksLikeJSON reports whether text starts like a JSON literal other than a
// bare word.
func looksLikeJSON(text string) bool {
	if text == "null" || text == "true" || text == "false" {
		return true
	}
	if text == "" {
		return false
	}
	switch c := text[0]; {
	case c == '{', c == '[', c == '"', c == '-':
		return true
	default:
		return c >= '0' && c <= '9'
	}
}

func marshal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
