package api

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Body wraps a raw response body. Decoding is tolerant on purpose: an empty
// body behaves like an empty JSON object, and a body that does not decode
// into the target leaves the target at its zero value while the raw text
// stays reachable through Text. Callers that then read fields of the zero
// value get zero-value answers rather than an error, matching how the
// original client treated non-JSON responses as usable empty objects.
type Body struct {
	raw []byte
}

// Decode unmarshals the body into v, which must be a non-nil pointer.
// It never fails: bodies that are empty or not decodable into v leave v
// untouched.
func (b *Body) Decode(v any) {
	data := bytes.TrimSpace(b.raw)
	if len(data) == 0 {
		return
	}

	// Unmarshal into a scratch value so a mid-stream decode error cannot
	// leave v partially populated.
	rv := reflect.ValueOf(v)
	scratch := reflect.New(rv.Type().Elem())
	if err := json.Unmarshal(data, scratch.Interface()); err != nil {
		return
	}
	rv.Elem().Set(scratch.Elem())
}

// Text returns the raw body text.
func (b *Body) Text() string {
	return string(b.raw)
}
