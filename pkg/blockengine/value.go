// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     blockengine
// Description: Dynamic response value type for the JSON-RPC envelope
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package blockengine

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/msto63/bundlerelay/pkg/core/sdkerror"
)

// Value is an arbitrary tree of untyped values (objects, arrays, strings,
// numbers) returned verbatim by the relay. The envelope contract is field
// presence, not field type: callers probe with Get/Array/Str instead of
// decoding into a fixed schema. Numbers are kept as json.Number so the
// textual representation survives a round trip.
type Value struct {
	data interface{}
}

// ParseValue decodes a JSON document into a Value, preserving number text
func ParseValue(r io.Reader) (Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var data interface{}
	if err := dec.Decode(&data); err != nil {
		return Value{}, sdkerror.Wrap(err, sdkerror.CodeResponseShape, "failed to parse response body")
	}
	return Value{data: data}, nil
}

// ParseValueBytes decodes a JSON document from a byte slice
func ParseValueBytes(b []byte) (Value, error) {
	return ParseValue(bytes.NewReader(b))
}

// ValueOf wraps an already-decoded Go value
func ValueOf(v interface{}) Value {
	return Value{data: v}
}

// Interface returns the underlying decoded value
func (v Value) Interface() interface{} {
	return v.data
}

// IsNull reports whether the value is JSON null or absent
func (v Value) IsNull() bool {
	return v.data == nil
}

// Get returns the named field of an object value
func (v Value) Get(key string) (Value, bool) {
	obj, ok := v.data.(map[string]interface{})
	if !ok {
		return Value{}, false
	}
	inner, ok := obj[key]
	if !ok {
		return Value{}, false
	}
	return Value{data: inner}, true
}

// Array returns the value's elements when it is a JSON array
func (v Value) Array() ([]Value, bool) {
	arr, ok := v.data.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]Value, len(arr))
	for i, e := range arr {
		out[i] = Value{data: e}
	}
	return out, true
}

// Str returns the value as a string when it is a JSON string
func (v Value) Str() (string, bool) {
	s, ok := v.data.(string)
	return s, ok
}

// StringArray returns the value's elements as strings; ok is false when the
// value is not an array or any element is not a string
func (v Value) StringArray() ([]string, bool) {
	elems, ok := v.Array()
	if !ok {
		return nil, false
	}
	out := make([]string, len(elems))
	for i, e := range elems {
		s, ok := e.Str()
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// Result returns the envelope's result field
func (v Value) Result() (Value, bool) {
	return v.Get("result")
}

// Err returns the envelope's error field when the relay reported one
func (v Value) Err() (Value, bool) {
	return v.Get("error")
}

// MarshalJSON re-encodes the value without altering its logical content
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.data)
}

// UnmarshalJSON decodes into the value, preserving number text
func (v *Value) UnmarshalJSON(b []byte) error {
	parsed, err := ParseValueBytes(b)
	if err != nil {
		return err
	}
	v.data = parsed.data
	return nil
}

// String renders the value as compact JSON
func (v Value) String() string {
	b, err := json.Marshal(v.data)
	if err != nil {
		return "<invalid value>"
	}
	return string(b)
}

// Pretty renders the value as indented JSON for display
func (v Value) Pretty() string {
	b, err := json.MarshalIndent(v.data, "", "  ")
	if err != nil {
		return "<invalid value>"
	}
	return string(b)
}
