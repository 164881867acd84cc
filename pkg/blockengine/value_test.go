// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     blockengine
// Description: Unit tests for the dynamic response value type
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package blockengine

import (
	"encoding/json"
	"strings"
	"testing"
)

// ============================================================================
// Unit Tests - parsing and access
// ============================================================================

func TestParseValueBytes(t *testing.T) {
	v, err := ParseValueBytes([]byte(`{"result": ["a", "b"], "id": 1}`))
	if err != nil {
		t.Fatalf("ParseValueBytes failed: %v", err)
	}

	result, ok := v.Result()
	if !ok {
		t.Fatal("result field should be present")
	}
	arr, ok := result.StringArray()
	if !ok || len(arr) != 2 || arr[0] != "a" || arr[1] != "b" {
		t.Errorf("result = %v, expected [a b]", arr)
	}
}

func TestParseValueInvalidJSON(t *testing.T) {
	_, err := ParseValueBytes([]byte(`{"result":`))
	if err == nil {
		t.Error("invalid JSON should fail to parse")
	}
}

func TestValueAccessors(t *testing.T) {
	v, err := ParseValueBytes([]byte(`{"error": {"code": -32600, "message": "bad"}, "nested": [1, "two"]}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	errField, ok := v.Err()
	if !ok {
		t.Fatal("error field should be present")
	}
	msg, ok := errField.Get("message")
	if !ok {
		t.Fatal("message field should be present")
	}
	if s, _ := msg.Str(); s != "bad" {
		t.Errorf("message = %q, expected bad", s)
	}

	if _, ok := v.Result(); ok {
		t.Error("result field should be absent")
	}

	nested, _ := v.Get("nested")
	if _, ok := nested.StringArray(); ok {
		t.Error("mixed array should not convert to a string array")
	}
}

func TestValueStrOnNonString(t *testing.T) {
	v, _ := ParseValueBytes([]byte(`42`))
	if _, ok := v.Str(); ok {
		t.Error("number should not convert to string")
	}
	if v.IsNull() {
		t.Error("42 is not null")
	}

	null, _ := ParseValueBytes([]byte(`null`))
	if !null.IsNull() {
		t.Error("null should report IsNull")
	}
}

// ============================================================================
// Unit Tests - round trip
// ============================================================================

func TestValueRoundTrip(t *testing.T) {
	// Keys, array order, and numeric text must survive a decode/encode cycle
	original := `{"result":[{"bundle_id":"abc","slot":18446744073709551615,"score":0.30000000000000004},"plain",[1,2,3]],"id":1}`

	v, err := ParseValueBytes([]byte(original))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	encoded, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var a, b interface{}
	if err := json.Unmarshal([]byte(original), &a); err != nil {
		t.Fatalf("unmarshal original: %v", err)
	}
	if err := json.Unmarshal(encoded, &b); err != nil {
		t.Fatalf("unmarshal encoded: %v", err)
	}

	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	if string(aj) != string(bj) {
		t.Errorf("round trip changed the logical value:\noriginal: %s\nencoded:  %s", aj, bj)
	}

	// Large integers and long decimal fractions must keep their exact text
	if !strings.Contains(string(encoded), "18446744073709551615") {
		t.Errorf("uint64 precision lost: %s", encoded)
	}
	if !strings.Contains(string(encoded), "0.30000000000000004") {
		t.Errorf("decimal text precision lost: %s", encoded)
	}
}

func TestValueUnmarshalJSON(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`{"result": []}`), &v); err != nil {
		t.Fatalf("unmarshal into Value failed: %v", err)
	}
	if _, ok := v.Result(); !ok {
		t.Error("result field should be present after unmarshal")
	}
}

// ============================================================================
// Unit Tests - rendering
// ============================================================================

func TestValuePretty(t *testing.T) {
	v, _ := ParseValueBytes([]byte(`{"result":["a"]}`))

	pretty := v.Pretty()
	if !strings.Contains(pretty, "\n") {
		t.Errorf("Pretty output should be indented: %q", pretty)
	}

	var back interface{}
	if err := json.Unmarshal([]byte(pretty), &back); err != nil {
		t.Errorf("Pretty output should stay valid JSON: %v", err)
	}
}

func TestValueString(t *testing.T) {
	v, _ := ParseValueBytes([]byte(`{ "a" : 1 }`))
	if v.String() != `{"a":1}` {
		t.Errorf("String() = %q, expected compact JSON", v.String())
	}
}
