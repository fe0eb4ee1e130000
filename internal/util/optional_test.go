package util

import (
	"encoding/json"
	"testing"
)

func TestOptString_AbsentNullValue(t *testing.T) {
	type body struct {
		Repeat OptString `json:"repeat"`
	}

	var absent body
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if absent.Repeat.Set {
		t.Error("absent field: Set = true, want false")
	}

	var null body
	if err := json.Unmarshal([]byte(`{"repeat": null}`), &null); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !null.Repeat.Set || null.Repeat.Valid {
		t.Errorf("null field: Set = %v, Valid = %v, want true, false", null.Repeat.Set, null.Repeat.Valid)
	}

	var value body
	if err := json.Unmarshal([]byte(`{"repeat": "daily"}`), &value); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !value.Repeat.Set || !value.Repeat.Valid || value.Repeat.Value != "daily" {
		t.Errorf("value field: got %+v, want Set, Valid, \"daily\"", value.Repeat)
	}
}

func TestOptInt_RejectsNonNumbers(t *testing.T) {
	type body struct {
		PointValue OptInt `json:"point_value"`
	}

	var b body
	if err := json.Unmarshal([]byte(`{"point_value": "abc"}`), &b); err == nil {
		t.Error("string point_value: error = nil, want error")
	}
}
