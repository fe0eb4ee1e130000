package util

import "encoding/json"

// Optional JSON field types for partial updates. Each one distinguishes
// a field that was absent from the request body (Set == false) from one
// that was explicitly null (Set && !Valid) and one carrying a value.

type OptString struct {
	Set   bool
	Valid bool
	Value string
}

func (o *OptString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

type OptInt struct {
	Set   bool
	Valid bool
	Value int
}

func (o *OptInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

type OptBool struct {
	Set   bool
	Valid bool
	Value bool
}

func (o *OptBool) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}
