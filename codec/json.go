package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Points encode as {"x":..,"y":..,"cluster":..}, which is what rendering
// layers consume directly.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// NOTE: This affects newly-written snapshots only. Existing snapshots store
// the codec name and are decoded with the codec they were written with.
var Default Codec = GoJSON{}
