package codec

import (
	"encoding/json"
	"io"

	gojson "github.com/goccy/go-json"
)

// JSON uses encoding/json.
type JSON struct{}

func (JSON) Name() string                       { return "json" }
func (JSON) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (JSON) Decode(r io.Reader, v any) error    { return json.NewDecoder(r).Decode(v) }
func (JSON) Encode(w io.Writer, v any) error    { return json.NewEncoder(w).Encode(v) }

// GoJSON uses github.com/goccy/go-json, which decodes large float arrays
// considerably faster than encoding/json.
type GoJSON struct{}

func (GoJSON) Name() string                       { return "go-json" }
func (GoJSON) Marshal(v any) ([]byte, error)      { return gojson.Marshal(v) }
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }
func (GoJSON) Decode(r io.Reader, v any) error    { return gojson.NewDecoder(r).Decode(v) }
func (GoJSON) Encode(w io.Writer, v any) error    { return gojson.NewEncoder(w).Encode(v) }
