// Package codec encodes and decodes JSON feature files.
//
// The dataset loader streams through a Codec, so the JSON library can be
// chosen per call. GoJSON is the default; JSON uses encoding/json.
package codec

import (
	"fmt"
	"io"
)

// Codec reads and writes values as JSON.
// Implementations must be safe for concurrent use.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	// Decode reads one JSON value from r into v.
	Decode(r io.Reader, v any) error
	// Encode writes v to w as a single JSON value.
	Encode(w io.Writer, v any) error
}

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}

// Names lists the codecs ByName accepts.
func Names() []string {
	return []string{JSON{}.Name(), GoJSON{}.Name()}
}

// ByName maps a flag value such as "json" or "go-json" to a codec.
func ByName(name string) (Codec, bool) {
	switch name {
	case JSON{}.Name():
		return JSON{}, true
	case GoJSON{}.Name():
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal marshals v with c, or Default if c is nil, and panics on error.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s: marshal: %w", c.Name(), err))
	}
	return b
}
