package resolver

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// Payload is a retrieved blob. Raw always holds the exact response bytes.
// When those bytes are UTF-8 JSON, Structured is set and Value holds the
// decoded document (numbers as json.Number).
type Payload struct {
	Raw        []byte
	Value      any
	Structured bool
}

// Decode makes a best-effort attempt to read data as JSON text. Anything that
// is not valid UTF-8 or not valid JSON is returned as raw bytes only.
func Decode(data []byte) Payload {
	p := Payload{Raw: data}
	if !utf8.Valid(data) || !json.Valid(data) {
		return p
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return p
	}
	p.Value = v
	p.Structured = true
	return p
}

// Text returns the payload as a string when it is valid UTF-8.
func (p Payload) Text() (string, bool) {
	if !utf8.Valid(p.Raw) {
		return "", false
	}
	return string(p.Raw), true
}
