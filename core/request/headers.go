package request

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/dmitrymomot/gateway/core/event"
)

// Field is a single header pair.
type Field struct {
	Name  string
	Value string
}

// Headers is a case-insensitive ordered multi-map of header fields.
// Duplicate names are preserved in insertion order, matching what the
// gateway host delivered on the wire.
//
// The zero value is not usable; construct with NewHeaders or DecodeHeaders.
type Headers struct {
	fields []Field
}

// NewHeaders returns an empty header map.
func NewHeaders() *Headers {
	return &Headers{}
}

// DecodeHeaders builds a header map from raw wire pairs. Wire bytes are
// interpreted as Latin-1, so every byte sequence decodes cleanly.
func DecodeHeaders(raw []event.Header) (*Headers, error) {
	h := &Headers{fields: make([]Field, 0, len(raw))}
	dec := charmap.ISO8859_1.NewDecoder()

	for _, pair := range raw {
		name, err := dec.Bytes(pair[0])
		if err != nil {
			return nil, fmt.Errorf("request: decode header name: %w", err)
		}
		value, err := dec.Bytes(pair[1])
		if err != nil {
			return nil, fmt.Errorf("request: decode header value: %w", err)
		}
		h.fields = append(h.fields, Field{Name: string(name), Value: string(value)})
	}

	return h, nil
}

// Add appends a header field, keeping any existing fields with the same name.
func (h *Headers) Add(name, value string) {
	h.fields = append(h.fields, Field{Name: name, Value: value})
}

// Get returns the first value for the given name, or "" if absent.
// Matching is case-insensitive.
func (h *Headers) Get(name string) string {
	for _, f := range h.fields {
		if strings.EqualFold(f.Name, name) {
			return f.Value
		}
	}
	return ""
}

// Has reports whether at least one field with the given name exists.
func (h *Headers) Has(name string) bool {
	for _, f := range h.fields {
		if strings.EqualFold(f.Name, name) {
			return true
		}
	}
	return false
}

// Values returns all values for the given name in insertion order.
func (h *Headers) Values(name string) []string {
	var vals []string
	for _, f := range h.fields {
		if strings.EqualFold(f.Name, name) {
			vals = append(vals, f.Value)
		}
	}
	return vals
}

// Fields returns all header fields in insertion order. The returned slice is
// shared with the map; callers must not modify it.
func (h *Headers) Fields() []Field {
	return h.fields
}

// Len returns the number of header fields, duplicates included.
func (h *Headers) Len() int {
	return len(h.fields)
}

// Encode renders the headers as Latin-1 wire pairs. Names and values that
// contain runes outside Latin-1 cause an error.
func (h *Headers) Encode() ([]event.Header, error) {
	wire := make([]event.Header, 0, len(h.fields))
	enc := charmap.ISO8859_1.NewEncoder()

	for _, f := range h.fields {
		name, err := enc.Bytes([]byte(f.Name))
		if err != nil {
			return nil, fmt.Errorf("request: header name %q is not Latin-1: %w", f.Name, err)
		}
		value, err := enc.Bytes([]byte(f.Value))
		if err != nil {
			return nil, fmt.Errorf("request: header %q value is not Latin-1: %w", f.Name, err)
		}
		wire = append(wire, event.Header{name, value})
	}

	return wire, nil
}
