package jwsx

import (
	"bytes"
	"encoding/base64"
	"strings"

	"github.com/goccy/go-json"
)

// Document is an ordered JSON object holding token fields.
// Keys keep their insertion position; overwriting a key does not move it.
// The zero value is an empty document ready for use.
type Document struct {
	keys   []string
	values map[string]any
}

// Set inserts or overwrites the value stored under key.
func (d *Document) Set(key string, value any) {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Clear removes key from the document. Clearing an absent key is a no-op.
func (d *Document) Clear(key string) {
	if _, exists := d.values[key]; !exists {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Get returns the value stored under key and whether it is present.
func (d *Document) Get(key string) (any, bool) {
	value, ok := d.values[key]
	return value, ok
}

// Len returns the number of fields in the document.
func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns the field names in insertion order.
func (d *Document) Keys() []string {
	return append([]string(nil), d.keys...)
}

// MarshalJSON renders the document as a compact JSON object with fields
// in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		encodedValue, err := json.Marshal(d.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Serialize renders the document as JSON text. indent is the number of
// spaces per nesting level; values <= 0 produce the compact form.
func (d *Document) Serialize(indent int) (string, error) {
	compact, err := d.MarshalJSON()
	if err != nil {
		return "", err
	}
	if indent <= 0 {
		return string(compact), nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", strings.Repeat(" ", indent)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EncodeCompact returns the unpadded base64url encoding of the compact
// serialization. This is the form used inside JWS signing input.
func (d *Document) EncodeCompact() (string, error) {
	compact, err := d.MarshalJSON()
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(compact), nil
}
