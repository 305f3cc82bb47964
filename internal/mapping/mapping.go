package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Mapping is a phrase-to-translation table that keeps insertion order, so
// the emitted JSON object follows extraction order instead of map order.
type Mapping struct {
	keys    []string
	entries map[string]string
}

func New() *Mapping {
	return &Mapping{entries: make(map[string]string)}
}

// Set adds or updates a phrase. An updated phrase keeps its original
// position.
func (m *Mapping) Set(phrase, translation string) {
	if _, ok := m.entries[phrase]; !ok {
		m.keys = append(m.keys, phrase)
	}
	m.entries[phrase] = translation
}

func (m *Mapping) Get(phrase string) (string, bool) {
	v, ok := m.entries[phrase]
	return v, ok
}

func (m *Mapping) Len() int { return len(m.keys) }

// Keys returns the phrases in insertion order.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// MarshalJSON emits a JSON object whose members follow insertion order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", k, err)
		}
		vb, err := json.Marshal(m.entries[k])
		if err != nil {
			return nil, fmt.Errorf("marshal value for %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteFile writes the mapping as indented JSON.
func (m *Mapping) WriteFile(path string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal mapping: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("indent mapping: %w", err)
	}
	buf.WriteByte('\n')
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write mapping: %w", err)
	}
	return nil
}
