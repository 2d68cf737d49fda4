// internal/match/mapping.go
//
// WordMapping is the ordered source → target mapping shared by the round
// definition (every value set) and the learner's answer (values unset until
// a pairing is committed).
//
// Order matters: row i of the matching surface shows SourceAt(i) in the left
// band and TargetAt(i) in the right band, so the mapping keeps its keys in
// insertion order and encodes to JSON the same way.

package match

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// WordMapping maps unique source words to a target word or to "unset".
// The zero value is an empty mapping.
type WordMapping struct {
	keys   []string
	values map[string]string // missing key => unset
	index  map[string]int
}

// Pair is one source/target entry used to build a mapping.
type Pair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// NewWordMapping builds a fully populated mapping from pairs in order.
func NewWordMapping(pairs ...Pair) (WordMapping, error) {
	var m WordMapping
	for _, p := range pairs {
		if err := m.add(p.Source); err != nil {
			return WordMapping{}, err
		}
		m.values[p.Source] = p.Target
	}
	return m, nil
}

// UnsetMapping builds a mapping with the given keys, all unset.
func UnsetMapping(keys ...string) (WordMapping, error) {
	var m WordMapping
	for _, k := range keys {
		if err := m.add(k); err != nil {
			return WordMapping{}, err
		}
	}
	return m, nil
}

func (m *WordMapping) add(key string) error {
	if m.values == nil {
		m.values = make(map[string]string)
		m.index = make(map[string]int)
	}
	if _, dup := m.index[key]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateWord, key)
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	return nil
}

// Len returns the number of source words.
func (m WordMapping) Len() int { return len(m.keys) }

// Keys returns the source words in order.
func (m WordMapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Has reports whether src is one of the mapping's source words.
func (m WordMapping) Has(src string) bool {
	_, ok := m.index[src]
	return ok
}

// Get returns the target for src and whether it is set.
func (m WordMapping) Get(src string) (string, bool) {
	v, ok := m.values[src]
	return v, ok
}

// Set assigns src → tgt. src must already be a key.
func (m WordMapping) Set(src, tgt string) error {
	if !m.Has(src) {
		return fmt.Errorf("%w: %q", ErrUnknownWord, src)
	}
	m.values[src] = tgt
	return nil
}

// SourceAt returns the source word in row i.
func (m WordMapping) SourceAt(i int) (string, error) {
	if i < 0 || i >= len(m.keys) {
		return "", fmt.Errorf("%w: %d of %d", ErrWordIndexOutOfBound, i, len(m.keys))
	}
	return m.keys[i], nil
}

// TargetAt returns the target word in row i; ok is false when it is unset.
func (m WordMapping) TargetAt(i int) (tgt string, ok bool, err error) {
	src, err := m.SourceAt(i)
	if err != nil {
		return "", false, err
	}
	tgt, ok = m.values[src]
	return tgt, ok, nil
}

// HasTarget reports whether tgt is the value of any entry.
func (m WordMapping) HasTarget(tgt string) bool {
	for _, v := range m.values {
		if v == tgt {
			return true
		}
	}
	return false
}

// Complete reports whether every key has a value.
func (m WordMapping) Complete() bool { return len(m.values) == len(m.keys) }

// Clone returns an independent copy.
func (m WordMapping) Clone() WordMapping {
	var c WordMapping
	for _, k := range m.keys {
		_ = c.add(k)
		if v, ok := m.values[k]; ok {
			c.values[k] = v
		}
	}
	return c
}

// Unset returns a mapping with the same keys and no values.
func (m WordMapping) Unset() WordMapping {
	u, _ := UnsetMapping(m.keys...)
	return u
}

// Equal reports same keys in the same order with the same values.
func (m WordMapping) Equal(o WordMapping) bool {
	if len(m.keys) != len(o.keys) {
		return false
	}
	for i, k := range m.keys {
		if o.keys[i] != k {
			return false
		}
		a, aok := m.values[k]
		b, bok := o.values[k]
		if aok != bok || a != b {
			return false
		}
	}
	return true
}

// MarshalJSON writes an ordered object; unset values are null.
func (m WordMapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		if v, ok := m.values[k]; ok {
			vb, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			buf.Write(vb)
		} else {
			buf.WriteString("null")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keeping key order. Values must be strings or null.
func (m *WordMapping) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("word mapping: expected object, got %v", tok)
	}
	var out WordMapping
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := kt.(string)
		var val *string
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("word mapping: value for %q: %w", key, err)
		}
		if err := out.add(key); err != nil {
			return err
		}
		if val != nil {
			out.values[key] = *val
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}
