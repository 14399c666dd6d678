package objective

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"
	"strconv"

	"github.com/maruel/natural"
	"gopkg.in/yaml.v3"
)

// Set maps opaque keys to objectives. Keys need not equal the objective's id:
// sets written by older versions used array indices.
//
// Iteration order matches how the set was enumerated when it was first
// persisted: array index keys in ascending numeric order, followed by every
// other key in insertion order.
type Set struct {
	items map[string]Objective
	keys  []string
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{items: make(map[string]Objective)}
}

// isIndexKey reports whether k is a canonical array index such as "0" or "12".
func isIndexKey(k string) bool {
	if k == "" || (len(k) > 1 && k[0] == '0') {
		return false
	}

	n, err := strconv.ParseUint(k, 10, 32)

	return err == nil && n < 1<<32-1
}

// Len returns the number of objectives in the set.
func (s *Set) Len() int {
	return len(s.keys)
}

// Keys returns the keys of the set in iteration order.
func (s *Set) Keys() []string {
	var index, named []string

	for _, k := range s.keys {
		if isIndexKey(k) {
			index = append(index, k)
		} else {
			named = append(named, k)
		}
	}

	slices.SortFunc(index, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case natural.Less(a, b):
			return -1
		default:
			return 1
		}
	})

	keys := make([]string, 0, len(s.keys))
	keys = append(keys, index...)

	return append(keys, named...)
}

// Get returns the objective stored under key.
func (s *Set) Get(key string) (Objective, bool) {
	o, ok := s.items[key]
	return o, ok
}

// Put stores o under key, replacing any objective already there.
func (s *Set) Put(key string, o Objective) {
	if _, ok := s.items[key]; !ok {
		s.keys = append(s.keys, key)
	}

	s.items[key] = o
}

// Delete removes the objective stored under key.
func (s *Set) Delete(key string) bool {
	if _, ok := s.items[key]; !ok {
		return false
	}

	delete(s.items, key)

	s.keys = slices.DeleteFunc(s.keys, func(k string) bool {
		return k == key
	})

	return true
}

// All iterates over the set in order.
func (s *Set) All() iter.Seq2[string, Objective] {
	return func(yield func(string, Objective) bool) {
		for _, k := range s.Keys() {
			if !yield(k, s.items[k]) {
				return
			}
		}
	}
}

// Objectives returns the objectives of the set in order.
func (s *Set) Objectives() []Objective {
	objectives := make([]Objective, 0, s.Len())

	for _, o := range s.All() {
		objectives = append(objectives, o)
	}

	return objectives
}

// Find looks up an objective by id with a linear scan and returns the key it
// is stored under.
func (s *Set) Find(id int) (string, Objective, bool) {
	for k, o := range s.All() {
		if o.ID == id {
			return k, o, true
		}
	}

	return "", Objective{}, false
}

// NextID returns an id greater than every id in the set.
func (s *Set) NextID() int {
	maxID := 0

	for _, o := range s.items {
		maxID = max(maxID, o.ID)
	}

	return maxID + 1
}

// freeKey returns a key for id that is not used in the set yet.
func (s *Set) freeKey(id int) string {
	for n := id; ; n++ {
		k := strconv.Itoa(n)
		if _, ok := s.items[k]; !ok {
			return k
		}
	}
}

// Clone returns a copy of the set.
func (s *Set) Clone() *Set {
	c := &Set{
		items: make(map[string]Objective, len(s.items)),
		keys:  slices.Clone(s.keys),
	}

	for k, o := range s.items {
		c.items[k] = o
	}

	return c
}

// MarshalJSON encodes the set as a JSON object in iteration order.
func (s *Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range s.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(s.items[k])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping its document order, or a
// legacy JSON array whose indices become the keys. Null entries are skipped.
func (s *Set) UnmarshalJSON(b []byte) error {
	*s = *NewSet()

	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch tok {
	case nil:
		return nil
	case json.Delim('{'):
		return s.decodeObject(dec)
	case json.Delim('['):
		return s.decodeArray(dec)
	default:
		return errInvalidSet
	}
}

func (s *Set) decodeObject(dec *json.Decoder) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return errInvalidSet
		}

		var o *Objective

		err = dec.Decode(&o)
		if err != nil {
			return err
		}

		if o != nil {
			s.Put(key, *o)
		}
	}

	_, err := dec.Token()

	return err
}

func (s *Set) decodeArray(dec *json.Decoder) error {
	for i := 0; dec.More(); i++ {
		var o *Objective

		err := dec.Decode(&o)
		if err != nil {
			return err
		}

		if o != nil {
			s.Put(strconv.Itoa(i), *o)
		}
	}

	_, err := dec.Token()

	return err
}

// MarshalYAML encodes the set as a YAML mapping in iteration order.
func (s *Set) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for k, o := range s.All() {
		val := &yaml.Node{}

		err := val.Encode(o)
		if err != nil {
			return nil, err
		}

		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: k,
		}, val)
	}

	return node, nil
}

// UnmarshalYAML decodes a YAML mapping in document order.
func (s *Set) UnmarshalYAML(value *yaml.Node) error {
	*s = *NewSet()

	if value.Kind != yaml.MappingNode {
		return errInvalidSet
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		var o Objective

		err := value.Content[i+1].Decode(&o)
		if err != nil {
			return err
		}

		s.Put(value.Content[i].Value, o)
	}

	return nil
}
