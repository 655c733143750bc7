package core

import "fmt"

// HelpEntry is one line of the operator-facing settings description.
type HelpEntry struct {
	Key  string `json:"key"`
	Help string `json:"help"`
}

// Schema is an ordered, keyed table of fields. Every walk over a Schema
// visits the fields in the order they were given to NewSchema.
type Schema struct {
	fields []Field
	index  map[string]int
}

// NewSchema builds a Schema from fields. Keys must be non-empty and unique.
func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Key == "" {
			return nil, ErrEmptyKey
		}
		if _, exists := s.index[f.Key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, f.Key)
		}
		s.index[f.Key] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error. It is meant for schemas
// compiled into the program.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Fields returns the fields in schema order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Lookup returns the field stored under key.
func (s *Schema) Lookup(key string) (Field, bool) {
	i, ok := s.index[key]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Reset sets every field back to its compiled default.
func (s *Schema) Reset() {
	for _, f := range s.fields {
		f.reset()
	}
}

// Load reads every field from src. A missing or mistyped key keeps the
// field's current value. Load reports whether every field was satisfied;
// all fields are visited even after the first miss.
func (s *Schema) Load(src Document) bool {
	complete := true
	for _, f := range s.fields {
		raw, ok := src[f.Key]
		if !ok || !f.set(raw) {
			complete = false
		}
	}
	return complete
}

// Save writes every field's current value into dst.
func (s *Schema) Save(dst Document) {
	for _, f := range s.fields {
		dst[f.Key] = f.get()
	}
}

// Patch merges the keys present in src. Absent keys are left alone, so an
// empty src changes nothing. It returns the keys that were applied.
func (s *Schema) Patch(src Document) []string {
	var applied []string
	for _, f := range s.fields {
		raw, ok := src[f.Key]
		if !ok {
			continue
		}
		if f.set(raw) {
			applied = append(applied, f.Key)
		}
	}
	return applied
}

// Describe returns the help text of the field stored under key.
func (s *Schema) Describe(key string) (string, bool) {
	f, ok := s.Lookup(key)
	if !ok {
		return "", false
	}
	return f.Help, true
}

// Help returns one HelpEntry per field, keys prefixed with "<namespace>:".
func (s *Schema) Help(namespace string) []HelpEntry {
	out := make([]HelpEntry, 0, len(s.fields))
	for _, f := range s.fields {
		out = append(out, HelpEntry{Key: namespace + ":" + f.Key, Help: f.Help})
	}
	return out
}
