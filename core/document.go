package core

// Document is a decoded JSON object. It is used for the host-wide
// configuration document, the live-state document and the per-module
// namespaces nested inside either of them.
type Document map[string]any

// Object returns the nested object stored under key, or nil when the key is
// absent or does not hold an object. Calling Object on a nil Document is safe.
func (d Document) Object(key string) Document {
	switch v := d[key].(type) {
	case Document:
		return v
	case map[string]any:
		return Document(v)
	}
	return nil
}

// CreateObject returns the nested object stored under key, creating an empty
// one when the key is absent or holds something other than an object.
func (d Document) CreateObject(key string) Document {
	if obj := d.Object(key); obj != nil {
		return obj
	}
	obj := Document{}
	d[key] = obj
	return obj
}

// Clone returns a deep copy of d. Nested objects and arrays are copied;
// scalar values are shared.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Document:
		return t.Clone()
	case map[string]any:
		return Document(t).Clone()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}
