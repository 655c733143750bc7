package core

import (
	"encoding/json"
	"math"
)

// Kind is the semantic type of a schema field.
type Kind int

const (
	// KindUint8 is an unsigned 8-bit integer (0-255).
	KindUint8 Kind = iota
	// KindFloat is a floating point value.
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindUint8:
		return "uint8"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Value is the set of Go types a schema field can be bound to.
type Value interface {
	uint8 | float64
}

// Field is one row of a Schema: a stable key, its semantic type, the
// compiled default and an accessor pair bound to the live value.
//
// Range and Help are descriptive only. Range is never enforced on write.
type Field struct {
	Key   string
	Kind  Kind
	Range string
	Help  string

	def   any
	get   func() any
	set   func(raw any) bool
	reset func()
}

// Bind creates a Field whose accessors read and write *p.
func Bind[T Value](key string, p *T, def T, rng, help string) Field {
	kind := KindFloat
	if _, ok := any(def).(uint8); ok {
		kind = KindUint8
	}
	return Field{
		Key:   key,
		Kind:  kind,
		Range: rng,
		Help:  help,
		def:   def,
		get:   func() any { return *p },
		set: func(raw any) bool {
			v, ok := Decode[T](raw)
			if ok {
				*p = v
			}
			return ok
		},
		reset: func() { *p = def },
	}
}

// Default returns the compiled default of the field.
func (f Field) Default() any { return f.def }

// Value returns the current live value of the field.
func (f Field) Value() any { return f.get() }

// Set decodes raw into the field. It reports false and leaves the live value
// untouched when raw is not a valid encoding of the field's Kind.
func (f Field) Set(raw any) bool { return f.set(raw) }

// Decode converts a decoded JSON value into T.
//
// A uint8 accepts only integral numbers in 0..255. A float64 accepts any
// finite number. Everything else, including strings and booleans, is a type
// mismatch.
func Decode[T Value](raw any) (T, bool) {
	var zero T
	n, ok := number(raw)
	if !ok {
		return zero, false
	}
	if _, isByte := any(zero).(uint8); isByte {
		if n != math.Trunc(n) || n < 0 || n > math.MaxUint8 {
			return zero, false
		}
	}
	return T(n), true
}

func number(raw any) (float64, bool) {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int8:
		n = float64(v)
	case int16:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint8:
		n = float64(v)
	case uint16:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
