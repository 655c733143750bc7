package core

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testParams struct {
	level uint8
	gain  float64
}

func newTestSchema(p *testParams) *Schema {
	return MustSchema(
		Bind("level", &p.level, 128, "0-255", "Level (0-255)"),
		Bind("gain", &p.gain, 0.5, ".2-.8", "Gain .2-.8"),
	)
}

func TestDecode_Uint8(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want uint8
		ok   bool
	}{
		{name: "json float integral", raw: float64(200), want: 200, ok: true},
		{name: "zero", raw: float64(0), want: 0, ok: true},
		{name: "upper bound", raw: float64(255), want: 255, ok: true},
		{name: "int", raw: 10, want: 10, ok: true},
		{name: "uint8", raw: uint8(7), want: 7, ok: true},
		{name: "json number", raw: json.Number("42"), want: 42, ok: true},
		{name: "above range", raw: float64(256), ok: false},
		{name: "negative", raw: -1, ok: false},
		{name: "fractional", raw: 12.5, ok: false},
		{name: "string", raw: "12", ok: false},
		{name: "bool", raw: true, ok: false},
		{name: "nil", raw: nil, ok: false},
		{name: "object", raw: map[string]any{}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Decode[uint8](tt.raw)
			if ok != tt.ok {
				t.Fatalf("Decode[uint8](%v) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Decode[uint8](%v) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDecode_Float(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want float64
		ok   bool
	}{
		{name: "float", raw: 0.25, want: 0.25, ok: true},
		{name: "integer", raw: 3, want: 3, ok: true},
		{name: "out of declared range", raw: 5.0, want: 5.0, ok: true},
		{name: "negative", raw: -1.5, want: -1.5, ok: true},
		{name: "json number", raw: json.Number("1.8"), want: 1.8, ok: true},
		{name: "bad json number", raw: json.Number("x"), ok: false},
		{name: "string", raw: "0.5", ok: false},
		{name: "nil", raw: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Decode[float64](tt.raw)
			if ok != tt.ok {
				t.Fatalf("Decode[float64](%v) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Decode[float64](%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBind_Kind(t *testing.T) {
	var p testParams
	s := newTestSchema(&p)

	level, ok := s.Lookup("level")
	require.True(t, ok)
	assert.Equal(t, KindUint8, level.Kind)
	assert.Equal(t, uint8(128), level.Default())

	gain, ok := s.Lookup("gain")
	require.True(t, ok)
	assert.Equal(t, KindFloat, gain.Kind)
	assert.Equal(t, "float", gain.Kind.String())
}

func TestNewSchema_Errors(t *testing.T) {
	var a, b uint8

	_, err := NewSchema(Bind("x", &a, 0, "", ""), Bind("x", &b, 0, "", ""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateKey))

	_, err = NewSchema(Bind("", &a, 0, "", ""))
	assert.ErrorIs(t, err, ErrEmptyKey)

	assert.Panics(t, func() { MustSchema(Bind("", &a, 0, "", "")) })
}

func TestSchema_Load(t *testing.T) {
	p := testParams{level: 128, gain: 0.5}
	s := newTestSchema(&p)

	assert.False(t, s.Load(nil), "nil document is incomplete")
	assert.Equal(t, testParams{level: 128, gain: 0.5}, p)

	complete := s.Load(Document{"level": float64(9), "gain": "bad"})
	assert.False(t, complete)
	assert.Equal(t, uint8(9), p.level, "later miss must not prevent earlier fields")
	assert.Equal(t, 0.5, p.gain, "mistyped value keeps current")

	complete = s.Load(Document{"gain": 0.9, "level": "bad"})
	assert.False(t, complete)
	assert.Equal(t, 0.9, p.gain, "fields after a miss are still read")

	complete = s.Load(Document{"level": float64(1), "gain": 1.7, "extra": true})
	assert.True(t, complete)
	assert.Equal(t, testParams{level: 1, gain: 1.7}, p)
}

func TestSchema_SavePatchReset(t *testing.T) {
	p := testParams{level: 128, gain: 0.5}
	s := newTestSchema(&p)

	dst := Document{"keep": "me"}
	s.Save(dst)
	want := Document{"keep": "me", "level": uint8(128), "gain": 0.5}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("Save() mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, s.Patch(Document{}))
	assert.Equal(t, testParams{level: 128, gain: 0.5}, p)

	applied := s.Patch(Document{"gain": 1.2, "level": "nope"})
	assert.Equal(t, []string{"gain"}, applied)
	assert.Equal(t, testParams{level: 128, gain: 1.2}, p)

	s.Reset()
	assert.Equal(t, testParams{level: 128, gain: 0.5}, p)
}

func TestSchema_DescribeAndHelp(t *testing.T) {
	var p testParams
	s := newTestSchema(&p)

	help, ok := s.Describe("gain")
	assert.True(t, ok)
	assert.Equal(t, "Gain .2-.8", help)

	_, ok = s.Describe("missing")
	assert.False(t, ok)

	assert.Equal(t, []HelpEntry{
		{Key: "ns:level", Help: "Level (0-255)"},
		{Key: "ns:gain", Help: "Gain .2-.8"},
	}, s.Help("ns"))
	assert.Equal(t, 2, s.Len())
}

func TestSchema_FixedOrder(t *testing.T) {
	var p testParams
	s := newTestSchema(&p)

	keys := make([]string, 0, s.Len())
	for _, f := range s.Fields() {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"level", "gain"}, keys)

	// Applied keys follow the schema, not the order the patch was written in
	var src Document
	require.NoError(t, json.Unmarshal([]byte(`{"gain": 0.3, "level": 9}`), &src))
	assert.Equal(t, []string{"level", "gain"}, s.Patch(src))

	help := s.Help("ns")
	require.Len(t, help, 2)
	assert.Equal(t, "ns:level", help[0].Key)
	assert.Equal(t, "ns:gain", help[1].Key)
}
