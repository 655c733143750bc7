package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/arpalette/core"
)

// testStore runs the behavior every backend shares.
func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.Clear(ctx))

	_, err := s.Get(ctx, "cfg")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.Get(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.ErrorIs(t, s.Set(ctx, "", core.Document{}), ErrInvalidKey)

	doc := core.Document{
		"um": map[string]any{
			"AR Palette": map[string]any{"bass_threshold": 200.0, "smoothingFactor": 0.25},
		},
	}
	require.NoError(t, s.Set(ctx, "cfg", doc))

	got, err := s.Get(ctx, "cfg")
	require.NoError(t, err)
	if diff := cmp.Diff(normalize(t, doc), normalize(t, got)); diff != "" {
		t.Errorf("Get() after Set() mismatch (-want +got):\n%s", diff)
	}

	// Mutating the returned copy must not change the stored document.
	got.CreateObject("um")["other"] = true
	again, err := s.Get(ctx, "cfg")
	require.NoError(t, err)
	assert.Nil(t, again.Object("um")["other"])

	require.NoError(t, s.Set(ctx, "cfg", core.Document{"v": 2.0}))
	got, err = s.Get(ctx, "cfg")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got["v"])

	require.NoError(t, s.Set(ctx, "state", nil))
	got, err = s.Get(ctx, "state")
	require.NoError(t, err)
	require.NotNil(t, got, "a nil document reads back as an empty object")
	assert.Empty(t, got)
	got["writable"] = true

	require.NoError(t, s.Delete(ctx, "cfg"))
	_, err = s.Get(ctx, "cfg")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.Delete(ctx, "cfg"), "deleting a missing key is not an error")

	require.NoError(t, s.Clear(ctx))
	_, err = s.Get(ctx, "state")
	assert.ErrorIs(t, err, ErrNotFound)
}

// normalize maps documents onto plain JSON-shaped values so backends that
// keep Go types and backends that decode from JSON compare equal.
func normalize(t *testing.T, doc core.Document) any {
	t.Helper()
	var walk func(v any) any
	walk = func(v any) any {
		switch x := v.(type) {
		case core.Document:
			out := map[string]any{}
			for k, e := range x {
				out[k] = walk(e)
			}
			return out
		case map[string]any:
			return walk(core.Document(x))
		default:
			return v
		}
	}
	return walk(doc)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := NewFileStore(dir)
	testStore(t, s)

	assert.Equal(t, filepath.Join(dir, "cfg.json"), s.Path("cfg"))

	for _, key := range []string{"../escape", `a\b`, "..", "."} {
		_, err := s.Get(context.Background(), key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "arpalette.db"))
	require.NoError(t, err)
	defer s.Close()

	testStore(t, s)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{name: "default", config: DefaultConfig()},
		{name: "memory", config: Config{Backend: BackendMemory}},
		{name: "file without dir", config: Config{Backend: BackendFile}, wantErr: ErrMissingSetting},
		{name: "redis", config: Config{Backend: BackendRedis, Redis: RedisConfig{Addr: "localhost:6379"}}},
		{name: "redis without addr", config: Config{Backend: BackendRedis}, wantErr: ErrMissingSetting},
		{name: "sqlite", config: Config{Backend: BackendSQLite, Path: "x.db"}},
		{name: "sqlite without path", config: Config{Backend: BackendSQLite}, wantErr: ErrMissingSetting},
		{name: "unknown", config: Config{Backend: "etcd"}, wantErr: ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantErr == ErrMissingSetting {
					assert.NotErrorIs(t, err, ErrUnknownBackend)
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	s, closeFn, err := New(ctx, Config{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	assert.NoError(t, closeFn())

	s, closeFn, err = New(ctx, Config{Backend: BackendFile, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)
	assert.NoError(t, closeFn())

	s, closeFn, err = New(ctx, Config{Backend: BackendSQLite, Path: filepath.Join(t.TempDir(), "d.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	assert.NoError(t, closeFn())

	_, closeFn, err = New(ctx, Config{Backend: "nope"})
	assert.ErrorIs(t, err, ErrUnknownBackend)
	assert.NotNil(t, closeFn)
}
