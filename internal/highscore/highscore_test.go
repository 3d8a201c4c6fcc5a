package highscore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/dronemania/internal/storage"
)

type mapBackend struct {
	values   map[string]string
	readErr  error
	writeErr error
}

func newMapBackend() *mapBackend {
	return &mapBackend{values: make(map[string]string)}
}

func (b *mapBackend) Value(key string) (string, bool, error) {
	if b.readErr != nil {
		return "", false, b.readErr
	}
	v, ok := b.values[key]
	return v, ok, nil
}

func (b *mapBackend) SetValue(key, value string) error {
	if b.writeErr != nil {
		return b.writeErr
	}
	b.values[key] = value
	return nil
}

func TestKVStoreLoad(t *testing.T) {
	tests := []struct {
		name    string
		stored  *string
		readErr error
		want    int
	}{
		{"absent", nil, nil, 0},
		{"valid", ptr("1234"), nil, 1234},
		{"whitespace", ptr(" 77\n"), nil, 77},
		{"corrupt", ptr("abc"), nil, 0},
		{"negative", ptr("-5"), nil, 0},
		{"backend error", ptr("10"), errors.New("disk gone"), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newMapBackend()
			if tc.stored != nil {
				b.values[Key] = *tc.stored
			}
			b.readErr = tc.readErr

			if got := NewKVStore(b, nil).Load(); got != tc.want {
				t.Errorf("Load() = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestKVStoreSave(t *testing.T) {
	b := newMapBackend()
	s := NewKVStore(b, nil)

	s.Save(420)
	if b.values[Key] != "420" {
		t.Errorf("stored value = %q, expected \"420\"", b.values[Key])
	}
	if s.Load() != 420 {
		t.Errorf("Load() after Save = %d", s.Load())
	}

	// Lower scores never replace a higher stored one
	s.Save(100)
	if s.Load() != 420 {
		t.Errorf("lower Save replaced the high score: %d", s.Load())
	}

	// Write failures are swallowed
	b.writeErr = errors.New("read-only")
	s.Save(999)
	b.writeErr = nil
	if s.Load() != 420 {
		t.Errorf("failed Save should leave the old value, got %d", s.Load())
	}
}

func TestKVStoreOverSQLite(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	hs := NewKVStore(store, nil)
	if hs.Load() != 0 {
		t.Errorf("fresh database should load 0, got %d", hs.Load())
	}

	hs.Save(315)
	if got := NewKVStore(store, nil).Load(); got != 315 {
		t.Errorf("Load() = %d, expected 315", got)
	}

	hs.Save(120)
	if got := hs.Load(); got != 315 {
		t.Errorf("Load() after lower Save = %d, expected 315", got)
	}
}

func TestKVStoreSharedAcrossSessions(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	first := NewKVStore(store, nil)
	second := NewKVStore(store, nil)
	first.Load()
	second.Load()

	first.Save(200)
	second.Save(120)

	if got := NewKVStore(store, nil).Load(); got != 200 {
		t.Errorf("Load() = %d, expected the maximum 200", got)
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory(10)
	if m.Load() != 10 {
		t.Errorf("Load() = %d, expected 10", m.Load())
	}
	m.Save(25)
	if m.Load() != 25 {
		t.Errorf("Load() = %d, expected 25", m.Load())
	}
	m.Save(5)
	if m.Load() != 25 {
		t.Errorf("Load() after lower Save = %d, expected 25", m.Load())
	}
}

func ptr(s string) *string { return &s }
