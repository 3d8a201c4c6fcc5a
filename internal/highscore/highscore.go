// Package highscore persists the single best score under a fixed key.
// Reads never fail from the caller's point of view: a missing or corrupt
// value is a high score of zero. Writes are best effort.
package highscore

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Key is the storage key for the persisted high score.
const Key = "dronemania-highscore"

// Store reads and writes the persisted high score.
type Store interface {
	Load() int
	Save(score int)
}

// Backend is a string key/value store, such as *storage.Store.
type Backend interface {
	Value(key string) (string, bool, error)
	SetValue(key, value string) error
}

// MaxBackend is a Backend that can raise an integer value atomically.
type MaxBackend interface {
	Backend
	RaiseValue(key string, value int) error
}

// Memory keeps the high score in process memory.
type Memory struct {
	mu    sync.Mutex
	score int
}

// NewMemory returns a Memory store seeded with score.
func NewMemory(score int) *Memory {
	return &Memory{score: score}
}

// Load returns the stored score.
func (m *Memory) Load() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

// Save records score if it is higher than the stored one.
func (m *Memory) Save(score int) {
	m.mu.Lock()
	m.score = max(m.score, score)
	m.mu.Unlock()
}

// KVStore stores the high score as a decimal string in a Backend.
type KVStore struct {
	backend Backend
	key     string
	logger  *log.Logger
}

// NewKVStore wraps backend. A nil logger disables failure logging.
func NewKVStore(backend Backend, logger *log.Logger) *KVStore {
	return &KVStore{backend: backend, key: Key, logger: logger}
}

// Load returns the persisted score, or 0 when the value is absent,
// unparsable, negative or the backend fails.
func (s *KVStore) Load() int {
	raw, ok, err := s.backend.Value(s.key)
	if err != nil {
		s.debug("high score read failed", "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || score < 0 {
		s.debug("ignoring corrupt high score", "value", raw)
		return 0
	}
	return score
}

// Save writes score unless a higher score is already stored. Failures are
// logged and otherwise ignored.
func (s *KVStore) Save(score int) {
	if mb, ok := s.backend.(MaxBackend); ok {
		if err := mb.RaiseValue(s.key, score); err != nil {
			s.debug("high score write failed", "score", score, "error", err)
		}
		return
	}
	if score <= s.Load() {
		return
	}
	if err := s.backend.SetValue(s.key, strconv.Itoa(score)); err != nil {
		s.debug("high score write failed", "score", score, "error", err)
	}
}

func (s *KVStore) debug(msg string, keyvals ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, keyvals...)
	}
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*KVStore)(nil)
)
