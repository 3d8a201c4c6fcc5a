package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dronemania/internal/config"
	"github.com/vovakirdan/dronemania/internal/core"
)

// Player reacts to game events and propeller state.
type Player interface {
	HandleEvent(e core.Event)
	SetPropellers(left, right bool)
	SetMusicPaused(paused bool)
	Close()
}

// Nop is a Player that does nothing.
type Nop struct{}

func (Nop) HandleEvent(core.Event)   {}
func (Nop) SetPropellers(bool, bool) {}
func (Nop) SetMusicPaused(bool)      {}
func (Nop) Close()                   {}

// speakerLocker guards streamers the speaker goroutine is reading.
type speakerLocker struct{}

func (speakerLocker) Lock()   { speaker.Lock() }
func (speakerLocker) Unlock() { speaker.Unlock() }

// SoundManager mixes one-shot cues, the two propeller loops and the
// optional background music into a single stream played by the speaker.
type SoundManager struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	locker sync.Locker
	logger *log.Logger

	left  *beep.Ctrl
	right *beep.Ctrl
	music *beep.Ctrl

	musicEnabled bool

	initialized bool
}

// NewSoundManager creates a sound manager. Call Initialize to open the
// speaker; until then every call is a no-op.
func NewSoundManager(cfg config.Audio, logger *log.Logger) *SoundManager {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}
	return &SoundManager{
		rate:         rate,
		volume:       cfg.MasterVolume,
		mixer:        &beep.Mixer{},
		locker:       speakerLocker{},
		logger:       logger,
		musicEnabled: cfg.Music,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.start()
	return nil
}

// start creates the paused propeller and music loops. Caller holds sm.mu.
func (sm *SoundManager) start() {
	sm.left = &beep.Ctrl{Streamer: NewPropeller(sm.rate, leftPropellerHz, 0.12*sm.volume), Paused: true}
	sm.right = &beep.Ctrl{Streamer: NewPropeller(sm.rate, rightPropellerHz, 0.12*sm.volume), Paused: true}
	sm.locker.Lock()
	sm.mixer.Add(sm.left, sm.right)
	if sm.musicEnabled {
		sm.music = &beep.Ctrl{Streamer: NewMusic(sm.rate, musicVolume*sm.volume), Paused: true}
		sm.mixer.Add(sm.music)
	}
	sm.locker.Unlock()
	sm.initialized = true
}

// Play queues a one-shot cue.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := cueStreamer(c, sm.rate, sm.volume)
	if s == nil {
		return
	}
	sm.locker.Lock()
	sm.mixer.Add(s)
	sm.locker.Unlock()
}

// HandleEvent maps game events to cues.
func (sm *SoundManager) HandleEvent(e core.Event) {
	switch e {
	case core.EventGameStarted:
		sm.restartMusic()
	case core.EventGameOver:
		sm.SetPropellers(false, false)
		sm.SetMusicPaused(true)
		sm.Play(CueCrash)
	case core.EventLevelComplete:
		sm.SetPropellers(false, false)
		sm.SetMusicPaused(true)
		sm.Play(CueLevelComplete)
	case core.EventLevelUp:
		sm.Play(CueLevelComplete)
	case core.EventNewHighScore:
		sm.Play(CueNewHighScore)
	case core.EventMeasuringStarted:
		sm.Play(CueMeasuring)
	}
}

// SetPropellers starts or stops each side's buzz.
func (sm *SoundManager) SetPropellers(left, right bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.locker.Lock()
	sm.left.Paused = !left
	sm.right.Paused = !right
	sm.locker.Unlock()
}

// restartMusic rewinds the background loop and starts it.
func (sm *SoundManager) restartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return
	}
	sm.locker.Lock()
	sm.music.Streamer = NewMusic(sm.rate, musicVolume*sm.volume)
	sm.music.Paused = false
	sm.locker.Unlock()
}

// SetMusicPaused pauses or resumes the background loop where it stands.
func (sm *SoundManager) SetMusicPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return
	}
	sm.locker.Lock()
	sm.music.Paused = paused
	sm.locker.Unlock()
}

// Close silences everything and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.locker.Lock()
	sm.mixer.Clear()
	sm.locker.Unlock()
	if _, ok := sm.locker.(speakerLocker); ok {
		speaker.Close()
	}
	sm.initialized = false
}

// New returns a SoundManager with an open speaker when audio is enabled,
// and Nop otherwise or when no audio device is available.
func New(cfg config.Audio, logger *log.Logger) Player {
	if !cfg.Enabled {
		return Nop{}
	}
	sm := NewSoundManager(cfg, logger)
	if err := sm.Initialize(); err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "error", err)
		}
		return Nop{}
	}
	return sm
}

var (
	_ Player = Nop{}
	_ Player = (*SoundManager)(nil)
)
