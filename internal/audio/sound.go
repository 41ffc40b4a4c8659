// Package audio plays short synthesized cues for game events over a looping
// background song. Nothing here is required for play: every failure
// degrades to silence.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-rapidroll/internal/games/rapidroll"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue is a sound effect.
type Cue int

const (
	CueJump Cue = iota
	CuePickUp
	CueHit
	CueShielded
	CueLifeLost
	CueLevelUp
	CueGameOver
)

// Player plays cues and the background song. Implementations must not
// block the caller.
type Player interface {
	Play(c Cue)
	PauseMusic(paused bool)
	Close()
}

// CueFor maps a game event to its cue.
func CueFor(e rapidroll.Event) (Cue, bool) {
	switch e.Kind {
	case rapidroll.EventJump:
		return CueJump, true
	case rapidroll.EventPickUp:
		return CuePickUp, true
	case rapidroll.EventHit:
		return CueHit, true
	case rapidroll.EventShielded:
		return CueShielded, true
	case rapidroll.EventLifeLost:
		return CueLifeLost, true
	case rapidroll.EventLevelUp:
		return CueLevelUp, true
	case rapidroll.EventGameOver:
		return CueGameOver, true
	default:
		return 0, false
	}
}

// PlayEvents plays the cue of every event that has one.
func PlayEvents(p Player, events []rapidroll.Event) {
	for _, e := range events {
		if c, ok := CueFor(e); ok {
			p.Play(c)
		}
	}
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) Play(Cue)        {}
func (Silent) PauseMusic(bool) {}
func (Silent) Close()          {}

// New returns a speaker-backed player with the background song running,
// or Silent when muted or when the audio device cannot be opened.
func New(mute bool, logger *log.Logger) Player {
	if mute {
		return Silent{}
	}
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing without sound", "err", err)
		}
		return Silent{}
	}
	sm.StartMusic()
	return sm
}

// SoundManager mixes cues onto the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play mixes the cue in. It is a no-op before Initialize.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(CueStreamer(c))
	speaker.Unlock()
}

// StartMusic loops BackgroundSong under the cues. It is a no-op before
// Initialize or while the song is already playing.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music != nil {
		return
	}
	sm.music = &beep.Ctrl{Streamer: BackgroundSong.Loop()}
	speaker.Lock()
	sm.mixer.Add(sm.music)
	speaker.Unlock()
}

// PauseMusic holds or resumes the background song. Cues are unaffected.
func (sm *SoundManager) PauseMusic(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = paused
	speaker.Unlock()
}

// Close stops all sounds.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.music = nil
	sm.initialized = false
}

// CueStreamer returns a finite streamer for the cue.
func CueStreamer(c Cue) beep.Streamer {
	switch c {
	case CueJump:
		return tone(220, 660, 120*time.Millisecond)
	case CuePickUp:
		return beep.Seq(
			tone(880, 880, 60*time.Millisecond),
			tone(1320, 1320, 90*time.Millisecond),
		)
	case CueHit:
		return beep.Take(sampleRate.N(180*time.Millisecond), NewNoiseGenerator(sampleRate, 1))
	case CueShielded:
		return tone(1200, 900, 80*time.Millisecond)
	case CueLifeLost:
		return tone(440, 110, 350*time.Millisecond)
	case CueLevelUp:
		return beep.Seq(
			tone(523, 523, 100*time.Millisecond),
			tone(659, 659, 100*time.Millisecond),
			tone(784, 784, 100*time.Millisecond),
			tone(1047, 1047, 200*time.Millisecond),
		)
	case CueGameOver:
		return beep.Seq(
			tone(392, 392, 250*time.Millisecond),
			tone(330, 330, 250*time.Millisecond),
			tone(262, 131, 600*time.Millisecond),
		)
	default:
		return beep.Silence(0)
	}
}

func tone(from, to float64, d time.Duration) beep.Streamer {
	n := sampleRate.N(d)
	return beep.Take(n, NewToneGenerator(sampleRate, from, to, n))
}
