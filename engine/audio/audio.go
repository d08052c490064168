package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	DefaultSampleRate = beep.SampleRate(44100)

	droneFreq   = 55.0
	droneLength = 8 * time.Second
	droneAttack = 2 * time.Second
	droneGain   = 0.05
	sfxGain     = 0.1
	toneAttack  = 2 * time.Millisecond
)

// AudioManager synthesizes tones and the background drone.
// Until Init succeeds every call is a no-op.
type AudioManager struct {
	MasterVolume float64
	MusicVolume  float64
	SFXVolume    float64
	MusicPlaying bool

	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

func NewAudioManager() *AudioManager {
	return &AudioManager{
		MasterVolume: 1.0,
		MusicVolume:  0.2,
		SFXVolume:    1.0,
		rate:         DefaultSampleRate,
		mixer:        &beep.Mixer{},
	}
}

// Init opens the speaker and starts streaming the mixer
func (am *AudioManager) Init() error {
	am.mu.Lock()
	defer am.mu.Unlock()

	if am.initialized {
		return nil
	}
	if err := speaker.Init(am.rate, am.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(am.mixer)
	am.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (am *AudioManager) Initialized() bool {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.initialized
}

// PlayTone plays a single decaying tone. Fire-and-forget.
func (am *AudioManager) PlayTone(freq float64, length time.Duration, wave WaveType) {
	am.mu.Lock()
	defer am.mu.Unlock()

	if !am.initialized || length <= 0 {
		return
	}
	s := Tone(freq, length, wave, am.rate)
	s = newVolume(s, sfxGain*am.SFXVolume*am.MasterVolume)

	speaker.Lock()
	am.mixer.Add(s)
	speaker.Unlock()
}

// Tone builds an oscillator whose envelope decays over its whole length
func Tone(freq float64, length time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, length, wave, rate)
	return NewEnvelope(osc, length, toneAttack, length-toneAttack, rate)
}

// PlayMusic starts the looping sawtooth drone
func (am *AudioManager) PlayMusic() {
	am.mu.Lock()
	defer am.mu.Unlock()

	if !am.initialized || am.MusicPlaying {
		return
	}
	rate := am.rate
	drone := beep.Iterate(func() beep.Streamer {
		osc := NewOscillator(droneFreq, droneLength, WaveSaw, rate)
		return NewEnvelope(osc, droneLength, droneAttack, 0, rate)
	})
	am.music = &beep.Ctrl{Streamer: newVolume(drone, droneGain*am.MusicVolume*am.MasterVolume)}

	speaker.Lock()
	am.mixer.Add(am.music)
	speaker.Unlock()
	am.MusicPlaying = true
}

// StopMusic stops background music
func (am *AudioManager) StopMusic() {
	am.mu.Lock()
	defer am.mu.Unlock()

	if am.music == nil {
		am.MusicPlaying = false
		return
	}
	speaker.Lock()
	am.music.Paused = true
	am.music.Streamer = nil
	speaker.Unlock()
	am.music = nil
	am.MusicPlaying = false
}

// Close silences everything and releases the speaker
func (am *AudioManager) Close() {
	am.StopMusic()

	am.mu.Lock()
	defer am.mu.Unlock()
	if !am.initialized {
		return
	}
	speaker.Lock()
	am.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	am.initialized = false
}

// SetVolume sets master volume (0-1)
func (am *AudioManager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	am.mu.Lock()
	am.MasterVolume = v
	am.mu.Unlock()
}
