package audio

import (
	"testing"
	"time"
)

func TestAudioManager_UninitializedIsSilent(t *testing.T) {
	am := NewAudioManager()
	if am.Initialized() {
		t.Fatal("manager starts initialized")
	}

	am.PlayTone(440, 100*time.Millisecond, WaveSquare)
	am.PlayMusic()
	if am.MusicPlaying {
		t.Error("music started without a speaker")
	}
	am.StopMusic()
	am.Close()
}

func TestAudioManager_SetVolumeClamps(t *testing.T) {
	am := NewAudioManager()
	am.SetVolume(2)
	if am.MasterVolume != 1 {
		t.Errorf("MasterVolume = %f", am.MasterVolume)
	}
	am.SetVolume(-1)
	if am.MasterVolume != 0 {
		t.Errorf("MasterVolume = %f", am.MasterVolume)
	}
}
