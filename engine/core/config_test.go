package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PIXEL_ROGUE_SEED", "42")
	t.Setenv("PIXEL_ROGUE_SCALE", "2")
	t.Setenv("PIXEL_ROGUE_AUDIO_ENABLED", "false")
	t.Setenv("PIXEL_ROGUE_MASTER_VOLUME", "150")
	t.Setenv("PIXEL_ROGUE_MAX_FRAME_TIME", "0.5")

	cfg := LoadConfig()
	if cfg.Seed != 42 || cfg.Scale != 2 || cfg.AudioEnabled {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("MasterVolume = %f, want clamped 1", cfg.MasterVolume)
	}
	if cfg.MaxFrameTime != 0.5 {
		t.Errorf("MaxFrameTime = %f", cfg.MaxFrameTime)
	}
}

func TestLoadConfig_MalformedIgnored(t *testing.T) {
	t.Setenv("PIXEL_ROGUE_SCALE", "big")
	t.Setenv("PIXEL_ROGUE_SEED", "")

	cfg := LoadConfig()
	def := DefaultConfig()
	if cfg.Scale != def.Scale {
		t.Errorf("Scale = %d, want default %d", cfg.Scale, def.Scale)
	}
	if w, h := cfg.ScreenSize(); w != 240 || h != 135 {
		t.Errorf("ScreenSize = %dx%d", w, h)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rogue.yaml")
	data := "seed: 7\nscale: 3\nmax_frame_time: 0.1\naudio_enabled: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PIXEL_ROGUE_SCALE", "5")

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Seed != 7 || cfg.MaxFrameTime != 0.1 || cfg.AudioEnabled {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Scale != 5 {
		t.Errorf("Scale = %d, environment should win over the file", cfg.Scale)
	}
	if cfg.Width != 240 || cfg.TickRate != 60 {
		t.Errorf("missing keys lost their defaults: %+v", cfg)
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfigFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("tick_rate: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigFile(bad); err == nil {
		t.Error("zero tick rate accepted")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("seed: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigFile(broken); err == nil {
		t.Error("malformed yaml accepted")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	c := DefaultConfig()
	c.MasterVolume = 1.5
	if c.Validate() == nil {
		t.Error("volume above 1 accepted")
	}
}
