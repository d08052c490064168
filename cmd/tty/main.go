package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/1siamBot/pixel-rogue/engine/audio"
	"github.com/1siamBot/pixel-rogue/engine/core"
	"github.com/1siamBot/pixel-rogue/engine/input"
	"github.com/1siamBot/pixel-rogue/engine/render"
	"github.com/1siamBot/pixel-rogue/engine/systems"
	"github.com/1siamBot/pixel-rogue/engine/ui"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	seed := flag.Int64("seed", 0, "RNG seed (0 = clock)")
	audioOn := flag.Bool("audio", true, "enable sound")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	cfg := core.LoadConfig()
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfigFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "audio":
			cfg.AudioEnabled = *audioOn
		}
	})

	// The terminal owns stdout while running
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg core.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[pixel-rogue] seed %d", seed)

	term := render.NewTerminal(screen)
	tw, th := term.Size()
	cam := render.NewCamera(tw, th, cfg.Width, cfg.Height, rand.New(rand.NewSource(seed+1)))
	in := input.NewTermInput(cam)

	world := core.NewWorld(cfg.Width, cfg.Height)
	sim := systems.NewSimulation(world, in, rand.New(rand.NewSource(seed)))
	sim.Shake = cam

	am := audio.NewAudioManager()
	if cfg.AudioEnabled {
		am.SetVolume(cfg.MasterVolume)
		if err := am.Init(); err != nil {
			log.Printf("[pixel-rogue] audio disabled: %v", err)
		} else {
			sim.Audio = am
			am.PlayMusic()
		}
	}
	defer am.Close()

	sw, sh := cfg.ScreenSize()
	raster := render.NewRaster(sw, sh)
	hud := ui.NewHUD(sw, sh)

	sim.Bus.On(core.EvtWaveAdvanced, func(e core.Event) {
		if p, ok := e.Payload.(core.WavePayload); ok {
			log.Printf("[pixel-rogue] wave %d (boss=%v, enemies=%d)", p.Wave, p.Boss, p.EnemiesToSpawn)
		}
	})
	sim.Bus.On(core.EvtGameOver, func(e core.Event) {
		log.Printf("[pixel-rogue] game over, score %v", e.Payload)
	})

	step := func() {
		sim.Step()
		in.Decay()
	}
	draw := func() {
		raster.Clear(render.ColorBackground)
		raster.SetOffset(cam.NextOffset())
		render.DrawWorld(raster, world)
		hud.Update(world, in.Pointer())
		hud.Draw(raster)
		term.Present(raster)
	}
	loop := core.NewGameLoop(cfg.TickRate, step, draw)
	loop.MaxFrameTime = cfg.MaxFrameTime

	// PollEvent blocks, so it gets its own goroutine; the loop goroutine
	// is the only one touching the simulation
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				cam.Resize(term.Size())
			}
			in.HandleEvent(ev)
		case <-ticker.C:
			loop.Update()
			sim.Bus.Dispatch()
		}
	}
}
