package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/1siamBot/pixel-rogue/engine/audio"
	"github.com/1siamBot/pixel-rogue/engine/core"
	"github.com/1siamBot/pixel-rogue/engine/input"
	"github.com/1siamBot/pixel-rogue/engine/render"
	"github.com/1siamBot/pixel-rogue/engine/systems"
	"github.com/1siamBot/pixel-rogue/engine/ui"
)

// Game implements ebiten.Game interface
type Game struct {
	cfg      core.Config
	world    *core.World
	sim      *systems.Simulation
	gameLoop *core.GameLoop
	input    *input.InputState
	camera   *render.Camera
	canvas   *render.ScreenCanvas
	hud      *ui.HUD
	audio    *audio.AudioManager

	// Frame state prepared by the loop's render pass
	shakeX, shakeY float64
	showDebug      bool
}

func NewGame(cfg core.Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	sw, sh := cfg.ScreenSize()

	g := &Game{
		cfg:    cfg,
		world:  core.NewWorld(cfg.Width, cfg.Height),
		input:  input.NewInputState(),
		camera: render.NewCamera(sw, sh, cfg.Width, cfg.Height, rand.New(rand.NewSource(seed+1))),
		canvas: render.NewScreenCanvas(),
		hud:    ui.NewHUD(sw, sh),
		audio:  audio.NewAudioManager(),
	}

	g.sim = systems.NewSimulation(g.world, g.input, rng)
	g.sim.Shake = g.camera
	g.sim.Audio = g.audio

	g.gameLoop = core.NewGameLoop(cfg.TickRate, g.sim.Step, g.renderPass)
	g.gameLoop.MaxFrameTime = cfg.MaxFrameTime

	if cfg.AudioEnabled {
		g.audio.SetVolume(cfg.MasterVolume)
		if err := g.audio.Init(); err != nil {
			log.Printf("[pixel-rogue] audio disabled: %v", err)
		} else {
			g.audio.PlayMusic()
		}
	}

	subscribeLog(g.sim.Bus)
	log.Printf("[pixel-rogue] seed %d", seed)
	return g
}

// subscribeLog prints session milestones
func subscribeLog(bus *core.EventBus) {
	bus.On(core.EvtWaveAdvanced, func(e core.Event) {
		if p, ok := e.Payload.(core.WavePayload); ok {
			log.Printf("[pixel-rogue] wave %d (boss=%v, enemies=%d)", p.Wave, p.Boss, p.EnemiesToSpawn)
		}
	})
	bus.On(core.EvtBossKilled, func(e core.Event) {
		log.Printf("[pixel-rogue] boss down at tick %d", e.Tick)
	})
	bus.On(core.EvtGameOver, func(e core.Event) {
		log.Printf("[pixel-rogue] game over, score %v", e.Payload)
	})
	bus.On(core.EvtGameReset, func(e core.Event) {
		log.Printf("[pixel-rogue] new session")
	})
}

func (g *Game) Update() error {
	g.input.Update()

	if g.input.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}

	g.gameLoop.Update()
	g.sim.Bus.Dispatch()
	return nil
}

// renderPass runs once per frame after the fixed steps
func (g *Game) renderPass() {
	g.shakeX, g.shakeY = g.camera.NextOffset()
	g.hud.Update(g.world, g.input.Pointer())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target = screen
	g.canvas.Clear(render.ColorBackground)

	g.canvas.SetOffset(g.shakeX, g.shakeY)
	render.DrawWorld(g.canvas, g.world)
	g.hud.Draw(g.canvas)

	if g.showDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  T %d  E %d",
			ebiten.ActualFPS(), g.world.TickCount, g.world.EntityCount()), 120, 122)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenSize()
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	seed := flag.Int64("seed", 0, "RNG seed (0 = clock)")
	scale := flag.Int("scale", 4, "window scale")
	audioOn := flag.Bool("audio", true, "enable sound")
	flag.Parse()

	cfg := core.LoadConfig()
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfigFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	// Explicit flags win over file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "scale":
			cfg.Scale = *scale
		case "audio":
			cfg.AudioEnabled = *audioOn
		}
	})

	sw, sh := cfg.ScreenSize()
	ebiten.SetWindowSize(sw*cfg.Scale, sh*cfg.Scale)
	ebiten.SetWindowTitle("Pixel Rogue")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	// The fixed step is owned by core.GameLoop
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	game := NewGame(cfg)
	defer game.audio.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
