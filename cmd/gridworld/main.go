package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/gridworld/config"
	"github.com/lixenwraith/gridworld/engine"
	"github.com/lixenwraith/gridworld/input"
	"github.com/lixenwraith/gridworld/parameter"
	"github.com/lixenwraith/gridworld/render"
	"github.com/lixenwraith/gridworld/system"
)

var (
	configFlag = flag.String("config", "", "path to TOML config (empty = defaults)")
	seedFlag   = flag.Uint64("seed", 0, "session seed (0 = config seed, or wall clock)")
	logFlag    = flag.String("log", "gridworld.log", "log file path")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridworld: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.Logging, *logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridworld: logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	seed := *seedFlag
	if seed == 0 {
		seed = cfg.World.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridworld: screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "gridworld: screen init: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	// Terminal must be restored even if a tick panics
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "gridworld crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	world := engine.NewWorld(cfg, seed)
	world.AddSystem(system.NewCameraSystem(world))
	world.AddSystem(system.NewEvolutionSystem(world))
	world.AddSystem(system.NewMovementSystem(world))
	world.AddSystem(system.NewBuilderSystem(world))
	world.AddSystem(system.NewParticleSystem(world))

	buf := input.NewBuffer()
	loop := engine.NewLoop(world, buf, logger)

	logger.Info("session starting",
		zap.Uint64("seed", seed),
		zap.Float64("world_bound", cfg.World.Bound),
		zap.Int("roster", len(world.Programs)))

	go pollEvents(screen, buf)

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	last := time.Now()
	for now := range ticker.C {
		dt := now.Sub(last).Seconds()
		last = now

		if !loop.Tick(dt) {
			return
		}
		driveFourthAxis(world)
		draw(screen, world)
	}
}

// driveFourthAxis animates W with a slow per-entity sinusoid so the
// depth fold is visible when a non-zero 4D weight is configured
func driveFourthAxis(world *engine.World) {
	if world.Config.World.FourDWeight == 0 {
		return
	}
	for _, p := range world.Programs {
		p.W = 5.0 * math.Sin(world.Time.Elapsed*0.25+float64(p.ID))
	}
}

// pollEvents runs on its own goroutine, translating device events into
// buffered intents. Exits when the screen is finalized
func pollEvents(screen tcell.Screen, buf *input.Buffer) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}
		if in, ok := input.MapEvent(ev); ok {
			buf.Push(in)
		}
	}
}

// draw rasterizes the depth-sorted draw list and the HUD line
func draw(screen tcell.Screen, world *engine.World) {
	width, height := screen.Size()
	if width < 2 || height < 2 {
		return
	}
	screen.Clear()

	// Bottom row is the HUD; the scene renders above it
	for _, item := range render.BuildFrame(world, width, height-1) {
		c := item.Color.Scale(item.Weight)
		style := tcell.StyleDefault.Foreground(
			tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		screen.SetContent(item.X, item.Y, item.Glyph, nil, style)
	}

	drawHUD(screen, world, width, height-1)
	screen.Show()
}

func drawHUD(screen tcell.Screen, world *engine.World, width, row int) {
	s := world.Stats()
	text := fmt.Sprintf(" %s | tick %d | field %.2f | stage %s | pos %.0f,%.0f,%.0f | structures %d | particles %d ",
		s.CameraMode, s.Tick, s.FieldStrength, s.PrimaryStage,
		s.PrimaryPos.X, s.PrimaryPos.Y, s.PrimaryPos.Z,
		s.Structures, s.Particles)

	style := tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(tcell.NewRGBColor(80, 200, 255))
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(text) {
			ch = rune(text[x])
		}
		screen.SetContent(x, row, ch, nil, style)
	}
}

// buildLogger constructs the zap logger per config, writing to a file
// so log lines never tear the scene
func buildLogger(cfg config.LoggingConfig, path string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}
