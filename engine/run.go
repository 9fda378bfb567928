package engine

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/Zyko0/go-sdl3/sdl"
	"github.com/Zyko0/go-sdl3/ttf"
	"github.com/hashicorp/go-hclog"
)

// NewLogger builds the process logger. An explicit level always wins; when
// none was configured the LOADTASK_LOG_LEVEL environment variable is
// consulted, then info.
func NewLogger(level string) hclog.Logger {
	if level == "" {
		level = os.Getenv("LOADTASK_LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "loadtask",
		Level:  hclog.LevelFromString(level),
		Output: os.Stderr,
	})
}

// Run executes one full session: condition plan, window and resource setup,
// the trial loop and the result file. It blocks until the session ends.
func Run(cfg *Config) error {
	log := NewLogger(cfg.LogLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Info("random seed", "seed", seed)

	pool := ScanBackgrounds(cfg.BackgroundsDir, log)
	if pool.Total() == 0 {
		log.Warn("no background images found, letters will be shown on the plain background",
			"dir", cfg.BackgroundsDir)
	}

	plan := NewPlan(rng)
	trials := Synthesize(rng, plan, pool)
	log.Info("trial plan built", "trials", len(trials), "backgrounds", pool.Total())

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}
	defer ttf.Quit()

	windowFlags := sdl.WINDOW_RESIZABLE
	if cfg.Fullscreen {
		windowFlags |= sdl.WINDOW_FULLSCREEN
	}

	window, renderer, err := sdl.CreateWindowAndRenderer("AI Background Load Task",
		cfg.ScreenWidth, cfg.ScreenHeight, windowFlags)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	defer renderer.Destroy()

	if cfg.VSync {
		renderer.SetVSync(1)
	} else {
		renderer.SetVSync(0)
	}

	fontPath := cfg.FontFile
	if fontPath == "" {
		fontPath = GetDefaultFontPath()
	}
	if fontPath == "" {
		return fmt.Errorf("no usable font found, set font_file in the config")
	}
	letterFont, err := ttf.OpenFont(fontPath, float32(cfg.LetterFontSize))
	if err != nil {
		return fmt.Errorf("loading font %s: %w", fontPath, err)
	}
	defer letterFont.Close()
	textFont, err := ttf.OpenFont(fontPath, float32(cfg.TextFontSize))
	if err != nil {
		return fmt.Errorf("loading font %s: %w", fontPath, err)
	}
	defer textFont.Close()

	cache := NewTextureCache(renderer, log)
	defer cache.Destroy()
	cache.Preload(trials, letterFont, cfg.TextColor)

	var trigger *DLPIO8G
	if cfg.DLPDevice != "" {
		trigger, err = OpenTriggerBox(cfg.DLPDevice, log)
		if err != nil {
			log.Warn("trigger box unavailable, continuing without",
				"device", cfg.DLPDevice, "error", err)
		} else {
			log.Info("trigger box ready", "device", cfg.DLPDevice)
			defer trigger.Close()
		}
	}

	screen := newSDLScreen(cfg, renderer, letterFont, textFont, cache)
	runner := &Runner{
		Screen:  screen,
		RNG:     rng,
		Timing:  cfg.Timing,
		Trigger: trigger,
		Log:     log,
	}
	sess := &Session{
		Screen:            screen,
		Runner:            runner,
		Trials:            trials,
		Participant:       cfg.Participant,
		Number:            cfg.Session,
		Instructions:      cfg.Instructions,
		InstructionsImage: cfg.InstructionsImage,
		Closing:           cfg.ClosingText,
		ClosingImage:      cfg.ClosingImage,
		ClosingMS:         cfg.Timing.ClosingMS,
		Log:               log,
		Progress:          os.Stdout,
	}

	start := time.Now()
	results := sess.Run()
	if results == nil {
		log.Info("session abandoned before the first trial")
		return nil
	}

	path := ResultPath(cfg.DataDir, cfg.Participant, start)
	if err := results.Save(path); err != nil {
		return fmt.Errorf("saving results: %w", err)
	}
	fmt.Printf("\nResults saved to %s\n", path)
	return nil
}
