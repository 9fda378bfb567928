package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Zyko0/go-sdl3/bin/binimg"
	"github.com/Zyko0/go-sdl3/bin/binsdl"
	"github.com/Zyko0/go-sdl3/bin/binttf"
	"github.com/spf13/cobra"

	"github.com/nehagajbhiyeug2023-sketch/ai-background-lavie-load-task/engine"
)

const version = "1.0.0"

var (
	rootCmd *cobra.Command

	configPath  string
	participant string
	session     string
	backgrounds string
	dataDir     string
	fontFile    string
	dlpDevice   string
	logLevel    string
	bgColor     string
	textColor   string
	fixColor    string
	screenW     int
	screenH     int
	seed        int64
	fullscreen  bool
	noVSync     bool
	versionFlag bool
)

func init() {
	// SDL needs the main OS thread.
	runtime.LockOSThread()

	rootCmd = &cobra.Command{
		Use:   "loadtask",
		Short: "Letter search task over AI, internet, paper and solid backgrounds",
		Long: `loadtask presents a timed letter search task over AI-generated, internet,
paper and solid color backgrounds, recording a present/absent keyboard
judgment and a reaction time for every trial.

Trials cross low and high perceptual load letter strings with each
background type. Results are written to a per-session CSV file. Without
--participant a small setup form is shown first.`,
		RunE: runTask,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().StringVarP(&participant, "participant", "p", "", "Participant id (setup form shown when empty)")
	rootCmd.Flags().StringVarP(&session, "session", "s", "", "Session number")
	rootCmd.Flags().StringVar(&backgrounds, "backgrounds", "", "Directory with ai/, internet/, paper/ and solid/ image folders")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory for result CSV files")
	rootCmd.Flags().StringVar(&fontFile, "font", "", "TTF font file")
	rootCmd.Flags().StringVar(&dlpDevice, "dlp", "", "DLP-IO8-G trigger box serial device")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().StringVar(&bgColor, "bg-color", "", "Background color (R,G,B[,A])")
	rootCmd.Flags().StringVar(&textColor, "text-color", "", "Text color (R,G,B[,A])")
	rootCmd.Flags().StringVar(&fixColor, "fixation-color", "", "Fixation cross color (R,G,B[,A])")
	rootCmd.Flags().IntVar(&screenW, "width", 0, "Window width")
	rootCmd.Flags().IntVar(&screenH, "height", 0, "Window height")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 seeds from the clock)")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "Run fullscreen")
	rootCmd.Flags().BoolVar(&noVSync, "no-vsync", false, "Disable vsync")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")
}

func main() {
	defer binsdl.Load().Unload()
	defer binimg.Load().Unload()
	defer binttf.Load().Unload()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTask(cmd *cobra.Command, args []string) error {
	if versionFlag {
		fmt.Printf("loadtask %s\n", version)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	if cfg.Participant == "" {
		log := engine.NewLogger(cfg.LogLevel)
		if !engine.RunGuiSetup(cfg, log) {
			return nil
		}
		// Remember the setup choices for the next run, but never the
		// participant id.
		saved := *cfg
		saved.Participant = ""
		if err := saved.SaveFile(engine.DefaultConfigFile); err != nil {
			log.Warn("could not save config", "path", engine.DefaultConfigFile, "error", err)
		}
	}

	return engine.Run(cfg)
}

func loadConfig() (*engine.Config, error) {
	if configPath != "" {
		return engine.LoadFile(configPath)
	}
	if _, err := os.Stat(engine.DefaultConfigFile); err == nil {
		return engine.LoadFile(engine.DefaultConfigFile)
	}
	return engine.DefaultConfig(), nil
}

// applyFlags overrides config values with any flag the operator actually
// set, leaving file and default values alone otherwise.
func applyFlags(cmd *cobra.Command, cfg *engine.Config) {
	flags := cmd.Flags()
	if flags.Changed("participant") {
		cfg.Participant = participant
	}
	if flags.Changed("session") {
		cfg.Session = session
	}
	if flags.Changed("backgrounds") {
		cfg.BackgroundsDir = backgrounds
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("font") {
		cfg.FontFile = fontFile
	}
	if flags.Changed("dlp") {
		cfg.DLPDevice = dlpDevice
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("bg-color") {
		cfg.BGColor = engine.ParseColor(bgColor)
	}
	if flags.Changed("text-color") {
		cfg.TextColor = engine.ParseColor(textColor)
	}
	if flags.Changed("fixation-color") {
		cfg.FixationColor = engine.ParseColor(fixColor)
	}
	if flags.Changed("width") {
		cfg.ScreenWidth = screenW
	}
	if flags.Changed("height") {
		cfg.ScreenHeight = screenH
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fullscreen") {
		cfg.Fullscreen = fullscreen
	}
	if flags.Changed("no-vsync") {
		cfg.VSync = !noVSync
	}
}
