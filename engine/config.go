package engine

import (
	"fmt"
	"os"

	"github.com/Zyko0/go-sdl3/sdl"
	"gopkg.in/yaml.v3"
)

// Config holds everything needed to run a session. Zero values are filled
// from DefaultConfig; LoadFile layers a YAML file on top of the defaults and
// command line flags are applied on top of that.
type Config struct {
	Participant string `yaml:"participant"`
	Session     string `yaml:"session"`

	BackgroundsDir string `yaml:"backgrounds_dir"`
	DataDir        string `yaml:"data_dir"`
	FontFile       string `yaml:"font_file"`

	InstructionsImage string `yaml:"instructions_image"`
	ClosingImage      string `yaml:"closing_image"`

	DLPDevice string `yaml:"dlp_device"`

	// LogLevel left empty defers to LOADTASK_LOG_LEVEL, then info.
	LogLevel string `yaml:"log_level"`

	ScreenWidth    int `yaml:"screen_width"`
	ScreenHeight   int `yaml:"screen_height"`
	LetterFontSize int `yaml:"letter_font_size"`
	TextFontSize   int `yaml:"text_font_size"`
	BGStimWidth    int `yaml:"bg_stim_width"`
	BGStimHeight   int `yaml:"bg_stim_height"`

	// Seed 0 means seed from the clock.
	Seed int64 `yaml:"seed"`

	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`

	BGColor       sdl.Color `yaml:"bg_color"`
	TextColor     sdl.Color `yaml:"text_color"`
	FixationColor sdl.Color `yaml:"fixation_color"`

	Timing TimingConfig `yaml:"timing"`

	Instructions string `yaml:"instructions"`
	ClosingText  string `yaml:"closing_text"`
}

// TimingConfig sets the trial phase durations in milliseconds.
type TimingConfig struct {
	FixationMinMS uint64 `yaml:"fixation_min_ms"`
	FixationMaxMS uint64 `yaml:"fixation_max_ms"`
	LettersMS     uint64 `yaml:"letters_ms"`
	ResponseMS    uint64 `yaml:"response_ms"`
	ClosingMS     uint64 `yaml:"closing_ms"`
}

const DefaultConfigFile = ".loadtask.yaml"

const DefaultInstructions = `Welcome to the Cognitive Psychology Experiment.

You will see a series of letter strings presented on different backgrounds.
Your task is to indicate whether the target letter 'X' is present or absent.

Press 'Z' if the letter X is present.
Press 'M' if the letter X is absent.

Try to respond as quickly and accurately as possible.

Press SPACE to begin.`

const DefaultClosing = `Thank you for your time!

You have completed the experiment.`

func DefaultConfig() *Config {
	return &Config{
		Session:        "1",
		BackgroundsDir: "backgrounds",
		DataDir:        "data",
		ScreenWidth:    1280,
		ScreenHeight:   720,
		LetterFontSize: 60,
		TextFontSize:   28,
		BGStimWidth:    800,
		BGStimHeight:   1200,
		VSync:          true,
		BGColor:        sdl.Color{R: 0, G: 0, B: 0, A: 255},
		TextColor:      sdl.Color{R: 255, G: 255, B: 255, A: 255},
		FixationColor:  sdl.Color{R: 255, G: 255, B: 255, A: 255},
		Timing: TimingConfig{
			FixationMinMS: 3500,
			FixationMaxMS: 5500,
			LettersMS:     200,
			ResponseMS:    1500,
			ClosingMS:     3000,
		},
		Instructions: DefaultInstructions,
		ClosingText:  DefaultClosing,
	}
}

// LoadFile reads a YAML config, with defaults for any key not present.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// SaveFile writes the config as YAML.
func (cfg *Config) SaveFile(path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ParseColor reads "r,g,b" or "r,g,b,a" into an sdl.Color. Alpha defaults
// to opaque when omitted.
func ParseColor(s string) sdl.Color {
	var r, g, b, a uint8
	n, _ := fmt.Sscanf(s, "%d,%d,%d,%d", &r, &g, &b, &a)
	if n < 4 {
		a = 255
	}
	return sdl.Color{R: r, G: g, B: b, A: a}
}
