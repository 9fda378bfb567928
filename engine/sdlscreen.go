package engine

import (
	"strings"

	"github.com/Zyko0/go-sdl3/sdl"
	"github.com/Zyko0/go-sdl3/ttf"
)

const CrossSize = 20

func drawFixationCross(renderer *sdl.Renderer, w, h int, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	mx, my := float32(w)/2, float32(h)/2
	renderer.RenderLine(mx-CrossSize, my, mx+CrossSize, my)
	renderer.RenderLine(mx, my-CrossSize, mx, my+CrossSize)
}

// sdlScreen presents frames in an SDL window and reports key presses
// stamped with the tick at which they were polled.
type sdlScreen struct {
	renderer   *sdl.Renderer
	letterFont *ttf.Font
	textFont   *ttf.Font
	cache      *TextureCache

	width  int
	height int

	// Background stimuli are drawn at a fixed size regardless of the
	// source image dimensions.
	bgStimW int
	bgStimH int

	bgColor   sdl.Color
	textColor sdl.Color
	fixColor  sdl.Color

	vsync bool
}

func newSDLScreen(cfg *Config, renderer *sdl.Renderer, letterFont, textFont *ttf.Font, cache *TextureCache) *sdlScreen {
	return &sdlScreen{
		renderer:   renderer,
		letterFont: letterFont,
		textFont:   textFont,
		cache:      cache,
		width:      cfg.ScreenWidth,
		height:     cfg.ScreenHeight,
		bgStimW:    cfg.BGStimWidth,
		bgStimH:    cfg.BGStimHeight,
		bgColor:    cfg.BGColor,
		textColor:  cfg.TextColor,
		fixColor:   cfg.FixationColor,
		vsync:      cfg.VSync,
	}
}

func (s *sdlScreen) Now() uint64 {
	return sdl.Ticks()
}

func (s *sdlScreen) Tick(f Frame) Input {
	var in Input
	at := sdl.Ticks()

	for {
		var ev sdl.Event
		if !sdl.PollEvent(&ev) {
			break
		}
		switch ev.Type {
		case sdl.EVENT_QUIT:
			in.Quit = true
		case sdl.EVENT_KEY_DOWN:
			switch ev.KeyboardEvent().Key {
			case sdl.K_Z:
				in.Keys = append(in.Keys, KeyEvent{Key: KeyPresent, AtMS: at})
			case sdl.K_M:
				in.Keys = append(in.Keys, KeyEvent{Key: KeyAbsent, AtMS: at})
			case sdl.K_SPACE:
				in.Keys = append(in.Keys, KeyEvent{Key: KeyStart, AtMS: at})
			case sdl.K_ESCAPE:
				in.Keys = append(in.Keys, KeyEvent{Key: KeyCancel, AtMS: at})
			}
		}
	}

	s.draw(f)

	if !s.vsync {
		sdl.Delay(1)
	}
	return in
}

func (s *sdlScreen) draw(f Frame) {
	s.renderer.SetDrawColor(s.bgColor.R, s.bgColor.G, s.bgColor.B, s.bgColor.A)
	s.renderer.Clear()

	switch {
	case f.MessageImage != "":
		tex, w, h := s.cache.Image(f.MessageImage)
		if tex != nil {
			dst := sdl.FRect{
				X: (float32(s.width) - w) / 2.0,
				Y: (float32(s.height) - h) / 2.0,
				W: w,
				H: h,
			}
			s.renderer.RenderTexture(tex, nil, &dst)
		}
	case f.Message != "":
		s.drawMessage(f.Message)
	case f.Fixation:
		drawFixationCross(s.renderer, s.width, s.height, s.fixColor)
	default:
		if f.Background != "" {
			tex, _, _ := s.cache.Image(f.Background)
			if tex != nil {
				dst := sdl.FRect{
					X: (float32(s.width) - float32(s.bgStimW)) / 2.0,
					Y: (float32(s.height) - float32(s.bgStimH)) / 2.0,
					W: float32(s.bgStimW),
					H: float32(s.bgStimH),
				}
				s.renderer.RenderTexture(tex, nil, &dst)
			}
		}
		if f.Letters != "" {
			tex, w, h := s.cache.Text(s.letterFont, s.textColor, "ltr:"+f.Letters, f.Letters)
			if tex != nil {
				dst := sdl.FRect{
					X: (float32(s.width) - w) / 2.0,
					Y: (float32(s.height) - h) / 2.0,
					W: w,
					H: h,
				}
				s.renderer.RenderTexture(tex, nil, &dst)
			}
		}
	}

	s.renderer.Present()
}

// drawMessage renders a multi-line text block centered on the screen, one
// texture per line.
func (s *sdlScreen) drawMessage(text string) {
	lines := strings.Split(text, "\n")

	type line struct {
		tex  *sdl.Texture
		w, h float32
	}
	rendered := make([]line, len(lines))
	lineH := float32(0)
	for i, l := range lines {
		if l == "" {
			continue
		}
		tex, w, h := s.cache.Text(s.textFont, s.textColor, "txt:"+l, l)
		rendered[i] = line{tex: tex, w: w, h: h}
		if h > lineH {
			lineH = h
		}
	}
	if lineH == 0 {
		return
	}

	step := lineH * 1.3
	y := (float32(s.height) - step*float32(len(lines))) / 2.0
	for _, l := range rendered {
		if l.tex != nil {
			dst := sdl.FRect{X: (float32(s.width) - l.w) / 2.0, Y: y, W: l.w, H: l.h}
			s.renderer.RenderTexture(l.tex, nil, &dst)
		}
		y += step
	}
}
