package engine

import (
	"github.com/Zyko0/go-sdl3/sdl"
	"github.com/Zyko0/go-sdl3/ttf"
	"github.com/hashicorp/go-hclog"
)

func drawText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, x, y float32) {
	surf, err := font.RenderTextBlended(text, color)
	if err != nil || surf == nil {
		return
	}
	tex, err := renderer.CreateTextureFromSurface(surf)
	if err == nil {
		r := sdl.FRect{X: x, Y: y, W: float32(surf.W), H: float32(surf.H)}
		renderer.RenderTexture(tex, nil, &r)
		tex.Destroy()
	}
	surf.Destroy()
}

// RunGuiSetup shows a small form asking for the participant id and session
// number before the experiment window opens. Returns false when the operator
// closes the form without starting. Tab switches fields, Return starts.
//
// Participant and session text is restricted to characters safe in a file
// name.
func RunGuiSetup(cfg *Config, log hclog.Logger) bool {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Error("sdl init failed", "error", err)
		return false
	}
	defer sdl.Quit()

	if err := ttf.Init(); err != nil {
		log.Error("ttf init failed", "error", err)
		return false
	}
	defer ttf.Quit()

	window, renderer, err := sdl.CreateWindowAndRenderer("Load Task Setup", 500, 320, 0)
	if err != nil {
		log.Error("create window failed", "error", err)
		return false
	}
	defer window.Destroy()
	defer renderer.Destroy()

	fontPath := cfg.FontFile
	if fontPath == "" {
		fontPath = GetDefaultFontPath()
	}
	if fontPath == "" {
		log.Error("no usable font found for the setup form")
		return false
	}
	guiFont, err := ttf.OpenFont(fontPath, 18)
	if err != nil {
		log.Error("failed to load setup font", "path", fontPath, "error", err)
		return false
	}
	defer guiFont.Close()

	fields := []*string{&cfg.Participant, &cfg.Session}
	focusBox := 0
	setupDone := false

	window.StartTextInput()
	defer window.StopTextInput()

	for !setupDone {
		var e sdl.Event
		for sdl.PollEvent(&e) {
			switch e.Type {
			case sdl.EVENT_QUIT:
				return false
			case sdl.EVENT_MOUSE_BUTTON_DOWN:
				me := e.MouseButtonEvent()
				mx, my := me.X, me.Y
				switch {
				case mx >= 50 && mx <= 430 && my >= 60 && my <= 90:
					focusBox = 0
				case mx >= 50 && mx <= 430 && my >= 150 && my <= 180:
					focusBox = 1
				default:
					focusBox = -1
				}
				if mx >= 50 && mx <= 250 && my >= 210 && my <= 230 {
					cfg.Fullscreen = !cfg.Fullscreen
				}
				if mx >= 190 && mx <= 310 && my >= 250 && my <= 290 && cfg.Participant != "" {
					setupDone = true
				}
			case sdl.EVENT_TEXT_INPUT:
				if focusBox != -1 {
					for _, r := range e.TextInputEvent().Text {
						if r == '_' || r == '-' ||
							(r >= '0' && r <= '9') ||
							(r >= 'a' && r <= 'z') ||
							(r >= 'A' && r <= 'Z') {
							*fields[focusBox] += string(r)
						}
					}
				}
			case sdl.EVENT_KEY_DOWN:
				switch e.KeyboardEvent().Key {
				case sdl.K_BACKSPACE:
					if focusBox != -1 {
						t := fields[focusBox]
						if len(*t) > 0 {
							*t = (*t)[:len(*t)-1]
						}
					}
				case sdl.K_TAB:
					focusBox = (focusBox + 1) % len(fields)
				case sdl.K_RETURN:
					if cfg.Participant != "" {
						setupDone = true
					}
				case sdl.K_ESCAPE:
					return false
				}
			}
		}

		renderer.SetDrawColor(240, 240, 240, 255)
		renderer.Clear()
		black := sdl.Color{R: 0, G: 0, B: 0, A: 255}
		white := sdl.Color{R: 255, G: 255, B: 255, A: 255}

		drawText(renderer, guiFont, "Participant ID:", black, 50, 30)
		drawText(renderer, guiFont, "Session:", black, 50, 120)

		for i, field := range fields {
			renderer.SetDrawColor(255, 255, 255, 255)
			box := sdl.FRect{X: 50, Y: float32(60 + i*90), W: 380, H: 30}
			renderer.RenderFillRect(&box)
			if focusBox == i {
				renderer.SetDrawColor(0, 120, 255, 255)
			} else {
				renderer.SetDrawColor(180, 180, 180, 255)
			}
			renderer.RenderRect(&box)
			if *field != "" {
				drawText(renderer, guiFont, *field, black, 55, float32(65+i*90))
			}
		}

		// Fullscreen checkbox
		renderer.SetDrawColor(255, 255, 255, 255)
		check := sdl.FRect{X: 50, Y: 210, W: 20, H: 20}
		renderer.RenderFillRect(&check)
		renderer.SetDrawColor(0, 0, 0, 255)
		renderer.RenderRect(&check)
		if cfg.Fullscreen {
			mark := sdl.FRect{X: 54, Y: 214, W: 12, H: 12}
			renderer.SetDrawColor(0, 150, 0, 255)
			renderer.RenderFillRect(&mark)
		}
		drawText(renderer, guiFont, "Fullscreen mode", black, 80, 210)

		// Start button, grayed out until a participant id is entered
		if cfg.Participant != "" {
			renderer.SetDrawColor(0, 150, 0, 255)
		} else {
			renderer.SetDrawColor(160, 160, 160, 255)
		}
		startBtn := sdl.FRect{X: 190, Y: 250, W: 120, H: 40}
		renderer.RenderFillRect(&startBtn)
		drawText(renderer, guiFont, "START", white, 225, 260)

		renderer.Present()
		sdl.Delay(10)
	}

	return true
}
