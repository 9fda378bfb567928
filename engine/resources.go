package engine

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Zyko0/go-sdl3/img"
	"github.com/Zyko0/go-sdl3/sdl"
	"github.com/Zyko0/go-sdl3/ttf"
	"github.com/hashicorp/go-hclog"
)

func GetDefaultFontPath() string {
	// Check local fonts directory
	entries, err := os.ReadDir("fonts")
	if err == nil {
		for _, entry := range entries {
			if !entry.IsDir() {
				ext := strings.ToLower(filepath.Ext(entry.Name()))
				if ext == ".ttf" || ext == ".ttc" {
					return filepath.Join("fonts", entry.Name())
				}
			}
		}
	}

	// System paths
	var paths []string
	switch runtime.GOOS {
	case "windows":
		paths = []string{"C:\\Windows\\Fonts\\arial.ttf"}
	case "darwin":
		paths = []string{"/System/Library/Fonts/Helvetica.ttc"}
	default:
		paths = []string{
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

type texEntry struct {
	tex  *sdl.Texture
	w, h float32
}

// TextureCache holds rendered textures for the lifetime of a session.
// Failed loads are cached too so each bad path is only reported once.
type TextureCache struct {
	renderer *sdl.Renderer
	entries  map[string]*texEntry
	log      hclog.Logger
}

func NewTextureCache(renderer *sdl.Renderer, log hclog.Logger) *TextureCache {
	return &TextureCache{
		renderer: renderer,
		entries:  make(map[string]*texEntry),
		log:      log,
	}
}

// Image returns the texture for an image file, loading it on first use.
// Returns a nil texture when the file cannot be loaded.
func (c *TextureCache) Image(path string) (*sdl.Texture, float32, float32) {
	key := "img:" + path
	if e, ok := c.entries[key]; ok {
		return e.tex, e.w, e.h
	}

	e := &texEntry{}
	tex, err := img.LoadTexture(c.renderer, path)
	if err != nil {
		c.log.Warn("failed to load image", "path", path, "error", err)
	} else {
		e.tex = tex
		w, h, _ := tex.Size()
		e.w, e.h = w, h
	}
	c.entries[key] = e
	return e.tex, e.w, e.h
}

// Text returns a rendered text texture under the given cache key.
func (c *TextureCache) Text(font *ttf.Font, color sdl.Color, key, text string) (*sdl.Texture, float32, float32) {
	if e, ok := c.entries[key]; ok {
		return e.tex, e.w, e.h
	}

	e := &texEntry{}
	surf, err := font.RenderTextBlended(text, color)
	if err == nil && surf != nil {
		tex, err := c.renderer.CreateTextureFromSurface(surf)
		if err == nil {
			e.tex = tex
			e.w = float32(surf.W)
			e.h = float32(surf.H)
		}
		surf.Destroy()
	}
	c.entries[key] = e
	return e.tex, e.w, e.h
}

// Preload renders every background and letter string of the session up
// front so no trial pays a load during its timed phases.
func (c *TextureCache) Preload(trials []Trial, letterFont *ttf.Font, textColor sdl.Color) {
	for _, t := range trials {
		if t.BackgroundPath != "" {
			c.Image(t.BackgroundPath)
		}
		c.Text(letterFont, textColor, "ltr:"+t.Letters, t.Letters)
	}
}

func (c *TextureCache) Destroy() {
	for _, e := range c.entries {
		if e.tex != nil {
			e.tex.Destroy()
		}
	}
}
