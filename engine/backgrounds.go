package engine

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// AssetPool maps each background type to the image files found under its
// folder at startup. It is read-only for the rest of the session.
type AssetPool struct {
	byType map[BackgroundType][]string
}

// ScanBackgrounds walks <dir>/<type> for every background type and collects
// eligible image files (png, jpg, jpeg, bmp). A missing or empty folder is a
// warning, not an error: trials in that category run on the plain window
// fill.
func ScanBackgrounds(dir string, log hclog.Logger) *AssetPool {
	pool := &AssetPool{byType: make(map[BackgroundType][]string, len(BackgroundTypes))}

	for _, bt := range BackgroundTypes {
		folder := filepath.Join(dir, string(bt))
		entries, err := os.ReadDir(folder)
		if err != nil {
			log.Warn("background folder not found", "type", bt, "path", folder)
			continue
		}

		var files []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(e.Name())) {
			case ".png", ".jpg", ".jpeg", ".bmp":
				files = append(files, filepath.Join(folder, e.Name()))
			}
		}
		if len(files) == 0 {
			log.Warn("no background images", "type", bt, "path", folder)
			continue
		}
		pool.byType[bt] = files
	}
	return pool
}

// Pick samples one asset path uniformly for the given background type, or
// returns "" when the pool has none.
func (p *AssetPool) Pick(rng *rand.Rand, bt BackgroundType) string {
	files := p.byType[bt]
	if len(files) == 0 {
		return ""
	}
	return files[rng.Intn(len(files))]
}

// Count reports how many assets a background type has.
func (p *AssetPool) Count(bt BackgroundType) int {
	return len(p.byType[bt])
}

// Total reports the number of assets across all background types.
func (p *AssetPool) Total() int {
	n := 0
	for _, files := range p.byType {
		n += len(files)
	}
	return n
}
