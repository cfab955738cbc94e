package app

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Availability answers "does this file exist" for a single folder.
type Availability interface {
	Has(name string) bool
}

// Prober checks files under Root directly on disk.
type Prober struct {
	Root string
}

func (p Prober) Has(name string) bool {
	info, err := os.Stat(filepath.Join(p.Root, filepath.FromSlash(name)))
	return err == nil && !info.IsDir()
}

// AvailabilityView is a read-only snapshot of the regular files in a
// converted folder, taken once after the copy phase.
type AvailabilityView struct {
	dir   string
	files map[string]struct{}
}

// SnapshotDir lists dir once. A missing or unreadable folder yields an empty
// view so every slot falls back.
func SnapshotDir(dir string) AvailabilityView {
	v := AvailabilityView{dir: dir, files: make(map[string]struct{})}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Debug().Str("dir", dir).Err(err).Msg("snapshot: folder not readable")
		return v
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		v.files[e.Name()] = struct{}{}
	}
	log.Debug().Str("dir", dir).Int("files", len(v.files)).Msg("snapshot taken")
	return v
}

// NewAvailabilityView builds a view from explicit file names.
func NewAvailabilityView(names ...string) AvailabilityView {
	v := AvailabilityView{files: make(map[string]struct{}, len(names))}
	for _, n := range names {
		v.files[n] = struct{}{}
	}
	return v
}

func (v AvailabilityView) Has(name string) bool {
	_, ok := v.files[name]
	return ok
}

func (v AvailabilityView) Dir() string { return v.dir }

func (v AvailabilityView) Len() int { return len(v.files) }
