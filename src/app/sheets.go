package app

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// SheetReport describes one converted sprite sheet.
type SheetReport struct {
	Slot    string
	File    string
	Format  string
	Width   int
	Height  int
	Frames  int // whole frames the sheet holds at the configured size
	Problem string
}

// InspectSheets decodes the header of every sprite sheet present in dir and
// checks it against WIDTH/HEIGHT from the frame table. Findings are advisory.
func InspectSheets(dir string, table FrameTable) []SheetReport {
	fw, fh := table.Get("WIDTH"), table.Get("HEIGHT")
	seen := make(map[string]bool)

	var reports []SheetReport
	for _, r := range SpriteRoles {
		if seen[r.File] {
			continue
		}
		seen[r.File] = true

		path := filepath.Join(dir, r.File)
		cfg, format, err := decodeSheetConfig(path)
		if os.IsNotExist(err) {
			continue
		}

		rep := SheetReport{Slot: r.Key, File: r.File}
		if err != nil {
			rep.Problem = err.Error()
			log.Warn().Str("file", r.File).Err(err).Msg("sheet could not be decoded")
			reports = append(reports, rep)
			continue
		}

		rep.Format = format
		rep.Width, rep.Height = cfg.Width, cfg.Height
		switch {
		case fw <= 0 || fh <= 0:
			rep.Problem = "frame size missing from config table"
		case cfg.Width%fw != 0 || cfg.Height%fh != 0:
			rep.Problem = fmt.Sprintf("sheet %dx%d is not a multiple of frame %dx%d", cfg.Width, cfg.Height, fw, fh)
		default:
			rep.Frames = (cfg.Width / fw) * (cfg.Height / fh)
		}
		if rep.Problem != "" {
			log.Warn().Str("file", r.File).Str("problem", rep.Problem).Msg("sheet geometry")
		}
		reports = append(reports, rep)
	}
	return reports
}

func decodeSheetConfig(path string) (image.Config, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, "", err
	}
	defer f.Close()
	return image.DecodeConfig(f)
}
