package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Options configures one conversion run.
type Options struct {
	SpriteDir   string
	SoundDir    string
	OutputRoot  string // converted packs land in OutputRoot/<id>
	InstallRoot string // optional runtime gremlins folder
	Overrides   Overrides
	Strict      bool // fail on overrides naming missing files
	Archive     bool // also write OutputRoot/<id>.tar.xz
}

// Result is what a conversion produced.
type Result struct {
	CharacterID string
	PackDir     string
	Choices     ChoiceSet
	Table       FrameTable
	Files       PackFiles
	Copied      int
	Installed   bool
	ArchivePath string
}

// Convert runs a full conversion: validate, resolve, copy, derive and write.
func Convert(ctx context.Context, opts Options) (*Result, error) {
	if err := Validate(opts.SpriteDir, opts.SoundDir); err != nil {
		return nil, err
	}

	sprites := Prober{Root: opts.SpriteDir}
	sounds := Prober{Root: opts.SoundDir}

	if err := CheckOverrides(sprites, sounds, opts.Overrides); err != nil {
		if opts.Strict {
			return nil, err
		}
		log.Warn().Err(err).Msg("override will be skipped during copy")
	}

	id := CharacterID(opts.SpriteDir)
	res := &Result{
		CharacterID: id,
		PackDir:     filepath.Join(opts.OutputRoot, id),
		Choices:     ResolveChoices(sprites, sounds, opts.Overrides),
	}
	paths := PackPaths{
		SpriteSrc: opts.SpriteDir,
		SoundSrc:  opts.SoundDir,
		SpriteDst: filepath.Join(res.PackDir, "sprites"),
		SoundDst:  filepath.Join(res.PackDir, "sounds"),
	}
	log.Info().Str("character", id).Str("pack", res.PackDir).Msg("converting")

	for _, dir := range []string{paths.SpriteDst, paths.SoundDst} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create export folder: %w", err)
		}
	}

	copied, err := CopyAssets(ctx, PlanCopies(paths, res.Choices))
	if err != nil {
		return nil, err
	}
	res.Copied = copied

	raw, err := ParseConfigTable(filepath.Join(opts.SpriteDir, ConfigFileName))
	if err != nil {
		return nil, err
	}

	spriteView := SnapshotDir(paths.SpriteDst)
	soundView := SnapshotDir(paths.SoundDst)

	var frames FrameCounts
	res.Table, frames = SynchronizeFrames(raw, res.Choices, id, spriteView)
	res.Files = PackFiles{
		Frames: frames,
		Sprite: NewSpriteMap(raw, spriteView),
		Sounds: MapSounds(soundView),
		Emote:  NewEmoteConfig(EmoteDurationMs(filepath.Join(opts.SoundDir, res.Choices.EmoteSound))),
	}

	for _, rep := range InspectSheets(paths.SpriteDst, raw) {
		log.Debug().Str("file", rep.File).Int("w", rep.Width).Int("h", rep.Height).Int("frames", rep.Frames).Msg("sheet")
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := WritePack(paths.SpriteDst, paths.SoundDst, res.Files); err != nil {
		return nil, err
	}

	res.Installed, err = InstallPack(res.PackDir, opts.InstallRoot, id)
	if err != nil {
		return nil, err
	}

	if opts.Archive {
		res.ArchivePath = filepath.Join(opts.OutputRoot, id+".tar.xz")
		if err := ArchivePack(res.PackDir, res.ArchivePath); err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("character", id).
		Int("copied", res.Copied).
		Int("emoteDuration", res.Files.Emote.EmoteDuration).
		Bool("installed", res.Installed).
		Msg("conversion finished")
	return res, nil
}
