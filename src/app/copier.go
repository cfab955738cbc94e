package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	bar "github.com/schollz/progressbar/v3"
)

// CopyOp copies one source asset to its canonical converted name.
type CopyOp struct {
	From string
	To   string
}

// PackPaths locates the folders of one conversion.
type PackPaths struct {
	SpriteSrc string
	SoundSrc  string
	SpriteDst string
	SoundDst  string
}

// PlanCopies lists every copy in execution order. Later entries overwrite
// earlier ones, so placeholders come before the sources that replace them.
func PlanCopies(p PackPaths, c ChoiceSet) []CopyOp {
	sprite := func(from, to string) CopyOp {
		return CopyOp{From: filepath.Join(p.SpriteSrc, filepath.FromSlash(from)), To: filepath.Join(p.SpriteDst, to)}
	}
	sound := func(from, to string) CopyOp {
		return CopyOp{From: filepath.Join(p.SoundSrc, from), To: filepath.Join(p.SoundDst, to)}
	}

	return []CopyOp{
		sprite("Actions/grab.png", "grab.png"),
		sprite("Actions/hover.png", "hover.png"),
		sprite(actionsIdle, "idle.png"),
		sprite(c.IntroSprite, "intro.png"),
		sprite(c.OutroSprite, "outro.png"),
		sprite("Actions/runIdle.png", "walk-idle.png"),
		sprite("Actions/sleep.png", "sleep.png"),

		sprite("Run/downLeft.png", "run-downleft.png"),
		sprite("Run/downRight.png", "run-downright.png"),
		sprite("Run/runDown.png", "run-down.png"),
		sprite("Run/runLeft.png", "run-left.png"),
		sprite("Run/runRight.png", "run-right.png"),
		sprite("Run/runUp.png", "run-up.png"),
		sprite("Run/upLeft.png", "run-upleft.png"),
		sprite("Run/upRight.png", "run-upright.png"),

		sprite("Walk/walkDown.png", "walk-down.png"),
		sprite("Walk/walkLeft.png", "walk-left.png"),
		sprite("Walk/walkRight.png", "walk-right.png"),
		sprite("Walk/walkUp.png", "walk-up.png"),

		sprite(c.EmoteSprite, "emote.png"),
		sprite(c.PatSprite, "pat.png"),
		sprite(c.PokeSprite, "poke.png"),

		sound("emote.wav", "emote.wav"),
		sound("grab.wav", "grab.wav"),
		sound("hover.wav", "hover.wav"),
		sound("intro.wav", "intro.wav"),
		sound("outro.wav", "outro.wav"),
		sound("pat.wav", "pat.wav"),
		sound("poke.wav", "poke.wav"),
		sound("sleep.wav", "sleep.wav"),
		sound(c.WalkSound, "walk.wav"),

		sound(c.EmoteSound, "emote.wav"),
		sound(emote2Sound, "poke.wav"),
		sound(c.PatSound, "pat.wav"),
	}
}

// CopyAssets runs the plan and returns how many files were written.
// Missing sources are skipped.
func CopyAssets(ctx context.Context, ops []CopyOp) (int, error) {
	progress := bar.NewOptions(
		len(ops),
		bar.OptionSetDescription("Copying assets"),
		bar.OptionShowCount(),
		bar.OptionSetItsString("files"),
		bar.OptionThrottle(100),
		bar.OptionClearOnFinish(),
	)

	copied := 0
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return copied, err
		}
		ok, err := copyFile(op.From, op.To)
		if err != nil {
			return copied, fmt.Errorf("copy %q to %q: %w", op.From, op.To, err)
		}
		if ok {
			copied++
		}
		_ = progress.Add(1)
	}
	_ = progress.Finish()

	log.Debug().Int("copied", copied).Int("planned", len(ops)).Msg("copy phase finished")
	return copied, nil
}

// copyFile reports false when the source does not exist.
func copyFile(from, to string) (bool, error) {
	in, err := os.Open(from)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("file", from).Msg("skipping: file does not exist")
			return false, nil
		}
		return false, err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		return false, err
	}
	out, err := os.Create(to)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return false, err
	}
	if err := out.Close(); err != nil {
		return false, err
	}

	log.Debug().Str("from", from).Str("to", to).Msg("copied")
	return true, nil
}

// copyTree mirrors src into dst, replacing existing files.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		_, err = copyFile(path, target)
		return err
	})
}

// InstallPack copies the converted pack into installRoot/<id> when
// installRoot already exists. It reports whether anything was installed.
func InstallPack(packDir, installRoot, id string) (bool, error) {
	if installRoot == "" {
		return false, nil
	}
	info, err := os.Stat(installRoot)
	if err != nil || !info.IsDir() {
		log.Debug().Str("installRoot", installRoot).Msg("install folder not present, skipping install")
		return false, nil
	}

	target := filepath.Join(installRoot, id)
	if err := copyTree(packDir, target); err != nil {
		return false, fmt.Errorf("install into %q: %w", target, err)
	}
	log.Info().Str("target", target).Msg("installed converted pack")
	return true, nil
}
