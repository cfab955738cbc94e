package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testPaths(t *testing.T) PackPaths {
	t.Helper()
	root := t.TempDir()
	return PackPaths{
		SpriteSrc: filepath.Join(root, "src", "Gold Ship"),
		SoundSrc:  filepath.Join(root, "src", "sounds"),
		SpriteDst: filepath.Join(root, "out", "sprites"),
		SoundDst:  filepath.Join(root, "out", "sounds"),
	}
}

func TestCopyAssetsAppliesPlaceholdersAndOverrides(t *testing.T) {
	p := testPaths(t)
	touchFiles(t, p.SpriteSrc, actionsIdle, actionsHover, "Run/runRight.png", emote1Sprite)
	touchFiles(t, p.SoundSrc, "poke.wav", emote2Sound, emote1Sound, runSound)

	c := ResolveChoices(Prober{Root: p.SpriteSrc}, Prober{Root: p.SoundSrc}, Overrides{})
	copied, err := CopyAssets(context.Background(), PlanCopies(p, c))
	if err != nil {
		t.Fatalf("CopyAssets: %v", err)
	}
	if copied == 0 {
		t.Fatalf("CopyAssets copied nothing")
	}

	checks := map[string]string{
		filepath.Join(p.SpriteDst, "intro.png"):     actionsIdle,
		filepath.Join(p.SpriteDst, "run-right.png"): "Run/runRight.png",
		filepath.Join(p.SpriteDst, "emote.png"):     emote1Sprite,
		filepath.Join(p.SpriteDst, "pat.png"):       emote1Sprite,
		filepath.Join(p.SoundDst, "poke.wav"):       emote2Sound,
		filepath.Join(p.SoundDst, "walk.wav"):       runSound,
		filepath.Join(p.SoundDst, "emote.wav"):      emote1Sound,
		filepath.Join(p.SoundDst, "pat.wav"):        emote2Sound,
	}
	for path, wantSource := range checks {
		if got := readFile(t, path); got != wantSource {
			t.Fatalf("%s came from %q, want %q", path, got, wantSource)
		}
	}

	// hover exists without grab, so the outro placeholder source is missing.
	if _, err := os.Stat(filepath.Join(p.SpriteDst, "outro.png")); !os.IsNotExist(err) {
		t.Fatalf("outro.png should be absent, stat err = %v", err)
	}
}

func TestCopyAssetsStopsOnCancel(t *testing.T) {
	p := testPaths(t)
	touchFiles(t, p.SpriteSrc, actionsIdle)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	copied, err := CopyAssets(ctx, PlanCopies(p, ChoiceSet{}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("CopyAssets err = %v, want context.Canceled", err)
	}
	if copied != 0 {
		t.Fatalf("copied = %d after cancel, want 0", copied)
	}
}

func TestInstallPack(t *testing.T) {
	root := t.TempDir()
	pack := filepath.Join(root, "out", "goldship")
	touchFiles(t, pack, "sprites/idle.png", "sounds/sfx-map.json")

	installed, err := InstallPack(pack, filepath.Join(root, "missing"), "goldship")
	if err != nil || installed {
		t.Fatalf("InstallPack into missing root = %v, %v; want false, nil", installed, err)
	}

	gremlins := filepath.Join(root, "gremlins")
	if err := os.MkdirAll(gremlins, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	installed, err = InstallPack(pack, gremlins, "goldship")
	if err != nil || !installed {
		t.Fatalf("InstallPack = %v, %v; want true, nil", installed, err)
	}
	if got := readFile(t, filepath.Join(gremlins, "goldship", "sprites", "idle.png")); got != "sprites/idle.png" {
		t.Fatalf("installed idle.png = %q", got)
	}
}
