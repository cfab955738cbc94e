package cmd

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simivar/gremlin-converter/src/app"
	"github.com/spf13/viper"
)

func TestInspectCommandReadsConvertedPack(t *testing.T) {
	preserveGlobals(t)
	resetViper(t)

	root := t.TempDir()
	spriteDir := filepath.Join(root, "Runner")
	soundDir := filepath.Join(root, "sounds")
	writeFixture(t, spriteDir, map[string]string{
		"config.txt":       "IDLE=4\nRUNRIGHT=6\n",
		"Actions/idle.png": "idle",
		"Run/runRight.png": "right",
	})
	writeFixture(t, soundDir, map[string]string{"run.wav": "run"})

	res, err := app.Convert(context.Background(), app.Options{
		SpriteDir:  spriteDir,
		SoundDir:   soundDir,
		OutputRoot: filepath.Join(root, "out"),
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	buf := captureLogs(t)
	if err := inspectCmd.RunE(inspectCmd, []string{res.PackDir}); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	logs := buf.String()
	if !strings.Contains(logs, "\"slot\":\"Up\",\"file\":\"run-right.png\",\"frames\":6") {
		t.Fatalf("expected Up slot on run-right.png with 6 frames, got %q", logs)
	}
	if !strings.Contains(logs, "\"slot\":\"Walk\",\"file\":\"walk.wav\"") {
		t.Fatalf("expected walk sound slot, got %q", logs)
	}
	if !strings.Contains(logs, "Gremlin inspect finished") {
		t.Fatalf("expected finish log, got %q", logs)
	}
}

func TestInspectCommandFailsOnMissingPack(t *testing.T) {
	preserveGlobals(t)
	resetViper(t)
	_ = captureLogs(t)

	if err := inspectCmd.RunE(inspectCmd, []string{t.TempDir()}); err == nil {
		t.Fatalf("inspect on empty folder should fail")
	}
}

func TestOptionsCommandListsChoices(t *testing.T) {
	preserveGlobals(t)
	resetViper(t)
	buf := captureLogs(t)

	root := t.TempDir()
	spriteDir := filepath.Join(root, "sprites")
	soundDir := filepath.Join(root, "sounds")
	writeFixture(t, spriteDir, map[string]string{
		"Emotes/emote1.png": "1",
		"Emotes/emote3.png": "3",
	})
	writeFixture(t, soundDir, map[string]string{
		"emote1.wav": "1",
		"emote3.wav": "3",
	})

	viper.Set("sprites", spriteDir)
	viper.Set("sounds", soundDir)

	optionsCmd.Run(optionsCmd, nil)

	logs := buf.String()
	if !strings.Contains(logs, "\"choices\":[\"default\",\"Emotes/emote1.png\",\"Emotes/emote3.png\",\"Actions/idle.png\"]") {
		t.Fatalf("expected sprite choices, got %q", logs)
	}
	if !strings.Contains(logs, "\"emoteDefault\":\"Emotes/emote3.png\"") {
		t.Fatalf("expected emote default, got %q", logs)
	}
	if !strings.Contains(logs, "\"choices\":[\"default\",\"emote1.wav\",\"emote3.wav\"]") {
		t.Fatalf("expected sound choices, got %q", logs)
	}
}
