package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrMissingConfig        = errors.New("config.txt not found")
	ErrMissingIdleSprite    = errors.New("missing idle sprite Actions/idle.png")
	ErrMissingBaselineSound = errors.New("no known sound clip found")
)

// knownSounds is every clip name a source sound folder may carry.
var knownSounds = []string{
	"emote.wav", emote1Sound, emote2Sound, emote3Sound, emote4Sound,
	patSound, walkSound, runSound,
	"hover.wav", "grab.wav", "intro.wav", "outro.wav", "poke.wav", "sleep.wav",
}

// Validate checks the prerequisites a conversion cannot run without.
func Validate(spriteDir, soundDir string) error {
	sprites := Prober{Root: spriteDir}
	if !sprites.Has(ConfigFileName) {
		return fmt.Errorf("%s: %w (make sure the sprite folder is selected)", spriteDir, ErrMissingConfig)
	}
	if !sprites.Has(actionsIdle) {
		return fmt.Errorf("%s: %w (the character is most likely incompatible)", spriteDir, ErrMissingIdleSprite)
	}

	sounds := Prober{Root: soundDir}
	for _, s := range knownSounds {
		if sounds.Has(s) {
			return nil
		}
	}
	return fmt.Errorf("%s: %w (make sure the sounds folder is selected)", soundDir, ErrMissingBaselineSound)
}

// CharacterID derives the pack identifier from the sprite folder name.
func CharacterID(spriteDir string) string {
	name := filepath.Base(filepath.Clean(spriteDir))
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
