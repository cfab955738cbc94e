package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultChoice is the sentinel meaning "use the computed default".
const DefaultChoice = "default"

var ErrUnknownOverride = errors.New("override names a file that does not exist")

// Sprite paths are relative to the sprite folder, sound names to the sound folder.
const (
	emote1Sprite = "Emotes/emote1.png"
	emote2Sprite = "Emotes/emote2.png"
	emote3Sprite = "Emotes/emote3.png"
	emote4Sprite = "Emotes/emote4.png"
	clickSprite  = "Actions/click.png"
	actionsIdle  = "Actions/idle.png"
	actionsHover = "Actions/hover.png"
	actionsGrab  = "Actions/grab.png"
	actionsIntro = "Actions/intro.png"
	actionsOutro = "Actions/outro.png"

	emote1Sound = "emote1.wav"
	emote2Sound = "emote2.wav"
	emote3Sound = "emote3.wav"
	emote4Sound = "emote4.wav"
	patSound    = "pat.wav"
	walkSound   = "walk.wav"
	runSound    = "run.wav"
)

// Overrides are the user's picks; empty or DefaultChoice means none.
type Overrides struct {
	EmoteSprite string
	PatSprite   string
	EmoteSound  string
}

// ChoiceSet is the resolved source file for every user-overridable role.
type ChoiceSet struct {
	EmoteSprite string
	PatSprite   string
	PokeSprite  string
	IntroSprite string
	OutroSprite string
	EmoteSound  string
	PatSound    string
	WalkSound   string
}

func pick(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}

func overridden(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" || v == DefaultChoice {
		return "", false
	}
	return v, true
}

// ResolveChoices applies the default chains against the source folders and
// lets user overrides win where one is offered. It never fails; a role may
// resolve to a file that does not exist, which the copy phase skips.
func ResolveChoices(sprites, sounds Availability, o Overrides) ChoiceSet {
	var c ChoiceSet

	c.EmoteSprite = pick(sprites.Has(emote3Sprite), emote3Sprite, emote1Sprite)
	c.PatSprite = pick(sprites.Has(emote1Sprite), emote1Sprite, emote2Sprite)

	switch {
	case sprites.Has(clickSprite):
		c.PokeSprite = clickSprite
	case sprites.Has(emote2Sprite):
		c.PokeSprite = emote2Sprite
	default:
		c.PokeSprite = emote1Sprite
	}

	c.IntroSprite = actionsIntro
	if !sprites.Has(actionsIntro) {
		c.IntroSprite = actionsIdle
	}
	c.OutroSprite = actionsOutro
	if !sprites.Has(actionsOutro) {
		c.OutroSprite = pick(sprites.Has(actionsHover), actionsGrab, actionsIdle)
	}

	c.WalkSound = pick(sounds.Has(walkSound), walkSound, runSound)

	has1, has3 := sounds.Has(emote1Sound), sounds.Has(emote3Sound)
	c.EmoteSound = emote1Sound
	if has3 && !has1 {
		c.EmoteSound = emote3Sound
	}

	switch {
	case sounds.Has(patSound):
		c.PatSound = patSound
	case sounds.Has(emote4Sound):
		c.PatSound = emote4Sound
	default:
		c.PatSound = emote2Sound
	}

	if v, ok := overridden(o.EmoteSprite); ok {
		c.EmoteSprite = v
	}
	if v, ok := overridden(o.PatSprite); ok {
		c.PatSprite = v
	}
	if v, ok := overridden(o.EmoteSound); ok {
		c.EmoteSound = v
	}

	log.Debug().
		Str("emoteSprite", c.EmoteSprite).
		Str("patSprite", c.PatSprite).
		Str("pokeSprite", c.PokeSprite).
		Str("introSprite", c.IntroSprite).
		Str("outroSprite", c.OutroSprite).
		Str("emoteSound", c.EmoteSound).
		Str("patSound", c.PatSound).
		Str("walkSound", c.WalkSound).
		Msg("choices resolved")

	return c
}

// CheckOverrides reports overrides naming files absent from the source
// folders. Conversion only fails on it in strict mode; otherwise the
// caller logs and the missing source is skipped like any other.
func CheckOverrides(sprites, sounds Availability, o Overrides) error {
	var errs []error
	if v, ok := overridden(o.EmoteSprite); ok && !sprites.Has(v) {
		errs = append(errs, fmt.Errorf("emote sprite %q: %w", v, ErrUnknownOverride))
	}
	if v, ok := overridden(o.PatSprite); ok && !sprites.Has(v) {
		errs = append(errs, fmt.Errorf("pat sprite %q: %w", v, ErrUnknownOverride))
	}
	if v, ok := overridden(o.EmoteSound); ok && !sounds.Has(v) {
		errs = append(errs, fmt.Errorf("emote sound %q: %w", v, ErrUnknownOverride))
	}
	return errors.Join(errs...)
}

// HasEmoteSprites reports whether emote/pat sprite overrides are worth offering.
func HasEmoteSprites(sprites Availability) bool {
	for _, s := range []string{emote1Sprite, emote2Sprite, emote3Sprite, emote4Sprite} {
		if sprites.Has(s) {
			return true
		}
	}
	return false
}

// SpriteOptions lists the selectable emote/pat sprites, sentinel first and
// the always-present idle sheet last.
func SpriteOptions(sprites Availability) []string {
	opts := []string{DefaultChoice}
	for _, s := range []string{emote1Sprite, emote2Sprite, emote3Sprite, emote4Sprite, clickSprite} {
		if sprites.Has(s) {
			opts = append(opts, s)
		}
	}
	return append(opts, actionsIdle)
}

// SoundOptions is non-nil only when both emote clips exist, the one case
// where the user is asked.
func SoundOptions(sounds Availability) []string {
	if !sounds.Has(emote1Sound) || !sounds.Has(emote3Sound) {
		return nil
	}
	return []string{DefaultChoice, emote1Sound, emote3Sound}
}
