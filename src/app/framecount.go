package app

import "github.com/rs/zerolog/log"

// spriteConfigKeys translates a chosen sprite path into its config.txt key.
var spriteConfigKeys = map[string]string{
	emote1Sprite: "EMOTE1",
	emote2Sprite: "EMOTE2",
	emote3Sprite: "EMOTE3",
	emote4Sprite: "EMOTE4",
	actionsIdle:  "IDLE",
	clickSprite:  "CLICK",
	actionsIntro: "INTRO",
	actionsOutro: "OUTRO",
	actionsGrab:  "GRAB",
}

// ConfigKeyFor returns the config key counting the frames of a chosen
// sprite. ok is false for sheets the table has no entry for.
func ConfigKeyFor(sprite string) (key string, ok bool) {
	key, ok = spriteConfigKeys[sprite]
	return key, ok
}

// FieldOverride forces one config key to a fixed value.
type FieldOverride struct {
	Key   string
	Value int
}

// CharacterOverrides holds per-character frame corrections that no file in
// the pack can tell us about.
var CharacterOverrides = map[string][]FieldOverride{
	"goldship": {
		{Key: "HOVER", Value: 25},
		{Key: "SLEEP", Value: 50},
	},
}

// FrameSlot is one entry of frame-count.json.
type FrameSlot struct {
	Key    string
	Frames int
}

// FrameCounts is the ordered frame-count record.
type FrameCounts []FrameSlot

func (fc FrameCounts) Get(key string) int {
	for _, s := range fc {
		if s.Key == key {
			return s.Frames
		}
	}
	return 0
}

// SynchronizeTable returns a copy of raw with idle backfill, directional
// collapse and character corrections applied, in that order. view is the
// converted sprite folder; only the two run sheets are looked up.
func SynchronizeTable(raw FrameTable, view Availability, characterID string) FrameTable {
	t := raw.Clone()

	idle := t.Get("IDLE")
	for k, v := range t {
		if v == 0 && !IsSkipped(k) {
			t[k] = idle
		}
	}

	for _, g := range []Group{GroupRight, GroupLeft} {
		src, ok := movementSource(g, view)
		if !ok {
			continue
		}
		frames := t.Get(src.ConfigKey)
		for _, k := range groupConfigKeys(g) {
			t[k] = frames
		}
	}

	for _, o := range CharacterOverrides[characterID] {
		log.Debug().Str("character", characterID).Str("key", o.Key).Int("value", o.Value).Msg("frame override")
		t[o.Key] = o.Value
	}

	return t
}

// FrameRecord projects a synchronized table onto the sprite slot order.
// Slots that follow a choice read the key of the chosen sheet; an
// untranslatable choice counts 0 frames.
func FrameRecord(t FrameTable, c ChoiceSet) FrameCounts {
	chosen := map[string]string{
		"Intro": c.IntroSprite,
		"Outro": c.OutroSprite,
		"Poke":  c.PokeSprite,
		"Pat":   c.PatSprite,
		"Emote": c.EmoteSprite,
	}

	out := make(FrameCounts, 0, len(SpriteRoles))
	for _, r := range SpriteRoles {
		slot := FrameSlot{Key: r.Key}
		switch {
		case r.Skip:
		case r.ConfigKey != "":
			slot.Frames = t.Get(r.ConfigKey)
		default:
			if key, ok := ConfigKeyFor(chosen[r.Key]); ok {
				slot.Frames = t.Get(key)
			} else {
				log.Debug().Str("slot", r.Key).Str("sprite", chosen[r.Key]).Msg("no config key for chosen sprite")
			}
		}
		out = append(out, slot)
	}
	return out
}

// SynchronizeFrames is SynchronizeTable followed by FrameRecord.
func SynchronizeFrames(raw FrameTable, c ChoiceSet, characterID string, view Availability) (FrameTable, FrameCounts) {
	t := SynchronizeTable(raw, view, characterID)
	return t, FrameRecord(t, c)
}
