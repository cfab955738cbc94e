package app

import "strings"

// Group is the movement cluster a role belongs to.
type Group int

const (
	GroupNone Group = iota
	GroupRight
	GroupLeft
)

// AssetRole is one fixed slot of the converted pack.
type AssetRole struct {
	Key  string // slot key in the output JSON
	File string // canonical file name in the converted folder
	// ConfigKey is the config.txt key holding the frame count. Empty for
	// roles whose count follows the resolved choice (Intro, Outro, Poke, Pat,
	// Emote) and for roles in the skip set.
	ConfigKey string
	Group     Group
	Skip      bool
}

// SpriteRoles is the sprite-map.json / frame-count.json slot order.
var SpriteRoles = []AssetRole{
	{Key: "Idle", File: "idle.png", ConfigKey: "IDLE"},
	{Key: "Hover", File: "hover.png", ConfigKey: "HOVER"},
	{Key: "Sleep", File: "sleep.png", ConfigKey: "SLEEP"},
	{Key: "Intro", File: "intro.png"},
	{Key: "Outro", File: "outro.png"},
	{Key: "Grab", File: "grab.png", ConfigKey: "GRAB"},
	{Key: "Up", File: "run-up.png", ConfigKey: "RUNUP", Group: GroupRight},
	{Key: "Down", File: "run-down.png", ConfigKey: "RUNDOWN", Group: GroupLeft},
	{Key: "Left", File: "run-left.png", ConfigKey: "RUNLEFT", Group: GroupLeft},
	{Key: "Right", File: "run-right.png", ConfigKey: "RUNRIGHT", Group: GroupRight},
	{Key: "UpLeft", File: "run-upleft.png", ConfigKey: "UPLEFT", Group: GroupLeft},
	{Key: "UpRight", File: "run-upright.png", ConfigKey: "UPRIGHT", Group: GroupRight},
	{Key: "DownLeft", File: "run-downleft.png", ConfigKey: "DOWNLEFT", Group: GroupLeft},
	{Key: "DownRight", File: "run-downright.png", ConfigKey: "DOWNRIGHT", Group: GroupRight},
	{Key: "WalkIdle", File: "walk-idle.png", ConfigKey: "RUNIDLE"},
	{Key: "Poke", File: "poke.png"},
	{Key: "Pat", File: "pat.png"},
	{Key: "LeftAction", File: "left-action.png", Skip: true},
	{Key: "RightAction", File: "right-action.png", Skip: true},
	{Key: "Reload", File: "reload.png", Skip: true},
	{Key: "Emote", File: "emote.png"},
}

// SoundRoles is the sfx-map.json slot order.
var SoundRoles = []AssetRole{
	{Key: "Hover", File: "hover.wav"},
	{Key: "Intro", File: "intro.wav"},
	{Key: "Outro", File: "outro.wav"},
	{Key: "Grab", File: "grab.wav"},
	{Key: "Walk", File: "walk.wav"},
	{Key: "Poke", File: "poke.wav"},
	{Key: "Pat", File: "pat.wav"},
	{Key: "LeftAction", File: "left-action.wav", Skip: true},
	{Key: "RightAction", File: "right-action.wav", Skip: true},
	{Key: "Reload", File: "reload.wav", Skip: true},
	{Key: "Emote", File: "emote.wav"},
}

const (
	idleSprite     = "idle.png"
	runRightSprite = "run-right.png"
	runLeftSprite  = "run-left.png"
)

// skipKeys holds both the slot keys and their upper-cased config.txt form.
var skipKeys = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, r := range SpriteRoles {
		if r.Skip {
			m[r.Key] = struct{}{}
			m[strings.ToUpper(r.Key)] = struct{}{}
		}
	}
	return m
}()

// IsSkipped reports whether a slot or config key may legitimately stay empty.
func IsSkipped(key string) bool {
	_, ok := skipKeys[key]
	return ok
}

// groupConfigKeys returns the config keys of every sprite role in g.
func groupConfigKeys(g Group) []string {
	var keys []string
	for _, r := range SpriteRoles {
		if r.Group == g {
			keys = append(keys, r.ConfigKey)
		}
	}
	return keys
}

// directionSource is the run sheet a movement group collapses onto.
type directionSource struct {
	File      string
	ConfigKey string
}

// movementSource picks the directional sheet a group falls back to: its own
// run sheet when present, the opposite one otherwise. ok is false when
// neither converted run sheet exists.
func movementSource(g Group, view Availability) (directionSource, bool) {
	right := directionSource{File: runRightSprite, ConfigKey: "RUNRIGHT"}
	left := directionSource{File: runLeftSprite, ConfigKey: "RUNLEFT"}

	own, other := right, left
	switch g {
	case GroupLeft:
		own, other = left, right
	case GroupRight:
	default:
		return directionSource{}, false
	}

	if view.Has(own.File) {
		return own, true
	}
	if view.Has(other.File) {
		return other, true
	}
	return directionSource{}, false
}

// fallbackFile is the shared existence-then-fallback policy for slot
// mapping. idle is the universal fallback ("" for sounds).
func fallbackFile(r AssetRole, view Availability, idle string) string {
	if view.Has(r.File) {
		return r.File
	}
	if r.Skip {
		return ""
	}
	if r.Group != GroupNone {
		if src, ok := movementSource(r.Group, view); ok {
			return src.File
		}
	}
	return idle
}
