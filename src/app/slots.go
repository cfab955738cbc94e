package app

// FileSlot is one entry of sprite-map.json or sfx-map.json. An empty File
// means the slot is intentionally absent.
type FileSlot struct {
	Key  string
	File string
}

type FileSlots []FileSlot

func (s FileSlots) Get(key string) (string, bool) {
	for _, slot := range s {
		if slot.Key == key {
			return slot.File, true
		}
	}
	return "", false
}

// MapSprites resolves every sprite slot against the converted sprite folder.
func MapSprites(view Availability) FileSlots {
	return mapSlots(SpriteRoles, view, idleSprite)
}

// MapSounds resolves every sound slot; a missing clip stays empty.
func MapSounds(view Availability) FileSlots {
	return mapSlots(SoundRoles, view, "")
}

func mapSlots(roles []AssetRole, view Availability, idle string) FileSlots {
	out := make(FileSlots, 0, len(roles))
	for _, r := range roles {
		out = append(out, FileSlot{Key: r.Key, File: fallbackFile(r, view, idle)})
	}
	return out
}

// Fixed sprite-map.json header values expected by the desktop runtime.
const (
	SpriteFrameRate   = 60
	TopHotspotHeight  = 175
	TopHotspotWidth   = 150
	SideHotspotHeight = 0
	SideHotspotWidth  = 0
)

type SpriteMap struct {
	FrameRate          int
	SpriteColumn       int
	FrameHeight        int
	FrameWidth         int
	TopHotspotHeight   int
	TopHotspotWidth    int
	SideHotspotHeight  int
	SideHotspotWidth   int
	HasReloadAnimation bool
	Slots              FileSlots
}

// NewSpriteMap reads sheet geometry from the raw, unsynchronized table so
// an unset COLUMN is not mistaken for a missing animation.
func NewSpriteMap(raw FrameTable, view Availability) SpriteMap {
	return SpriteMap{
		FrameRate:         SpriteFrameRate,
		SpriteColumn:      raw.Get("COLUMN"),
		FrameHeight:       raw.Get("HEIGHT"),
		FrameWidth:        raw.Get("WIDTH"),
		TopHotspotHeight:  TopHotspotHeight,
		TopHotspotWidth:   TopHotspotWidth,
		SideHotspotHeight: SideHotspotHeight,
		SideHotspotWidth:  SideHotspotWidth,
		Slots:             MapSprites(view),
	}
}

type EmoteConfig struct {
	AnnoyEmote             bool
	MinEmoteTriggerMinutes int
	MaxEmoteTriggerMinutes int
	EmoteDuration          int
}

func NewEmoteConfig(durationMs int) EmoteConfig {
	return EmoteConfig{
		AnnoyEmote:             true,
		MinEmoteTriggerMinutes: 5,
		MaxEmoteTriggerMinutes: 15,
		EmoteDuration:          durationMs,
	}
}
