package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	FrameCountFile  = "frame-count.json"
	SpriteMapFile   = "sprite-map.json"
	EmoteConfigFile = "emote-config.json"
	SfxMapFile      = "sfx-map.json"
)

const prettyModifier = `@pretty:{"indent":"    ","sortKeys":false}`

// jsonObject builds an object whose key order is insertion order.
type jsonObject struct {
	doc []byte
	err error
}

func newJSONObject() *jsonObject {
	return &jsonObject{doc: []byte("{}")}
}

func (o *jsonObject) set(key string, value any) *jsonObject {
	if o.err != nil {
		return o
	}
	o.doc, o.err = sjson.SetBytes(o.doc, escapeKey(key), value)
	return o
}

func (o *jsonObject) bytes() ([]byte, error) {
	if o.err != nil {
		return nil, o.err
	}
	return []byte(gjson.GetBytes(o.doc, prettyModifier).Raw), nil
}

// escapeKey keeps sjson from reading path syntax in slot keys.
func escapeKey(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?', '|', '#', '@', '\\', ':':
			out = append(out, '\\')
		}
		out = append(out, key[i])
	}
	return string(out)
}

func MarshalFrameCounts(fc FrameCounts) ([]byte, error) {
	o := newJSONObject()
	for _, s := range fc {
		o.set(s.Key, s.Frames)
	}
	return o.bytes()
}

func MarshalSpriteMap(m SpriteMap) ([]byte, error) {
	o := newJSONObject().
		set("FrameRate", m.FrameRate).
		set("SpriteColumn", m.SpriteColumn).
		set("FrameHeight", m.FrameHeight).
		set("FrameWidth", m.FrameWidth).
		set("TopHotspotHeight", m.TopHotspotHeight).
		set("TopHotspotWidth", m.TopHotspotWidth).
		set("SideHotspotHeight", m.SideHotspotHeight).
		set("SideHotspotWidth", m.SideHotspotWidth).
		set("HasReloadAnimation", m.HasReloadAnimation)
	for _, s := range m.Slots {
		o.set(s.Key, s.File)
	}
	return o.bytes()
}

func MarshalSoundMap(slots FileSlots) ([]byte, error) {
	o := newJSONObject()
	for _, s := range slots {
		o.set(s.Key, s.File)
	}
	return o.bytes()
}

func MarshalEmoteConfig(e EmoteConfig) ([]byte, error) {
	return newJSONObject().
		set("AnnoyEmote", e.AnnoyEmote).
		set("MinEmoteTriggerMinutes", e.MinEmoteTriggerMinutes).
		set("MaxEmoteTriggerMinutes", e.MaxEmoteTriggerMinutes).
		set("EmoteDuration", e.EmoteDuration).
		bytes()
}

// PackFiles is everything written next to the converted assets.
type PackFiles struct {
	Frames FrameCounts
	Sprite SpriteMap
	Sounds FileSlots
	Emote  EmoteConfig
}

// WritePack writes the four JSON files into the converted folders.
func WritePack(spriteDst, soundDst string, p PackFiles) error {
	type output struct {
		path    string
		marshal func() ([]byte, error)
	}
	outputs := []output{
		{filepath.Join(spriteDst, FrameCountFile), func() ([]byte, error) { return MarshalFrameCounts(p.Frames) }},
		{filepath.Join(spriteDst, SpriteMapFile), func() ([]byte, error) { return MarshalSpriteMap(p.Sprite) }},
		{filepath.Join(spriteDst, EmoteConfigFile), func() ([]byte, error) { return MarshalEmoteConfig(p.Emote) }},
		{filepath.Join(soundDst, SfxMapFile), func() ([]byte, error) { return MarshalSoundMap(p.Sounds) }},
	}

	for _, out := range outputs {
		data, err := out.marshal()
		if err != nil {
			return fmt.Errorf("encode %s: %w", filepath.Base(out.path), err)
		}
		if err := os.MkdirAll(filepath.Dir(out.path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(out.path, data, 0o644); err != nil {
			return fmt.Errorf("write %q: %w", out.path, err)
		}
		log.Debug().Str("file", out.path).Int("bytes", len(data)).Msg("wrote pack file")
	}
	return nil
}

// PackSummary is a converted pack read back from disk.
type PackSummary struct {
	Frames        FrameCounts
	Sprites       FileSlots
	Sounds        FileSlots
	SpriteColumn  int
	FrameWidth    int
	FrameHeight   int
	EmoteDuration int
}

// spriteMapHeader keys precede the slots in sprite-map.json.
var spriteMapHeader = map[string]struct{}{
	"FrameRate": {}, "SpriteColumn": {}, "FrameHeight": {}, "FrameWidth": {},
	"TopHotspotHeight": {}, "TopHotspotWidth": {}, "SideHotspotHeight": {},
	"SideHotspotWidth": {}, "HasReloadAnimation": {},
}

// LoadPack reads the JSON files of a converted pack, keeping slot order.
func LoadPack(packDir string) (*PackSummary, error) {
	read := func(rel string) (gjson.Result, error) {
		path := filepath.Join(packDir, rel)
		data, err := os.ReadFile(path)
		if err != nil {
			return gjson.Result{}, err
		}
		if !gjson.ValidBytes(data) {
			return gjson.Result{}, fmt.Errorf("%s: invalid JSON", path)
		}
		return gjson.ParseBytes(data), nil
	}

	frames, err := read(filepath.Join("sprites", FrameCountFile))
	if err != nil {
		return nil, err
	}
	sprites, err := read(filepath.Join("sprites", SpriteMapFile))
	if err != nil {
		return nil, err
	}
	sounds, err := read(filepath.Join("sounds", SfxMapFile))
	if err != nil {
		return nil, err
	}
	emote, err := read(filepath.Join("sprites", EmoteConfigFile))
	if err != nil {
		return nil, err
	}

	s := &PackSummary{
		SpriteColumn:  int(sprites.Get("SpriteColumn").Int()),
		FrameWidth:    int(sprites.Get("FrameWidth").Int()),
		FrameHeight:   int(sprites.Get("FrameHeight").Int()),
		EmoteDuration: int(emote.Get("EmoteDuration").Int()),
	}
	frames.ForEach(func(k, v gjson.Result) bool {
		s.Frames = append(s.Frames, FrameSlot{Key: k.String(), Frames: int(v.Int())})
		return true
	})
	sprites.ForEach(func(k, v gjson.Result) bool {
		if _, header := spriteMapHeader[k.String()]; !header {
			s.Sprites = append(s.Sprites, FileSlot{Key: k.String(), File: v.String()})
		}
		return true
	})
	sounds.ForEach(func(k, v gjson.Result) bool {
		s.Sounds = append(s.Sounds, FileSlot{Key: k.String(), File: v.String()})
		return true
	})
	return s, nil
}
