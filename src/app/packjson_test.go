package app

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestMarshalKeepsSlotOrder(t *testing.T) {
	slots := MapSprites(NewAvailabilityView("idle.png"))
	data, err := MarshalSpriteMap(SpriteMap{FrameRate: 60, Slots: slots})
	if err != nil {
		t.Fatalf("MarshalSpriteMap: %v", err)
	}

	var keys []string
	gjson.ParseBytes(data).ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})

	want := []string{"FrameRate", "SpriteColumn", "FrameHeight", "FrameWidth", "TopHotspotHeight",
		"TopHotspotWidth", "SideHotspotHeight", "SideHotspotWidth", "HasReloadAnimation"}
	for _, r := range SpriteRoles {
		want = append(want, r.Key)
	}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("keys = %v\nwant %v", keys, want)
	}
	if !strings.Contains(string(data), "\n    \"FrameRate\": 60") {
		t.Fatalf("expected 4-space indented output, got:\n%s", data)
	}
}

func TestMarshalEmoteConfig(t *testing.T) {
	data, err := MarshalEmoteConfig(NewEmoteConfig(1234))
	if err != nil {
		t.Fatalf("MarshalEmoteConfig: %v", err)
	}
	doc := gjson.ParseBytes(data)
	if !doc.Get("AnnoyEmote").Bool() || doc.Get("MinEmoteTriggerMinutes").Int() != 5 ||
		doc.Get("MaxEmoteTriggerMinutes").Int() != 15 || doc.Get("EmoteDuration").Int() != 1234 {
		t.Fatalf("emote config = %s", data)
	}
}

func TestWritePackThenLoadPack(t *testing.T) {
	pack := filepath.Join(t.TempDir(), "goldship")
	files := PackFiles{
		Frames: FrameRecord(FrameTable{"IDLE": 4, "HOVER": 25}, ChoiceSet{}),
		Sprite: NewSpriteMap(FrameTable{"COLUMN": 10, "WIDTH": 150, "HEIGHT": 175}, NewAvailabilityView("idle.png")),
		Sounds: MapSounds(NewAvailabilityView("emote.wav")),
		Emote:  NewEmoteConfig(1000),
	}

	if err := WritePack(filepath.Join(pack, "sprites"), filepath.Join(pack, "sounds"), files); err != nil {
		t.Fatalf("WritePack: %v", err)
	}

	got, err := LoadPack(pack)
	if err != nil {
		t.Fatalf("LoadPack: %v", err)
	}
	if !reflect.DeepEqual(got.Frames, files.Frames) {
		t.Fatalf("frames = %v, want %v", got.Frames, files.Frames)
	}
	if !reflect.DeepEqual(got.Sprites, files.Sprite.Slots) {
		t.Fatalf("sprites = %v, want %v", got.Sprites, files.Sprite.Slots)
	}
	if !reflect.DeepEqual(got.Sounds, files.Sounds) {
		t.Fatalf("sounds = %v, want %v", got.Sounds, files.Sounds)
	}
	if got.SpriteColumn != 10 || got.FrameWidth != 150 || got.FrameHeight != 175 || got.EmoteDuration != 1000 {
		t.Fatalf("summary header = %+v", got)
	}
}

func TestLoadPackMissingFiles(t *testing.T) {
	if _, err := LoadPack(t.TempDir()); err == nil {
		t.Fatalf("LoadPack on empty folder should fail")
	}
}
