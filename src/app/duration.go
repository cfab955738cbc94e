package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/rs/zerolog/log"
)

type audioDecoder func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

var audioDecoders = map[string]audioDecoder{
	".wav":  decodeWAV,
	".ogg":  vorbis.Decode,
	".flac": decodeFLAC,
	".mp3":  mp3.Decode,
}

func decodeWAV(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	return wav.Decode(rc)
}

func decodeFLAC(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	return flac.Decode(rc)
}

// ClipLength returns a clip's frame count and frame rate.
func ClipLength(path string) (frames int, rate int, err error) {
	decode, ok := audioDecoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		decode = audioDecoders[".wav"]
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	s, format, err := decode(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %q: %w", path, err)
	}
	defer s.Close()

	return s.Len(), int(format.SampleRate), nil
}

// EmoteDurationMs is the emote clip length in milliseconds, rounded up so
// the animation is never cut short. 0 means unknown or no emote sound.
func EmoteDurationMs(path string) int {
	frames, rate, err := ClipLength(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("could not read emote sound, proceeding without emote duration")
		return 0
	}
	if rate <= 0 || frames <= 0 {
		log.Warn().Str("file", path).Int("frames", frames).Int("rate", rate).Msg("emote sound has no usable length")
		return 0
	}
	return (frames*1000 + rate - 1) / rate
}
