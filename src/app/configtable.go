package app

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/ini.v1"
)

// ConfigFileName is the frame table shipped inside every sprite folder.
const ConfigFileName = "config.txt"

// FrameTable maps config.txt keys to frame counts. Absent keys read as 0.
type FrameTable map[string]int

func (t FrameTable) Get(key string) int {
	return t[key]
}

func (t FrameTable) Clone() FrameTable {
	out := make(FrameTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

var configLoadOptions = ini.LoadOptions{
	KeyValueDelimiters:      "=",
	IgnoreInlineComment:     true,
	SkipUnrecognizableLines: true,
	AllowShadows:            false,
}

// ParseConfigTable reads a KEY=integer file. Only a read failure is an
// error; malformed lines are dropped.
func ParseConfigTable(path string) (FrameTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return ParseConfigTableBytes(data)
}

func ParseConfigTableBytes(data []byte) (FrameTable, error) {
	f, err := ini.LoadSources(configLoadOptions, stripConfigNoise(data))
	if err != nil {
		return nil, fmt.Errorf("parse config table: %w", err)
	}

	table := make(FrameTable)
	for _, k := range f.Section(ini.DefaultSection).Keys() {
		n, err := strconv.Atoi(strings.TrimSpace(k.Value()))
		if err != nil {
			log.Debug().Str("key", k.Name()).Str("value", k.Value()).Msg("config: skipping non-integer value")
			continue
		}
		table[k.Name()] = n
	}
	return table, nil
}

// stripConfigNoise drops the lines config.txt uses that are not KEY=int:
// blanks, // comments, SCALE, section headers and lines with more than one
// '=' or an empty key.
func stripConfigNoise(data []byte) []byte {
	var out bytes.Buffer
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "",
			strings.HasPrefix(line, "//"),
			strings.HasPrefix(line, "SCALE"),
			strings.HasPrefix(line, "["),
			strings.Count(line, "=") != 1,
			strings.HasPrefix(line, "="):
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}
