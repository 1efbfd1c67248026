package libtheme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

type document struct {
	Colors map[string]string `toml:"colors"`
}

// FormatHex encodes a color as #RRGGBBAA.
func FormatHex(v mgl32.Vec4) string {
	sb := strings.Builder{}
	sb.WriteByte('#')
	for _, c := range v {
		c = mgl32.Clamp(c, 0, 1)
		fmt.Fprintf(&sb, "%02X", uint8(c*255+0.5))
	}
	return sb.String()
}

// ParseHex decodes #RRGGBB or #RRGGBBAA.
func ParseHex(s string) (mgl32.Vec4, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return mgl32.Vec4{}, fmt.Errorf("malformed color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	var v mgl32.Vec4
	for i := range v {
		b, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return mgl32.Vec4{}, fmt.Errorf("malformed color %q: %w", s, err)
		}
		v[i] = float32(b) / 255
	}
	return v, nil
}

func (t *Theme) MarshalTOML() ([]byte, error) {
	doc := document{Colors: make(map[string]string, ColorCount)}
	for c := Color(0); c < ColorCount; c++ {
		doc.Colors[c.String()] = FormatHex(t.colors[c])
	}
	return toml.Marshal(doc)
}

// UnmarshalTOML applies the colors in data on top of the current palette.
// Unknown names are ignored. Nothing changes if any value is malformed.
func (t *Theme) UnmarshalTOML(data []byte) error {
	doc := document{}
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return fmt.Errorf("could not parse theme: %w", err)
	}
	colors := t.colors
	for name, value := range doc.Colors {
		c, ok := ColorByName(name)
		if !ok {
			continue
		}
		v, err := ParseHex(value)
		if err != nil {
			return fmt.Errorf("theme color %s: %w", name, err)
		}
		colors[c] = v
	}
	t.colors = colors
	return nil
}

func (t *Theme) Save(path string) error {
	data, err := t.MarshalTOML()
	if err != nil {
		return fmt.Errorf("could not encode theme: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create theme directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write theme: %w", err)
	}
	return nil
}

func (t *Theme) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read theme: %w", err)
	}
	return t.UnmarshalTOML(data)
}
