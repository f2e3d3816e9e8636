package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes one YAML file into T. Unknown keys are rejected so a
// misspelled tuning field fails loudly instead of silently reading as zero.
func LoadSpec[T any](filename string) (T, error) {
	var spec T
	data, err := Load(filename)
	if err != nil {
		return spec, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// PaletteSpec maps asset keys to draw colors for front-ends without sprites.
type PaletteSpec struct {
	Fallback *YAMLColor           `yaml:"fallback"`
	Colors   map[string]YAMLColor `yaml:"colors"`
}

func LoadPalette() (*PaletteSpec, error) {
	spec, err := LoadSpec[PaletteSpec]("palette.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Color resolves key, falling back to its family prefix ("enemy" for
// "enemy.basic_drone") and then to the fallback color.
func (p *PaletteSpec) Color(key string) (color.Color, bool) {
	if p == nil {
		return nil, false
	}
	if c, ok := p.Colors[key]; ok && c.Color != nil {
		return c.Color, true
	}
	if family, _, found := strings.Cut(key, "."); found {
		if c, ok := p.Colors[family]; ok && c.Color != nil {
			return c.Color, true
		}
	}
	if p.Fallback != nil && p.Fallback.Color != nil {
		return p.Fallback.Color, true
	}
	return nil, false
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
