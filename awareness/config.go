package awareness

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/navedge/corner"
	"github.com/katalvlaran/navedge/passage"
)

// DefaultSearchRadius is the boundary query radius around the origin.
const DefaultSearchRadius = 550.0

// Config holds every tunable threshold of the pipeline.
// Angles are in degrees, lengths in world units.
type Config struct {
	CornerAngle            float64 `yaml:"corner_angle" json:"corner_angle"`
	FakeCornerCompensation float64 `yaml:"fake_corner_compensation" json:"fake_corner_compensation"`
	FakeCornerMaxLength    float64 `yaml:"fake_corner_max_length" json:"fake_corner_max_length"`
	CornerBlurDistance     float64 `yaml:"corner_blur_distance" json:"corner_blur_distance"`
	PerpendicularTolerance float64 `yaml:"perpendicular_tolerance" json:"perpendicular_tolerance"`
	SmallObstacleLength    float64 `yaml:"small_obstacle_length" json:"small_obstacle_length"`
	SearchRadius           float64 `yaml:"search_radius" json:"search_radius"`
	NearestPerLine         bool    `yaml:"nearest_per_line" json:"nearest_per_line"`
	// MaxPassageWidth of 0 disables the width limit.
	MaxPassageWidth float64 `yaml:"max_passage_width" json:"max_passage_width"`
	// InteriorSide is "right", "left" or "either".
	InteriorSide string `yaml:"interior_side" json:"interior_side"`
}

// DefaultConfig returns the tuned defaults:
//   - CornerAngle 35°, FakeCornerCompensation 45°, FakeCornerMaxLength 100
//   - CornerBlurDistance 200, SmallObstacleLength 300
//   - PerpendicularTolerance 45°, nearest edge per line, no width limit
//   - SearchRadius 550, interior on the right of each edge
func DefaultConfig() Config {
	c := corner.DefaultOptions()
	p := passage.DefaultOptions()

	return Config{
		CornerAngle:            c.CornerAngle,
		FakeCornerCompensation: c.FakeCornerCompensation,
		FakeCornerMaxLength:    c.FakeCornerMaxLength,
		CornerBlurDistance:     c.CornerBlurDistance,
		PerpendicularTolerance: p.PerpendicularTolerance,
		SmallObstacleLength:    c.SmallObstacleLength,
		SearchRadius:           DefaultSearchRadius,
		NearestPerLine:         p.NearestPerLine,
		MaxPassageWidth:        p.MaxWidth,
		InteriorSide:           p.InteriorSide.String(),
	}
}

// CornerOptions projects the config onto corner.Options.
func (c Config) CornerOptions() corner.Options {
	return corner.Options{
		CornerAngle:            c.CornerAngle,
		FakeCornerCompensation: c.FakeCornerCompensation,
		FakeCornerMaxLength:    c.FakeCornerMaxLength,
		CornerBlurDistance:     c.CornerBlurDistance,
		SmallObstacleLength:    c.SmallObstacleLength,
	}
}

// PassageOptions projects the config onto passage.Options.
// An unparsable InteriorSide falls back to the right side; Validate rejects it first.
func (c Config) PassageOptions() passage.Options {
	side, _ := passage.ParseSide(c.InteriorSide)

	return passage.Options{
		PerpendicularTolerance: c.PerpendicularTolerance,
		NearestPerLine:         c.NearestPerLine,
		MaxWidth:               c.MaxPassageWidth,
		InteriorSide:           side,
	}
}

// LoadConfig decodes YAML from r over DefaultConfig and validates the result.
// Keys missing from the document keep their defaults; an empty document yields
// DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("awareness: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfigFile opens path and calls LoadConfig.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("awareness: open config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}
