package awareness

import (
	"fmt"
	"math"

	"github.com/katalvlaran/navedge/passage"
)

// Validate checks every field of c and returns the first violation wrapped
// in ErrInvalidConfig, or nil.
//
// Rules:
//   - CornerAngle, FakeCornerCompensation, PerpendicularTolerance in [0, 180].
//   - Lengths and distances finite and ≥ 0; SearchRadius > 0.
//   - InteriorSide one of "right", "left", "either" (empty means "right").
func (c Config) Validate() error {
	for _, a := range []struct {
		name  string
		value float64
	}{
		{"corner_angle", c.CornerAngle},
		{"fake_corner_compensation", c.FakeCornerCompensation},
		{"perpendicular_tolerance", c.PerpendicularTolerance},
	} {
		if err := validateAngle(a.name, a.value); err != nil {
			return err
		}
	}
	for _, l := range []struct {
		name  string
		value float64
	}{
		{"fake_corner_max_length", c.FakeCornerMaxLength},
		{"corner_blur_distance", c.CornerBlurDistance},
		{"small_obstacle_length", c.SmallObstacleLength},
		{"max_passage_width", c.MaxPassageWidth},
	} {
		if err := validateLength(l.name, l.value); err != nil {
			return err
		}
	}
	if err := validateLength("search_radius", c.SearchRadius); err != nil {
		return err
	}
	if c.SearchRadius == 0 {
		return fmt.Errorf("%w: search_radius must be > 0", ErrInvalidConfig)
	}
	if _, ok := passage.ParseSide(c.InteriorSide); !ok {
		return fmt.Errorf("%w: interior_side %q is not right, left or either", ErrInvalidConfig, c.InteriorSide)
	}

	return nil
}

// validateAngle enforces 0 ≤ v ≤ 180.
func validateAngle(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 180 {
		return fmt.Errorf("%w: %s must be in [0,180], got %v", ErrInvalidConfig, name, v)
	}

	return nil
}

// validateLength enforces a finite v ≥ 0.
func validateLength(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %s must be finite and ≥ 0, got %v", ErrInvalidConfig, name, v)
	}

	return nil
}
