package layout

import (
	"fmt"
	"math"

	"github.com/go-drift/animatedsize/pkg/graphics"
)

// Constraints are the min/max width and height bounds a parent imposes on a
// child box. A child must choose a size within them.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that allow exactly the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{
		MaxWidth:  size.Width,
		MaxHeight: size.Height,
	}
}

// Unbounded returns constraints with no upper limit on either axis.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.MaxFloat64, MaxHeight: math.MaxFloat64}
}

// Constrain clamps size so it satisfies the constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// HasTightWidth reports whether exactly one width is allowed.
func (c Constraints) HasTightWidth() bool {
	return c.MinWidth >= c.MaxWidth
}

// HasTightHeight reports whether exactly one height is allowed.
func (c Constraints) HasTightHeight() bool {
	return c.MinHeight >= c.MaxHeight
}

// IsTight reports whether the constraints force a single size.
func (c Constraints) IsTight() bool {
	return c.HasTightWidth() && c.HasTightHeight()
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return c.MaxWidth < math.MaxFloat64
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight < math.MaxFloat64
}

// Smallest returns the smallest size that satisfies the constraints.
func (c Constraints) Smallest() graphics.Size {
	return c.Constrain(graphics.Size{})
}

// Biggest returns the largest size that satisfies the constraints.
func (c Constraints) Biggest() graphics.Size {
	return c.Constrain(graphics.Size{Width: math.MaxFloat64, Height: math.MaxFloat64})
}

// Loosen keeps the maximums and drops the minimums to zero.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// IsNormalized reports whether the bounds are non-negative and min <= max.
func (c Constraints) IsNormalized() bool {
	return c.MinWidth >= 0 && c.MinWidth <= c.MaxWidth &&
		c.MinHeight >= 0 && c.MinHeight <= c.MaxHeight
}

func (c Constraints) String() string {
	return fmt.Sprintf("Constraints(w: %s, h: %s)", axisString(c.MinWidth, c.MaxWidth), axisString(c.MinHeight, c.MaxHeight))
}

func axisString(lo, hi float64) string {
	if lo >= hi {
		return fmt.Sprintf("=%g", hi)
	}
	if hi >= math.MaxFloat64 {
		return fmt.Sprintf("%g..inf", lo)
	}
	return fmt.Sprintf("%g..%g", lo, hi)
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
