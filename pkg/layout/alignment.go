package layout

import (
	"fmt"

	"github.com/go-drift/animatedsize/pkg/graphics"
)

// TextDirection decides which horizontal edge is the start edge.
type TextDirection int

const (
	// TextDirectionLTR places the start edge on the left.
	TextDirectionLTR TextDirection = iota
	// TextDirectionRTL places the start edge on the right.
	TextDirectionRTL
)

func (d TextDirection) String() string {
	switch d {
	case TextDirectionLTR:
		return "ltr"
	case TextDirectionRTL:
		return "rtl"
	default:
		return fmt.Sprintf("TextDirection(%d)", int(d))
	}
}

// ParseTextDirection accepts "ltr" or "rtl".
func ParseTextDirection(s string) (TextDirection, bool) {
	switch s {
	case "ltr":
		return TextDirectionLTR, true
	case "rtl":
		return TextDirectionRTL, true
	}
	return TextDirectionLTR, false
}

// AlignmentGeometry is an alignment that may depend on text direction.
type AlignmentGeometry interface {
	Resolve(direction TextDirection) Alignment
}

// Alignment is a point within a rectangle. X and Y run from -1 (left/top)
// through 0 (center) to 1 (right/bottom).
type Alignment struct {
	X float64
	Y float64
}

var (
	AlignmentTopLeft      = Alignment{X: -1, Y: -1}
	AlignmentTopCenter    = Alignment{X: 0, Y: -1}
	AlignmentTopRight     = Alignment{X: 1, Y: -1}
	AlignmentCenterLeft   = Alignment{X: -1, Y: 0}
	AlignmentCenter       = Alignment{X: 0, Y: 0}
	AlignmentCenterRight  = Alignment{X: 1, Y: 0}
	AlignmentBottomLeft   = Alignment{X: -1, Y: 1}
	AlignmentBottomCenter = Alignment{X: 0, Y: 1}
	AlignmentBottomRight  = Alignment{X: 1, Y: 1}
)

// Resolve returns a unchanged; absolute alignments ignore text direction.
func (a Alignment) Resolve(TextDirection) Alignment {
	return a
}

// AlongSize returns the offset of a child of size child placed in container.
// The offset is negative on an axis where the child is larger.
func (a Alignment) AlongSize(container, child graphics.Size) graphics.Offset {
	halfW := (container.Width - child.Width) / 2
	halfH := (container.Height - child.Height) / 2
	return graphics.Offset{
		X: halfW + a.X*halfW,
		Y: halfH + a.Y*halfH,
	}
}

// WithinRect returns the top-left position of a child of the given size
// aligned inside rect.
func (a Alignment) WithinRect(rect graphics.Rect, child graphics.Size) graphics.Offset {
	return a.AlongSize(rect.Size(), child).Add(rect.TopLeft())
}

func (a Alignment) String() string {
	for name, named := range namedAlignments {
		if named == AlignmentGeometry(a) {
			return name
		}
	}
	return fmt.Sprintf("Alignment(%g, %g)", a.X, a.Y)
}

// AlignmentDirectional is an alignment whose horizontal component is
// measured from the start edge given by the text direction.
type AlignmentDirectional struct {
	Start float64
	Y     float64
}

var (
	AlignmentTopStart    = AlignmentDirectional{Start: -1, Y: -1}
	AlignmentTopEnd      = AlignmentDirectional{Start: 1, Y: -1}
	AlignmentCenterStart = AlignmentDirectional{Start: -1, Y: 0}
	AlignmentCenterEnd   = AlignmentDirectional{Start: 1, Y: 0}
	AlignmentBottomStart = AlignmentDirectional{Start: -1, Y: 1}
	AlignmentBottomEnd   = AlignmentDirectional{Start: 1, Y: 1}
)

// Resolve maps the start edge onto left or right.
func (a AlignmentDirectional) Resolve(direction TextDirection) Alignment {
	if direction == TextDirectionRTL {
		return Alignment{X: -a.Start, Y: a.Y}
	}
	return Alignment{X: a.Start, Y: a.Y}
}

var namedAlignments = map[string]AlignmentGeometry{
	"topLeft":      AlignmentTopLeft,
	"topCenter":    AlignmentTopCenter,
	"topRight":     AlignmentTopRight,
	"centerLeft":   AlignmentCenterLeft,
	"center":       AlignmentCenter,
	"centerRight":  AlignmentCenterRight,
	"bottomLeft":   AlignmentBottomLeft,
	"bottomCenter": AlignmentBottomCenter,
	"bottomRight":  AlignmentBottomRight,
	"topStart":     AlignmentTopStart,
	"topEnd":       AlignmentTopEnd,
	"centerStart":  AlignmentCenterStart,
	"centerEnd":    AlignmentCenterEnd,
	"bottomStart":  AlignmentBottomStart,
	"bottomEnd":    AlignmentBottomEnd,
}

// AlignmentByName looks up a named alignment such as "center" or "topStart".
func AlignmentByName(name string) (AlignmentGeometry, bool) {
	a, ok := namedAlignments[name]
	return a, ok
}
