package graphics

import "fmt"

// Paint describes how shapes are filled.
type Paint struct {
	Color Color
	// Alpha is the overall opacity 0.0-1.0.
	Alpha float64
}

// DefaultPaint returns an opaque white fill.
func DefaultPaint() Paint {
	return Paint{Color: ColorWhite, Alpha: 1.0}
}

// FillPaint returns an opaque fill with the given color.
func FillPaint(c Color) Paint {
	return Paint{Color: c, Alpha: 1.0}
}

// Clip controls how a render object clips content that overflows its bounds.
type Clip int

const (
	// ClipNone paints overflow without clipping.
	ClipNone Clip = iota
	// ClipHardEdge clips without anti-aliasing. This is the fastest clip.
	ClipHardEdge
	// ClipAntiAlias clips with anti-aliased edges.
	ClipAntiAlias
	// ClipAntiAliasWithSaveLayer clips with anti-aliasing inside a save layer.
	ClipAntiAliasWithSaveLayer
)

// String returns the lower-case name of the clip behavior.
func (c Clip) String() string {
	switch c {
	case ClipNone:
		return "none"
	case ClipHardEdge:
		return "hardEdge"
	case ClipAntiAlias:
		return "antiAlias"
	case ClipAntiAliasWithSaveLayer:
		return "antiAliasWithSaveLayer"
	default:
		return fmt.Sprintf("Clip(%d)", int(c))
	}
}

// ParseClip maps a clip name as produced by String back to its value.
func ParseClip(name string) (Clip, bool) {
	for c := ClipNone; c <= ClipAntiAliasWithSaveLayer; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return ClipNone, false
}
