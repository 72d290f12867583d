package graphics

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// ImageCanvas rasterizes drawing commands into an RGBA image.
//
// It supports the subset of Canvas used by layout debugging tools:
// translation, rectangular clips and rectangle fills. Fills are
// anti-aliased by the vector rasterizer; hard-edge clips snap to whole
// pixels.
type ImageCanvas struct {
	dst   *image.RGBA
	z     *vector.Rasterizer
	state canvasState
	stack []canvasState
}

type canvasState struct {
	dx, dy float64
	clip   Rect
}

// NewImageCanvas creates a canvas backed by a new transparent image.
func NewImageCanvas(width, height int) *ImageCanvas {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	return &ImageCanvas{
		dst: dst,
		z:   vector.NewRasterizer(width, height),
		state: canvasState{
			clip: RectFromLTWH(0, 0, float64(width), float64(height)),
		},
	}
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.dst
}

// Clear fills the whole image with col, ignoring transform and clip.
func (c *ImageCanvas) Clear(col Color) {
	draw.Draw(c.dst, c.dst.Bounds(), &image.Uniform{C: col.NRGBA()}, image.Point{}, draw.Src)
}

func (c *ImageCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *ImageCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *ImageCanvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

func (c *ImageCanvas) ClipRect(rect Rect, antiAlias bool) {
	device := rect.Translate(c.state.dx, c.state.dy)
	if !antiAlias {
		device = Rect{
			Left:   math.Round(device.Left),
			Top:    math.Round(device.Top),
			Right:  math.Round(device.Right),
			Bottom: math.Round(device.Bottom),
		}
	}
	c.state.clip = c.state.clip.Intersect(device)
}

func (c *ImageCanvas) DrawRect(rect Rect, paint Paint) {
	area := rect.Translate(c.state.dx, c.state.dy).Intersect(c.state.clip)
	if area.IsEmpty() {
		return
	}
	b := c.dst.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(float32(area.Left), float32(area.Top))
	c.z.LineTo(float32(area.Right), float32(area.Top))
	c.z.LineTo(float32(area.Right), float32(area.Bottom))
	c.z.LineTo(float32(area.Left), float32(area.Bottom))
	c.z.ClosePath()
	c.z.Draw(c.dst, b, &image.Uniform{C: paintColor(paint)}, image.Point{})
}

func (c *ImageCanvas) Size() Size {
	b := c.dst.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// paintColor folds the paint alpha into its color. A zero Alpha means opaque.
func paintColor(p Paint) color.NRGBA {
	col := p.Color.NRGBA()
	if p.Alpha > 0 && p.Alpha < 1 {
		col.A = uint8(math.Round(float64(col.A) * p.Alpha))
	}
	return col
}
