package widgets

import (
	"github.com/go-drift/animatedsize/pkg/graphics"
	"github.com/go-drift/animatedsize/pkg/layout"
)

// RenderColoredBox fills its bounds with a color and paints its child on top.
// It takes the size of its child.
type RenderColoredBox struct {
	renderPassthrough
	color graphics.Color
}

// NewRenderColoredBox creates a colored box around child. child may be nil.
func NewRenderColoredBox(color graphics.Color, child layout.RenderObject) *RenderColoredBox {
	r := &RenderColoredBox{color: color}
	r.SetSelf(r)
	r.SetChild(child)
	return r
}

// Color returns the fill color.
func (r *RenderColoredBox) Color() graphics.Color {
	return r.color
}

// SetColor changes the fill color and schedules a repaint.
func (r *RenderColoredBox) SetColor(color graphics.Color) {
	if r.color == color {
		return
	}
	r.color = color
	r.MarkNeedsPaint()
}

func (r *RenderColoredBox) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	if !size.IsEmpty() {
		ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), graphics.FillPaint(r.color))
	}
	r.renderPassthrough.Paint(ctx)
}

func (r *RenderColoredBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if !r.renderPassthrough.HitTest(position, result) {
		result.Add(r)
	}
	return true
}
