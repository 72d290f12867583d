package layout

import (
	"github.com/go-drift/animatedsize/pkg/graphics"
)

// HitTestResult collects hit test entries in paint order.
type HitTestResult struct {
	Entries []RenderObject
}

// Add inserts a render object into the hit test result list.
func (h *HitTestResult) Add(target RenderObject) {
	h.Entries = append(h.Entries, target)
}

// PaintContext provides the canvas for painting render objects.
//
// The context tracks the accumulated paint offset and a stack of clip
// rectangles in root coordinates so children entirely outside the current
// clip are skipped.
type PaintContext struct {
	Canvas graphics.Canvas

	origin    graphics.Offset
	clipStack []graphics.Rect
}

// NewPaintContext creates a context painting onto canvas.
func NewPaintContext(canvas graphics.Canvas) *PaintContext {
	return &PaintContext{Canvas: canvas}
}

// PaintChild paints a child render box at the given offset.
func (p *PaintContext) PaintChild(child RenderBox, offset graphics.Offset) {
	if child == nil {
		return
	}
	bounds := graphics.RectFromOffsetAndSize(p.origin.Add(offset), child.Size())
	if clip, ok := p.CurrentClip(); ok && !bounds.Overlaps(clip) {
		return
	}

	saved := p.origin
	p.origin = p.origin.Add(offset)
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
	p.origin = saved
}

// PushClipRect records a clip in local coordinates for culling. It does not
// touch the canvas; pair it with Canvas.ClipRect or use PaintClipRect.
func (p *PaintContext) PushClipRect(rect graphics.Rect) {
	global := rect.Translate(p.origin.X, p.origin.Y)
	if current, ok := p.CurrentClip(); ok {
		global = global.Intersect(current)
	}
	p.clipStack = append(p.clipStack, global)
}

// PopClipRect removes the most recent clip pushed with PushClipRect.
func (p *PaintContext) PopClipRect() {
	if len(p.clipStack) == 0 {
		return
	}
	p.clipStack = p.clipStack[:len(p.clipStack)-1]
}

// CurrentClip returns the active culling clip in root coordinates.
func (p *PaintContext) CurrentClip() (graphics.Rect, bool) {
	if len(p.clipStack) == 0 {
		return graphics.Rect{}, false
	}
	return p.clipStack[len(p.clipStack)-1], true
}

// PaintClipRect runs painter with drawing restricted to rect (in local
// coordinates). With graphics.ClipNone the painter runs unclipped.
// Anti-aliased clips with a save layer are painted as plain anti-aliased
// clips; this context does not composite layers.
func (p *PaintContext) PaintClipRect(clip graphics.Clip, rect graphics.Rect, painter func(*PaintContext)) {
	if clip == graphics.ClipNone {
		painter(p)
		return
	}
	p.Canvas.Save()
	p.Canvas.ClipRect(rect, clip != graphics.ClipHardEdge)
	p.PushClipRect(rect)
	painter(p)
	p.PopClipRect()
	p.Canvas.Restore()
}
