package widgets

import (
	"github.com/go-drift/animatedsize/pkg/graphics"
	"github.com/go-drift/animatedsize/pkg/layout"
)

// RenderSizedBox asks for a preferred size within its constraints.
//
// Without a child it is a leaf that reports its preferred size, which makes
// it the natural stand-in for content that grows and shrinks:
//
//	content := widgets.NewRenderSizedBox(graphics.Size{Width: 100, Height: 40})
//	animated.SetChild(content)
//	content.SetPreferredSize(graphics.Size{Width: 200, Height: 80})
//
// With a child the preferred size tightens the child's constraints on each
// axis that is non-zero; a zero axis takes the child's size.
type RenderSizedBox struct {
	layout.RenderBoxBase
	child     layout.RenderBox
	preferred graphics.Size
}

// NewRenderSizedBox creates a sized box with the given preferred size.
func NewRenderSizedBox(preferred graphics.Size) *RenderSizedBox {
	r := &RenderSizedBox{preferred: preferred}
	r.SetSelf(r)
	return r
}

// PreferredSize returns the size the box asks for.
func (r *RenderSizedBox) PreferredSize() graphics.Size {
	return r.preferred
}

// SetPreferredSize changes the requested size and schedules layout.
func (r *RenderSizedBox) SetPreferredSize(size graphics.Size) {
	if r.preferred == size {
		return
	}
	r.preferred = size
	r.MarkNeedsLayout()
}

// SetChild replaces the child render box.
func (r *RenderSizedBox) SetChild(child layout.RenderObject) {
	if r.child != nil && r.child != child {
		layout.DropChild(r.child)
	}
	r.child = nil
	if child != nil {
		r.child = child.(layout.RenderBox)
	}
	layout.SetParentOnChild(r.child, r)
	if owner := r.Owner(); owner != nil && r.child != nil {
		r.child.Attach(owner)
	}
}

func (r *RenderSizedBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *RenderSizedBox) Attach(owner *layout.PipelineOwner) {
	r.RenderBoxBase.Attach(owner)
	if r.child != nil {
		r.child.Attach(owner)
	}
}

func (r *RenderSizedBox) Detach() {
	r.RenderBoxBase.Detach()
	if r.child != nil {
		r.child.Detach()
	}
}

func (r *RenderSizedBox) PerformLayout() {
	constraints := r.Constraints()
	constrained := constraints.Constrain(r.preferred)

	if r.child == nil {
		r.SetSize(constrained)
		return
	}

	// Tighten only the axes with an explicit size
	childConstraints := constraints
	if r.preferred.Width > 0 {
		childConstraints.MinWidth = constrained.Width
		childConstraints.MaxWidth = constrained.Width
	}
	if r.preferred.Height > 0 {
		childConstraints.MinHeight = constrained.Height
		childConstraints.MaxHeight = constrained.Height
	}

	r.child.Layout(childConstraints, true)
	r.child.SetParentData(&layout.BoxParentData{})

	finalSize := r.child.Size()
	if r.preferred.Width > 0 {
		finalSize.Width = constrained.Width
	}
	if r.preferred.Height > 0 {
		finalSize.Height = constrained.Height
	}
	r.SetSize(constraints.Constrain(finalSize))
}

// ComputeDryLayout reports the size PerformLayout would choose.
func (r *RenderSizedBox) ComputeDryLayout(constraints layout.Constraints) graphics.Size {
	constrained := constraints.Constrain(r.preferred)
	if r.child == nil {
		return constrained
	}
	childConstraints := constraints
	if r.preferred.Width > 0 {
		childConstraints.MinWidth, childConstraints.MaxWidth = constrained.Width, constrained.Width
	}
	if r.preferred.Height > 0 {
		childConstraints.MinHeight, childConstraints.MaxHeight = constrained.Height, constrained.Height
	}
	size := layout.DryLayout(r.child, childConstraints)
	if r.preferred.Width > 0 {
		size.Width = constrained.Width
	}
	if r.preferred.Height > 0 {
		size.Height = constrained.Height
	}
	return constraints.Constrain(size)
}

func (r *RenderSizedBox) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *RenderSizedBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil && r.child.HitTest(position, result) {
		return true
	}
	result.Add(r)
	return true
}
