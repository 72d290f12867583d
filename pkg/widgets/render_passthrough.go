package widgets

import (
	"github.com/go-drift/animatedsize/pkg/graphics"
	"github.com/go-drift/animatedsize/pkg/layout"
)

// renderPassthrough provides shared passthrough render methods for single-child
// render objects that take their child's size and paint it at the origin.
type renderPassthrough struct {
	layout.RenderBoxBase
	child layout.RenderBox
}

func (r *renderPassthrough) SetChild(child layout.RenderObject) {
	if r.child != nil && r.child != child {
		layout.DropChild(r.child)
	}
	r.child = nil
	if child != nil {
		r.child = child.(layout.RenderBox)
	}
	layout.SetParentOnChild(r.child, r.Self())
	if owner := r.Owner(); owner != nil && r.child != nil {
		r.child.Attach(owner)
	}
}

func (r *renderPassthrough) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderPassthrough) Attach(owner *layout.PipelineOwner) {
	r.RenderBoxBase.Attach(owner)
	if r.child != nil {
		r.child.Attach(owner)
	}
}

func (r *renderPassthrough) Detach() {
	r.RenderBoxBase.Detach()
	if r.child != nil {
		r.child.Detach()
	}
}

func (r *renderPassthrough) PerformLayout() {
	constraints := r.Constraints()
	if r.child != nil {
		r.child.Layout(constraints, true)
		r.child.SetParentData(&layout.BoxParentData{})
		r.SetSize(r.child.Size())
	} else {
		r.SetSize(constraints.Smallest())
	}
}

func (r *renderPassthrough) ComputeDryLayout(constraints layout.Constraints) graphics.Size {
	if r.child != nil {
		return layout.DryLayout(r.child, constraints)
	}
	return constraints.Smallest()
}

func (r *renderPassthrough) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, graphics.Offset{})
	}
}

func (r *renderPassthrough) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if r.child != nil {
		return r.child.HitTest(position, result)
	}
	return false
}
