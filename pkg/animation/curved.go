package animation

// CurvedAnimation reads a controller's linear value through an easing curve.
//
// The curve is applied at read time, so replacing Curve takes effect on the
// next Value call without disturbing the parent's progress.
type CurvedAnimation struct {
	Parent *AnimationController
	Curve  func(float64) float64
}

// Value returns the parent's value mapped through Curve.
// The bounds are passed through unchanged so a finished animation always
// lands exactly on its endpoint.
func (a *CurvedAnimation) Value() float64 {
	t := a.Parent.Value
	if a.Curve == nil || t <= 0 || t >= 1 {
		return t
	}
	return a.Curve(t)
}
