package graphics

// OpKind names a recorded drawing operation.
type OpKind string

const (
	OpSave      OpKind = "save"
	OpRestore   OpKind = "restore"
	OpTranslate OpKind = "translate"
	OpClipRect  OpKind = "clipRect"
	OpDrawRect  OpKind = "drawRect"
)

// DisplayOp is a single recorded canvas operation.
// Only the fields relevant to Kind are populated.
type DisplayOp struct {
	Kind      OpKind
	Rect      Rect
	Paint     Paint
	DX, DY    float64
	AntiAlias bool
}

func (op DisplayOp) execute(canvas Canvas) {
	switch op.Kind {
	case OpSave:
		canvas.Save()
	case OpRestore:
		canvas.Restore()
	case OpTranslate:
		canvas.Translate(op.DX, op.DY)
	case OpClipRect:
		canvas.ClipRect(op.Rect, op.AntiAlias)
	case OpDrawRect:
		canvas.DrawRect(op.Rect, op.Paint)
	}
}

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []DisplayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Ops returns a copy of the recorded operations.
func (d *DisplayList) Ops() []DisplayOp {
	out := make([]DisplayOp, len(d.ops))
	copy(out, d.ops)
	return out
}

// Count returns how many operations of the given kind were recorded.
func (d *DisplayList) Count(kind OpKind) int {
	n := 0
	for _, op := range d.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []DisplayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]DisplayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op DisplayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(DisplayOp{Kind: OpSave})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(DisplayOp{Kind: OpRestore})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(DisplayOp{Kind: OpTranslate, DX: dx, DY: dy})
}

func (c *recordingCanvas) ClipRect(rect Rect, antiAlias bool) {
	c.recorder.append(DisplayOp{Kind: OpClipRect, Rect: rect, AntiAlias: antiAlias})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(DisplayOp{Kind: OpDrawRect, Rect: rect, Paint: paint})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}
