package scenario

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/go-drift/animatedsize/pkg/graphics"
)

// MaxFilmstripPixels bounds the size of a filmstrip image.
const MaxFilmstripPixels = 1 << 26

// ErrFilmstripTooLarge is returned when the cells would not fit in
// MaxFilmstripPixels.
var ErrFilmstripTooLarge = errors.New("filmstrip too large")

// FilmstripOptions controls the filmstrip layout.
type FilmstripOptions struct {
	// Columns is the number of cells per row. Zero means 8.
	Columns int
	// Padding surrounds each frame inside its cell. Zero means 8.
	Padding float64
	// Background fills the image behind the cells.
	Background graphics.Color
	// Bounds fills the animated box's own size in each cell, so clipping and
	// overflow are visible against it.
	Bounds graphics.Color
}

// DefaultFilmstripOptions returns the options the CLI renders with.
func DefaultFilmstripOptions() FilmstripOptions {
	return FilmstripOptions{
		Columns:    8,
		Padding:    8,
		Background: graphics.ColorWhite,
		Bounds:     graphics.RGB(0xEE, 0xEE, 0xEE),
	}
}

// Filmstrip replays the recorded paint of frames into a grid of cells, one
// per frame in order. Frames must come from Run with RecordPaint set; frames
// without a display list get an empty cell. It returns ErrFilmstripTooLarge
// rather than allocate more than MaxFilmstripPixels.
func Filmstrip(frames []Frame, opts FilmstripOptions) (*image.RGBA, error) {
	if opts.Columns <= 0 {
		opts.Columns = 8
	}
	if opts.Padding <= 0 {
		opts.Padding = 8
	}
	if len(frames) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0)), nil
	}

	var extent graphics.Size
	for _, f := range frames {
		extent.Width = math.Max(extent.Width, math.Max(f.Size.Width, f.ChildOffset.X+f.ChildSize.Width))
		extent.Height = math.Max(extent.Height, math.Max(f.Size.Height, f.ChildOffset.Y+f.ChildSize.Height))
	}
	cellW := math.Ceil(extent.Width + 2*opts.Padding)
	cellH := math.Ceil(extent.Height + 2*opts.Padding)

	columns := min(opts.Columns, len(frames))
	rows := (len(frames) + columns - 1) / columns
	width, height := cellW*float64(columns), cellH*float64(rows)
	if !(width*height <= MaxFilmstripPixels) {
		return nil, fmt.Errorf("%w: %.0fx%.0f exceeds %d pixels", ErrFilmstripTooLarge, width, height, MaxFilmstripPixels)
	}
	canvas := graphics.NewImageCanvas(int(width), int(height))
	canvas.Clear(opts.Background)

	for i, f := range frames {
		x := float64(i%columns) * cellW
		y := float64(i/columns) * cellH
		canvas.Save()
		canvas.ClipRect(graphics.RectFromLTWH(x, y, cellW, cellH), false)
		canvas.Translate(x+opts.Padding, y+opts.Padding)
		canvas.DrawRect(graphics.RectFromLTWH(0, 0, f.Size.Width, f.Size.Height), graphics.FillPaint(opts.Bounds))
		if f.Display != nil {
			f.Display.Paint(canvas)
		}
		canvas.Restore()
	}
	return canvas.Image(), nil
}
