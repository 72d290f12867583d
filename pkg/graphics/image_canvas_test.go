package graphics

import "testing"

func TestImageCanvas_DrawRectFills(t *testing.T) {
	c := NewImageCanvas(10, 10)
	c.DrawRect(RectFromLTWH(2, 2, 4, 4), FillPaint(ColorRed))

	img := c.Image()
	if got := img.RGBAAt(3, 3); got.R != 0xFF || got.A != 0xFF {
		t.Fatalf("expected red inside rect, got %+v", got)
	}
	if got := img.RGBAAt(8, 8); got.A != 0 {
		t.Fatalf("expected transparent outside rect, got %+v", got)
	}
}

func TestImageCanvas_ClipRectLimitsDrawing(t *testing.T) {
	c := NewImageCanvas(10, 10)
	c.Save()
	c.ClipRect(RectFromLTWH(0, 0, 5, 10), false)
	c.DrawRect(RectFromLTWH(0, 0, 10, 10), FillPaint(ColorBlue))
	c.Restore()

	img := c.Image()
	if got := img.RGBAAt(2, 5); got.B != 0xFF {
		t.Fatalf("expected blue inside clip, got %+v", got)
	}
	if got := img.RGBAAt(7, 5); got.A != 0 {
		t.Fatalf("expected nothing outside clip, got %+v", got)
	}
}

func TestImageCanvas_RestoreDropsClipAndTranslate(t *testing.T) {
	c := NewImageCanvas(10, 10)
	c.Save()
	c.Translate(5, 5)
	c.ClipRect(RectFromLTWH(0, 0, 1, 1), false)
	c.Restore()

	c.DrawRect(RectFromLTWH(0, 0, 2, 2), FillPaint(ColorGreen))
	if got := c.Image().RGBAAt(0, 0); got.G != 0xFF {
		t.Fatalf("expected restored state to draw at origin, got %+v", got)
	}
}

func TestClip_StringRoundTrip(t *testing.T) {
	for _, c := range []Clip{ClipNone, ClipHardEdge, ClipAntiAlias, ClipAntiAliasWithSaveLayer} {
		got, ok := ParseClip(c.String())
		if !ok || got != c {
			t.Errorf("ParseClip(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseClip("rounded"); ok {
		t.Error("expected unknown clip name to be rejected")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#FF0000", ColorRed, true},
		{"0x8000FF00", Color(0x8000FF00), true},
		{"#ff0000ff", Color(0xFF0000FF), true},
		{"red", 0, false},
		{"#12345", 0, false},
		{"#GGGGGG", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q) error = %v, wantOK %v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if ColorRed.String() != "0xFFFF0000" {
		t.Errorf("unexpected string %q", ColorRed.String())
	}
}
