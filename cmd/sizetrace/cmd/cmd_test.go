package cmd

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/go-drift/animatedsize/pkg/widgets"
)

const growScenario = `version: v1.0.0
animator:
  duration: 100ms
frame: 25ms
steps:
  - size: [100, 40]
  - size: 200x80
    frames: 5
`

func writeScenario(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := ExecuteArgs(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestTrace(t *testing.T) {
	path := writeScenario(t, "grow.yaml", growScenario)

	out, errOut, err := execute(t, "trace", path)
	if err != nil {
		t.Fatalf("trace: %v\nstderr: %s", err, errOut)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "Scenario: grow (6 frames, duration 100ms, curve linear, clip hardEdge)" {
		t.Errorf("summary = %q", lines[0])
	}

	var got [][]string
	for _, line := range lines[2:] {
		got = append(got, strings.Fields(line))
	}
	want := [][]string{
		{"frame", "time", "child", "state", "size", "overflow", "animating"},
		{"0", "0s", "100x40", "stable", "100x40", "-", "-"},
		{"1", "25ms", "200x80", "changed", "100x40", "yes", "yes"},
		{"2", "50ms", "200x80", "stable", "125x50", "yes", "yes"},
		{"3", "75ms", "200x80", "stable", "150x60", "yes", "yes"},
		{"4", "100ms", "200x80", "stable", "175x70", "yes", "yes"},
		{"5", "125ms", "200x80", "stable", "200x80", "-", "-", "end"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("colour codes written to a non-terminal")
	}
}

func TestTrace_Offsets(t *testing.T) {
	path := writeScenario(t, "grow.yaml", growScenario)

	out, _, err := execute(t, "trace", "--offsets", path)
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if !strings.Contains(out, "(-50, -20)") {
		t.Errorf("missing centered child offset in:\n%s", out)
	}
}

func TestTrace_ConfigError(t *testing.T) {
	path := writeScenario(t, "bad.yaml", "version: v1\nanimator: {curve: wobble}\nsteps:\n  - size: 1x1\n")

	_, errOut, err := execute(t, "trace", path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(errOut, "[drift error] scenario.Load:") || !strings.Contains(errOut, "animator.curve") {
		t.Errorf("stderr = %q", errOut)
	}

	_, errOut, _ = execute(t, "-v", "trace", path)
	if !strings.Contains(errOut, "[config]") || !strings.Contains(errOut, "path="+path) {
		t.Errorf("verbose stderr = %q", errOut)
	}
}

func TestTrace_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no file", []string{"trace"}, "exactly one scenario file"},
		{"two files", []string{"trace", "a.yaml", "b.yaml"}, "exactly one scenario file"},
		{"unknown flag", []string{"trace", "--fast", "a.yaml"}, "unknown flag --fast"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errOut, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
			if !strings.HasPrefix(errOut, "Error: ") {
				t.Errorf("stderr = %q", errOut)
			}
		})
	}
}

func TestRender_Formats(t *testing.T) {
	path := writeScenario(t, "grow.yaml", growScenario)
	decoders := map[string]func(*os.File) (image.Image, error){
		"strip.png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"strip.bmp":  func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"strip.tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}

	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), name)
			out, errOut, err := execute(t, "render", path, "-o", outPath, "--columns", "3")
			if err != nil {
				t.Fatalf("render: %v\nstderr: %s", err, errOut)
			}
			if !strings.Contains(out, "6 frames") {
				t.Errorf("stdout = %q", out)
			}

			f, err := os.Open(outPath)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()
			img, err := decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			// Three columns and two rows of 216x96 cells.
			if got := img.Bounds().Size(); got != image.Pt(3*216, 2*96) {
				t.Errorf("size = %v, want %v", got, image.Pt(3*216, 2*96))
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	path := writeScenario(t, "grow.yaml", growScenario)
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing output", []string{"render", path}, "output file is required"},
		{"dangling output", []string{"render", path, "-o"}, "-o requires a file path"},
		{"gif", []string{"render", path, "-o", filepath.Join(dir, "x.gif")}, "unsupported output format"},
		{"zero columns", []string{"render", path, "-o", filepath.Join(dir, "x.png"), "--columns", "0"}, "invalid --columns"},
		{"bad background", []string{"render", path, "-o", filepath.Join(dir, "x.png"), "--background", "teal"}, "invalid --background"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestRender_TooLarge(t *testing.T) {
	path := writeScenario(t, "huge.yaml", `version: v1
constraints: {maxWidth: 4096, maxHeight: 4096}
steps:
  - size: 4096x4096
    frames: 10
`)
	outPath := filepath.Join(t.TempDir(), "huge.png")

	_, errOut, err := execute(t, "render", path, "-o", outPath)
	if err == nil || !strings.Contains(err.Error(), "filmstrip too large") {
		t.Fatalf("err = %v, want filmstrip too large", err)
	}
	if !strings.HasPrefix(errOut, "Error: ") {
		t.Errorf("stderr = %q", errOut)
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Errorf("output written despite error: %v", err)
	}
}

func TestTrace_RejectsUnboundedSizes(t *testing.T) {
	path := writeScenario(t, "inf.yaml", "version: v1\nsteps:\n  - size: infx10\n")

	_, errOut, err := execute(t, "trace", path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(errOut, "steps[0].size") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestExecute_Global(t *testing.T) {
	out, _, err := execute(t, "--version")
	if err != nil || !strings.HasPrefix(out, "sizetrace version "+Version) {
		t.Errorf("--version: %q, %v", out, err)
	}

	out, _, err = execute(t)
	if err != nil || !strings.Contains(out, "Commands:") || !strings.Contains(out, "trace") || !strings.Contains(out, "render") {
		t.Errorf("help: %q, %v", out, err)
	}

	out, _, err = execute(t, "trace", "--help")
	if err != nil || !strings.Contains(out, traceUsage) {
		t.Errorf("trace --help: %q, %v", out, err)
	}

	_, errOut, err := execute(t, "animate")
	if err == nil || !strings.Contains(errOut, `unknown command "animate"`) {
		t.Errorf("unknown command: %q, %v", errOut, err)
	}
}

func TestStateLabel_Color(t *testing.T) {
	useColor = true
	defer func() { useColor = false }()

	got := stateLabel(widgets.StateUnstable)
	if got != "\x1b[31munstable\x1b[0m" {
		t.Errorf("stateLabel = %q", got)
	}
	if got := stateLabel(widgets.StateStable); got != "\x1b[32mstable  \x1b[0m" {
		t.Errorf("stateLabel = %q", got)
	}
}
