package cmd

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/go-drift/animatedsize/cmd/sizetrace/internal/scenario"
	"github.com/go-drift/animatedsize/pkg/graphics"
)

const renderUsage = "sizetrace render <scenario.yaml> -o <out.png|out.bmp|out.tiff> [--columns N] [--background COLOR]"

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render every frame into a filmstrip image",
		Long: `Replay a scenario and paint each frame into one cell of a filmstrip.

The box's own bounds are shaded light grey behind the child, so clipping
and overflow are visible. The image format follows the output extension:
.png, .bmp, .tif or .tiff.

Flags:
  -o, --output FILE     Output image (required)
  --columns N           Cells per row (default 8)
  --background COLOR    Background as #RRGGBB or #AARRGGBB (default white)`,
		Usage: renderUsage,
		Run:   runRender,
	})
}

type renderOptions struct {
	output     string
	columns    int
	background string
}

func parseRenderArgs(args []string) ([]string, renderOptions, error) {
	var opts renderOptions
	var filtered []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 >= len(args) {
				return nil, opts, fmt.Errorf("%s requires a file path", args[i])
			}
			opts.output = args[i+1]
			i++
		case "--columns":
			if i+1 >= len(args) {
				return nil, opts, fmt.Errorf("--columns requires a number")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n <= 0 {
				return nil, opts, fmt.Errorf("invalid --columns %q: must be a positive integer", args[i+1])
			}
			opts.columns = n
			i++
		case "--background":
			if i+1 >= len(args) {
				return nil, opts, fmt.Errorf("--background requires a color")
			}
			opts.background = args[i+1]
			i++
		default:
			filtered = append(filtered, args[i])
		}
	}
	return filtered, opts, nil
}

func runRender(args []string) error {
	positional, opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	path, err := scenarioArg(positional, renderUsage)
	if err != nil {
		return err
	}
	if opts.output == "" {
		return fmt.Errorf("output file is required\n\nUsage: %s", renderUsage)
	}
	encode, err := encoderFor(opts.output)
	if err != nil {
		return err
	}

	filmstrip := scenario.DefaultFilmstripOptions()
	if opts.columns > 0 {
		filmstrip.Columns = opts.columns
	}
	if opts.background != "" {
		bg, err := graphics.ParseColor(opts.background)
		if err != nil {
			return fmt.Errorf("invalid --background: %w", err)
		}
		filmstrip.Background = bg
	}

	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	frames := scenario.Run(s, scenario.Options{RecordPaint: true})
	img, err := scenario.Filmstrip(frames, filmstrip)
	if err != nil {
		return err
	}

	if err := writeImage(opts.output, img, encode); err != nil {
		return err
	}
	b := img.Bounds()
	fmt.Fprintf(stdout, "Wrote %s (%d frames, %dx%d)\n", opts.output, len(frames), b.Dx(), b.Dy())
	return nil
}

type encodeFunc func(io.Writer, image.Image) error

func encoderFor(path string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (use .png, .bmp or .tiff)", filepath.Ext(path))
	}
}

func writeImage(path string, img image.Image, encode encodeFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
