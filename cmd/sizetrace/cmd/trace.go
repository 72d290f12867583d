package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-drift/animatedsize/cmd/sizetrace/internal/scenario"
	"github.com/go-drift/animatedsize/pkg/widgets"
)

const traceUsage = "sizetrace trace [--offsets] <scenario.yaml>"

func init() {
	RegisterCommand(&Command{
		Name:  "trace",
		Short: "Print the box state for every frame",
		Long: `Replay a scenario and print one line per frame.

Each line shows the frame index, the scenario time, the child's size, the
state of the size state machine, the box's own size, and whether the child
overflows the box or an animation is running.

Flags:
  --offsets   Also print the child's offset inside the box`,
		Usage: traceUsage,
		Run:   runTrace,
	})
}

type traceOptions struct {
	offsets bool
}

func parseTraceArgs(args []string) ([]string, traceOptions) {
	var opts traceOptions
	var filtered []string
	for _, arg := range args {
		switch arg {
		case "--offsets":
			opts.offsets = true
		default:
			filtered = append(filtered, arg)
		}
	}
	return filtered, opts
}

func runTrace(args []string) error {
	positional, opts := parseTraceArgs(args)
	path, err := scenarioArg(positional, traceUsage)
	if err != nil {
		return err
	}

	s, err := scenario.Load(path)
	if err != nil {
		return err
	}

	frames := scenario.Run(s, scenario.Options{})
	fmt.Fprintf(stdout, "Scenario: %s (%d frames, duration %v, curve %s, clip %s)\n",
		s.Name, len(frames), s.Duration, s.CurveName, s.Clip)
	fmt.Fprintln(stdout)
	writeTrace(stdout, frames, opts)
	return nil
}

func writeTrace(w io.Writer, frames []scenario.Frame, opts traceOptions) {
	header := fmt.Sprintf("%5s  %-8s  %-10s  %-8s  %-10s  %-8s  %s", "frame", "time", "child", "state", "size", "overflow", "animating")
	if opts.offsets {
		header += "  offset"
	}
	fmt.Fprintln(w, strings.TrimRight(header, " "))

	for _, f := range frames {
		line := fmt.Sprintf("%5d  %-8v  %-10s  %s  %-10s  %-8s  %s",
			f.Index,
			f.Time,
			f.ChildSize,
			stateLabel(f.State),
			f.Size,
			flag(f.Overflow),
			flag(f.Animating),
		)
		if opts.offsets {
			line += fmt.Sprintf("  (%g, %g)", f.ChildOffset.X, f.ChildOffset.Y)
		}
		if f.Ended {
			line += "  end"
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func flag(v bool) string {
	if v {
		return "yes"
	}
	return "-"
}

// stateLabel pads the state name to a fixed width, colouring it when output
// is a terminal.
func stateLabel(state widgets.AnimatedSizeState) string {
	label := fmt.Sprintf("%-8s", state)
	if !useColor {
		return label
	}
	code := "0"
	switch state {
	case widgets.StateStart:
		code = "2"
	case widgets.StateStable:
		code = "32"
	case widgets.StateChanged:
		code = "33"
	case widgets.StateUnstable:
		code = "31"
	}
	return "\x1b[" + code + "m" + label + "\x1b[0m"
}
