// Package cmd implements the sizetrace CLI commands.
//
// The root command dispatches to subcommands (trace, render, version) that
// replay a YAML scenario against an animated size box.
package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/go-drift/animatedsize/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "sizetrace",
	Short: "sizetrace - replay animated size scenarios",
	Long: `sizetrace drives an animated size box through a scripted sequence of
child sizes and reports what the box does on every frame.

Use "sizetrace <command> --help" for more information about a command.`,
	Usage: "sizetrace <command> [flags] <scenario.yaml>",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Output streams and global flags for the running command.
var (
	stdout   io.Writer = os.Stdout
	stderr   io.Writer = os.Stderr
	verbose  bool
	useColor bool
)

// Execute runs the CLI with the process arguments.
func Execute() error {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs the CLI with args, writing to out and errOut.
func ExecuteArgs(args []string, out, errOut io.Writer) error {
	stdout, stderr = out, errOut
	defer func() { stdout, stderr = os.Stdout, os.Stderr }()

	verbose = false
	noColor := os.Getenv("NO_COLOR") != ""

	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags
	var filteredArgs []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "sizetrace version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--verbose":
			verbose = true
		case "--no-color":
			noColor = true
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs
	useColor = !noColor && isTerminal(out)

	prev := errors.SetHandler(&errors.LogHandler{Verbose: verbose, Out: errOut})
	defer errors.SetHandler(prev)

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	err := cmd.Run(cmdArgs)
	if err != nil {
		report(err)
	}
	return err
}

// report prints err through the installed error handler when it is a
// structured error, and as a plain line otherwise.
func report(err error) {
	var driftErr *errors.DriftError
	if stderrors.As(err, &driftErr) {
		errors.Report(driftErr)
		return
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --verbose        Include stack traces in error output")
	fmt.Fprintln(stdout, "  --no-color           Never colour state names")
	fmt.Fprintln(stdout, "  --version            Show version information")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Environment:")
	fmt.Fprintln(stdout, "  NO_COLOR             Disable colour when set")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  sizetrace trace grow.yaml              Print one line per frame")
	fmt.Fprintln(stdout, "  sizetrace render grow.yaml -o grow.png Render a filmstrip")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}

// scenarioArg returns the single positional argument, rejecting unknown
// flags.
func scenarioArg(positional []string, usage string) (string, error) {
	for _, arg := range positional {
		if strings.HasPrefix(arg, "-") {
			return "", fmt.Errorf("unknown flag %s\n\nUsage: %s", arg, usage)
		}
	}
	if len(positional) != 1 {
		return "", fmt.Errorf("exactly one scenario file is required\n\nUsage: %s", usage)
	}
	return positional[0], nil
}
