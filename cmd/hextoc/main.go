// Package main is the entry point for hextoc — embed binaries, not excuses.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/ancients-collective/hextoc/internal/cformat"
	"github.com/ancients-collective/hextoc/internal/config"
	"github.com/ancients-collective/hextoc/internal/input"
	"github.com/ancients-collective/hextoc/internal/output"
)

// version is set at build time via -ldflags. The default is a dev fallback
// for plain `go install` or `go run` usage.
var version = "1.0.0"

// Config holds all parsed CLI flag values plus the positional input path.
type Config struct {
	File      string
	Output    string
	Name      string
	Width     int
	HexFormat bool
	Preview   bool
	NoColor   bool
	Version   bool
}

// parseFlags parses command-line arguments into a Config using a dedicated
// FlagSet, keeping the global flag.CommandLine clean for testability.
// defaults carries values from the optional config file; built-in
// fallbacks apply where it is unset.
func parseFlags(args []string, defaults config.Defaults) (*Config, error) {
	defOutput := defaults.Output
	if defOutput == "" {
		defOutput = "out.txt"
	}
	defName := defaults.Name
	if defName == "" {
		defName = "buf"
	}
	defWidth := defaults.Width
	if defWidth == 0 {
		defWidth = 12
	}

	cfg := &Config{}
	fs := flag.NewFlagSet("hextoc", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.Output, "output", defOutput, "Output file path")
	fs.StringVar(&cfg.Output, "o", defOutput, "Output file path (shorthand)")
	fs.StringVar(&cfg.Name, "name", defName, "Array variable name")
	fs.StringVar(&cfg.Name, "n", defName, "Array variable name (shorthand)")
	fs.IntVar(&cfg.Width, "width", defWidth, "Bytes per line")
	fs.IntVar(&cfg.Width, "w", defWidth, "Bytes per line (shorthand)")
	fs.BoolVar(&cfg.HexFormat, "hex-format", defaults.HexFormat, "Use 0xHH array format instead of \\xHH strings")
	fs.BoolVar(&cfg.Preview, "preview", false, "Print the result to the terminal instead of writing a file")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.Version, "version", false, "Print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "  hextoc v%s — convert a binary file to a C unsigned char array\n", version)
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "  Usage: hextoc [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "  Options:\n")
		fmt.Fprintf(os.Stderr, "    -o,  --output <file>    Output file path (default: out.txt)\n")
		fmt.Fprintf(os.Stderr, "    -n,  --name <name>      Array variable name (default: buf)\n")
		fmt.Fprintf(os.Stderr, "    -w,  --width <n>        Bytes per line (default: 12)\n")
		fmt.Fprintf(os.Stderr, "         --hex-format       Use 0xHH array format instead of \\xHH strings\n")
		fmt.Fprintf(os.Stderr, "         --preview          Print the result, don't write a file\n")
		fmt.Fprintf(os.Stderr, "         --no-color         Disable colored output\n")
		fmt.Fprintf(os.Stderr, "         --version          Print version and exit\n")
		fmt.Fprintf(os.Stderr, "\n  Defaults can be set in $HEXTOC_CONFIG or ~/.hextoc.yaml.\n")
		fmt.Fprintf(os.Stderr, "\n  Examples:\n")
		fmt.Fprintf(os.Stderr, "    hextoc firmware.bin                   Write out.txt with array \"buf\"\n")
		fmt.Fprintf(os.Stderr, "    hextoc firmware.bin -o blob.h         Write to blob.h\n")
		fmt.Fprintf(os.Stderr, "    hextoc firmware.bin -n payload        Name the array \"payload\"\n")
		fmt.Fprintf(os.Stderr, "    hextoc firmware.bin -w 8              Eight bytes per line\n")
		fmt.Fprintf(os.Stderr, "    hextoc firmware.bin --hex-format      0x7F, 0x45, ... array style\n")
		fmt.Fprintf(os.Stderr, "    hextoc firmware.bin --preview         Inspect without writing\n")
		fmt.Fprintf(os.Stderr, "\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Version {
		return cfg, nil
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return nil, errors.New("missing required <file> argument")
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("unexpected extra arguments: %v", fs.Args()[1:])
	}
	cfg.File = fs.Arg(0)
	return cfg, nil
}

func main() {
	defaults, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ✗ %v\n", err)
		os.Exit(1)
	}
	cfg, err := parseFlags(os.Args[1:], defaults)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ✗ %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(cfg))
}

// Color helpers — each returns a sprint function.
var (
	cBold  = color.New(color.Bold).SprintFunc()
	cGreen = color.New(color.FgGreen).SprintFunc()
	cRed   = color.New(color.FgRed).SprintFunc()
	cDim   = color.New(color.Faint).SprintFunc()
)

// run executes the conversion with the given configuration and returns an
// exit code.
func run(cfg *Config) int {
	if cfg.Version {
		fmt.Fprintf(os.Stdout, "hextoc v%s\n", version)
		return 0
	}

	termWidth := setupTerminal(cfg)

	fmt.Fprintf(os.Stderr, "  %s Reading %s\n", cBold("▸"), cfg.File)
	data, err := input.Read(cfg.File)
	if err != nil {
		fail(err)
		return 1
	}
	fmt.Fprintf(os.Stderr, "    %s\n", cDim(fmt.Sprintf("%d byte(s) read", len(data))))

	opts := cformat.Options{
		Name:  cfg.Name,
		Width: cfg.Width,
		Style: cformat.StyleEscaped,
	}
	if cfg.HexFormat {
		opts.Style = cformat.StyleHexArray
	}

	text, err := cformat.Render(data, opts)
	if err != nil {
		fail(err)
		return 1
	}

	if cfg.Preview {
		fmt.Fprintf(os.Stderr, "\n  %s Preview (not written):\n", cBold("▸"))
		output.Preview(os.Stdout, text, termWidth)
	} else {
		if err := output.WriteFile(cfg.Output, text); err != nil {
			fail(err)
			return 1
		}
	}

	summary(cfg, opts, len(data))
	return 0
}

// setupTerminal configures color and returns the terminal width (0 when
// stdout is not a terminal). Color is disabled when requested, when the
// terminal is dumb, or when stdout is not a terminal at all.
func setupTerminal(cfg *Config) int {
	termWidth := 0
	fd := int(os.Stdout.Fd())
	isTTY := term.IsTerminal(fd)
	if isTTY {
		if tw, _, err := term.GetSize(fd); err == nil && tw > 0 {
			termWidth = tw
		}
	}
	if cfg.NoColor || !isTTY || output.IsDumbTerm() {
		color.NoColor = true
	}
	return termWidth
}

// fail reports a terminal error to the operator. Every failure in this
// tool aborts the run; there is no retry path.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "  %s %v\n", cRed("✗"), err)
}

// summary prints the closing report: bytes read, array identity, and
// where the result went.
func summary(cfg *Config, opts cformat.Options, n int) {
	dest := cfg.Output
	if cfg.Preview {
		dest = "preview only, nothing written"
	}
	fmt.Fprintf(os.Stderr, "\n  %s Done: %s[%s] — %s\n",
		cGreen("✓"),
		cBold(opts.Name),
		fmt.Sprintf("%d byte(s)", n),
		dest)
}
