// Package app implements the passgen command line: one-shot generation and an
// interactive shell over a generator session.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/generator"
)

const (
	AppName   = "Password Generator"
	Developer = "r-liner"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "1.4.0"

// Dependencies are the process-level collaborators of the CLI.
type Dependencies struct {
	In        io.Reader
	Out       io.Writer
	ErrOut    io.Writer
	Clipboard clipboard.Clipboard
	// Exit replaces os.Exit after kong prints help; tests set it.
	Exit func(int)
}

// CLI is the kong command tree.
type CLI struct {
	EnvFile  string `name:"env-file" help:"Path to .env file"`
	LogLevel string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Diagnostic log level (${enum})"`

	Generate    GenerateCmd    `cmd:"" help:"Generate passwords and print them"`
	Interactive InteractiveCmd `cmd:"" default:"withargs" help:"Start the interactive generator (default)"`
	Classes     ClassesCmd     `cmd:"" help:"List character classes"`
	About       AboutCmd       `cmd:"" help:"Show program information"`
	Version     VersionCmd     `cmd:"" help:"Show version information"`
}

type GenerateCmd struct {
	Length      *int   `short:"l" help:"Password length (default from preset or PASSGEN_DEFAULT_LENGTH)"`
	Digits      bool   `short:"d" help:"Include digits"`
	Lowercase   bool   `short:"o" help:"Include lowercase letters"`
	Uppercase   bool   `short:"u" help:"Include uppercase letters"`
	Punctuation bool   `short:"p" help:"Include punctuation"`
	All         bool   `short:"a" help:"Include every character class"`
	Count       int    `short:"n" default:"1" help:"Number of passwords"`
	Copy        bool   `short:"c" help:"Copy the last password to the clipboard"`
	Seed        string `help:"Seed for reproducible output"`
	Preset      string `help:"YAML preset with length and classes"`
}

type InteractiveCmd struct {
	Seed   string `help:"Seed for reproducible output"`
	Preset string `help:"YAML preset with starting length and classes"`
}

type (
	ClassesCmd struct{}
	AboutCmd   struct{}
	VersionCmd struct{}
)

// Run parses args, executes the command and returns the exit code.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)

	var cli CLI
	opts := []kong.Option{
		kong.Name("passgen"),
		kong.Description("Generate random passwords from selected character classes."),
		kong.Writers(deps.Out, deps.ErrOut),
		kong.UsageOnError(),
	}
	if deps.Exit != nil {
		opts = append(opts, kong.Exit(deps.Exit))
	}

	parser, err := kong.New(&cli, opts...)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	command := ctx.Command()

	loadEnvFile(cli.EnvFile, deps.ErrOut)
	logger := newLogger(deps.ErrOut, cli.LogLevel)
	slog.SetDefault(logger)
	limits := config.LoadLimits()

	switch command {
	case "generate":
		return runGenerate(cli.Generate, deps, limits, logger)
	case "interactive":
		return runInteractive(cli.Interactive, deps, limits, logger)
	case "classes":
		return runClasses(deps.Out)
	case "about":
		return runAbout(deps.Out)
	case "version":
		fmt.Fprintf(deps.Out, "%s v%s\n", AppName, Version)
		return 0
	}

	fmt.Fprintln(deps.ErrOut, "unknown command")
	return 1
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.Detect()
	}
	return deps
}

func loadEnvFile(path string, errOut io.Writer) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			fmt.Fprintf(errOut, "Warning: failed to load env file %s: %v\n", path, err)
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(errOut, "Warning: failed to load .env: %v\n", err)
		}
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// newGenerator returns a seeded generator when seed is set.
func newGenerator(seed string) (*generator.Generator, error) {
	if seed == "" {
		return generator.NewRandom(), nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(seed), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q: must be an unsigned integer", seed)
	}
	return generator.NewSeeded(n), nil
}

func runClasses(out io.Writer) int {
	for _, c := range generator.Classes() {
		fmt.Fprintf(out, "%-12s %s\n", c.String(), c.Charset())
	}
	return 0
}

func runAbout(out io.Writer) int {
	fmt.Fprintf(out, "%s v%s\n", AppName, Version)
	fmt.Fprintf(out, "Developer GitHub: %s\n", Developer)
	return 0
}

func exitWithError(out io.Writer, err error) int {
	var parseErr *kong.ParseError
	if errors.As(err, &parseErr) {
		fmt.Fprintf(out, "passgen: %v\n", parseErr)
		return 2
	}
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}
