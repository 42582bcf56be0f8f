package app

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/generator"
	"github.com/vaultpass/passgen/internal/session"
)

func runInteractive(cmd InteractiveCmd, deps Dependencies, limits config.Limits, log *slog.Logger) int {
	gen, err := newGenerator(cmd.Seed)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	s := session.New(gen, deps.Clipboard, limits, log)

	if cmd.Preset != "" {
		p, err := LoadPreset(cmd.Preset)
		if err != nil {
			return exitWithError(deps.ErrOut, err)
		}
		sel, err := p.Selection()
		if err != nil {
			return exitWithError(deps.ErrOut, err)
		}
		s.SetSelection(sel)
		if p.Length > 0 {
			s.SetLength(p.Length)
		}
	}

	fmt.Fprintf(deps.Out, "%s v%s (type 'help' for commands, 'quit' to exit)\n", AppName, Version)
	runShell(s, deps.In, deps.Out)
	return 0
}

// runShell reads commands until EOF or quit.
func runShell(s *session.Session, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "passgen> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if done := handleShellCommand(s, line, out); done {
			return
		}
	}
}

// handleShellCommand runs one line of input and reports whether to quit.
func handleShellCommand(s *session.Session, line string, out io.Writer) bool {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch cmd {
	case "quit", "exit", "q":
		return true

	case "help", "h", "?":
		printShellHelp(out)

	case "generate", "gen", "g":
		if err := s.Generate(); err != nil {
			fmt.Fprintln(out, session.Message(err))
			return false
		}
		fmt.Fprintln(out, s.Field())

	case "clear", "c":
		s.Clear()
		fmt.Fprintln(out, "Cleared.")

	case "copy", "cp":
		if s.Copy() {
			fmt.Fprintln(out, "Copied to clipboard.")
		} else {
			fmt.Fprintln(out, "Could not copy to clipboard.")
		}

	case "length", "len", "l":
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintln(out, session.MsgEmptyLength)
			return false
		}
		fmt.Fprintf(out, "Password length: %d\n", s.SetLength(n))

	case "toggle", "t", "on", "off":
		c, err := generator.ParseClass(arg)
		if err != nil {
			fmt.Fprintf(out, "Unknown class %q. Try: digits, lowercase, uppercase, punctuation\n", arg)
			return false
		}
		on := cmd == "on"
		switch cmd {
		case "toggle", "t":
			on = s.Toggle(c)
		default:
			s.SetClass(c, on)
		}
		fmt.Fprintf(out, "%s: %s\n", c, onOff(on))

	case "show", "status", "settings":
		printStatus(s, out)

	case "classes":
		runClasses(out)

	case "about":
		runAbout(out)

	default:
		fmt.Fprintf(out, "Unknown command %q. Type 'help' for commands.\n", cmd)
	}

	return false
}

func printStatus(s *session.Session, out io.Writer) {
	fmt.Fprintf(out, "Password length: %d\n", s.Length())
	sel := s.Selection()
	for _, c := range generator.Classes() {
		fmt.Fprintf(out, "  %-12s %s\n", c.String(), onOff(sel.Has(c)))
	}
	if f := s.Field(); f != "" {
		fmt.Fprintf(out, "Password: %s\n", f)
	}
}

func printShellHelp(out io.Writer) {
	fmt.Fprint(out, `Commands:
  generate, g        generate a password with the current settings
  clear, c           clear the password field
  copy, cp           copy the password field to the clipboard
  length N           set the password length (clamped to the allowed range)
  toggle CLASS       switch a class: digits, lowercase, uppercase, punctuation
  on CLASS, off CLASS
  show               show length, switches and the current password
  classes            list character classes
  about              program information
  quit, q            leave
`)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
