// Package cli turns command-line options into generated passwords: it parses
// flags, assembles the character pool from the configured classes, derives
// the password length and writes the results.
package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultLength is the password length when neither -length nor -entropy is given.
const DefaultLength = 12

var (
	// ErrConflictingFlags is returned when -length and -entropy are both set.
	ErrConflictingFlags = errors.New("-length and -entropy cannot be used together")
	// ErrInteractiveFlags is returned when -interactive is combined with
	// flags it would replace.
	ErrInteractiveFlags = errors.New("-interactive asks for all options and only combines with -verbose")
	// ErrUnexpectedArgs is returned for positional arguments.
	ErrUnexpectedArgs = errors.New("unexpected arguments")
)

// Options holds the parsed CLI flags.
type Options struct {
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
	Others    bool

	Length     int
	Entropy    float64
	HasEntropy bool // Entropy was given; Length is derived from it

	Count       int
	Info        bool
	Reset       bool
	Interactive bool
	Verbose     bool
}

// AnyClass reports whether at least one character class flag is set.
func (o Options) AnyClass() bool {
	return o.Uppercase || o.Lowercase || o.Digits || o.Symbols || o.Others
}

// ParseFlags registers and parses the flags on fs. Passing a dedicated
// FlagSet keeps tests independent of the global flag state.
func ParseFlags(fs *flag.FlagSet, args []string) (Options, error) {
	var opts Options

	fs.BoolVar(&opts.Uppercase, "uppercase", false, "Use UPPERCASE letters [A-Z]")
	fs.BoolVar(&opts.Uppercase, "u", false, "Use uppercase letters (shorthand)")

	fs.BoolVar(&opts.Lowercase, "lowercase", false, "Use lowercase letters [a-z]")
	fs.BoolVar(&opts.Lowercase, "l", false, "Use lowercase letters (shorthand)")

	fs.BoolVar(&opts.Digits, "digits", false, "Use digits [0-9]")
	fs.BoolVar(&opts.Digits, "d", false, "Use digits (shorthand)")

	fs.BoolVar(&opts.Symbols, "symbols", false, "Use special symbols [*&^%$#@!~]")
	fs.BoolVar(&opts.Symbols, "s", false, "Use special symbols (shorthand)")

	fs.BoolVar(&opts.Others, "others", false, "Use other symbols [♕♖♗♘♙♚...]")
	fs.BoolVar(&opts.Others, "o", false, "Use other symbols (shorthand)")

	fs.IntVar(&opts.Length, "length", DefaultLength, "Password length")
	fs.IntVar(&opts.Length, "L", DefaultLength, "Password length (shorthand)")

	fs.Float64Var(&opts.Entropy, "entropy", 0, "Minimum password entropy in bits (conflicts with -length)")
	fs.Float64Var(&opts.Entropy, "E", 0, "Minimum entropy (shorthand)")

	fs.IntVar(&opts.Count, "count", 1, "Number of passwords")
	fs.IntVar(&opts.Count, "c", 1, "Number of passwords (shorthand)")

	fs.BoolVar(&opts.Info, "info", false, "Print password information")
	fs.BoolVar(&opts.Info, "i", false, "Print password information (shorthand)")

	fs.BoolVar(&opts.Reset, "config", false, "Reset the config file to default values")
	fs.BoolVar(&opts.Interactive, "interactive", false, "Ask for the options on stdin")

	fs.BoolVar(&opts.Verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&opts.Verbose, "v", false, "Enable debug logging (shorthand)")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(fs.Args(), " "))
	}

	var lengthSet bool
	var overridden []string
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "length", "L":
			lengthSet = true
		case "entropy", "E":
			opts.HasEntropy = true
		}
		switch f.Name {
		case "interactive", "verbose", "v":
		default:
			overridden = append(overridden, "-"+f.Name)
		}
	})
	if lengthSet && opts.HasEntropy {
		return Options{}, ErrConflictingFlags
	}
	if opts.Interactive && len(overridden) > 0 {
		return Options{}, fmt.Errorf("%w: got %s", ErrInteractiveFlags, strings.Join(overridden, " "))
	}

	return opts, nil
}

// RunInteractive prompts for the options on r and echoes prompts to w.
// Empty or invalid answers keep the defaults. The result replaces every
// flag-derived option.
func RunInteractive(r io.Reader, w io.Writer) Options {
	scanner := bufio.NewScanner(r)
	opts := Options{Length: DefaultLength, Count: 1}

	fmt.Fprintln(w, "=== upwd (interactive mode) ===")
	fmt.Fprintln(w)

	opts.Length = promptInt(scanner, w, fmt.Sprintf("Password length [%d]: ", DefaultLength), DefaultLength)
	opts.Uppercase = promptYesNo(scanner, w, "Use UPPERCASE letters? [y/N]: ")
	opts.Lowercase = promptYesNo(scanner, w, "Use lowercase letters? [y/N]: ")
	opts.Digits = promptYesNo(scanner, w, "Use digits? [y/N]: ")
	opts.Symbols = promptYesNo(scanner, w, "Use special symbols? [y/N]: ")
	opts.Others = promptYesNo(scanner, w, "Use other symbols? [y/N]: ")
	opts.Count = promptInt(scanner, w, "How many passwords? [1]: ", 1)
	opts.Info = promptYesNo(scanner, w, "Print password information? [y/N]: ")

	fmt.Fprintln(w)
	return opts
}

// promptInt reads a positive number; fallback on empty or invalid input.
func promptInt(scanner *bufio.Scanner, w io.Writer, prompt string, fallback int) int {
	fmt.Fprint(w, prompt)
	if scanner.Scan() {
		if v, err := strconv.Atoi(strings.TrimSpace(scanner.Text())); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}

func promptYesNo(scanner *bufio.Scanner, w io.Writer, prompt string) bool {
	fmt.Fprint(w, prompt)
	if scanner.Scan() {
		return parseYesNo(scanner.Text())
	}
	return false
}

// parseYesNo returns true for "y" / "yes" (case-insensitive), false otherwise.
func parseYesNo(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	return s == "y" || s == "yes"
}
