package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rxritet/upwd/internal/cli"
	"github.com/rxritet/upwd/internal/config"
)

const afterHelp = `If you do not specify any of the
[-uppercase, -lowercase, -digits, -symbols, -others] flags,
then uppercase, lowercase letters and digits will be used.

Environment:
  UPWD_CONFIG     path of the config file
  UPWD_LOG_LEVEL  debug, info, warn or error (default warn)
`

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code:
// 0 on success, 1 on runtime errors, 2 on invalid flags.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("upwd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "upwd: generate random passwords")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage: upwd [flags]")
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, afterHelp)
	}

	opts, err := cli.ParseFlags(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	settings, err := config.ParseSettings()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	level := settings.Level()
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store := config.NewStore(settings.ConfigPath)

	if opts.Reset {
		if err := store.Reset(); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stderr, "Config reset to default values: %s\n", store.Path())
		return 0
	}

	// ParseFlags rejects -interactive combined with anything but -verbose,
	// which has already been applied to the logger.
	if opts.Interactive {
		opts = cli.RunInteractive(stdin, stderr)
	}

	cfg, err := store.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	logger.Debug("config loaded", slog.String("path", store.Path()))

	if err := cli.NewRunner(cfg, stdout, logger).Run(opts); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
