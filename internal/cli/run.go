package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rxritet/upwd/internal/entropy"
	"github.com/rxritet/upwd/internal/generator"
)

// Limits on a single invocation. Password length is bounded by
// generator.MaxLength.
const (
	MaxCount       = 1 << 16
	MaxOutputChars = 1 << 24 // count × length
)

var (
	// ErrInvalidCount is returned when fewer than one password is requested.
	ErrInvalidCount = errors.New("count must be at least 1")
	// ErrCountTooLarge is returned for counts above MaxCount.
	ErrCountTooLarge = fmt.Errorf("count must not exceed %d", MaxCount)
	// ErrInvalidLength is returned for a negative -length.
	ErrInvalidLength = errors.New("length must not be negative")
	// ErrOutputTooLarge is returned when count × length exceeds MaxOutputChars.
	ErrOutputTooLarge = fmt.Errorf("count × length must not exceed %d characters", MaxOutputChars)
)

// Runner generates passwords for a set of Options.
type Runner struct {
	Classes   Classes
	Out       io.Writer
	Logger    *slog.Logger
	Generator *generator.Generator // nil uses crypto/rand
}

// NewRunner creates a Runner writing to out.
func NewRunner(classes Classes, out io.Writer, logger *slog.Logger) *Runner {
	return &Runner{
		Classes:   classes,
		Out:       out,
		Logger:    logger,
		Generator: generator.New(nil),
	}
}

// Run validates opts, generates opts.Count passwords and writes them one
// per line, followed by the info line if requested. Everything is checked
// and generated before the first byte is written, so a failure never leaves
// partial output behind.
func (r *Runner) Run(opts Options) error {
	log := r.logger()

	if opts.Count < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, opts.Count)
	}
	if opts.Count > MaxCount {
		return fmt.Errorf("%w: got %d", ErrCountTooLarge, opts.Count)
	}

	p, err := Collect(opts, r.Classes)
	if err != nil {
		return err
	}
	log.Debug("pool assembled", slog.Int("pool_size", p.Len()), slog.Bool("default_classes", !opts.AnyClass()))

	length, err := r.resolveLength(opts, p.Len())
	if err != nil {
		return err
	}
	if length > generator.MaxLength {
		return fmt.Errorf("%w: got %d", generator.ErrLengthTooLarge, length)
	}
	if int64(opts.Count)*int64(length) > MaxOutputChars {
		return fmt.Errorf("%w: %d × %d", ErrOutputTooLarge, opts.Count, length)
	}

	var info Info
	if opts.Info {
		if info, err = NewInfo(length, p.Len()); err != nil {
			return err
		}
	}

	gen := r.Generator
	if gen == nil {
		gen = generator.New(nil)
	}

	passwords := make([]string, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		pw, err := gen.Password(p, length)
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		passwords = append(passwords, pw)
	}
	log.Debug("passwords generated", slog.Int("count", len(passwords)), slog.Int("length", length))

	bw := bufio.NewWriter(r.Out)
	for _, pw := range passwords {
		fmt.Fprintln(bw, pw)
	}
	if opts.Info {
		if _, err := info.WriteTo(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// resolveLength returns the explicit length, or the smallest length that
// reaches the requested entropy.
func (r *Runner) resolveLength(opts Options, poolSize int) (int, error) {
	if !opts.HasEntropy {
		if opts.Length < 0 {
			return 0, fmt.Errorf("%w: got %d", ErrInvalidLength, opts.Length)
		}
		return opts.Length, nil
	}

	length, err := entropy.RequiredLength(opts.Entropy, poolSize)
	if err != nil {
		return 0, fmt.Errorf("derive length from entropy: %w", err)
	}
	r.logger().Debug("length derived from entropy",
		slog.Float64("entropy", opts.Entropy),
		slog.Int("pool_size", poolSize),
		slog.Int("length", length))
	return length, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
