// Package config holds the character classes a password pool is built from
// and persists them as a YAML file.
package config

// Built-in character classes.
const (
	DefaultUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DefaultLowercase = "abcdefghijklmnopqrstuvwxyz"
	DefaultDigits    = "0123456789"
	DefaultSymbols   = "*&^%$#@!~"
	DefaultOthers    = "♕♖♗♘♙♚♛♜♝♞♟♠♡♢♣♤♥♦♧♩♪♫♬♭♮♯"
)

// Config is the set of configured character classes.
// Each class is a plain string; duplicates are harmless.
type Config struct {
	UppercaseSet string `yaml:"uppercase"`
	LowercaseSet string `yaml:"lowercase"`
	DigitsSet    string `yaml:"digits"`
	SymbolsSet   string `yaml:"symbols"`
	OthersSet    string `yaml:"others"`
}

// Default returns the built-in classes.
func Default() Config {
	return Config{
		UppercaseSet: DefaultUppercase,
		LowercaseSet: DefaultLowercase,
		DigitsSet:    DefaultDigits,
		SymbolsSet:   DefaultSymbols,
		OthersSet:    DefaultOthers,
	}
}

func (c Config) Uppercase() string { return c.UppercaseSet }
func (c Config) Lowercase() string { return c.LowercaseSet }
func (c Config) Digits() string    { return c.DigitsSet }
func (c Config) Symbols() string   { return c.SymbolsSet }
func (c Config) Others() string    { return c.OthersSet }

// DefaultSet is the alphabet used when no class is selected:
// uppercase, lowercase and digits.
func (c Config) DefaultSet() string {
	return c.UppercaseSet + c.LowercaseSet + c.DigitsSet
}
