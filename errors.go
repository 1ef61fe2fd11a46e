package getopt

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArguments is returned by [FlagSet.Parse] when it is called without an argument
	// source (a nil slice). An empty, non-nil slice is a valid argument source.
	ErrMissingArguments = errors.New("missing arguments")

	// ErrInvalidDialect is returned by [FlagSet.Parse] for a [Dialect] value it does not know.
	ErrInvalidDialect = errors.New("invalid dialect")

	// ErrInvalidNumeric is wrapped by a [ValueError] when a value for an int or float flag cannot
	// be converted.
	ErrInvalidNumeric = errors.New("invalid numeric value")

	// ErrNoAliases and ErrDuplicateAlias describe registration failures. Registration methods
	// panic with an error wrapping one of them.
	ErrNoAliases      = errors.New("no aliases")
	ErrDuplicateAlias = errors.New("duplicate alias")
)

// ValueError reports a flag whose value could not be stored in its slot. It aborts the parse call
// instead of being collected with the invalid flags.
type ValueError struct {
	// Flag is the flag token as it was matched, without any "=value" suffix.
	Flag string
	// Value is the raw value token, before quote stripping.
	Value string
	Kind  Kind
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("flag %s: invalid %s value %q: %v", e.Flag, e.Kind, e.Value, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
