package getopt

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Dialect selects the rules that govern how a flag and its value may be separated.
type Dialect int

const (
	// Strict accepts "-a 0" and "--append=0", but rejects "-a=0" and does not let long flags take
	// their value from the next argument.
	Strict Dialect = iota
	// Permissive accepts "-a 0", "-a=0", "--append 0" and "--append=0" alike, which suits
	// Windows-style flags.
	Permissive
)

func (d Dialect) String() string {
	switch d {
	case Strict:
		return "strict"
	case Permissive:
		return "permissive"
	}
	return "Dialect(" + strconv.Itoa(int(d)) + ")"
}

// ParseDialect returns the dialect named s. Matching is case-insensitive, and "as-is" is accepted
// as another name for [Permissive].
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "strict":
		return Strict, nil
	case "permissive", "as-is", "asis":
		return Permissive, nil
	}
	return 0, fmt.Errorf("%w %q, must be one of: strict, permissive", ErrInvalidDialect, s)
}

// Set implements [flag.Value], so a *Dialect can be bound to a standard library flag.
func (d *Dialect) Set(s string) error {
	v, err := ParseDialect(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// attachFunc stores the value of the resolved flag f, consuming tokens from s as the dialect
// allows. It returns a non-nil error only for values that cannot be stored.
type attachFunc func(s *session, f *Flag, tok token) error

// Parse reads args, writing through the slots of every flag it recognizes, and returns the
// invalid flags it met, in order. Tokens that are not flags are collected as positional options,
// available from [FlagSet.Options] until the next call.
//
// When skipProgramName is true, args[0] is ignored, which suits os.Args. The "--" terminator and
// the lone delimiter are only recognized when enabled in [Options]; by default both are invalid
// flags.
//
// Parse returns [ErrMissingArguments] when args is nil, and an error wrapping
// [ErrInvalidDialect] for an unknown dialect. A value that cannot be stored (e.g. "-n abc" for an
// int flag) aborts the call with a [*ValueError]; slots written before it keep their values.
//
// The caller's args slice is never modified.
func (fs *FlagSet) Parse(args []string, skipProgramName bool, d Dialect) ([]string, error) {
	if args == nil {
		return nil, ErrMissingArguments
	}
	var attach attachFunc
	switch d {
	case Strict:
		attach = attachStrict
	case Permissive:
		attach = attachPermissive
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidDialect, d)
	}

	fs.options = nil
	s := newSession(fs, args)
	if skipProgramName {
		s.i = 1
	}
	if err := s.run(attach); err != nil {
		return nil, err
	}
	fs.options = s.options
	return s.invalid, nil
}

// Options returns the positional options found by the most recent call to [FlagSet.Parse].
func (fs *FlagSet) Options() []string {
	return slices.Clone(fs.options)
}

// session is the state of one Parse call. It owns a private copy of the arguments, which grows
// when bundles are expanded.
type session struct {
	fs    *FlagSet
	delim string
	args  []string
	// n is the number of caller supplied arguments. Tokens at or after n were synthesized by
	// bundle expansion.
	n int
	i int

	invalid []string
	options []string
}

func newSession(fs *FlagSet, args []string) *session {
	return &session{
		fs:    fs,
		delim: string(fs.Delimiter()),
		args:  slices.Clone(args),
		n:     len(args),
	}
}

// token is one argument split at its first '='.
type token struct {
	raw   string
	name  string
	value string
	eq    bool
}

func splitToken(raw string) token {
	name, value, eq := strings.Cut(raw, "=")
	return token{raw: raw, name: name, value: value, eq: eq}
}

func (s *session) run(attach attachFunc) error {
	for s.i < len(s.args) {
		raw := s.args[s.i]
		if s.fs.terminator && raw == s.delim+s.delim && s.i < s.n {
			s.options = append(s.options, s.args[s.i+1:s.n]...)
			s.i = s.n
			continue
		}
		tok := splitToken(raw)
		f := s.fs.index[tok.name]
		if f == nil {
			s.unresolved(tok)
			continue
		}
		if err := attach(s, f, tok); err != nil {
			return err
		}
	}
	return nil
}

// unresolved classifies a token that matches no alias.
func (s *session) unresolved(tok token) {
	switch {
	case !s.looksLikeFlag(tok.raw):
		s.options = append(s.options, tok.raw)
		s.i++
	case s.bundled(tok):
		s.expand(tok)
	default:
		s.reject(tok)
	}
}

func (s *session) looksLikeFlag(raw string) bool {
	if raw == s.delim {
		return !s.fs.loneDelim
	}
	return strings.HasPrefix(raw, s.delim)
}

func (s *session) isLong(name string) bool {
	return strings.HasPrefix(name, s.delim+s.delim)
}

// reject records tok as an invalid flag and moves past it.
func (s *session) reject(tok token) {
	s.invalid = append(s.invalid, tok.raw)
	s.i++
}

// next returns the argument following the current one.
func (s *session) next() (string, bool) {
	if s.i+1 >= len(s.args) {
		return "", false
	}
	return s.args[s.i+1], true
}

// store coerces raw into f and advances past n tokens.
func (s *session) store(f *Flag, tok token, raw string, n int) error {
	if err := coerce(f, tok.name, raw); err != nil {
		return err
	}
	s.i += n
	return nil
}

// storeBoolFromNext sets a bool flag that carries no "=value" of its own. A following "0" or "1"
// is consumed as its value, anything else leaves the flag set to true.
func (s *session) storeBoolFromNext(f *Flag, tok token) error {
	if next, ok := s.next(); ok {
		if v := stripQuotes(next); v == "0" || v == "1" {
			return s.store(f, tok, v, 2)
		}
	}
	return s.store(f, tok, "1", 1)
}

// storeFromNext sets a flag from the following argument, or rejects the flag when there is none.
func (s *session) storeFromNext(f *Flag, tok token) error {
	next, ok := s.next()
	if !ok {
		s.reject(tok)
		return nil
	}
	return s.store(f, tok, next, 2)
}
