package getopt

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// DefaultDelimiter is the flag delimiter used when none is configured.
const DefaultDelimiter = '-'

// Kind identifies the type of value a flag stores.
type Kind int

const (
	BoolKind Kind = iota
	IntKind
	FloatKind
	StringKind
	// ValueKind is a flag backed by a caller supplied [flag.Value], see [FlagSet.Var].
	ValueKind
)

func (k Kind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case StringKind:
		return "string"
	case ValueKind:
		return "value"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Options configures a [FlagSet]. A nil *Options uses the defaults.
type Options struct {
	// Delimiter is the character that introduces a flag. A token starting with it "looks like a
	// flag", and a token starting with it twice is a long-form flag. Defaults to
	// [DefaultDelimiter].
	Delimiter rune
	// Terminator makes a token of two delimiters ("--") end flag parsing: every caller supplied
	// token after it is a positional option and the terminator itself is dropped. Otherwise "--"
	// is an invalid flag like any other unresolved token starting with the delimiter.
	Terminator bool
	// LoneDelimiter makes the delimiter on its own ("-", conventionally standard input) a
	// positional option instead of an invalid flag.
	LoneDelimiter bool
}

// FlagSet is a registry of flags. Each flag is known by one or more aliases, all of which share
// the same output slot.
//
// A FlagSet is not safe for concurrent use. Register every flag before the first call to
// [FlagSet.Parse].
type FlagSet struct {
	name       string
	delim      rune
	terminator bool
	loneDelim  bool

	flags []*Flag
	index map[string]*Flag

	// options holds the positional options of the most recent parse.
	options []string
}

// NewFlagSet returns an empty flag set. The options parameter may be nil, in which case default
// values are used.
func NewFlagSet(name string, opt *Options) *FlagSet {
	fs := &FlagSet{name: name}
	if opt != nil {
		fs.delim = opt.Delimiter
		fs.terminator = opt.Terminator
		fs.loneDelim = opt.LoneDelimiter
	}
	return fs
}

// Name returns the name given to [NewFlagSet].
func (fs *FlagSet) Name() string {
	return fs.name
}

// Delimiter returns the flag delimiter.
func (fs *FlagSet) Delimiter() rune {
	if fs.delim == 0 {
		return DefaultDelimiter
	}
	return fs.delim
}

// Flag is one logical flag and the slot its aliases write to.
type Flag struct {
	// Aliases are the spellings of the flag, in registration order, e.g. ["-a", "--append"].
	Aliases []string
	// Usage is the help message.
	Usage string
	// DefValue is the default value, as text.
	DefValue string

	slot slot
}

// Kind returns the kind of value the flag stores.
func (f *Flag) Kind() Kind {
	return f.slot.kind()
}

// String returns the current value of the flag as text.
func (f *Flag) String() string {
	return f.slot.String()
}

// Set stores value in the flag with the rules applied to values found by [FlagSet.Parse]: one
// pair of matching quotes is removed, bool flags are false only for "0", and numbers must convert
// in full. A failure is reported as a [*ValueError] naming the first alias.
func (f *Flag) Set(value string) error {
	return coerce(f, f.Aliases[0], value)
}

// Get returns the current value of the flag: a bool, int, float64 or string, or, for [ValueKind]
// flags implementing [flag.Getter], whatever Get returns.
func (f *Flag) Get() any {
	return f.slot.get()
}

// Lookup returns the flag registered under alias, or nil.
func (fs *FlagSet) Lookup(alias string) *Flag {
	return fs.index[alias]
}

// VisitAll calls fn for each flag in registration order.
func (fs *FlagSet) VisitAll(fn func(*Flag)) {
	for _, f := range fs.flags {
		fn(f)
	}
}

// BoolVar defines a bool flag with the given comma separated aliases, default value, and usage
// string. The argument p points to a bool variable in which to store the value of the flag.
func (fs *FlagSet) BoolVar(p *bool, aliases string, value bool, usage string) {
	*p = value
	fs.define(aliases, usage, (*boolSlot)(p))
}

// Bool defines a bool flag and returns the address of the variable that stores its value.
func (fs *FlagSet) Bool(aliases string, value bool, usage string) *bool {
	p := new(bool)
	fs.BoolVar(p, aliases, value, usage)
	return p
}

// IntVar defines an int flag.
func (fs *FlagSet) IntVar(p *int, aliases string, value int, usage string) {
	*p = value
	fs.define(aliases, usage, (*intSlot)(p))
}

// Int defines an int flag and returns the address of the variable that stores its value.
func (fs *FlagSet) Int(aliases string, value int, usage string) *int {
	p := new(int)
	fs.IntVar(p, aliases, value, usage)
	return p
}

// Float64Var defines a float64 flag.
func (fs *FlagSet) Float64Var(p *float64, aliases string, value float64, usage string) {
	*p = value
	fs.define(aliases, usage, (*floatSlot)(p))
}

// Float64 defines a float64 flag and returns the address of the variable that stores its value.
func (fs *FlagSet) Float64(aliases string, value float64, usage string) *float64 {
	p := new(float64)
	fs.Float64Var(p, aliases, value, usage)
	return p
}

// StringVar defines a string flag.
func (fs *FlagSet) StringVar(p *string, aliases string, value string, usage string) {
	*p = value
	fs.define(aliases, usage, (*stringSlot)(p))
}

// String defines a string flag and returns the address of the variable that stores its value.
func (fs *FlagSet) String(aliases string, value string, usage string) *string {
	p := new(string)
	fs.StringVar(p, aliases, value, usage)
	return p
}

// Var defines a flag backed by value. The flag always takes a value, the same way a string flag
// does, and the value's current String is recorded as the default. See the flagtype package for
// ready-made implementations.
func (fs *FlagSet) Var(value flag.Value, aliases string, usage string) {
	fs.define(aliases, usage, &valueSlot{v: value})
}

// define registers a flag under every alias in the comma separated list. Registration errors are
// programming errors, so they panic, as they do in the standard library flag package.
func (fs *FlagSet) define(aliases, usage string, s slot) {
	names, err := fs.splitAliases(aliases)
	if err != nil {
		if fs.name != "" {
			panic(fmt.Errorf("getopt: flag set %q: %w", fs.name, err))
		}
		panic(fmt.Errorf("getopt: %w", err))
	}
	f := &Flag{
		Aliases:  names,
		Usage:    usage,
		DefValue: s.String(),
		slot:     s,
	}
	if fs.index == nil {
		fs.index = make(map[string]*Flag)
	}
	for _, name := range names {
		fs.index[name] = f
	}
	fs.flags = append(fs.flags, f)
}

func (fs *FlagSet) splitAliases(aliases string) ([]string, error) {
	if aliases == "" {
		return nil, ErrNoAliases
	}
	names := strings.Split(aliases, ",")
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty alias in %q", ErrNoAliases, aliases)
		}
		if seen[name] || fs.index[name] != nil {
			return nil, fmt.Errorf("%w %q", ErrDuplicateAlias, name)
		}
		seen[name] = true
	}
	return names, nil
}
