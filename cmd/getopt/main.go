// Command getopt parses arguments for shell scripts.
//
// Declare the flags a script accepts and pass its arguments after "--". getopt prints shell
// assignments for every flag followed by a "set --" line holding the positional options, ready
// for eval:
//
//	eval "$(getopt -bool=-v,--verbose -string=-o,--output=out.txt -- "$@")" || exit 1
//	echo "verbose=$verbose output=$output rest=$*"
//
// Defaults follow the rules of values on the command line, so -int=-n,--count='3' is fine and
// -int=-n,--count=3k is an error. -enum takes its choices instead of a default, the first one
// being the default: -enum=-f,--format=json|yaml. Among the parsed arguments, "--" ends flag
// parsing and a lone "-" is kept as an option.
//
// Invalid flags are reported on stderr and getopt exits with status 1 without printing anything.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/iancoleman/strcase"
	"github.com/kballard/go-shellquote"
	"github.com/mfridman/xflag"

	"github.com/pressly/getopt"
	"github.com/pressly/getopt/flagtype"
	"github.com/pressly/getopt/pkg/suggest"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "getopt: %v\n", err)
		}
		os.Exit(1)
	}
}

// errReported means diagnostics were already written to stderr.
var errReported = errors.New("invalid flags")

// declarations collects every occurrence of a repeatable flag verbatim. Declarations hold
// commas of their own, so flagtype.StringSlice would split them apart.
type declarations []string

func (d *declarations) String() string { return strings.Join(*d, " ") }

func (d *declarations) Set(s string) error {
	*d = append(*d, s)
	return nil
}

type config struct {
	decls     map[getopt.Kind]*declarations
	lists     declarations
	enums     declarations
	maps      declarations
	dialect   getopt.Dialect
	skipFirst bool
	delimiter string
	line      string
	noColor   bool
}

func newFlagSet(cfg *config) *flag.FlagSet {
	fs := flag.NewFlagSet("getopt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.decls = make(map[getopt.Kind]*declarations)
	for _, d := range []struct {
		kind  getopt.Kind
		usage string
	}{
		{getopt.BoolKind, "declare a bool flag as `aliases[=default]`, e.g. -v,--verbose (repeatable)"},
		{getopt.IntKind, "declare an int flag (repeatable)"},
		{getopt.FloatKind, "declare a float flag (repeatable)"},
		{getopt.StringKind, "declare a string flag (repeatable)"},
	} {
		cfg.decls[d.kind] = new(declarations)
		fs.Var(cfg.decls[d.kind], d.kind.String(), d.usage)
	}
	fs.Var(&cfg.lists, "list", "declare a list flag collecting comma separated values (repeatable)")
	fs.Var(&cfg.enums, "enum", "declare a flag as `aliases=choice|choice...`, defaulting to the first choice (repeatable)")
	fs.Var(&cfg.maps, "map", "declare a flag collecting key=value pairs (repeatable)")
	fs.Var(&cfg.dialect, "dialect", "`strict` or permissive")
	fs.BoolVar(&cfg.skipFirst, "skip-first", false, "ignore the first argument (program name)")
	fs.StringVar(&cfg.delimiter, "delimiter", "-", "flag delimiter `character`")
	fs.StringVar(&cfg.line, "line", "", "parse this shell command line instead of the arguments after --")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable colored diagnostics")
	return fs
}

func run(args []string, stdout, stderr io.Writer) error {
	// Declarations hold ',' and '=' themselves, so they are separated from the arguments to parse
	// before xflag sees them.
	own, rest, hasRest := cut(args, "--")

	var cfg config
	fs := newFlagSet(&cfg)
	if err := xflag.ParseToEnd(fs, own); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q before --", fs.Arg(0))
	}
	if cfg.line != "" {
		if hasRest {
			return errors.New("-line and arguments after -- are mutually exclusive")
		}
		words, err := shellquote.Split(cfg.line)
		if err != nil {
			return fmt.Errorf("-line: %w", err)
		}
		rest = words
	}
	delim, size := utf8.DecodeRuneInString(cfg.delimiter)
	if size == 0 || size != len(cfg.delimiter) {
		return fmt.Errorf("-delimiter must be a single character, got %q", cfg.delimiter)
	}
	parser, vars, err := declare(&cfg, delim)
	if err != nil {
		return err
	}

	invalid, err := parser.Parse(rest, cfg.skipFirst, cfg.dialect)
	if errors.Is(err, getopt.ErrMissingArguments) {
		return fmt.Errorf("%w: pass them after -- or with -line", err)
	}
	if err != nil {
		return err
	}
	if len(invalid) > 0 {
		reportInvalid(stderr, parser, invalid, cfg.noColor)
		return errReported
	}

	for _, v := range vars {
		fmt.Fprintf(stdout, "%s=%s\n", v.name, shellquote.Join(v.flag.String()))
	}
	options := parser.Options()
	if len(options) == 0 {
		fmt.Fprintln(stdout, "set --")
	} else {
		fmt.Fprintf(stdout, "set -- %s\n", shellquote.Join(options...))
	}
	return nil
}

// variable is a declared flag and the shell variable it is printed as.
type variable struct {
	name string
	flag *getopt.Flag
}

// declare builds the flag set described by the declaration flags. The "--" terminator and a lone
// delimiter keep their usual meaning for the parsed arguments.
func declare(cfg *config, delim rune) (*getopt.FlagSet, []variable, error) {
	parser := getopt.NewFlagSet("getopt", &getopt.Options{
		Delimiter:     delim,
		Terminator:    true,
		LoneDelimiter: true,
	})
	var vars []variable
	declared := make(map[string]string)
	add := func(decl string, define func(aliases, rest string) error) error {
		aliases, rest, _ := strings.Cut(decl, "=")
		if err := define(aliases, rest); err != nil {
			return fmt.Errorf("declaration %q: %w", decl, err)
		}
		f := parser.Lookup(strings.Split(aliases, ",")[0])
		name := varName(f.Aliases, delim)
		if !shellName.MatchString(name) {
			return fmt.Errorf("declaration %q: %q is not a valid shell variable name", decl, name)
		}
		if prev, ok := declared[name]; ok {
			return fmt.Errorf("declaration %q: variable %s is already set by %q", decl, name, prev)
		}
		declared[name] = decl
		vars = append(vars, variable{name: name, flag: f})
		return nil
	}
	// withDefault registers a flag through fn and stores def in it, if given, the way a value
	// from the command line would be stored.
	withDefault := func(fn func(aliases string)) func(aliases, def string) error {
		return func(aliases, def string) error {
			if err := catch(func() { fn(aliases) }); err != nil {
				return err
			}
			if def == "" {
				return nil
			}
			return parser.Lookup(strings.Split(aliases, ",")[0]).Set(def)
		}
	}

	for _, kind := range []getopt.Kind{getopt.BoolKind, getopt.IntKind, getopt.FloatKind, getopt.StringKind} {
		for _, decl := range *cfg.decls[kind] {
			err := add(decl, withDefault(func(aliases string) {
				register(parser, kind, aliases)
			}))
			if err != nil {
				return nil, nil, err
			}
		}
	}
	for _, decl := range cfg.lists {
		err := add(decl, withDefault(func(aliases string) {
			parser.Var(flagtype.StringSlice(), aliases, "")
		}))
		if err != nil {
			return nil, nil, err
		}
	}
	for _, decl := range cfg.enums {
		err := add(decl, func(aliases, choices string) error {
			allowed := strings.Split(choices, "|")
			if slices.Contains(allowed, "") {
				return fmt.Errorf("empty choice in %q", choices)
			}
			return catch(func() {
				parser.Var(flagtype.EnumDefault(allowed[0], allowed), aliases, "")
			})
		})
		if err != nil {
			return nil, nil, err
		}
	}
	for _, decl := range cfg.maps {
		err := add(decl, withDefault(func(aliases string) {
			parser.Var(flagtype.StringMap(), aliases, "")
		}))
		if err != nil {
			return nil, nil, err
		}
	}
	return parser, vars, nil
}

// shellName matches the names a POSIX shell accepts in an assignment.
var shellName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// register adds one typed flag holding the zero value of its kind.
func register(fs *getopt.FlagSet, kind getopt.Kind, aliases string) {
	switch kind {
	case getopt.BoolKind:
		fs.Bool(aliases, false, "")
	case getopt.IntKind:
		fs.Int(aliases, 0, "")
	case getopt.FloatKind:
		fs.Float64(aliases, 0, "")
	default:
		fs.String(aliases, "", "")
	}
}

// catch turns a registration panic into an error.
func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

// varName derives a shell variable name from the longest alias: "--dry-run" becomes "dry_run".
func varName(aliases []string, delim rune) string {
	longest := ""
	for _, a := range aliases {
		a = strings.TrimLeft(a, string(delim))
		if len(a) > len(longest) {
			longest = a
		}
	}
	name := strcase.ToSnake(longest)
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = "_" + name
	}
	return name
}

func reportInvalid(w io.Writer, fs *getopt.FlagSet, invalid []string, noColor bool) {
	red := color.New(color.FgRed, color.Bold)
	if noColor {
		red.DisableColor()
	}
	var aliases []string
	fs.VisitAll(func(f *getopt.Flag) {
		aliases = append(aliases, f.Aliases...)
	})
	for _, tok := range invalid {
		name, _, _ := strings.Cut(tok, "=")
		fmt.Fprintf(w, "getopt: %s %q", red.Sprint("invalid flag"), tok)
		if fs.Lookup(name) == nil {
			if similar := suggest.FindSimilar(name, aliases, 3); len(similar) > 0 {
				fmt.Fprintf(w, ", did you mean %s?", strings.Join(similar, " or "))
			}
		} else {
			fmt.Fprint(w, ", missing or misplaced value")
		}
		fmt.Fprintln(w)
	}
}

// cut splits args at the first occurrence of sep.
func cut(args []string, sep string) (before, after []string, found bool) {
	for i, a := range args {
		if a == sep {
			return args[:i], args[i+1:], true
		}
	}
	return args, nil, false
}
