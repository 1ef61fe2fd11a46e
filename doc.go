// Package getopt parses command-line arguments into typed variables.
//
// Flags are registered on a [FlagSet] under a comma separated list of aliases, all of which write
// to the same variable:
//
//	fs := getopt.NewFlagSet("tar", nil)
//	verbose := fs.Bool("-v,--verbose", false, "list files processed")
//	extract := fs.Bool("-x,--extract", false, "extract files from an archive")
//	file := fs.String("-f,--file", "", "use archive file")
//
//	invalid, err := fs.Parse(os.Args, true, getopt.Strict)
//	if err != nil {
//	    fmt.Fprintf(os.Stderr, "error: %v\n", err)
//	    os.Exit(2)
//	}
//	for _, tok := range invalid {
//	    fmt.Fprintf(os.Stderr, "invalid flag: %s\n", tok)
//	}
//	paths := fs.Options()
//
// Short flags may be bundled: "-vxf out.tar" sets --verbose and --extract and gives --file the
// value "out.tar". A value wrapped in one pair of matching quotes has them removed.
//
// Two dialects control how values attach to flags:
//
//	           -n 5   -n=5   --count 5   --count=5
//	Strict     yes    no     no          yes
//	Permissive yes    yes    yes         yes
//
// In both dialects a bool flag is true when it carries no value, false for "0", and true for any
// other value. Without '=', a bool flag only consumes a following "0" or "1"; in Strict mode this
// applies to short bool flags only, since long ones never take a separate value.
//
// Tokens that match no alias are positional options when they do not start with the delimiter.
// Otherwise they are reported as invalid flags, together with flags whose value is missing or
// attached the wrong way. The usual conventions for "--" (end of flags) and "-" (standard input)
// are opt-in:
//
//	fs := getopt.NewFlagSet("cat", &getopt.Options{Terminator: true, LoneDelimiter: true})
package getopt
