// Package flagtype provides [flag.Value] implementations for flags registered with
// [getopt.FlagSet.Var]. They work just as well with a standard library [flag.FlagSet].
//
// All types implement [flag.Getter], so [getopt.Flag.Get] returns the parsed value:
//   - [StringSlice] - repeatable, comma separated items collected into []string
//   - [Enum] - one of a fixed set of words, matched case-insensitively, as string
//   - [EnumDefault] - like [Enum] but with an initial default value
//   - [StringMap] - repeatable key=value pairs collected into map[string]string
//
// Example:
//
//	fs := getopt.NewFlagSet("deploy", nil)
//	fs.Var(flagtype.StringSlice(), "-t,--tag", "add tags, comma separated (repeatable)")
//	fs.Var(flagtype.EnumDefault("json", []string{"json", "yaml"}), "-o,--output", "output format")
//	fs.Var(flagtype.StringMap(), "-l,--label", "key=value label (repeatable)")
package flagtype
