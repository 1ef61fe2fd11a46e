package getopt

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/pressly/getopt/pkg/textutil"
)

// DefaultUsage returns a help listing of every flag in fs. Flags are sorted by their first alias,
// ignoring delimiters, and each line shows all aliases, the usage string, and the default value
// when it is not empty.
func DefaultUsage(fs *FlagSet) string {
	if fs == nil {
		return ""
	}

	var b strings.Builder
	if fs.name != "" {
		fmt.Fprintf(&b, "Usage of %s:\n", fs.name)
	} else {
		b.WriteString("Usage:\n")
	}

	var flags []flagInfo
	fs.VisitAll(func(f *Flag) {
		flags = append(flags, flagInfo{
			name:   strings.Join(f.Aliases, ", "),
			key:    strings.TrimLeft(f.Aliases[0], string(fs.Delimiter())),
			usage:  f.Usage,
			defval: f.DefValue,
		})
	})
	if len(flags) == 0 {
		return strings.TrimRight(b.String(), "\n")
	}
	slices.SortStableFunc(flags, func(a, b flagInfo) int {
		return cmp.Compare(a.key, b.key)
	})

	maxLen := 0
	for _, f := range flags {
		maxLen = max(maxLen, len(f.name))
	}
	writeFlagSection(&b, flags, maxLen)
	return strings.TrimRight(b.String(), "\n")
}

// writeFlagSection handles the formatting of flag descriptions
func writeFlagSection(b *strings.Builder, flags []flagInfo, maxLen int) {
	nameWidth := maxLen + 4
	wrapWidth := max(80-nameWidth-2, 20)

	for _, f := range flags {
		description := f.usage
		if f.defval != "" {
			description += fmt.Sprintf(" (default: %s)", f.defval)
		}

		lines := textutil.Wrap(description, wrapWidth)
		padding := strings.Repeat(" ", maxLen-len(f.name)+4)
		fmt.Fprintf(b, "%s\n", strings.TrimRight("  "+f.name+padding+lines[0], " "))

		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indentPadding, line)
		}
	}
}

type flagInfo struct {
	name   string
	key    string
	usage  string
	defval string
}
