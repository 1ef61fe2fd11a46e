package flagtype

import (
	"flag"
	"strings"
)

type stringSliceValue struct {
	vals []string
}

// StringSlice returns a [flag.Value] that collects values into a string slice. Each value may hold
// several comma separated items, so "--tag=a,b --tag=c" yields [a b c]. Items are trimmed of
// surrounding spaces and empty items are dropped.
func StringSlice() flag.Value {
	return &stringSliceValue{}
}

func (v *stringSliceValue) String() string {
	return strings.Join(v.vals, ",")
}

func (v *stringSliceValue) Set(s string) error {
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			v.vals = append(v.vals, item)
		}
	}
	return nil
}

func (v *stringSliceValue) Get() any {
	return v.vals
}
