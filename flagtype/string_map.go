package flagtype

import (
	"flag"
	"fmt"
	"maps"
	"slices"
	"strings"
)

type stringMapValue struct {
	m map[string]string
}

// StringMap returns a [flag.Value] that collects key=value pairs into a map. A value may hold
// several comma separated pairs and the flag may be repeated, so "--label=env=prod,tier=web"
// and "--label=env=prod --label=tier=web" are the same. Each pair is split on its first '=', and
// a later pair overrides an earlier one with the same key.
func StringMap() flag.Value {
	return &stringMapValue{}
}

func (v *stringMapValue) String() string {
	keys := make([]string, 0, len(v.m))
	for k := range v.m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+v.m[k])
	}
	return strings.Join(pairs, ",")
}

func (v *stringMapValue) Set(s string) error {
	parsed := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("pair %q has no '='", pair)
		}
		if key = strings.TrimSpace(key); key == "" {
			return fmt.Errorf("pair %q has an empty key", pair)
		}
		parsed[key] = value
	}
	if v.m == nil {
		v.m = make(map[string]string, len(parsed))
	}
	maps.Copy(v.m, parsed)
	return nil
}

func (v *stringMapValue) Get() any {
	return v.m
}
