package flagtype

import (
	"flag"
	"fmt"
	"strings"
)

type enumValue struct {
	val     string
	allowed []string
}

// Enum returns a [flag.Value] that accepts one of the allowed words. Matching ignores case and the
// stored value is the spelling from allowed, so "--format=YAML" stores "yaml".
func Enum(allowed ...string) flag.Value {
	return &enumValue{allowed: allowed}
}

// EnumDefault is like [Enum] but starts out holding defaultVal, which must be one of the allowed
// values. EnumDefault panics otherwise.
func EnumDefault(defaultVal string, allowed []string) flag.Value {
	v := &enumValue{allowed: allowed}
	if err := v.Set(defaultVal); err != nil {
		panic("flagtype: default " + err.Error())
	}
	return v
}

func (v *enumValue) String() string {
	return v.val
}

func (v *enumValue) Set(s string) error {
	for _, a := range v.allowed {
		if strings.EqualFold(a, s) {
			v.val = a
			return nil
		}
	}
	return fmt.Errorf("value %q is not one of: %s", s, strings.Join(v.allowed, ", "))
}

func (v *enumValue) Get() any {
	return v.val
}
