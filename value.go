package getopt

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
)

// slot is the storage behind a flag. There is one implementation per [Kind].
type slot interface {
	kind() Kind
	// set stores raw, which has already had its quotes stripped.
	set(raw string) error
	get() any
	String() string
}

type boolSlot bool

func (b *boolSlot) kind() Kind { return BoolKind }

func (b *boolSlot) set(raw string) error {
	*b = boolSlot(raw != "0")
	return nil
}

func (b *boolSlot) get() any       { return bool(*b) }
func (b *boolSlot) String() string { return strconv.FormatBool(bool(*b)) }

type intSlot int

func (i *intSlot) kind() Kind { return IntKind }

func (i *intSlot) set(raw string) error {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return numericError(err)
	}
	*i = intSlot(v)
	return nil
}

func (i *intSlot) get() any       { return int(*i) }
func (i *intSlot) String() string { return strconv.Itoa(int(*i)) }

type floatSlot float64

func (f *floatSlot) kind() Kind { return FloatKind }

func (f *floatSlot) set(raw string) error {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return numericError(err)
	}
	*f = floatSlot(v)
	return nil
}

func (f *floatSlot) get() any       { return float64(*f) }
func (f *floatSlot) String() string { return strconv.FormatFloat(float64(*f), 'g', -1, 64) }

type stringSlot string

func (s *stringSlot) kind() Kind { return StringKind }

func (s *stringSlot) set(raw string) error {
	*s = stringSlot(raw)
	return nil
}

func (s *stringSlot) get() any       { return string(*s) }
func (s *stringSlot) String() string { return string(*s) }

type valueSlot struct {
	v flag.Value
}

func (s *valueSlot) kind() Kind { return ValueKind }

func (s *valueSlot) set(raw string) error {
	return s.v.Set(raw)
}

func (s *valueSlot) get() any {
	if g, ok := s.v.(flag.Getter); ok {
		return g.Get()
	}
	return s.v
}

func (s *valueSlot) String() string { return s.v.String() }

// numericError keeps the strconv cause (syntax or range) and drops its noisy function prefix.
func numericError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		err = ne.Err
	}
	return fmt.Errorf("%w: %w", ErrInvalidNumeric, err)
}

// stripQuotes removes one pair of matching quotes surrounding s. Unbalanced or mixed quotes are
// left untouched.
func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	if q := s[0]; (q == '"' || q == '\'') && s[len(s)-1] == q {
		return s[1 : len(s)-1]
	}
	return s
}

// coerce strips quotes from raw and stores it in the flag's slot.
func coerce(f *Flag, name, raw string) error {
	if err := f.slot.set(stripQuotes(raw)); err != nil {
		return &ValueError{
			Flag:  name,
			Value: raw,
			Kind:  f.Kind(),
			Err:   err,
		}
	}
	return nil
}
