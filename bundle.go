package getopt

import "strings"

// bundled reports whether tok is a bundle of short flags such as "-abc": it is not a long flag,
// and the delimiter followed by its first character is a registered alias.
func (s *session) bundled(tok token) bool {
	if s.isLong(tok.name) {
		return false
	}
	rest := strings.TrimPrefix(tok.name, s.delim)
	if rest == "" {
		return false
	}
	first := []rune(rest)[0]
	return s.fs.index[s.delim+string(first)] != nil
}

// expand rewrites the bundle at the current position. The last flag of the bundle stays in place,
// keeping any "=value" suffix, since it may take the following argument as its value. The others
// are appended to the end of the arguments, in order. The position does not advance, so the
// rewritten token is resolved again.
//
// With "-vxf out", the arguments become "-f out ... -v -x".
func (s *session) expand(tok token) {
	rs := []rune(strings.TrimPrefix(tok.name, s.delim))
	last := len(rs) - 1
	for _, r := range rs[:last] {
		s.args = append(s.args, s.delim+string(r))
	}
	rewritten := s.delim + string(rs[last])
	if tok.eq {
		rewritten += "=" + tok.value
	}
	s.args[s.i] = rewritten
}
