package getopt

// attachStrict implements the [Strict] dialect.
//
// Long flags ("--name") take their value after '=' only. A bool long flag without '=' is true,
// and a value flag without '=' is invalid.
//
// Short flags ("-n") take their value from the next argument only, and a short flag carrying '='
// is invalid. A bool short flag consumes a following "0" or "1" and is otherwise true, so unlike
// its long form it never looks at '='. A value flag with no following argument is invalid.
func attachStrict(s *session, f *Flag, tok token) error {
	if s.isLong(tok.name) {
		if tok.eq {
			return s.store(f, tok, tok.value, 1)
		}
		if f.Kind() == BoolKind {
			return s.store(f, tok, "1", 1)
		}
		s.reject(tok)
		return nil
	}

	if tok.eq {
		s.reject(tok)
		return nil
	}
	if f.Kind() == BoolKind {
		return s.storeBoolFromNext(f, tok)
	}
	return s.storeFromNext(f, tok)
}
