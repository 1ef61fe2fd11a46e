package getopt

// attachPermissive implements the [Permissive] dialect, where short and long flags behave the
// same: a value after '=' always wins, otherwise the value comes from the next argument. Bool
// flags only consume a following "0" or "1".
func attachPermissive(s *session, f *Flag, tok token) error {
	if tok.eq {
		return s.store(f, tok, tok.value, 1)
	}
	if f.Kind() == BoolKind {
		return s.storeBoolFromNext(f, tok)
	}
	return s.storeFromNext(f, tok)
}
