package argot

import "strconv"

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumber reports whether the whole token parses as a number, so
// negative numbers can pass for positionals instead of flags.
func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
