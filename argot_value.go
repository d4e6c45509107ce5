package argot

import "strconv"

// Converter turns raw token text into a typed value. Parse reports
// false when the text cannot be converted as a whole; partial matches
// such as "42x" for an integer must be rejected. TypeName names the
// type in diagnostics and is empty for plain strings.
type Converter[T any] struct {
	Parse    func(text string) (T, bool)
	TypeName string
}

// StringValue accepts any token verbatim.
var StringValue = Converter[string]{
	Parse: func(text string) (string, bool) { return text, true },
}

// IntValue parses base 10, 64-bit signed integers.
var IntValue = Converter[int64]{
	Parse: func(text string) (int64, bool) {
		v, err := strconv.ParseInt(text, 10, 64)
		return v, err == nil
	},
	TypeName: "integer",
}

// FloatValue parses double precision floating point numbers.
var FloatValue = Converter[float64]{
	Parse: func(text string) (float64, bool) {
		v, err := strconv.ParseFloat(text, 64)
		return v, err == nil
	},
	TypeName: "real number",
}
