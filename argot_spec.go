package argot

import "math"

// Infinity marks an unbounded arity maximum.
const Infinity = math.MaxInt

// specData holds the parts of a flag or positional spec that the
// engine and the renderer share, independent of the value type. For
// flags min and max bound the values one occurrence consumes; for
// positionals they bound occurrences.
type specData struct {
	name       string
	short      string
	help       string
	typeName   string
	choices    []string
	min        int
	max        int
	collect    bool
	halt       bool
	hidden     bool
	positional bool
	registered bool
	slot       int
}

func (d *specData) data() *specData { return d }

// binder is the value binding strategy of one spec. bind folds a raw
// token into the spec's accumulated payload and returns the new
// payload; cur is nil before the first binding and after a replace
// reset. A false return means the converter rejected the token.
type binder interface {
	data() *specData
	bind(cur any, raw string) (any, bool)
}
