package argot

import "fmt"

// SliceFlag is a flag collecting one or more values. By default each
// occurrence consumes exactly one value and occurrences accumulate;
// SetNum and SetArity change how much one occurrence consumes, and
// SetCollect(false) makes a repeated occurrence replace the earlier
// values instead.
type SliceFlag[T any] struct {
	specData
	conv Converter[T]
	def  *[]T
}

// NewValueSlice declares a multi-value flag with a custom converter.
func NewValueSlice[T any](name string, conv Converter[T]) *SliceFlag[T] {
	return &SliceFlag[T]{
		specData: specData{name: name, typeName: conv.TypeName, min: 1, max: 1, collect: true},
		conv:     conv,
	}
}

// NewStringSlice declares a multi-value string flag.
func NewStringSlice(name string) *SliceFlag[string] {
	return NewValueSlice(name, StringValue)
}

// NewIntSlice declares a multi-value integer flag.
func NewIntSlice(name string) *SliceFlag[int64] {
	return NewValueSlice(name, IntValue)
}

// NewFloatSlice declares a multi-value floating point flag.
func NewFloatSlice(name string) *SliceFlag[float64] {
	return NewValueSlice(name, FloatValue)
}

func (f *SliceFlag[T]) SetShort(s string) *SliceFlag[T] {
	f.short = s
	return f
}

func (f *SliceFlag[T]) SetHelp(h string) *SliceFlag[T] {
	f.help = h
	return f
}

func (f *SliceFlag[T]) SetDefault(v []T) *SliceFlag[T] {
	f.def = &v
	return f
}

func (f *SliceFlag[T]) SetChoices(choices ...string) *SliceFlag[T] {
	f.choices = choices
	return f
}

func (f *SliceFlag[T]) SetHidden(b bool) *SliceFlag[T] {
	f.hidden = b
	return f
}

func (f *SliceFlag[T]) SetHalt(b bool) *SliceFlag[T] {
	f.halt = b
	return f
}

// SetNum makes every occurrence consume exactly n values and turns
// collection off, so the last occurrence wins.
func (f *SliceFlag[T]) SetNum(n int) *SliceFlag[T] {
	if n < 1 {
		panic(fmt.Sprintf("argot: flag %q: num must be at least 1", f.name))
	}
	f.min, f.max = n, n
	f.collect = false
	return f
}

// SetArity bounds how many values one occurrence consumes. Use
// Infinity for an unbounded maximum.
func (f *SliceFlag[T]) SetArity(min, max int) *SliceFlag[T] {
	if min < 0 || max < 1 || max < min {
		panic(fmt.Sprintf("argot: flag %q: invalid arity %d..%d", f.name, min, max))
	}
	f.min, f.max = min, max
	return f
}

func (f *SliceFlag[T]) SetCollect(b bool) *SliceFlag[T] {
	f.collect = b
	return f
}

// Add registers the flag and returns the handle its values are read
// through after a parse.
func (f *SliceFlag[T]) Add(s *Schema) Handle[[]T] {
	s.addFlag(f)
	return Handle[[]T]{slot: f.slot, def: f.def}
}

func (f *SliceFlag[T]) bind(cur any, raw string) (any, bool) {
	v, ok := f.conv.Parse(raw)
	if !ok {
		return nil, false
	}
	var vals []T
	if cur != nil {
		vals = cur.([]T)
	}
	return append(vals, v), true
}
