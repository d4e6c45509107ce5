package argot

// ScalarArg is a positional argument bound at most once. It is
// required unless SetOptional is called.
type ScalarArg[T any] struct {
	specData
	conv Converter[T]
	def  *T
}

// NewValueArg declares a positional argument with a custom converter.
func NewValueArg[T any](name string, conv Converter[T]) *ScalarArg[T] {
	return &ScalarArg[T]{
		specData: specData{name: name, typeName: conv.TypeName, min: 1, max: 1, positional: true},
		conv:     conv,
	}
}

// NewStringArg declares a string positional argument.
func NewStringArg(name string) *ScalarArg[string] {
	return NewValueArg(name, StringValue)
}

// NewIntArg declares an integer positional argument.
func NewIntArg(name string) *ScalarArg[int64] {
	return NewValueArg(name, IntValue)
}

// NewFloatArg declares a floating point positional argument.
func NewFloatArg(name string) *ScalarArg[float64] {
	return NewValueArg(name, FloatValue)
}

func (a *ScalarArg[T]) SetHelp(h string) *ScalarArg[T] {
	a.help = h
	return a
}

func (a *ScalarArg[T]) SetDefault(v T) *ScalarArg[T] {
	a.def = &v
	return a
}

func (a *ScalarArg[T]) SetChoices(choices ...string) *ScalarArg[T] {
	a.choices = choices
	return a
}

func (a *ScalarArg[T]) SetOptional(b bool) *ScalarArg[T] {
	if b {
		a.min = 0
	} else {
		a.min = 1
	}
	return a
}

func (a *ScalarArg[T]) SetHidden(b bool) *ScalarArg[T] {
	a.hidden = b
	return a
}

func (a *ScalarArg[T]) SetHalt(b bool) *ScalarArg[T] {
	a.halt = b
	return a
}

// Add registers the argument and returns the handle its value is read
// through after a parse.
func (a *ScalarArg[T]) Add(s *Schema) Handle[T] {
	s.addPositional(a)
	return Handle[T]{slot: a.slot, def: a.def}
}

func (a *ScalarArg[T]) bind(cur any, raw string) (any, bool) {
	v, ok := a.conv.Parse(raw)
	if !ok {
		return nil, false
	}
	return v, true
}

// SliceArg is a variadic positional argument. It takes one or more
// tokens, or zero or more once SetOptional is called; how tokens are
// split between competing variadic arguments is negotiated so that
// every required argument still gets its share.
type SliceArg[T any] struct {
	specData
	conv Converter[T]
	def  *[]T
}

// NewValueSliceArg declares a variadic positional argument with a
// custom converter.
func NewValueSliceArg[T any](name string, conv Converter[T]) *SliceArg[T] {
	return &SliceArg[T]{
		specData: specData{name: name, typeName: conv.TypeName, min: 1, max: Infinity, positional: true},
		conv:     conv,
	}
}

// NewStringSliceArg declares a variadic string positional argument.
func NewStringSliceArg(name string) *SliceArg[string] {
	return NewValueSliceArg(name, StringValue)
}

// NewIntSliceArg declares a variadic integer positional argument.
func NewIntSliceArg(name string) *SliceArg[int64] {
	return NewValueSliceArg(name, IntValue)
}

// NewFloatSliceArg declares a variadic floating point positional
// argument.
func NewFloatSliceArg(name string) *SliceArg[float64] {
	return NewValueSliceArg(name, FloatValue)
}

func (a *SliceArg[T]) SetHelp(h string) *SliceArg[T] {
	a.help = h
	return a
}

func (a *SliceArg[T]) SetDefault(v []T) *SliceArg[T] {
	a.def = &v
	return a
}

func (a *SliceArg[T]) SetChoices(choices ...string) *SliceArg[T] {
	a.choices = choices
	return a
}

func (a *SliceArg[T]) SetOptional(b bool) *SliceArg[T] {
	if b {
		a.min = 0
	} else {
		a.min = 1
	}
	return a
}

func (a *SliceArg[T]) SetHidden(b bool) *SliceArg[T] {
	a.hidden = b
	return a
}

func (a *SliceArg[T]) SetHalt(b bool) *SliceArg[T] {
	a.halt = b
	return a
}

// Add registers the argument and returns the handle its values are
// read through after a parse.
func (a *SliceArg[T]) Add(s *Schema) Handle[[]T] {
	s.addPositional(a)
	return Handle[[]T]{slot: a.slot, def: a.def}
}

func (a *SliceArg[T]) bind(cur any, raw string) (any, bool) {
	v, ok := a.conv.Parse(raw)
	if !ok {
		return nil, false
	}
	var vals []T
	if cur != nil {
		vals = cur.([]T)
	}
	return append(vals, v), true
}
