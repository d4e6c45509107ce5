package argot

// BoolFlag is a zero arity flag that binds true when present.
type BoolFlag struct {
	specData
	def *bool
}

// NewBool declares a boolean flag.
func NewBool(name string) *BoolFlag {
	return &BoolFlag{specData: specData{name: name}}
}

func (f *BoolFlag) SetShort(s string) *BoolFlag {
	f.short = s
	return f
}

func (f *BoolFlag) SetHelp(h string) *BoolFlag {
	f.help = h
	return f
}

func (f *BoolFlag) SetDefault(v bool) *BoolFlag {
	f.def = &v
	return f
}

func (f *BoolFlag) SetHidden(b bool) *BoolFlag {
	f.hidden = b
	return f
}

func (f *BoolFlag) SetHalt(b bool) *BoolFlag {
	f.halt = b
	return f
}

// Add registers the flag and returns the handle its value is read
// through after a parse.
func (f *BoolFlag) Add(s *Schema) Handle[bool] {
	s.addFlag(f)
	return Handle[bool]{slot: f.slot, def: f.def}
}

func (f *BoolFlag) bind(cur any, raw string) (any, bool) {
	return true, true
}

// CountFlag is a zero arity flag that counts its occurrences, so -vvv
// binds 3. A default sets the starting count.
type CountFlag struct {
	specData
	def *int
}

// NewCount declares a counting flag.
func NewCount(name string) *CountFlag {
	return &CountFlag{specData: specData{name: name}}
}

func (f *CountFlag) SetShort(s string) *CountFlag {
	f.short = s
	return f
}

func (f *CountFlag) SetHelp(h string) *CountFlag {
	f.help = h
	return f
}

func (f *CountFlag) SetDefault(v int) *CountFlag {
	f.def = &v
	return f
}

func (f *CountFlag) SetHidden(b bool) *CountFlag {
	f.hidden = b
	return f
}

func (f *CountFlag) SetHalt(b bool) *CountFlag {
	f.halt = b
	return f
}

// Add registers the flag and returns the handle its count is read
// through after a parse.
func (f *CountFlag) Add(s *Schema) Handle[int] {
	s.addFlag(f)
	return Handle[int]{slot: f.slot, def: f.def}
}

func (f *CountFlag) bind(cur any, raw string) (any, bool) {
	n := 0
	if f.def != nil {
		n = *f.def
	}
	if cur != nil {
		n = cur.(int)
	}
	return n + 1, true
}

// ScalarFlag is a flag taking exactly one value per occurrence. A
// repeated occurrence overwrites the previous value.
type ScalarFlag[T any] struct {
	specData
	conv Converter[T]
	def  *T
}

// NewValue declares a scalar flag with a custom converter.
func NewValue[T any](name string, conv Converter[T]) *ScalarFlag[T] {
	return &ScalarFlag[T]{
		specData: specData{name: name, typeName: conv.TypeName, min: 1, max: 1},
		conv:     conv,
	}
}

// NewString declares a flag taking one string value.
func NewString(name string) *ScalarFlag[string] {
	return NewValue(name, StringValue)
}

// NewInt declares a flag taking one integer value.
func NewInt(name string) *ScalarFlag[int64] {
	return NewValue(name, IntValue)
}

// NewFloat declares a flag taking one floating point value.
func NewFloat(name string) *ScalarFlag[float64] {
	return NewValue(name, FloatValue)
}

func (f *ScalarFlag[T]) SetShort(s string) *ScalarFlag[T] {
	f.short = s
	return f
}

func (f *ScalarFlag[T]) SetHelp(h string) *ScalarFlag[T] {
	f.help = h
	return f
}

func (f *ScalarFlag[T]) SetDefault(v T) *ScalarFlag[T] {
	f.def = &v
	return f
}

func (f *ScalarFlag[T]) SetChoices(choices ...string) *ScalarFlag[T] {
	f.choices = choices
	return f
}

func (f *ScalarFlag[T]) SetHidden(b bool) *ScalarFlag[T] {
	f.hidden = b
	return f
}

func (f *ScalarFlag[T]) SetHalt(b bool) *ScalarFlag[T] {
	f.halt = b
	return f
}

// Add registers the flag and returns the handle its value is read
// through after a parse. Lookup distinguishes an absent flag from one
// set to the zero value.
func (f *ScalarFlag[T]) Add(s *Schema) Handle[T] {
	s.addFlag(f)
	return Handle[T]{slot: f.slot, def: f.def}
}

func (f *ScalarFlag[T]) bind(cur any, raw string) (any, bool) {
	v, ok := f.conv.Parse(raw)
	if !ok {
		return nil, false
	}
	return v, true
}
