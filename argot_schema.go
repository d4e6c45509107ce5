package argot

import "fmt"

// Schema is the ordered registry of flags and positional arguments one
// parse runs against. Specs register through their builders' Add;
// flags and positionals share a single name namespace. Registration
// mistakes are programming errors and panic immediately.
//
// A Schema is sealed by its first parse and may then be reused for any
// number of further parses, each producing an independent Result.
type Schema struct {
	flags       []binder          // registration order, builtins first
	positionals []binder          // registration order
	byName      map[string]binder // flags and positionals
	byShort     map[string]binder // flags with a short alias
	description string
	epilog      string
	slots       int
	sealed      bool

	hasHelp       bool
	hasVersion    bool
	helpHandle    Handle[bool]
	versionHandle Handle[bool]
}

// NewSchema returns an empty Schema.
func NewSchema() *Schema {
	return &Schema{
		byName:  make(map[string]binder),
		byShort: make(map[string]binder),
	}
}

// SetDescription sets the paragraph shown between the synopsis and the
// argument sections in help output.
func (s *Schema) SetDescription(d string) *Schema {
	s.description = d
	return s
}

// SetEpilog sets the trailing paragraph of help output.
func (s *Schema) SetEpilog(e string) *Schema {
	s.epilog = e
	return s
}

func (s *Schema) addFlag(b binder) {
	d := b.data()
	s.validate(d)
	if d.short != "" {
		if len(d.short) != 1 {
			panic(fmt.Sprintf("argot: flag %q: short %q must be a single character", d.name, d.short))
		}
		if _, ok := s.byShort[d.short]; ok {
			panic(fmt.Sprintf("argot: short flag %q already defined", d.short))
		}
		s.byShort[d.short] = b
	}
	s.register(b)
	s.flags = append(s.flags, b)
}

func (s *Schema) addPositional(b binder) {
	d := b.data()
	s.validate(d)
	s.register(b)
	s.positionals = append(s.positionals, b)
}

func (s *Schema) register(b binder) {
	d := b.data()
	d.slot = s.slots
	d.registered = true
	s.slots++
	s.byName[d.name] = b
}

func (s *Schema) validate(d *specData) {
	if s.sealed {
		panic(fmt.Sprintf("argot: cannot register %q: schema already used by a parse", d.name))
	}
	if d.registered {
		panic(fmt.Sprintf("argot: %q already registered", d.name))
	}
	if d.name == "" {
		panic("argot: spec name must not be empty")
	}
	if _, ok := s.byName[d.name]; ok {
		panic(fmt.Sprintf("argot: name %q already defined", d.name))
	}
	if d.min < 0 || d.max < d.min {
		panic(fmt.Sprintf("argot: %q: invalid arity %d..%d", d.name, d.min, d.max))
	}
}

// flagNamed resolves a long flag name. Positionals share the namespace
// but are never addressable as flags.
func (s *Schema) flagNamed(name string) binder {
	b, ok := s.byName[name]
	if !ok || b.data().positional {
		return nil
	}
	return b
}

func (s *Schema) hasDigitShorts() bool {
	for _, b := range s.flags {
		short := b.data().short
		if short != "" && isDigit(short[0]) {
			return true
		}
	}
	return false
}
