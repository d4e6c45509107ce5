package argot

// Outcome says how a parse ended.
type Outcome int

const (
	// OutcomeParsed is an ordinary successful parse.
	OutcomeParsed Outcome = iota
	// OutcomeHelp means the help flag was hit; help text has been
	// written to the output sink.
	OutcomeHelp
	// OutcomeVersion means the version flag was hit; the version
	// string has been written to the output sink.
	OutcomeVersion
)

// binding is the engine-owned storage of one spec during a parse.
// count tracks bound values for flags and bound occurrences for
// positionals.
type binding struct {
	set   bool
	count int
	v     any
}

// Result carries everything one parse bound. Values are read through
// the typed handles returned at registration; the Result never aliases
// the Schema, so a Schema can serve any number of parses.
type Result struct {
	vals      []binding
	remaining []string
	outcome   Outcome
	halted    bool
}

func (r *Result) Outcome() Outcome { return r.outcome }

// Halted reports whether a halt-marked spec ended the scan early.
func (r *Result) Halted() bool { return r.halted }

// Remaining returns the verbatim tail captured by a halt, or the
// unconsumed trailing tokens when the parser is not strict. Typical
// use is handing it to a subcommand's own parse.
func (r *Result) Remaining() []string { return r.remaining }

// haltAt captures args[idx:] as the remaining tail. A later halt in
// the same scan replaces an earlier capture.
func (r *Result) haltAt(args []string, idx int) {
	r.remaining = append(r.remaining[:0], args[idx:]...)
	r.halted = true
}

// Handle reads one spec's value out of a Result. Handles are returned
// by Add and stay valid for every Result produced against the same
// Schema.
type Handle[T any] struct {
	slot int
	def  *T
}

// Get returns the bound value, falling back to the spec's default and
// then to the zero value when the spec never bound.
func (h Handle[T]) Get(res *Result) T {
	b := res.vals[h.slot]
	if !b.set {
		if h.def != nil {
			return *h.def
		}
		var zero T
		return zero
	}
	return b.v.(T)
}

// Lookup is Get plus whether the spec bound at least once.
func (h Handle[T]) Lookup(res *Result) (T, bool) {
	return h.Get(res), res.vals[h.slot].set
}
