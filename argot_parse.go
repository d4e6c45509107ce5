package argot

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amterp/color"
)

// ExitFunc terminates the process after help, version or a parse
// error. Tests swap it for a recording stub; when the func returns
// instead of exiting, the engine carries on and hands back its best
// effort result.
type ExitFunc func(code int)

// Parser drives parses of one program's command line and owns the
// presentation side: program name, version, help, output sinks and the
// exit func.
type Parser struct {
	programName string
	version     string
	helpEnabled bool
	exitOnError bool
	strict      bool
	helpOffset  int

	stdout io.Writer
	stderr io.Writer
	exit   ExitFunc
}

// NewParser returns a Parser writing to the process stdout/stderr,
// exiting via os.Exit, with help enabled, exit on error and strict
// handling of trailing tokens.
func NewParser(programName string) *Parser {
	return &Parser{
		programName: programName,
		helpEnabled: true,
		exitOnError: true,
		strict:      true,
		helpOffset:  35,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		exit:        os.Exit,
	}
}

// SetVersion sets the version string and enables the built-in version
// flag.
func (p *Parser) SetVersion(v string) *Parser {
	p.version = v
	return p
}

// SetHelpEnabled controls auto-registration of the built-in help flag.
func (p *Parser) SetHelpEnabled(b bool) *Parser {
	p.helpEnabled = b
	return p
}

// SetExitOnError controls whether a parse error invokes the exit func
// with code 1 after writing its diagnostic.
func (p *Parser) SetExitOnError(b bool) *Parser {
	p.exitOnError = b
	return p
}

// SetStrict controls trailing tokens no positional accepts: an error
// when strict, diverted verbatim into Remaining when not. Non-strict
// parsing suits wrapper CLIs that forward the tail elsewhere.
func (p *Parser) SetStrict(b bool) *Parser {
	p.strict = b
	return p
}

// SetHelpOffset sets the column help text starts at in help output.
func (p *Parser) SetHelpOffset(n int) *Parser {
	p.helpOffset = n
	return p
}

func (p *Parser) SetStdout(w io.Writer) *Parser {
	p.stdout = w
	return p
}

func (p *Parser) SetStderr(w io.Writer) *Parser {
	p.stderr = w
	return p
}

func (p *Parser) SetExitFunc(f ExitFunc) *Parser {
	p.exit = f
	return p
}

// Parse classifies args against the schema and binds values. On
// success the Result holds every bound value plus any tail captured by
// a halt. On failure the diagnostic and a usage line are written to
// the error sink, the exit func fires with code 1 when exit on error
// is set, and the ParseError is returned.
//
// The built-in help and version flags are registered on first use;
// when one of them is hit the corresponding text is written to the
// output sink, the exit func fires with code 0 and the Result carries
// the outcome.
func (p *Parser) Parse(s *Schema, args []string) (*Result, error) {
	initializeColorFromEnv()
	p.ensureBuiltins(s)
	s.sealed = true

	res := &Result{vals: make([]binding, s.slots)}
	if err := p.scan(s, res, args); err != nil {
		return nil, p.fail(s, err)
	}

	if s.hasHelp && s.helpHandle.Get(res) {
		res.outcome = OutcomeHelp
		fmt.Fprint(p.stdout, p.GenerateHelp(s))
		p.exit(0)
		return res, nil
	}

	if s.hasVersion && p.version != "" && s.versionHandle.Get(res) {
		res.outcome = OutcomeVersion
		fmt.Fprint(p.stdout, p.version+"\n")
		p.exit(0)
		return res, nil
	}

	// A halted parse is handing the tail to someone else, so missing
	// positionals are their business, not ours.
	if res.halted {
		return res, nil
	}

	for _, b := range s.positionals {
		d := b.data()
		if res.vals[d.slot].count < d.min {
			return nil, p.fail(s, parseErrorf(ErrMissingPositional, "Missing argument '%s'", d.name))
		}
	}
	return res, nil
}

func (p *Parser) ensureBuiltins(s *Schema) {
	if s.sealed {
		return
	}
	var builtins []binder
	if p.helpEnabled {
		if _, ok := s.byName["help"]; !ok {
			f := NewBool("help").SetShort("h").SetHalt(true).SetHelp("Show this help message and exit")
			s.helpHandle = f.Add(s)
			s.hasHelp = true
			builtins = append(builtins, f)
		}
	}
	if p.version != "" {
		if _, ok := s.byName["version"]; !ok {
			f := NewBool("version").SetHalt(true).SetHelp("Show version string and exit")
			s.versionHandle = f.Add(s)
			s.hasVersion = true
			builtins = append(builtins, f)
		}
	}
	// Builtins lead the flag list so usage shows them first.
	if len(builtins) > 0 {
		reordered := make([]binder, 0, len(s.flags))
		reordered = append(reordered, builtins...)
		reordered = append(reordered, s.flags[:len(s.flags)-len(builtins)]...)
		s.flags = reordered
	}
}

func (p *Parser) fail(s *Schema, err *ParseError) *ParseError {
	fmt.Fprintln(p.stderr, err.Error())
	fmt.Fprintf(p.stderr, "Usage: %s\n", p.GenerateUsage(s))
	if p.exitOnError {
		p.exit(1)
	}
	return err
}

func (p *Parser) scan(s *Schema, res *Result, args []string) *ParseError {
	digitShorts := s.hasDigitShorts()
	isFlag := func(tok string) bool {
		if tok == "--" || len(tok) < 2 || tok[0] != '-' {
			return false
		}
		// Plain numbers like -42 belong to positionals, unless some
		// flag claimed a digit short.
		if !digitShorts && isNumber(tok) {
			return false
		}
		return true
	}

	positionalsLeft := 0
	for _, tok := range args {
		if !isFlag(tok) {
			positionalsLeft++
		}
	}
	positionalsRequired := 0
	for _, b := range s.positionals {
		if b.data().min > 0 {
			positionalsRequired++
		}
	}

	afterPosDelim := false
	posIdx := 0
	for argIdx := 0; argIdx < len(args); argIdx++ {
		tok := args[argIdx]

		if tok == "--" {
			if afterPosDelim {
				posIdx++
			}
			afterPosDelim = true
			continue
		}

		if !afterPosDelim && isFlag(tok) {
			consumed, err := p.parseFlag(s, res, args, argIdx, isFlag)
			if err != nil {
				return err
			}
			argIdx += consumed
		} else if posIdx < len(s.positionals) {
			b := s.positionals[posIdx]
			d := b.data()
			if err := p.bindOne(res, b, "argument '"+d.name+"'", tok); err != nil {
				return err
			}
			res.vals[d.slot].count++
			if d.halt {
				res.haltAt(args, argIdx+1)
			} else if d.max == 1 || positionalsLeft == positionalsRequired {
				// Once the tokens left only just cover the positionals
				// that still need one, variadic arguments stop hoarding.
				posIdx++
				positionalsRequired--
			}
			positionalsLeft--
		} else if p.strict {
			return parseErrorf(ErrSuperfluous, "Superfluous argument '%s'", tok)
		} else {
			res.haltAt(args, argIdx)
		}

		if res.halted {
			break
		}
	}
	return nil
}

// parseFlag handles one flag-classified token, consuming forward
// tokens for its values as needed. It returns how many extra tokens
// were consumed. Halts are recorded on the Result directly: a halt in
// the middle of a cluster captures the tail right away but still lets
// the rest of the cluster bind, so no token is left half parsed.
func (p *Parser) parseFlag(s *Schema, res *Result, args []string, argIdx int, isFlag func(string) bool) (int, *ParseError) {
	tok := args[argIdx]
	var flag binder
	var values []string
	var optName string
	fused := false

	if tok[1] == '-' {
		// long option
		if eq := strings.IndexByte(tok, '='); eq >= 0 {
			name := tok[:eq]
			flag = s.flagNamed(name[2:])
			if flag == nil {
				return 0, parseErrorf(ErrUnknownOption, "Invalid option '%s'", name)
			}
			d := flag.data()
			if d.min != 1 || d.max != 1 {
				return 0, parseErrorf(ErrBadEquals,
					"'='-syntax can not be used for '%s' because it takes %s arguments", name, takesPhrase(d))
			}
			values = []string{tok[eq+1:]}
			optName = name
			fused = true
		} else {
			flag = s.flagNamed(tok[2:])
			if flag == nil {
				return 0, parseErrorf(ErrUnknownOption, "Invalid option '%s'", tok)
			}
			optName = tok
		}
	} else {
		// short option(s)
		first := s.byShort[tok[1:2]]
		if first == nil {
			return 0, parseErrorf(ErrUnknownOption, "Invalid option '%s'", tok[1:2])
		}
		fd := first.data()
		if fd.min == 1 && fd.max == 1 && len(tok) > 2 {
			// -xVALUE
			flag = first
			values = []string{tok[2:]}
			optName = tok[1:2]
			fused = true
		} else {
			// A cluster: every char except the last must be a zero
			// arity flag, invoked with an empty value.
			for i := 1; i < len(tok)-1; i++ {
				c := tok[i : i+1]
				cf := s.byShort[c]
				if cf == nil {
					return 0, parseErrorf(ErrUnknownOption, "Invalid option '%s'", c)
				}
				cd := cf.data()
				if cd.max != 0 {
					return 0, parseErrorf(ErrOptionArity, "Option '%s' requires %s", c, requiresPhrase(cd))
				}
				if err := p.bindOne(res, cf, "option '"+c+"'", ""); err != nil {
					return 0, err
				}
				res.vals[cd.slot].count++
				if cd.halt {
					res.haltAt(args, argIdx+1)
				}
			}
			last := tok[len(tok)-1:]
			flag = s.byShort[last]
			if flag == nil {
				return 0, parseErrorf(ErrUnknownOption, "Invalid option '%s'", last)
			}
			optName = last
		}
	}

	d := flag.data()
	consumed := 0
	if d.max == 0 {
		if err := p.bindOne(res, flag, "option '"+optName+"'", ""); err != nil {
			return 0, err
		}
		res.vals[d.slot].count++
	} else {
		if !fused {
			for i := argIdx + 1; i < len(args) && len(values) < d.max; i++ {
				if isFlag(args[i]) {
					break
				}
				values = append(values, args[i])
			}
			consumed = len(values)
		}
		if len(values) < d.min {
			return 0, parseErrorf(ErrOptionArity, "Option '%s' requires %s", optName, arityPhrase(d))
		}
		if !d.collect {
			// Replace policy: a repeated occurrence starts fresh.
			res.vals[d.slot] = binding{}
		}
		for _, v := range values {
			if err := p.bindOne(res, flag, "option '"+optName+"'", v); err != nil {
				return 0, err
			}
		}
		res.vals[d.slot].count += len(values)
	}

	if d.halt {
		res.haltAt(args, argIdx+consumed+1)
	}
	return consumed, nil
}

// bindOne validates a raw value against the spec's choices, converts
// it and folds it into the spec's storage. name labels the spec in
// diagnostics, either "option '--x'" or "argument 'x'".
func (p *Parser) bindOne(res *Result, b binder, name, raw string) *ParseError {
	d := b.data()
	if len(d.choices) > 0 {
		found := false
		for _, c := range d.choices {
			if c == raw {
				found = true
				break
			}
		}
		if !found {
			return parseErrorf(ErrInvalidChoice, "Invalid value '%s' for %s. Possible values: %s",
				raw, name, strings.Join(d.choices, ", "))
		}
	}

	bnd := &res.vals[d.slot]
	var cur any
	if bnd.set {
		cur = bnd.v
	}
	v, ok := b.bind(cur, raw)
	if !ok {
		msg := fmt.Sprintf("Invalid value '%s' for %s", raw, name)
		if d.typeName != "" {
			msg += " (" + d.typeName + ")"
		}
		return &ParseError{Kind: ErrConversion, msg: msg}
	}
	bnd.v = v
	bnd.set = true
	return nil
}

// takesPhrase renders a flag's value arity for the '='-syntax error.
func takesPhrase(d *specData) string {
	switch {
	case d.min == d.max:
		return fmt.Sprintf("%d", d.min)
	case d.max == Infinity:
		return fmt.Sprintf("at least %d", d.min)
	default:
		return fmt.Sprintf("%d to %d", d.min, d.max)
	}
}

// requiresPhrase renders the arity of a value-taking flag found in the
// middle of a short cluster.
func requiresPhrase(d *specData) string {
	if d.max == 1 {
		return "an argument"
	}
	if d.min == d.max {
		return fmt.Sprintf("%d arguments", d.max)
	}
	if d.max == Infinity {
		return fmt.Sprintf("at least %d arguments", d.min)
	}
	return fmt.Sprintf("%d to %d arguments", d.min, d.max)
}

// arityPhrase renders a flag's unmet minimum when too few values were
// available.
func arityPhrase(d *specData) string {
	plural := " argument"
	if d.min > 1 {
		plural = " arguments"
	}
	if d.min == d.max {
		return fmt.Sprintf("%d%s", d.min, plural)
	}
	return fmt.Sprintf("at least %d%s", d.min, plural)
}

func initializeColorFromEnv() {
	colorValue := strings.ToLower(strings.TrimSpace(os.Getenv("ARGOT_COLOR")))
	switch colorValue {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	case "", "auto":
		// let amterp/color decide based on tty
	default:
		// invalid value - treat as auto
	}
}
