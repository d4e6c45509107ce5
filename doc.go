// Package argot is a declarative command line argument parser built
// around typed flag and positional specs.
//
// Callers register specs on a Schema through builder constructors and
// read parsed values back through the typed handles Add returns:
//
//	schema := argot.NewSchema()
//	verbose := argot.NewCount("verbose").SetShort("v").SetHelp("More output.").Add(schema)
//	host := argot.NewStringArg("host").SetHelp("Host to connect to.").Add(schema)
//
//	parser := argot.NewParser("mycli").SetVersion("1.0.0")
//	res, err := parser.Parse(schema, os.Args[1:])
//	if err != nil {
//	    return // diagnostic and usage already written, exit already requested
//	}
//	fmt.Println(verbose.Get(res), host.Get(res))
//
// Tokens are classified the conventional way: --name, --name=value,
// -x, -xVALUE and clusters like -xyz of zero arity flags. A lone --
// switches to positional-only mode, and repeating -- advances to the
// next positional, which splits tokens between several variadic
// positionals. Tokens that parse as plain numbers (-42) are never
// mistaken for flags unless a flag registered a digit short alias.
//
// Variadic positionals are greedy but fair: they absorb spare tokens
// only as long as every required positional after them can still be
// satisfied, so "cp"-style schemas (sources... destination) come out
// right.
//
// A spec marked SetHalt stops the scan once bound and captures the
// rest of argv verbatim in Result.Remaining, which is how subcommands
// delegate to their own Schema. The built-in help and version flags
// use the same mechanism.
package argot
