package argot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUsage(t *testing.T) {
	t.Setenv("ARGOT_COLOR", "never")

	schema := NewSchema()
	NewBool("foo").Add(schema)
	NewString("level").Add(schema)
	NewStringArg("input").Add(schema)
	NewStringArg("mode").SetOptional(true).SetChoices("fast", "slow").Add(schema)
	NewStringSliceArg("extras").SetOptional(true).Add(schema)

	parser := NewParser("frob")
	usage := parser.GenerateUsage(schema)
	assert.Equal(t, "frob [--foo] [--level LEVEL] input [{fast,slow}] [extras...]", usage)
}

func TestGenerateUsageArityForms(t *testing.T) {
	t.Setenv("ARGOT_COLOR", "never")

	schema := NewSchema()
	NewIntSlice("point").SetNum(2).Add(schema)
	NewIntSlice("dims").SetArity(1, 3).SetCollect(false).Add(schema)
	NewIntSlice("bound").SetArity(0, 1).SetCollect(false).Add(schema)
	NewStringSlice("tag").Add(schema)
	NewStringSliceArg("files").Add(schema)

	parser := NewParser("prog")
	usage := parser.GenerateUsage(schema)
	assert.Equal(t,
		"prog [--point POINT POINT] [--dims DIMS [DIMS..]] [--bound [BOUND]] [--tag TAG]... files [files...]",
		usage)
}

func TestGenerateUsageShowsBuiltinsFirst(t *testing.T) {
	t.Setenv("ARGOT_COLOR", "never")

	schema := NewSchema()
	NewBool("foo").Add(schema)
	NewStringArg("input").Add(schema)

	rig := newTestRig("prog")
	rig.parser.SetVersion("1.0")
	_, err := rig.parser.Parse(schema, []string{"x"})
	assert.NoError(t, err)

	usage := rig.parser.GenerateUsage(schema)
	assert.Equal(t, "prog [--help] [--version] [--foo] input", usage)
}

func TestHiddenSpecsLeftOut(t *testing.T) {
	t.Setenv("ARGOT_COLOR", "never")

	schema := NewSchema()
	NewBool("foo").SetHelp("Visible.").Add(schema)
	NewBool("debug-timing").SetHidden(true).SetHelp("Internal.").Add(schema)
	NewStringArg("ghost").SetOptional(true).SetHidden(true).Add(schema)

	parser := NewParser("prog")
	usage := parser.GenerateUsage(schema)
	assert.Equal(t, "prog [--foo]", usage)

	help := parser.GenerateHelp(schema)
	assert.NotContains(t, help, "debug-timing")
	assert.NotContains(t, help, "ghost")
	// Every positional is hidden, so the whole section disappears.
	assert.NotContains(t, help, "Positional Arguments:")
}

func TestGenerateHelp(t *testing.T) {
	t.Setenv("ARGOT_COLOR", "never")

	schema := NewSchema().
		SetDescription("Frobnicates inputs.").
		SetEpilog("See the manual for details.")
	NewString("level").SetShort("l").SetHelp("Verbosity level.").Add(schema)
	NewBool("foo").SetHelp("Enable foo.").Add(schema)
	NewBool("much-longer-than-offset").SetHelp("Wraps nothing.").Add(schema)
	NewStringArg("input").SetHelp("File to frobnicate.").Add(schema)

	parser := NewParser("frob").SetHelpOffset(20)
	help := parser.GenerateHelp(schema)

	expected := strings.Join([]string{
		"Usage: frob [--level LEVEL] [--foo] [--much-longer-than-offset] input",
		"",
		"Frobnicates inputs.",
		"",
		"Positional Arguments:",
		"  input               File to frobnicate.",
		"",
		"Optional Arguments:",
		"  -l, --level LEVEL   Verbosity level.",
		"      --foo           Enable foo.",
		"      --much-longer-than-offset  Wraps nothing.",
		"",
		"",
		"See the manual for details.",
		"",
	}, "\n")
	assert.Equal(t, expected, help)
}

func TestGenerateHelpOmitsEmptySections(t *testing.T) {
	t.Setenv("ARGOT_COLOR", "never")

	schema := NewSchema()
	NewBool("foo").SetHelp("Enable foo.").Add(schema)

	parser := NewParser("prog")
	help := parser.GenerateHelp(schema)
	assert.NotContains(t, help, "Positional Arguments:")
	assert.Contains(t, help, "Optional Arguments:")

	schema = NewSchema()
	NewStringArg("input").Add(schema)
	help = parser.GenerateHelp(schema)
	assert.NotContains(t, help, "Optional Arguments:")
	assert.Contains(t, help, "Positional Arguments:")
}
