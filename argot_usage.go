package argot

import (
	"strings"

	"github.com/amterp/color"
)

var (
	greenBold  = color.New(color.FgGreen, color.Bold)
	cyan       = color.New(color.FgCyan)
	bold       = color.New(color.Bold)
	GreenBoldS = greenBold.SprintfFunc()
	CyanS      = cyan.SprintfFunc()
	BoldS      = bold.SprintfFunc()
)

// GenerateUsage renders the one-line synopsis, without any prefix.
// Hidden specs are left out.
func (p *Parser) GenerateUsage(s *Schema) string {
	initializeColorFromEnv()
	var sb strings.Builder
	sb.WriteString(BoldS("%s", p.programName))

	for _, b := range s.flags {
		d := b.data()
		if d.hidden {
			continue
		}
		el := "[--" + d.name
		if rep := repeatedArgs(strings.ToUpper(d.name), d.min, d.max); rep != "" {
			el += " " + rep
		}
		el += "]"
		if d.collect {
			el += "..."
		}
		sb.WriteString(" ")
		sb.WriteString(CyanS("%s", el))
	}

	for _, b := range s.positionals {
		d := b.data()
		if d.hidden {
			continue
		}
		name := d.name
		if len(d.choices) > 0 {
			name = "{" + strings.Join(d.choices, ",") + "}"
		}
		var el string
		if d.min == 0 {
			el = "[" + name
			if d.max > 1 {
				el += "..."
			}
			el += "]"
		} else {
			el = name
			if d.max > 1 {
				el += " [" + name + "...]"
			}
		}
		sb.WriteString(" ")
		sb.WriteString(CyanS("%s", el))
	}
	return sb.String()
}

// GenerateHelp renders the full help text: synopsis, description,
// positional and flag sections, epilog.
func (p *Parser) GenerateHelp(s *Schema) string {
	initializeColorFromEnv()
	spacing := func(width int) string {
		const minSpacing = 2
		if width > p.helpOffset-minSpacing {
			return strings.Repeat(" ", minSpacing)
		}
		return strings.Repeat(" ", p.helpOffset-width)
	}

	var sb strings.Builder
	sb.WriteString(GreenBoldS("Usage:"))
	sb.WriteString(" ")
	sb.WriteString(p.GenerateUsage(s))
	sb.WriteString("\n\n")

	if s.description != "" {
		sb.WriteString(s.description)
		sb.WriteString("\n\n")
	}

	if countVisible(s.positionals) > 0 {
		sb.WriteString(GreenBoldS("Positional Arguments:"))
		sb.WriteString("\n")
		for _, b := range s.positionals {
			d := b.data()
			if d.hidden {
				continue
			}
			name := d.name
			if len(d.choices) > 0 {
				name = "{" + strings.Join(d.choices, ",") + "}"
			}
			sb.WriteString("  ")
			sb.WriteString(CyanS("%s", name))
			sb.WriteString(spacing(len(name)))
			sb.WriteString(d.help)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if countVisible(s.flags) > 0 {
		sb.WriteString(GreenBoldS("Optional Arguments:"))
		sb.WriteString("\n")
		for _, b := range s.flags {
			d := b.data()
			if d.hidden {
				continue
			}
			entry := "    "
			if d.short != "" {
				entry = "-" + d.short + ", "
			}
			entry += "--" + d.name
			width := 4 + 2 + len(d.name)
			if rep := repeatedArgs(strings.ToUpper(d.name), d.min, d.max); rep != "" {
				entry += " " + rep
				width += 1 + len(rep)
			}
			sb.WriteString("  ")
			sb.WriteString(CyanS("%s", entry))
			sb.WriteString(spacing(width))
			sb.WriteString(d.help)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if s.epilog != "" {
		sb.WriteString("\n")
		sb.WriteString(s.epilog)
		sb.WriteString("\n")
	}
	return sb.String()
}

func countVisible(specs []binder) int {
	n := 0
	for _, b := range specs {
		if !b.data().hidden {
			n++
		}
	}
	return n
}

// repeatedArgs renders a value placeholder min..max times, in the
// "NAME NAME [NAME..]" style.
func repeatedArgs(name string, min, max int) string {
	var sb strings.Builder
	for i := 0; i < min; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(name)
	}
	if max > min {
		if min > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("[")
		sb.WriteString(name)
		if max-min > 1 {
			sb.WriteString("..")
		}
		sb.WriteString("]")
	}
	return sb.String()
}
