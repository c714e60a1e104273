package clap

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// Renderer produces the two columns of the help listing
type Renderer interface {
	ArgumentNames(a *Argument) string
	ArgumentDescription(a *Argument) string
}

type DefaultRenderer struct{}

func NewRenderer() *DefaultRenderer {
	return &DefaultRenderer{}
}

// ArgumentNames returns "--name, -c", "--name" or "-c" depending on which names the argument has
func (r *DefaultRenderer) ArgumentNames(a *Argument) string {
	return a.names()
}

// ArgumentDescription returns the description of the given argument
func (r *DefaultRenderer) ArgumentDescription(a *Argument) string {
	return a.Description
}

// PrintHelpTo writes the help listing to writer:
//
//	<programName>
//
//	<description>
//
//	Options:
//	  --name, -c  description
//
// The names column is as wide as the widest entry and never narrower than two cells.
func (s *Parser) PrintHelpTo(writer io.Writer, programName, description string) {
	names := make([]string, len(s.arguments))
	width := minHelpWidth
	for i, arg := range s.arguments {
		if arg == nil {
			continue
		}
		names[i] = s.renderer.ArgumentNames(arg)
		if w := runewidth.StringWidth(names[i]); w > width {
			width = w
		}
	}

	_, _ = fmt.Fprintf(writer, "%s\n\n%s\n\nOptions:\n", programName, description)
	for i, arg := range s.arguments {
		if arg == nil {
			continue
		}
		_, _ = fmt.Fprintf(writer, "  %s  %s\n", runewidth.FillRight(names[i], width), s.renderer.ArgumentDescription(arg))
	}
	_, _ = fmt.Fprintln(writer)
}
