// Copyright 2021-2026, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package clap provides minimal support for command-line processing.
//
// It supports 4 types of flags:
//
//	Bool - true when present; an immediately following "true" or "false" is consumed as its value
//	Int - expects a base-10 integer which fits a signed 32-bit integer
//	Float - expects a floating-point number
//	String - expects any value, taken verbatim
//
// Flags are written as --name or -c. Scanning stops at "--" (which is consumed) or at the first token
// which does not start with '-'. Everything from that point on is returned to the caller untouched.
package clap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/napalu/clap/completion"
	"github.com/napalu/clap/parse"
	"github.com/napalu/clap/types"
)

// Parser opaque struct holding the accepted arguments and the output streams used for help and errors
type Parser struct {
	arguments ArgumentSet
	renderer  Renderer
	stdout    io.Writer
	stderr    io.Writer
	exit      ExitFunc
}

// NewParser convenience initialization method. Use NewParserWith to
// configure Parser using option functions. Arguments are taken as-is: nil
// entries are dropped but nothing else is validated, so an argument without
// a name is kept and simply never matches. AddArgument and NewParserWith
// reject such arguments with ErrEmptyFlag.
func NewParser(arguments ...*Argument) *Parser {
	p := &Parser{
		arguments: make(ArgumentSet, 0, len(arguments)),
		renderer:  NewRenderer(),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		exit:      os.Exit,
	}
	for _, arg := range arguments {
		if arg != nil {
			p.arguments = append(p.arguments, arg)
		}
	}

	return p
}

// AddArgument appends an argument to the set of accepted arguments. Arguments are matched in the order
// they were added. Returns an error when argument is nil or has neither a long nor a short name.
func (s *Parser) AddArgument(argument *Argument) error {
	if argument == nil {
		return types.ErrNilArgument
	}
	if !argument.hasName() {
		return fmt.Errorf(types.FmtErrorWithString, types.ErrEmptyFlag, argument.Description)
	}

	s.arguments = append(s.arguments, argument)

	return nil
}

// Arguments returns the accepted arguments in declaration order
func (s *Parser) Arguments() ArgumentSet {
	return s.arguments
}

// Parse this function should be called on os.Args (or a user-defined array of arguments) where the first
// element is the program name. Matched arguments receive their values and the unconsumed arguments are returned.
// On error the message is printed to stderr and the exit function is called with status 1.
func (s *Parser) Parse(args []string) []string {
	rest, err := s.ParseSafe(args)
	if err != nil {
		// out-of-range values were reported by ParseSafe already
		if !errors.Is(err, types.ErrValueOutOfRange) {
			s.fail(err)
		}
		return nil
	}

	return rest
}

// ParseSafe behaves like Parse but returns the first error instead of terminating the process. On error no
// remaining arguments are returned. An integer value outside the 32-bit range still terminates the process.
func (s *Parser) ParseSafe(args []string) ([]string, error) {
	// the first element is always the program name
	return s.scan(parse.NewStateAt(args, 1))
}

// ParseString splits argString with shell quoting rules and parses the result. Unlike Parse, argString
// must not start with the program name.
func (s *Parser) ParseString(argString string) ([]string, error) {
	args, err := parse.Split(argString)
	if err != nil {
		return nil, err
	}

	return s.scan(parse.NewState(args))
}

// ClearAll releases the values of all accepted arguments so the parser can be used on another command line
func (s *Parser) ClearAll() {
	s.arguments.Clear()
}

// PrintHelp prints the program name, its description and the accepted arguments to the parser's stdout
func (s *Parser) PrintHelp(programName, description string) {
	s.PrintHelpTo(s.stdout, programName, description)
}

// GenerateCompletion returns a completion script for shell (bash, zsh or fish)
func (s *Parser) GenerateCompletion(shell, programName string) (string, error) {
	generator := completion.GetGenerator(shell)
	if generator == nil {
		return "", fmt.Errorf("%w: %s (supported: %s)", types.ErrUnsupportedShell, shell,
			strings.Join(completion.SupportedShells(), ", "))
	}

	return generator.Generate(programName, s.completionData()), nil
}
