package clap

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/napalu/clap/completion"
	"github.com/napalu/clap/internal/util"
	"github.com/napalu/clap/parse"
	"github.com/napalu/clap/types"
)

func (p *Parser) scan(state parse.State) ([]string, error) {
	for state.Pos() < state.Len() {
		currentArg := state.CurrentArg()
		if !p.isFlag(currentArg) {
			break
		}
		if currentArg == terminator {
			state.Advance()
			break
		}

		argument := p.lookupFlag(currentArg)
		if argument == nil {
			return nil, fmt.Errorf(types.FmtErrorWithQuoted, types.ErrUnknownArgument, currentArg)
		}

		if err := p.processFlag(state, argument, currentArg); err != nil {
			return nil, err
		}

		state.Advance()
	}

	return state.Remaining(), nil
}

func (p *Parser) isFlag(arg string) bool {
	return strings.HasPrefix(arg, shortPrefix)
}

func (p *Parser) lookupFlag(flag string) *Argument {
	if strings.HasPrefix(flag, longPrefix) {
		return p.arguments.Lookup(flag[len(longPrefix):])
	}

	name := flag[len(shortPrefix):]
	if name == "" {
		return nil
	}
	short, _ := utf8.DecodeRuneInString(name)

	return p.arguments.LookupShort(short)
}

// processFlag sets the value of argument and leaves state on the last token it consumed
func (p *Parser) processFlag(state parse.State, argument *Argument, flag string) error {
	next, hasNext := state.Peek()

	if argument.TypeOf == types.Bool {
		switch {
		case hasNext && next == "true":
			argument.set(types.BoolValue(true))
			state.Advance()
		case hasNext && next == "false":
			argument.set(types.BoolValue(false))
			state.Advance()
		default:
			argument.set(types.BoolValue(true))
		}

		return nil
	}

	if !hasNext {
		return fmt.Errorf(types.FmtErrorWithQuoted, types.ErrMissingValue, flag)
	}

	value, err := p.flagValue(argument, next, flag)
	if err != nil {
		return err
	}
	argument.set(value)
	state.Advance()

	return nil
}

func (p *Parser) flagValue(argument *Argument, next string, flag string) (types.Value, error) {
	switch argument.TypeOf {
	case types.Int:
		n, ok := util.ParseIntPrefix(next)
		if !ok {
			return nil, p.fatal(fmt.Errorf(types.FmtErrorWithQuoted, types.ErrValueOutOfRange, flag))
		}
		return types.IntValue(n), nil
	case types.Float:
		return types.FloatValue(util.ParseFloatPrefix(next)), nil
	case types.String:
		return types.StringValue(next), nil
	default:
		return nil, fmt.Errorf(types.FmtErrorWithQuoted, types.ErrInvalidArgumentType, flag)
	}
}

// fatal reports err and terminates the process whichever calling convention is in use.
// err is returned for exit functions which do not terminate.
func (p *Parser) fatal(err error) error {
	p.fail(err)
	return err
}

func (p *Parser) fail(err error) {
	_, _ = fmt.Fprintln(p.stderr, err)
	p.exit(1)
}

func (p *Parser) completionData() completion.Data {
	data := completion.Data{Flags: make([]completion.Flag, 0, len(p.arguments))}
	for _, arg := range p.arguments {
		if arg == nil || !arg.hasName() {
			continue
		}
		flag := completion.Flag{
			Long:        arg.Name,
			Description: arg.Description,
			TakesValue:  arg.TypeOf.TakesValue(),
		}
		if arg.Short != 0 {
			flag.Short = string(arg.Short)
		}
		data.Flags = append(data.Flags, flag)
	}

	return data
}
