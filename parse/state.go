package parse

// State is the cursor over the token list being scanned
type State interface {
	Pos() int             // Get the current position
	CurrentArg() string   // Get the current argument
	Peek() (string, bool) // Peek at the next argument
	HasNext() bool        // Is there an argument after the current one
	Advance() bool        // Move to the next argument
	Remaining() []string  // Arguments from the current position onwards
	Len() int             // Gets the length of the argument list
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State positioned on the first element of args
func NewState(args []string) State {
	return NewStateAt(args, 0)
}

// NewStateAt creates a new State positioned at pos. A position past the end of args denotes
// an exhausted cursor.
func NewStateAt(args []string, pos int) State {
	if pos < 0 {
		pos = 0
	}
	if pos > len(args) {
		pos = len(args)
	}

	return &DefaultState{
		pos:  pos,
		args: args,
	}
}

// Pos returns the current position in the argument list
func (s *DefaultState) Pos() int {
	return s.pos
}

// CurrentArg returns the current argument or "" when the cursor is exhausted
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Advance moves to the next argument, returning false once the list is exhausted
func (s *DefaultState) Advance() bool {
	if s.pos < len(s.args) {
		s.pos++
	}
	return s.pos < len(s.args)
}

// HasNext reports whether an argument follows the current one
func (s *DefaultState) HasNext() bool {
	return s.pos+1 < len(s.args)
}

// Peek returns the next argument without advancing the current position
func (s *DefaultState) Peek() (string, bool) {
	if s.HasNext() {
		return s.args[s.pos+1], true
	}

	return "", false
}

// Remaining returns the arguments which have not been consumed yet
func (s *DefaultState) Remaining() []string {
	if s.pos >= len(s.args) {
		return []string{}
	}
	return s.args[s.pos:]
}

// Len returns the length of the argument list
func (s *DefaultState) Len() int {
	return len(s.args)
}
