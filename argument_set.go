package clap

// Lookup returns the first argument whose long name equals name, or nil
func (set ArgumentSet) Lookup(name string) *Argument {
	if name == "" {
		return nil
	}
	for _, arg := range set {
		if arg != nil && arg.Name == name {
			return arg
		}
	}

	return nil
}

// LookupShort returns the first argument whose short name equals short, or nil
func (set ArgumentSet) LookupShort(short rune) *Argument {
	if short == 0 {
		return nil
	}
	for _, arg := range set {
		if arg != nil && arg.Short == short {
			return arg
		}
	}

	return nil
}

// Clear releases the parsed value of every argument in the set
func (set ArgumentSet) Clear() {
	for _, arg := range set {
		if arg != nil {
			arg.Clear()
		}
	}
}
