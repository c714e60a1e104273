// completion/data.go
package completion

// Flag describes one accepted flag for completion purposes. Either Long or Short may be empty.
type Flag struct {
	Long        string // Long name without the leading "--"
	Short       string // Short name without the leading "-"
	Description string // Human-readable description
	TakesValue  bool   // The flag consumes the following token
}

// Data is used to store the completion data for all configured flags in declaration order
type Data struct {
	Flags []Flag
}

// Generator renders a completion script for a given shell
type Generator interface {
	Generate(programName string, data Data) string
}

// GetGenerator returns the Generator for shell or nil when the shell is not supported
func GetGenerator(shell string) Generator {
	switch shell {
	case "bash":
		return &BashGenerator{}
	case "zsh":
		return &ZshGenerator{}
	case "fish":
		return &FishGenerator{}
	default:
		return nil
	}
}

// SupportedShells lists the shells GetGenerator knows about
func SupportedShells() []string {
	return []string{"bash", "zsh", "fish"}
}
