// completion/zsh.go
package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data Data) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#compdef %[1]s

__%[2]s_completion() {
    _arguments -S \`, programName, fn))

	for _, flag := range data.Flags {
		spellings := flag.spellings()
		if len(spellings) == 0 {
			continue
		}
		value := ""
		if flag.TakesValue {
			value = ":value:"
		}
		desc := escapeZsh(flag.Description)
		if len(spellings) == 1 {
			script.WriteString(fmt.Sprintf(`
        '%s[%s]%s' \`, spellings[0], desc, value))
			continue
		}
		// mutually exclusive long and short spelling
		script.WriteString(fmt.Sprintf(`
        '(%[1]s)'{%[2]s}'[%[3]s]%[4]s' \`,
			strings.Join(spellings, " "), strings.Join(spellings, ","), desc, value))
	}

	script.WriteString(fmt.Sprintf(`
        '*:file:_files'
}

__%[1]s_completion "$@"
`, fn))

	return script.String()
}
