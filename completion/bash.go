// completion/bash.go
package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data Data) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%[1]s_completion() {
    local cur prev i
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Flags are only recognised before the first positional or "--"
    for ((i=1; i < COMP_CWORD; i++)); do
        case "${COMP_WORDS[i]}" in
            --)
                COMPREPLY=( $(compgen -f -- "$cur") )
                return
                ;;`, fn))

	var valueFlags []string
	for _, flag := range data.Flags {
		if flag.TakesValue {
			valueFlags = append(valueFlags, flag.spellings()...)
		}
	}
	if len(valueFlags) > 0 {
		script.WriteString(fmt.Sprintf(`
            %s)
                ((i++))
                ;;`, strings.Join(valueFlags, "|")))
	}

	script.WriteString(`
            -*)
                ;;
            *)
                COMPREPLY=( $(compgen -f -- "$cur") )
                return
                ;;
        esac
    done
`)

	if len(valueFlags) > 0 {
		script.WriteString(fmt.Sprintf(`
    # Flag values
    case "${prev}" in
        %s)
            COMPREPLY=()
            return
            ;;
    esac
`, strings.Join(valueFlags, "|")))
	}

	script.WriteString(`
    if [[ "$cur" == -* ]]; then
        local flags=()`)

	for _, flag := range data.Flags {
		for _, spelling := range flag.spellings() {
			script.WriteString(fmt.Sprintf(`
        flags+=(%s)`, quoteBash(spelling)))
		}
	}

	script.WriteString(fmt.Sprintf(`
        COMPREPLY=( $(compgen -W "${flags[*]}" -- "$cur") )
        return
    fi

    COMPREPLY=( $(compgen -f -- "$cur") )
}

complete -F __%[1]s_completion %[2]s
`, fn, programName))

	return script.String()
}
