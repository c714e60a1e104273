package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	for _, flag := range data.Flags {
		if flag.Long == "" && flag.Short == "" {
			continue
		}

		cmd := fmt.Sprintf("complete -c %s", programName)
		if flag.TakesValue {
			cmd += " -r"
		} else {
			cmd += " -f"
		}

		if flag.Long != "" {
			cmd = fmt.Sprintf("%s -l %s", cmd, flag.Long)
		}
		if flag.Short != "" {
			cmd = fmt.Sprintf("%s -s %s", cmd, flag.Short)
		}
		if flag.Description != "" {
			cmd = fmt.Sprintf("%s -d '%s'", cmd, escapeFish(flag.Description))
		}

		script.WriteString(strings.TrimSpace(cmd) + "\n")
	}

	return script.String()
}
