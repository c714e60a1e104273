package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/napalu/clap"
	"golang.org/x/term"
)

var (
	help       = clap.NewArgument("help", 'h', clap.Bool, "Prints this help message", false)
	json       = clap.NewArgument("json", 0, clap.Bool, "If true, output will be in JSON format", true)
	extensions = clap.NewArgument("extensions", 'e', clap.String,
		"Comma-separated list of extensions to include in the output", false)
	precision = clap.NewArgument("precision", 'p', clap.Int,
		"The number of decimal places to include in the output", false)
	threshold = clap.NewArgument("threshold", 't', clap.Float,
		"The threshold for including a value in the output", false)
	shell = clap.NewArgument("completion", 0, clap.String,
		"Print a completion script for the given shell (bash, zsh or fish)", false)
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	exitCode := 0
	parser, err := clap.NewParserWith(
		clap.WithArguments(help, json, extensions, precision, threshold, shell),
		clap.WithStdout(stdout),
		clap.WithStderr(stderr),
		clap.WithExitFunc(func(status int) { exitCode = status }))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer parser.ClearAll()

	rest := parser.Parse(args)
	if exitCode != 0 {
		return exitCode
	}

	programName := "clap-demo"
	if len(args) > 0 {
		programName = filepath.Base(args[0])
	}

	if help.GetBool() {
		parser.PrintHelp(programName, "Prints the options it was called with")
		return 0
	}

	if shell.IsSet() {
		script, err := parser.GenerateCompletion(shell.GetString(), programName)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprint(stdout, script)
		return 0
	}

	c := color.New(color.FgBlue, color.Bold)
	if !isTerminal(stdout) {
		c.DisableColor()
	}
	heading := c.SprintFunc()

	fmt.Fprintf(stdout, "%s %t\n", heading("Json:"), json.GetBool())
	if extensions.IsSet() {
		fmt.Fprintf(stdout, "%s %s\n", heading("Extensions:"), extensions.GetString())
	}
	if precision.IsSet() {
		fmt.Fprintf(stdout, "%s %d\n", heading("Precision:"), precision.GetInt())
	}
	if threshold.IsSet() {
		fmt.Fprintf(stdout, "%s %f\n", heading("Threshold:"), threshold.GetFloat())
	}
	for _, arg := range rest {
		fmt.Fprintf(stdout, "%s %s\n", heading("Positional:"), arg)
	}

	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
