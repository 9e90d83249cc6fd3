package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/mcvoid/pooljson"
)

func doFmt(args []string, stdOut, stdErr io.Writer) int {
	flags := flag.NewFlagSet("fmt", flag.ContinueOnError)
	flags.SetOutput(stdErr)

	var compact bool
	flags.BoolVar(&compact, "compact", false, "omit all whitespace")
	var spaces bool
	flags.BoolVar(&spaces, "spaces", false, "indent with spaces instead of tabs")
	var indent int
	flags.IntVar(&indent, "indent", 4, "indent width (1, 2, 4, or 8) when using -spaces")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(stdErr, "pooljson fmt: missing file")
		return 1
	}

	buf, err := readInput(flags.Arg(0))
	if err != nil {
		fmt.Fprintln(stdErr, err)
		return 1
	}

	d, err := parseDoc(buf)
	if err != nil {
		fmt.Fprintln(stdErr, err)
		return 1
	}

	var pf pooljson.PrintFlags
	if compact {
		pf |= pooljson.NoWhitespace
	}
	if spaces {
		pf |= pooljson.UseSpaces
	}
	switch indent {
	case 1:
		pf |= pooljson.Indent1
	case 2:
		pf |= pooljson.Indent2
	case 8:
		pf |= pooljson.Indent8
	default:
		pf |= pooljson.Indent4
	}

	if err := pooljson.Print(stdOut, d.Root(), pooljson.UTF8, false, pf); err != nil {
		fmt.Fprintln(stdErr, err)
		return 1
	}
	fmt.Fprintln(stdOut)
	return 0
}
