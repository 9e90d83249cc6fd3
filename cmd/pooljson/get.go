package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/mcvoid/pooljson"
)

func doGet(args []string, stdOut, stdErr io.Writer) int {
	flags := flag.NewFlagSet("get", flag.ContinueOnError)
	flags.SetOutput(stdErr)
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() < 2 {
		fmt.Fprintln(stdErr, "pooljson get: usage: pooljson get <path> <file>")
		return 1
	}

	path := flags.Arg(0)
	buf, err := readInput(flags.Arg(1))
	if err != nil {
		fmt.Fprintln(stdErr, err)
		return 1
	}

	d, err := parseDoc(buf)
	if err != nil {
		fmt.Fprintln(stdErr, err)
		return 1
	}

	v := pooljson.Path(d.Root(), path)
	if d.IsSentinel(v) {
		fmt.Fprintf(stdErr, "pooljson get: no value at %q\n", path)
		return 1
	}

	if err := pooljson.Print(stdOut, v, pooljson.UTF8, false, pooljson.NoWhitespace); err != nil {
		fmt.Fprintln(stdErr, err)
		return 1
	}
	fmt.Fprintln(stdOut)
	return 0
}
