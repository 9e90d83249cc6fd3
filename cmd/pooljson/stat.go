package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/mcvoid/pooljson"
)

func doStat(args []string, stdOut, stdErr io.Writer) int {
	flags := flag.NewFlagSet("stat", flag.ContinueOnError)
	flags.SetOutput(stdErr)
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(stdErr, "pooljson stat: missing file")
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

	root := d.Root()
	fmt.Fprintf(stdOut, "width: %s\n", encodingName(d.Width()))
	fmt.Fprintf(stdOut, "root kind: %s\n", root.Kind())
	fmt.Fprintf(stdOut, "root children: %d\n", root.ChildCount())
	return 0
}

func encodingName(e pooljson.Encoding) string {
	switch e {
	case pooljson.UTF8:
		return "utf-8"
	case pooljson.UTF16:
		return "utf-16"
	case pooljson.UTF32:
		return "utf-32"
	default:
		return "unknown"
	}
}
