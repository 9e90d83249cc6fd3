// Command pooljson is a small CLI over the pooljson library: fmt
// re-pretty-prints a document, get walks a path and prints one value,
// stat reports basic document shape. Grounded on
// _examples/tetratelabs-wazero/cmd/wazero's doMain/flag.NewFlagSet
// subcommand dispatch style.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mcvoid/pooljson"
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdout, os.Stderr))
}

// doMain is separated out for the purpose of unit testing.
func doMain(args []string, stdOut, stdErr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdErr)
		return 1
	}

	subCmd, rest := args[0], args[1:]
	switch subCmd {
	case "fmt":
		return doFmt(rest, stdOut, stdErr)
	case "get":
		return doGet(rest, stdOut, stdErr)
	case "stat":
		return doStat(rest, stdOut, stdErr)
	case "-h", "--help", "help":
		printUsage(stdOut)
		return 0
	default:
		fmt.Fprintf(stdErr, "pooljson: unknown command %q\n", subCmd)
		printUsage(stdErr)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: pooljson <command> [arguments]")
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  fmt [-compact] [-indent n] <file>   re-print a JSON document")
	fmt.Fprintln(w, "  get <path> <file>                   print the value at a dotted/bracket path")
	fmt.Fprintln(w, "  stat <file>                         report document width, root kind, child count")
}

func readInput(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func parseDoc(buf []byte) (*pooljson.Document, error) {
	d := pooljson.NewDocument(pooljson.UTF8)
	if err := pooljson.Parse(d, buf, len(buf), pooljson.UnknownEncoding, pooljson.TrailingCommas|pooljson.Comments); err != nil {
		return nil, err
	}
	return d, nil
}
