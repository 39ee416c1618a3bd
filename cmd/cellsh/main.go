// Command cellsh is a small CLI front end for the cellsheet formula engine:
// it can replay a saved sheet, drive an interactive REPL against one, or
// serve one live over a WebSocket.
package main

import (
	"fmt"
	"os"
	"sort"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	sub := os.Args[1]
	switch sub {
	case "-h", "--help", "help":
		usage()
		return
	case "run":
		os.Exit(runCommand(os.Args[2:]))
	case "repl":
		os.Exit(replCommand(os.Args[2:]))
	case "serve":
		os.Exit(serveCommand(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand: %s\n", sub)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  cellsh <command> [arguments]\n")
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  run <file>      load a saved sheet and print every cell's value\n")
	fmt.Fprintf(os.Stderr, "  repl [file]     start an interactive session, optionally seeded from a saved sheet\n")
	fmt.Fprintf(os.Stderr, "  serve [addr]    serve a sheet live over a WebSocket (default :8080)\n")
	fmt.Fprintf(os.Stderr, "  help            show this help message\n")
}

func sortedPositions(positions []string) []string {
	out := append([]string(nil), positions...)
	sort.Strings(out)
	return out
}
