package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/kalexmills/cellsheet/internal/sheet"
)

// replCommand drives an interactive "pos = raw" session against a sheet,
// optionally seeded from a saved file. Commands:
//
//	A1 = 1+2      set a cell to the literal text "1+2" (no leading '=', not a number)
//	A1 = =B1+1    set a cell to a formula; the raw text keeps its leading '='
//	A1            print a cell's current value
//	:save <file>  save the current sheet
//	:clone        start editing an independent copy from this point on ("what-if" mode)
//	:quit         exit
func replCommand(args []string) int {
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: cellsh repl [file]")
		return 2
	}

	s := sheet.New()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "cellsh: %v\n", err)
			return 1
		}
		ok := s.Load(f)
		f.Close()
		if !ok {
			fmt.Fprintf(os.Stderr, "cellsh: %s is not a valid saved sheet\n", args[0])
			return 1
		}
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if interactive {
			fmt.Fprint(os.Stdout, "cellsh> ")
		}
		if !scanner.Scan() {
			fmt.Fprintln(os.Stdout)
			return 0
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if handleReplCommand(&s, line) {
			return 0
		}
	}
}

func handleReplCommand(s **sheet.Sheet, line string) (quit bool) {
	switch {
	case line == ":quit" || line == ":q":
		return true
	case line == ":clone":
		*s = (*s).Clone()
		fmt.Fprintln(os.Stdout, "now editing an independent clone")
		return false
	case strings.HasPrefix(line, ":save "):
		path := strings.TrimSpace(strings.TrimPrefix(line, ":save "))
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cellsh: %v\n", err)
			return false
		}
		defer f.Close()
		if !(*s).Save(f) {
			fmt.Fprintln(os.Stderr, "cellsh: save failed")
		}
		return false
	}

	if eq := strings.Index(line, "="); eq >= 0 {
		pos := strings.TrimSpace(line[:eq])
		raw := strings.TrimSpace(line[eq+1:])
		if !(*s).SetCell(pos, raw) {
			fmt.Fprintf(os.Stderr, "cellsh: could not set %s\n", pos)
		}
		return false
	}

	fmt.Fprintf(os.Stdout, "%s\n", renderForDisplay((*s).GetValue(line)))
	return false
}
