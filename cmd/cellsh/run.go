package main

import (
	"fmt"
	"os"

	"github.com/kalexmills/cellsheet/internal/sheet"
)

func runCommand(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: cellsh run <file>")
		return 2
	}
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "cellsh: %v\n", err)
		return 1
	}
	defer f.Close()

	s := sheet.New()
	if !s.Load(f) {
		fmt.Fprintf(os.Stderr, "cellsh: %s is not a valid saved sheet\n", args[0])
		return 1
	}

	for _, pos := range sortedPositions(s.Positions()) {
		v := s.GetValue(pos)
		fmt.Printf("%s = %s\n", pos, renderForDisplay(v))
	}
	return 0
}
