package main

import "github.com/kalexmills/cellsheet/internal/value"

// renderForDisplay formats a Value the way the CLI prints it: empty cells
// show as "<empty>" rather than a blank line so the output stays readable.
func renderForDisplay(v value.Value) string {
	switch v.Kind() {
	case value.KindNumber:
		return value.FormatNumber(v.Number())
	case value.KindText:
		return v.Text()
	default:
		return "<empty>"
	}
}
