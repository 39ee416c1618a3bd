package liveserver

import "github.com/kalexmills/cellsheet/internal/value"

// renderValue formats a Value for display over the wire: a canonical
// decimal for numbers, the raw text for text, and the empty string for
// Empty.
func renderValue(v value.Value) string {
	switch v.Kind() {
	case value.KindNumber:
		return value.FormatNumber(v.Number())
	case value.KindText:
		return v.Text()
	default:
		return ""
	}
}
