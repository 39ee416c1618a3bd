// Package persist implements the flat textual record format a Sheet saves
// to and loads from: a space-separated sequence of
// "(<position>;<length>;<payload>)" records, where <length> is the byte
// length of <payload>.
package persist

import (
	"strconv"
	"strings"

	"github.com/kalexmills/cellsheet/internal/position"
)

// Record is one persisted cell: its position and the raw bytes a Cell's
// Payload method rendered for it.
type Record struct {
	Pos     position.Position
	Payload string
}

// Encode renders recs as the space-separated record sequence described in
// the package doc. The caller is responsible for ordering recs (Sheet.Save
// orders them by Position for deterministic output).
func Encode(recs []Record) string {
	var sb strings.Builder
	for i, r := range recs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('(')
		sb.WriteString(r.Pos.String())
		sb.WriteByte(';')
		sb.WriteString(strconv.Itoa(len(r.Payload)))
		sb.WriteByte(';')
		sb.WriteString(r.Payload)
		sb.WriteByte(')')
	}
	return sb.String()
}

// loaderState is the 4-state machine Decode drives over the input: between
// records, reading a position, reading a length, or reading a payload.
type loaderState int

const (
	stateBetween loaderState = iota
	statePosition
	stateLength
	statePayload
)

// Decode parses data in the format Encode produces, returning false without
// panicking if the input is structurally malformed: an unmatched '(' or
// ')', a non-digit length field, a truncated payload, or an unparseable
// position.
func Decode(data string) ([]Record, bool) {
	var recs []Record
	state := stateBetween
	var posBuf, lenBuf strings.Builder
	var payload string
	i := 0
	for i < len(data) {
		c := data[i]
		switch state {
		case stateBetween:
			switch c {
			case ' ', '\t':
				i++
			case '(':
				posBuf.Reset()
				state = statePosition
				i++
			default:
				return nil, false
			}
		case statePosition:
			if c == ';' {
				state = stateLength
				lenBuf.Reset()
				i++
				continue
			}
			posBuf.WriteByte(c)
			i++
		case stateLength:
			if c == ';' {
				n, err := strconv.Atoi(lenBuf.String())
				if err != nil || n < 0 {
					return nil, false
				}
				if n == 0 {
					payload = ""
					i++
				} else {
					if i+1+n > len(data) {
						return nil, false
					}
					payload = data[i+1 : i+1+n]
					i += 1 + n
				}
				state = statePayload
				continue
			}
			lenBuf.WriteByte(c)
			i++
		case statePayload:
			if c != ')' {
				return nil, false
			}
			p, err := position.Parse(posBuf.String())
			if err != nil {
				return nil, false
			}
			recs = append(recs, Record{Pos: p, Payload: payload})
			state = stateBetween
			i++
		}
	}
	if state != stateBetween {
		return nil, false
	}
	return recs, true
}
