// Package sheet implements the spreadsheet container: a position-to-cell
// map, cell construction from raw text, value retrieval with the
// recompute-from-scratch cycle guard, and the rectangular copy/paste
// operation.
package sheet

import (
	"io"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/kalexmills/cellsheet/internal/formula"
	"github.com/kalexmills/cellsheet/internal/persist"
	"github.com/kalexmills/cellsheet/internal/position"
	"github.com/kalexmills/cellsheet/internal/value"
)

// Capability bits returned by Sheet.Capabilities.
const (
	CapCyclicDeps uint = 1 << iota
	CapFunctions
	CapRanges
	CapSpeed
	CapParser
	CapFileIO
)

// Sheet is an in-memory map from Position to Cell. There is no per-cell
// back-reference to the Sheet that owns it; evaluation threads a Resolver
// and a cycle counter through each call instead.
type Sheet struct {
	cells map[position.Position]*Cell
	// CycleBound caps reference dereferences per top-level GetValue call.
	CycleBound int
}

// New returns an empty sheet.
func New() *Sheet {
	return &Sheet{
		cells:      make(map[position.Position]*Cell),
		CycleBound: formula.DefaultCycleBound,
	}
}

// Resolve satisfies formula.Resolver, letting a Ref node dereference a cell
// on this sheet by position lookup rather than by pointer.
func (s *Sheet) Resolve(p position.Position) (formula.Evaluator, bool) {
	c, ok := s.cells[p]
	if !ok {
		return nil, false
	}
	return c, true
}

// Positions returns the textual form of every position currently holding a
// cell, in no particular order.
func (s *Sheet) Positions() []string {
	out := make([]string, 0, len(s.cells))
	for p := range s.cells {
		out = append(out, p.String())
	}
	return out
}

// SetCell parses raw per the cell-construction rule and stores it at pos,
// reporting false (and leaving the sheet unchanged) if pos or raw cannot be
// parsed.
func (s *Sheet) SetCell(pos, raw string) bool {
	p, err := position.Parse(pos)
	if err != nil {
		return false
	}
	cell, err := buildCell(raw)
	if err != nil {
		return false
	}
	s.cells[p] = cell
	return true
}

// GetValue evaluates the cell at pos from scratch, with a fresh cycle
// counter for this call. A missing cell, or an invalid position string,
// evaluates to Empty.
func (s *Sheet) GetValue(pos string) value.Value {
	p, err := position.Parse(pos)
	if err != nil {
		return value.Empty()
	}
	c, ok := s.cells[p]
	if !ok {
		return value.Empty()
	}
	ctx := formula.NewEvalCtx(s, s.CycleBound)
	return c.Eval(ctx)
}

// CopyRect copies the w-by-h rectangle with top-left corner src to the
// rectangle with top-left corner dst, in three phases: every source cell is
// cloned with its references shifted by the rect's offset into a snapshot;
// every destination cell not about to be overwritten is cleared; then the
// snapshot is pasted in. This order keeps a copy onto an overlapping
// rectangle correct even when source and destination intersect.
func (s *Sheet) CopyRect(dst, src string, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	dp, err := position.Parse(dst)
	if err != nil {
		return
	}
	sp, err := position.Parse(src)
	if err != nil {
		return
	}
	dx := dp.Col - sp.Col
	dy := dp.Row - sp.Row

	snapshot := make(map[position.Position]*Cell)
	for p, c := range s.cells {
		if inRect(p, sp, w, h) {
			snapshot[position.New(p.Col+dx, p.Row+dy)] = c.CloneShifted(dx, dy)
		}
	}

	for p := range s.cells {
		if inRect(p, dp, w, h) {
			if _, overwritten := snapshot[p]; !overwritten {
				delete(s.cells, p)
			}
		}
	}

	for p, c := range snapshot {
		s.cells[p] = c
	}
}

func inRect(p, origin position.Position, w, h int) bool {
	return p.Col >= origin.Col && p.Col < origin.Col+w &&
		p.Row >= origin.Row && p.Row < origin.Row+h
}

// Clear empties the sheet of every cell.
func (s *Sheet) Clear() {
	maps.Clear(s.cells)
}

// Clone deep-copies every cell into a fresh, independent sheet: mutating
// the clone never affects the original, and vice versa.
func (s *Sheet) Clone() *Sheet {
	clone := New()
	clone.CycleBound = s.CycleBound
	for p, c := range s.cells {
		clone.cells[p] = c.CloneShifted(0, 0)
	}
	return clone
}

// Capabilities reports the feature bitmask this engine supports: cyclic
// references are accepted (they terminate via the cycle guard rather than
// being rejected at SetCell time) and file persistence is implemented;
// user-defined functions, ranges, and a performance-tier claim are not.
func (s *Sheet) Capabilities() uint {
	return CapCyclicDeps | CapFileIO
}

// Save writes every cell to w in the textual persistence format, in
// position order, and reports whether the write succeeded.
func (s *Sheet) Save(w io.Writer) bool {
	positions := maps.Keys(s.cells)
	sort.Slice(positions, func(i, j int) bool { return positions[i].Less(positions[j]) })

	recs := make([]persist.Record, 0, len(positions))
	for _, p := range positions {
		recs = append(recs, persist.Record{Pos: p, Payload: s.cells[p].Payload()})
	}
	_, err := io.WriteString(w, persist.Encode(recs))
	return err == nil
}

// Load replaces the sheet's contents with what's read from r, reporting
// false (and leaving the sheet's existing contents unchanged) if the data is
// structurally malformed or any individual cell payload fails to parse.
func (s *Sheet) Load(r io.Reader) bool {
	data, err := io.ReadAll(r)
	if err != nil {
		return false
	}
	recs, ok := persist.Decode(string(data))
	if !ok {
		return false
	}
	cells := make(map[position.Position]*Cell, len(recs))
	for _, rec := range recs {
		cell, err := cellFromPayload(rec.Payload)
		if err != nil {
			return false
		}
		cells[rec.Pos] = cell
	}
	s.cells = cells
	return true
}
