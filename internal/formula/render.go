package formula

import (
	"strconv"
	"strings"

	"github.com/kalexmills/cellsheet/internal/position"
	"github.com/kalexmills/cellsheet/internal/value"
)

func withTop(top bool, s string) string {
	if top {
		return "=" + s
	}
	return s
}

func (n NumLit) Render(top bool) string {
	return withTop(top, value.FormatNumber(n.Value))
}

// Render re-quotes the literal, doubling any embedded quote, so the
// rendered formula remains re-parseable - the round-trip guarantee this
// engine's Render contract promises.
func (n TextLit) Render(top bool) string {
	escaped := strings.ReplaceAll(n.Value, `"`, `""`)
	return withTop(top, `"`+escaped+`"`)
}

func (r Ref) Render(top bool) string {
	var sb strings.Builder
	if r.ColFixed {
		sb.WriteByte('$')
	}
	sb.WriteString(position.EncodeColumn(r.Target.Col))
	if r.RowFixed {
		sb.WriteByte('$')
	}
	sb.WriteString(strconv.Itoa(r.Target.Row))
	return withTop(top, sb.String())
}

func (u UnaryExpr) Render(top bool) string {
	return withTop(top, "(-"+u.X.Render(false)+")")
}

func (b BinaryExpr) Render(top bool) string {
	return withTop(top, "("+b.X.Render(false)+string(b.Op)+b.Y.Render(false)+")")
}
