package formula

func (n NumLit) CloneShifted(dx, dy int) Node { return NumLit{Value: n.Value} }

func (n TextLit) CloneShifted(dx, dy int) Node { return TextLit{Value: n.Value} }

// CloneShifted shifts the target position by (dx, dy) on each axis that
// isn't pinned by a '$'.
func (r Ref) CloneShifted(dx, dy int) Node {
	t := r.Target
	if !r.ColFixed {
		t.Col += dx
	}
	if !r.RowFixed {
		t.Row += dy
	}
	return Ref{Target: t, ColFixed: r.ColFixed, RowFixed: r.RowFixed}
}

func (u UnaryExpr) CloneShifted(dx, dy int) Node {
	return UnaryExpr{X: u.X.CloneShifted(dx, dy), Op: u.Op}
}

func (b BinaryExpr) CloneShifted(dx, dy int) Node {
	return BinaryExpr{X: b.X.CloneShifted(dx, dy), Op: b.Op, Y: b.Y.CloneShifted(dx, dy)}
}
