package tree

func (v *Value) Clone() Node {
	return &Value{X: v.X}
}

func (e *Expr) Clone() Node {
	args := make([]Node, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.Clone()
	}
	return &Expr{Op: e.Op, Args: args}
}
