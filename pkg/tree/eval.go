package tree

// Eval for Value returns the stored operand.
func (v *Value) Eval() (float64, error) {
	return v.X, nil
}

// Eval for Expr evaluates the children left to right, then applies the
// assigned operation. Non-finite intermediate results (division by zero,
// overflow) propagate as ±Inf or NaN rather than erroring.
func (e *Expr) Eval() (float64, error) {
	if e.Op == nil {
		return 0, ErrUnassignedOperator
	}
	args := make([]float64, len(e.Args))
	for i, a := range e.Args {
		v, err := a.Eval()
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return e.Op.Eval(args), nil
}
