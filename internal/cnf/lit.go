package cnf

// Var is a propositional variable. Variables start at 0, so the DIMACS
// variable 1 is encoded as Var 0.
type Var int32

// Lit is a literal. The sign lives in the low bit, so the DIMACS literal -3
// is encoded as 2*(3-1)+1 = 5 and negation is a single bit flip.
type Lit int32

// IntToLit converts a DIMACS literal to a Lit.
func IntToLit(i int) Lit {
	if i < 0 {
		return Lit(2*(-i-1) + 1)
	}
	return Lit(2 * (i - 1))
}

// Lit returns the positive literal of v.
func (v Var) Lit() Lit {
	return Lit(v * 2)
}

// SignedLit returns the literal of v, negated when signed is true.
func (v Var) SignedLit(signed bool) Lit {
	if signed {
		return Lit(v*2) + 1
	}
	return Lit(v * 2)
}

// Int returns the DIMACS variable of v.
func (v Var) Int() int {
	return int(v) + 1
}

// Var returns the variable of l.
func (l Lit) Var() Var {
	return Var(l / 2)
}

// Int returns the equivalent DIMACS literal.
func (l Lit) Int() int {
	res := int(l/2 + 1)
	if l&1 == 1 {
		return -res
	}
	return res
}

// IsPositive is true iff l is unsigned.
func (l Lit) IsPositive() bool {
	return l&1 == 0
}

// Negation returns the opposite literal of l.
func (l Lit) Negation() Lit {
	return l ^ 1
}
