package fuzzy

// An Expr is a boolean-fuzzy expression tree over term references. Trees
// are built once, validated at control system construction, and evaluated
// purely against the fuzzified degree map of the current compute pass.
type Expr interface {
	eval(degrees map[TermRef]float64) float64
	walk(visit func(TermRef))
}

// A TermRef names one term of an antecedent variable.
type TermRef struct {
	Variable string
	Term     string
}

func (r TermRef) eval(degrees map[TermRef]float64) float64 {
	return degrees[r]
}

func (r TermRef) walk(visit func(TermRef)) { visit(r) }

// Ref is shorthand for a TermRef expression.
func Ref(variable, term string) Expr {
	return TermRef{Variable: variable, Term: term}
}

// EvalExpr evaluates an expression tree against a fuzzified degree map.
// Unresolved references evaluate to 0; control system construction
// guarantees they cannot occur for registered rules.
func EvalExpr(e Expr, degrees map[TermRef]float64) float64 {
	return e.eval(degrees)
}

type andExpr struct {
	l, r Expr
}

func (e andExpr) eval(degrees map[TermRef]float64) float64 {
	return min(e.l.eval(degrees), e.r.eval(degrees))
}

func (e andExpr) walk(visit func(TermRef)) {
	e.l.walk(visit)
	e.r.walk(visit)
}

type orExpr struct {
	l, r Expr
}

func (e orExpr) eval(degrees map[TermRef]float64) float64 {
	return max(e.l.eval(degrees), e.r.eval(degrees))
}

func (e orExpr) walk(visit func(TermRef)) {
	e.l.walk(visit)
	e.r.walk(visit)
}

type notExpr struct {
	e Expr
}

func (e notExpr) eval(degrees map[TermRef]float64) float64 {
	return 1 - e.e.eval(degrees)
}

func (e notExpr) walk(visit func(TermRef)) { e.e.walk(visit) }

// And is the fuzzy conjunction: min of both operands.
func And(l, r Expr) Expr { return andExpr{l, r} }

// Or is the fuzzy disjunction: max of both operands.
func Or(l, r Expr) Expr { return orExpr{l, r} }

// Not is the fuzzy complement: 1 minus the operand.
func Not(e Expr) Expr { return notExpr{e} }
