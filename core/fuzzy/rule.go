package fuzzy

// An Assignment maps a firing rule onto one term of a consequent variable.
type Assignment struct {
	Variable string
	Term     string
}

// A Rule pairs an antecedent expression with one or more consequent term
// assignments and a firing weight. Rules are immutable once built.
type Rule struct {
	antecedent  Expr
	consequents []Assignment
	weight      float64
}

// NewRule builds a rule. The weight scales the antecedent's firing strength
// and must lie in [0, 1]; a weight of 0 makes the rule inert.
func NewRule(antecedent Expr, weight float64, consequents ...Assignment) (Rule, error) {
	if antecedent == nil {
		panic("rule antecedent must not be nil")
	}
	if len(consequents) == 0 {
		panic("rule must have at least one consequent assignment")
	}
	if weight < 0 || weight > 1 {
		return Rule{}, ErrBadWeight
	}
	cs := make([]Assignment, len(consequents))
	copy(cs, consequents)
	return Rule{
		antecedent:  antecedent,
		consequents: cs,
		weight:      weight,
	}, nil
}

func (r Rule) Weight() float64 { return r.weight }

func (r Rule) Antecedent() Expr { return r.antecedent }

func (r Rule) Consequents() []Assignment {
	cs := make([]Assignment, len(r.consequents))
	copy(cs, r.consequents)
	return cs
}
