package fuzzy

import (
	"fmt"
)

// A Term is a named fuzzy set within a linguistic variable. Insertion order
// on the variable is meaningful: automf registers terms from the most
// negative to the most positive end of the domain.
type Term struct {
	Name string
	MF   MembershipFunction
}

type variable struct {
	name     string
	universe Universe
	terms    []Term
	index    map[string]int
}

// An Antecedent is an input linguistic variable: it reads a crisp value and
// produces per-term membership degrees during fuzzification.
type Antecedent struct {
	variable
}

// A Consequent is an output linguistic variable: it receives the aggregated
// membership array and yields a crisp value through defuzzification.
type Consequent struct {
	variable
}

func NewAntecedent(name string, u Universe) *Antecedent {
	return &Antecedent{newVariable(name, u)}
}

func NewConsequent(name string, u Universe) *Consequent {
	return &Consequent{newVariable(name, u)}
}

func newVariable(name string, u Universe) variable {
	if name == "" {
		panic("variable name must not be empty")
	}
	return variable{
		name:     name,
		universe: u,
		index:    make(map[string]int),
	}
}

func (v *variable) Name() string { return v.name }

func (v *variable) Universe() Universe { return v.universe }

// Terms returns the registered terms in insertion order.
// Callers must not modify the returned slice.
func (v *variable) Terms() []Term { return v.terms }

func (v *variable) Term(name string) (Term, bool) {
	i, ok := v.index[name]
	if !ok {
		return Term{}, false
	}
	return v.terms[i], true
}

func (v *variable) AddTerm(name string, mf MembershipFunction) error {
	if _, ok := v.index[name]; ok {
		return fmt.Errorf("%w: %q on %q", ErrDuplicateTerm, name, v.name)
	}
	v.index[name] = len(v.terms)
	v.terms = append(v.terms, Term{Name: name, MF: mf})
	return nil
}

// AutoMF populates the variable with n overlapping membership functions
// evenly spaced across the domain, named by names in order from the lower
// to the upper end. The first and last terms are shoulders, interior terms
// are triangles spanning neighbor peak to neighbor peak, so at any domain
// point the degrees of the covering terms sum to 1.
func (v *variable) AutoMF(n int, names []string) error {
	if n < 2 || len(names) != n {
		return fmt.Errorf("%w: got %d names for %d terms", ErrAutomfArity, len(names), n)
	}
	lo, hi := v.universe.Min(), v.universe.Max()
	width := (hi - lo) / float64(n-1)
	peak := func(i int) float64 {
		if i == n-1 {
			return hi
		}
		return lo + float64(i)*width
	}
	for i, name := range names {
		var mf MembershipFunction
		var err error
		switch i {
		case 0:
			mf, err = LeftShoulder(lo, lo, peak(1))
		case n - 1:
			mf, err = RightShoulder(peak(n-2), hi, hi)
		default:
			mf, err = Trimf(peak(i-1), peak(i), peak(i+1))
		}
		if err != nil {
			return err
		}
		if err := v.AddTerm(name, mf); err != nil {
			return err
		}
	}
	return nil
}
