package fuzzy

import (
	"fmt"

	"example.com/fuzzy-steer/base/floats"
)

// A ControlSystem is the validated, immutable wiring of antecedents,
// consequents, and rules. Every term reference is resolved at construction,
// so evaluation cannot hit an unknown variable or term. A ControlSystem is
// safe to share across concurrent simulations.
type ControlSystem struct {
	antecedents []*Antecedent
	consequents []*Consequent
	rules       []Rule
	antIndex    map[string]*Antecedent
	conIndex    map[string]*Consequent

	// Sampled membership arrays of all assigned consequent terms,
	// computed once at construction.
	conSamples map[Assignment][]float64
}

func NewControlSystem(antecedents []*Antecedent, consequents []*Consequent, rules []Rule) (*ControlSystem, error) {
	cs := &ControlSystem{
		antecedents: antecedents,
		consequents: consequents,
		rules:       rules,
		antIndex:    make(map[string]*Antecedent, len(antecedents)),
		conIndex:    make(map[string]*Consequent, len(consequents)),
		conSamples:  make(map[Assignment][]float64),
	}
	for _, a := range antecedents {
		if _, ok := cs.antIndex[a.Name()]; ok {
			return nil, fmt.Errorf("duplicate antecedent %q", a.Name())
		}
		cs.antIndex[a.Name()] = a
	}
	for _, c := range consequents {
		if _, ok := cs.conIndex[c.Name()]; ok {
			return nil, fmt.Errorf("duplicate consequent %q", c.Name())
		}
		cs.conIndex[c.Name()] = c
	}
	for i, r := range rules {
		var refErr error
		r.antecedent.walk(func(ref TermRef) {
			if refErr != nil {
				return
			}
			a, ok := cs.antIndex[ref.Variable]
			if !ok {
				refErr = fmt.Errorf("%w: rule %d antecedent variable %q", ErrInvalidTermReference, i, ref.Variable)
				return
			}
			if _, ok := a.Term(ref.Term); !ok {
				refErr = fmt.Errorf("%w: rule %d term %q of %q", ErrInvalidTermReference, i, ref.Term, ref.Variable)
			}
		})
		if refErr != nil {
			return nil, refErr
		}
		for _, asgn := range r.consequents {
			c, ok := cs.conIndex[asgn.Variable]
			if !ok {
				return nil, fmt.Errorf("%w: rule %d consequent variable %q", ErrInvalidTermReference, i, asgn.Variable)
			}
			term, ok := c.Term(asgn.Term)
			if !ok {
				return nil, fmt.Errorf("%w: rule %d term %q of %q", ErrInvalidTermReference, i, asgn.Term, asgn.Variable)
			}
			if _, ok := cs.conSamples[asgn]; !ok {
				cs.conSamples[asgn] = term.MF.Sample(c.Universe())
			}
		}
	}
	return cs, nil
}

func (cs *ControlSystem) Antecedents() []*Antecedent { return cs.antecedents }

func (cs *ControlSystem) Consequents() []*Consequent { return cs.consequents }

func (cs *ControlSystem) Rules() []Rule { return cs.rules }

// A Simulation holds the mutable scratch state of one inference stream
// bound to a shared ControlSystem. It is not safe for concurrent use; each
// concurrent caller needs its own Simulation.
type Simulation struct {
	cs        *ControlSystem
	inputs    map[string]float64
	fuzzified map[TermRef]float64
	outputs   map[string]float64
	computed  bool
}

func NewSimulation(cs *ControlSystem) *Simulation {
	return &Simulation{
		cs:        cs,
		inputs:    make(map[string]float64),
		fuzzified: make(map[TermRef]float64),
		outputs:   make(map[string]float64),
	}
}

// SetInput assigns the crisp input of the named antecedent. Inputs persist
// across compute passes until overwritten.
func (s *Simulation) SetInput(name string, value float64) error {
	if _, ok := s.cs.antIndex[name]; !ok {
		return fmt.Errorf("%w: antecedent %q", ErrUnknownVariable, name)
	}
	s.inputs[name] = value
	return nil
}

// Compute runs one fuzzify / evaluate / implicate / aggregate / defuzzify
// pass. On error the simulation carries no outputs but remains usable for a
// corrected call.
func (s *Simulation) Compute() error {
	s.computed = false
	clear(s.fuzzified)
	clear(s.outputs)

	// Fuzzification.
	for _, a := range s.cs.antecedents {
		x, ok := s.inputs[a.Name()]
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingInput, a.Name())
		}
		for _, term := range a.Terms() {
			s.fuzzified[TermRef{a.Name(), term.Name}] = term.MF.Evaluate(x)
		}
	}

	// Rule evaluation, min-implication, max-aggregation.
	aggregated := make(map[string][]float64, len(s.cs.consequents))
	for _, c := range s.cs.consequents {
		aggregated[c.Name()] = make([]float64, c.Universe().Len())
	}
	for _, r := range s.cs.rules {
		strength := r.weight * r.antecedent.eval(s.fuzzified)
		if strength == 0 {
			continue
		}
		for _, asgn := range r.consequents {
			samples := s.cs.conSamples[asgn]
			agg := aggregated[asgn.Variable]
			for i, d := range samples {
				agg[i] = max(agg[i], min(d, strength))
			}
		}
	}

	// Centroid defuzzification.
	for _, c := range s.cs.consequents {
		agg := aggregated[c.Name()]
		area := floats.Sum(agg)
		if area == 0 {
			return fmt.Errorf("%w: %q", ErrNoRuleFired, c.Name())
		}
		s.outputs[c.Name()] = floats.Dot(c.Universe().Samples(), agg) / area
	}
	s.computed = true
	return nil
}

// Output returns the crisp value of the named consequent from the last
// successful Compute.
func (s *Simulation) Output(name string) (float64, error) {
	if _, ok := s.cs.conIndex[name]; !ok {
		return 0, fmt.Errorf("%w: consequent %q", ErrUnknownVariable, name)
	}
	if !s.computed {
		return 0, ErrNotComputed
	}
	return s.outputs[name], nil
}
