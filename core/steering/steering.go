// Package steering assembles the fuzzy truck controller: the linguistic
// variables, the rule table, and the input/output scaling between the
// simulator's normalized values and the controller's domains.
package steering

import (
	"errors"
	"fmt"

	"example.com/fuzzy-steer/core/fuzzy"
)

const (
	// The simulator reports the lateral position normalized to [0, 1];
	// the controller domain is [0, 10].
	PositionScale = 10.0
	// The movement consequent spans [-30, 30]; the wire command is the
	// crisp output divided by this scale, in [-1, 1].
	MovementScale = 30.0
)

var errNoRules = errors.New("controller table has no rules")

// A Controller runs one inference stream over a shared control system.
// It is not safe for concurrent use; build one Controller per stream
// (the control system itself is shared and immutable).
type Controller struct {
	cs  *fuzzy.ControlSystem
	sim *fuzzy.Simulation

	position string
	angle    string
	movement string
}

// NewController validates the table and wires it into a control system.
// Table errors (bad domains, automf arity, unresolved rule references)
// fail here, never during steering.
func NewController(cfg Config) (*Controller, error) {
	if len(cfg.Rules) == 0 {
		return nil, errNoRules
	}

	position, err := newAntecedent(cfg.Position)
	if err != nil {
		return nil, err
	}
	angle, err := newAntecedent(cfg.Angle)
	if err != nil {
		return nil, err
	}

	mu, err := fuzzy.NewUniverse(cfg.Movement.Min, cfg.Movement.Max, cfg.Movement.Step)
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", cfg.Movement.Name, err)
	}
	movement := fuzzy.NewConsequent(cfg.Movement.Name, mu)
	if err := movement.AutoMF(len(cfg.Movement.Terms), cfg.Movement.Terms); err != nil {
		return nil, fmt.Errorf("variable %q: %w", cfg.Movement.Name, err)
	}

	rules := make([]fuzzy.Rule, 0, len(cfg.Rules))
	for _, rc := range cfg.Rules {
		w := rc.Weight
		if w == 0 {
			w = 1
		}
		r, err := fuzzy.NewRule(
			fuzzy.And(
				fuzzy.Ref(cfg.Angle.Name, rc.Angle),
				fuzzy.Ref(cfg.Position.Name, rc.Position),
			),
			w,
			fuzzy.Assignment{Variable: cfg.Movement.Name, Term: rc.Movement},
		)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}

	cs, err := fuzzy.NewControlSystem(
		[]*fuzzy.Antecedent{position, angle},
		[]*fuzzy.Consequent{movement},
		rules,
	)
	if err != nil {
		return nil, err
	}

	return &Controller{
		cs:       cs,
		sim:      fuzzy.NewSimulation(cs),
		position: cfg.Position.Name,
		angle:    cfg.Angle.Name,
		movement: cfg.Movement.Name,
	}, nil
}

func newAntecedent(vc VariableConfig) (*fuzzy.Antecedent, error) {
	u, err := fuzzy.NewUniverse(vc.Min, vc.Max, vc.Step)
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", vc.Name, err)
	}
	a := fuzzy.NewAntecedent(vc.Name, u)
	if err := a.AutoMF(len(vc.Terms), vc.Terms); err != nil {
		return nil, fmt.Errorf("variable %q: %w", vc.Name, err)
	}
	return a, nil
}

// Steer computes the normalized steering command for one simulator state:
// x is the lateral position in [0, 1], angle the heading in degrees.
// The result lies in [-1, 1].
func (c *Controller) Steer(x, angle float64) (float64, error) {
	if err := c.sim.SetInput(c.position, x*PositionScale); err != nil {
		return 0, err
	}
	if err := c.sim.SetInput(c.angle, angle); err != nil {
		return 0, err
	}
	if err := c.sim.Compute(); err != nil {
		return 0, err
	}
	out, err := c.sim.Output(c.movement)
	if err != nil {
		return 0, err
	}
	return out / MovementScale, nil
}

// ControlSystem exposes the shared immutable wiring, for callers that run
// additional concurrent simulations against the same table.
func (c *Controller) ControlSystem() *fuzzy.ControlSystem { return c.cs }
