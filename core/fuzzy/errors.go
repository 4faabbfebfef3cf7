package fuzzy

import (
	"errors"
)

var (
	ErrBadUniverse          = errors.New("invalid universe: bounds must be increasing and step positive")
	ErrBadMembershipPoints  = errors.New("invalid membership function: control points must be non-decreasing with degrees in [0, 1]")
	ErrBadWeight            = errors.New("invalid rule: weight must be in [0, 1]")
	ErrDuplicateTerm        = errors.New("term name already registered on variable")
	ErrAutomfArity          = errors.New("automf: number of names must equal the term count, which must be at least 2")
	ErrInvalidTermReference = errors.New("rule references an unregistered variable or term")
	ErrUnknownVariable      = errors.New("unknown variable")
	ErrMissingInput         = errors.New("no crisp input set for antecedent")
	ErrNoRuleFired          = errors.New("no rule fired: aggregated membership is zero")
	ErrNotComputed          = errors.New("output not available before a successful compute")
)
