package lps

import (
	"log/slog"

	"github.com/cottand/mcrl/data"
	"github.com/cottand/mcrl/data/sortbool"
	"github.com/cottand/mcrl/internal/log"
	"github.com/cottand/mcrl/rewr"
	"github.com/cottand/mcrl/subst"
	"github.com/pkg/errors"
)

type ConstelmOptions struct {
	// IgnoreConditions treats every summand as enabled, which finds fewer
	// constants but needs fewer rewrites
	IgnoreConditions bool `yaml:"ignore_conditions"`
	// RemoveFalseSummands drops summands whose condition rewrites to false
	// once the constants are substituted
	RemoveFalseSummands bool `yaml:"remove_false_summands"`
}

// Constelm removes process parameters that keep their initial value
// in every reachable state
type Constelm struct {
	rewriter *rewr.Rewriter
	options  ConstelmOptions
	logger   *slog.Logger
}

func NewConstelm(rewriter *rewr.Rewriter, options ConstelmOptions) *Constelm {
	return &Constelm{
		rewriter: rewriter,
		options:  options,
		logger:   slog.New(data.SlogHandler(log.DefaultLogger.Handler())).With("section", "constelm"),
	}
}

// Run returns p without its constant parameters, together with the
// substitution mapping each removed parameter to its value
func (c *Constelm) Run(p Process) (Process, *subst.Map, error) {
	if err := p.Validate(); err != nil {
		return Process{}, nil, errors.Wrap(err, "invalid process")
	}
	sigma, err := c.constants(p)
	if err != nil {
		return Process{}, nil, err
	}
	result, err := c.substitute(p, sigma)
	if err != nil {
		return Process{}, nil, err
	}
	c.logger.Info("eliminated constant parameters", "removed", sigma.Len(), "remaining", len(result.Parameters))
	return result, sigma, nil
}

// constants computes the fixpoint: starting from the initial state, a parameter
// stops being constant once an enabled summand may assign it another value
func (c *Constelm) constants(p Process) (*subst.Map, error) {
	sigma := subst.NewMap()
	for i, param := range p.Parameters {
		value, err := c.rewriter.Rewrite(p.Init[i], subst.Identity)
		if err != nil {
			return nil, errors.Wrapf(err, "initial value of %s", param.Name())
		}
		sigma.Set(param, value)
	}

	for changed := true; changed; {
		changed = false
		for i, s := range p.Summands {
			if !c.options.IgnoreConditions && s.Condition != nil {
				condition, err := c.rewriter.Rewrite(s.Condition, sigma)
				if err != nil {
					return nil, errors.Wrapf(err, "condition of summand %d", i)
				}
				if sortbool.IsFalse(condition) {
					continue
				}
			}
			for _, param := range p.Parameters {
				current, constant := sigma.Lookup(param)
				if !constant {
					continue
				}
				next, err := c.rewriter.Rewrite(s.NextState(param), sigma)
				if err != nil {
					return nil, errors.Wrapf(err, "next state of %s in summand %d", param.Name(), i)
				}
				if next != current {
					c.logger.Debug("parameter is not constant", "parameter", param.Name(), "summand", i, "next", next)
					sigma.Erase(param)
					changed = true
				}
			}
		}
	}
	return sigma, nil
}

func (c *Constelm) substitute(p Process, sigma *subst.Map) (Process, error) {
	var result Process
	for i, param := range p.Parameters {
		if _, constant := sigma.Lookup(param); constant {
			continue
		}
		result.Parameters = append(result.Parameters, param)
		result.Init = append(result.Init, p.Init[i])
	}
	for i, s := range p.Summands {
		simplified := Summand{SumVariables: s.SumVariables, Action: s.Action}
		if s.Condition != nil {
			condition, err := c.rewriter.Rewrite(s.Condition, sigma)
			if err != nil {
				return Process{}, errors.Wrapf(err, "condition of summand %d", i)
			}
			if c.options.RemoveFalseSummands && sortbool.IsFalse(condition) {
				continue
			}
			simplified.Condition = condition
		}
		for _, a := range s.Assignments {
			if _, constant := sigma.Lookup(a.Var); constant {
				continue
			}
			value, err := c.rewriter.Rewrite(a.Value, sigma)
			if err != nil {
				return Process{}, errors.Wrapf(err, "assignment to %s in summand %d", a.Var.Name(), i)
			}
			simplified.Assignments = append(simplified.Assignments, data.Assignment{Var: a.Var, Value: value})
		}
		result.Summands = append(result.Summands, simplified)
	}
	return result, nil
}
