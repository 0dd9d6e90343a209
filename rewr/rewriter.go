// Package rewr normalises data expressions with the equations and native
// implementations of a signature
package rewr

import (
	"context"
	"log/slog"

	"github.com/cottand/mcrl/data"
	"github.com/cottand/mcrl/data/signature"
	"github.com/cottand/mcrl/data/sortbool"
	"github.com/cottand/mcrl/internal/log"
	"github.com/cottand/mcrl/subst"
	"github.com/pkg/errors"
)

// Rewriter computes normal forms. It is safe for concurrent use as long
// as every call to Rewrite gets its own substitution
type Rewriter struct {
	sig      *signature.Signature
	settings Settings
	logger   *slog.Logger
}

func New(sig *signature.Signature, settings Settings) (*Rewriter, error) {
	if err := settings.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid rewriter settings")
	}
	return &Rewriter{
		sig:      sig,
		settings: settings,
		logger:   slog.New(data.SlogHandler(log.DefaultLogger.Handler())).With("section", "rewrite"),
	}, nil
}

func (r *Rewriter) Signature() *signature.Signature { return r.sig }
func (r *Rewriter) Settings() Settings               { return r.settings }

// call holds the state of a single top level Rewrite
type call struct {
	gen *subst.Generator
}

// Rewrite returns the normal form of t under sigma. Images of sigma are
// assumed to be in normal form already. The only errors are violated
// preconditions of native implementations, like a division by zero
func (r *Rewriter) Rewrite(t data.Term, sigma subst.Substitution) (data.Term, error) {
	if sigma == nil {
		sigma = subst.Identity
	}
	gen := subst.NewGenerator()
	gen.ReserveTerm(t)
	gen.ReserveSubstitution(sigma)
	return r.rewrite(&call{gen: gen}, t, sigma)
}

// RewriteAll rewrites every term of ts under the same substitution
func (r *Rewriter) RewriteAll(ts []data.Term, sigma subst.Substitution) ([]data.Term, error) {
	normal := make([]data.Term, len(ts))
	for i, t := range ts {
		var err error
		if normal[i], err = r.Rewrite(t, sigma); err != nil {
			return nil, err
		}
	}
	return normal, nil
}

func (r *Rewriter) rewrite(c *call, t data.Term, sigma subst.Substitution) (data.Term, error) {
	switch t := t.(type) {
	case *data.Variable:
		return sigma.Apply(t), nil
	case *data.MachineNumber:
		return t, nil
	case *data.FunctionSymbol:
		if t.Arity() > 0 {
			return t, nil
		}
		return r.reduce(c, t, nil)
	case *data.Application:
		head, err := r.rewrite(c, t.Head(), sigma)
		if err != nil {
			return nil, err
		}
		args := make([]data.Term, t.Arity())
		for i, arg := range t.Args() {
			if args[i], err = r.rewrite(c, arg, sigma); err != nil {
				return nil, err
			}
		}
		return r.reduce(c, head, args)
	case *data.Abstraction:
		inner, vars := subst.Bind(sigma, t.Vars(), c.gen)
		body, err := r.rewrite(c, t.Body(), inner)
		if err != nil {
			return nil, err
		}
		if t.Binder() == data.Lambda {
			return data.Abstract(data.Lambda, vars, body), nil
		}
		return r.quantifier(c, t.Binder(), vars, body)
	case *data.Where:
		return r.where(c, t, sigma)
	}
	panic("unhandled term in rewrite: " + t.String())
}

// reduce rewrites head applied to args, all of which are in normal form.
// A constant is passed as head with no arguments
func (r *Rewriter) reduce(c *call, head data.Term, args []data.Term) (data.Term, error) {
	if lambda, ok := head.(*data.Abstraction); ok && lambda.Binder() == data.Lambda {
		return r.beta(c, lambda, args)
	}

	if f, ok := head.(*data.FunctionSymbol); ok && r.settings.NativeImplementations {
		if impl, ok := r.sig.Native(f); ok {
			result, applied, err := impl.Apply(args)
			if err != nil {
				return nil, err
			}
			if applied {
				return result, nil
			}
		}
	}

	term := data.Apply(head, args...)
	f, ok := data.HeadSymbol(term)
	if !ok {
		return term, nil
	}
	for _, eq := range r.sig.EquationsFor(f) {
		bindings := subst.NewMap()
		if !match(eq.LHS, term, bindings) {
			continue
		}
		if eq.Condition != nil {
			condition, err := r.rewrite(c, eq.Condition, bindings)
			if err != nil {
				return nil, err
			}
			if !sortbool.IsTrue(condition) {
				continue
			}
		}
		if r.logger.Enabled(context.Background(), slog.LevelDebug) {
			r.logger.Debug("applying equation", "term", term, "equation", eq.String())
		}
		return r.rewrite(c, eq.RHS, bindings)
	}
	return term, nil
}

// beta substitutes args for the variables of lambda, whose body is in normal form
func (r *Rewriter) beta(c *call, lambda *data.Abstraction, args []data.Term) (data.Term, error) {
	inner := subst.Extend(subst.Identity)
	for i, v := range lambda.Vars() {
		inner = inner.With(v, args[i])
	}
	return r.rewrite(c, lambda.Body(), inner)
}

// where evaluates the assigned values outside the scope of the assigned
// variables and then rewrites the body with them
func (r *Rewriter) where(c *call, w *data.Where, sigma subst.Substitution) (data.Term, error) {
	inner := subst.Extend(sigma)
	for _, a := range w.Assignments() {
		value, err := r.rewrite(c, a.Value, sigma)
		if err != nil {
			return nil, err
		}
		inner = inner.With(a.Var, value)
	}
	return r.rewrite(c, w.Body(), inner)
}
