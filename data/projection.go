package data

import (
	"strconv"

	"github.com/cottand/mcrl/rerr"
)

func projectionError(projection string, t Term, reason string) error {
	return rerr.New(rerr.PreconditionViolation{
		Operation: projection,
		Args:      []string{t.String()},
		Reason:    reason,
	})
}

func argAt(projection string, t Term, index, exactArity int) (Term, error) {
	app, ok := t.(*Application)
	if !ok {
		return nil, projectionError(projection, t, "not an application")
	}
	if exactArity > 0 && app.Arity() != exactArity {
		return nil, projectionError(projection, t, "expected exactly "+strconv.Itoa(exactArity)+" arguments")
	}
	if index >= app.Arity() {
		return nil, projectionError(projection, t, "expected at least "+strconv.Itoa(index+1)+" arguments")
	}
	return app.args[index], nil
}

// Arg returns the only argument of a unary application
func Arg(t Term) (Term, error) { return argAt("arg", t, 0, 1) }

// Left returns the first argument of a binary application
func Left(t Term) (Term, error) { return argAt("left", t, 0, 2) }

// Right returns the second argument of a binary application
func Right(t Term) (Term, error) { return argAt("right", t, 1, 2) }

func Arg1(t Term) (Term, error) { return argAt("arg1", t, 0, 0) }
func Arg2(t Term) (Term, error) { return argAt("arg2", t, 1, 0) }
func Arg3(t Term) (Term, error) { return argAt("arg3", t, 2, 0) }
func Arg4(t Term) (Term, error) { return argAt("arg4", t, 3, 0) }
func Arg5(t Term) (Term, error) { return argAt("arg5", t, 4, 0) }
