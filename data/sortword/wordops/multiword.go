package wordops

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

type Kind int

const (
	Quotient Kind = iota
	Remainder
	Root
)

func (k Kind) String() string {
	switch k {
	case Quotient:
		return "quotient"
	case Remainder:
		return "remainder"
	case Root:
		return "root"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Shape is the operand layout of a member of the multi-word families:
// Operand words form the dividend or radicand and Divisor words the divisor.
// Words are given most significant first
type Shape struct {
	Kind    Kind
	Operand int
	Divisor int
}

func (s Shape) Words() int { return s.Operand + s.Divisor }

type evaluator func(operand, divisor *big.Int) (*big.Int, error)

// families holds one procedure per kind, shared by every width
var families = map[Kind]evaluator{
	Quotient: func(operand, divisor *big.Int) (*big.Int, error) {
		if divisor.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return new(big.Int).Quo(operand, divisor), nil
	},
	Remainder: func(operand, divisor *big.Int) (*big.Int, error) {
		if divisor.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return new(big.Int).Rem(operand, divisor), nil
	},
	Root: func(operand, _ *big.Int) (*big.Int, error) {
		return new(big.Int).Sqrt(operand), nil
	},
}

func fromWords(words []uint64) *big.Int {
	n := new(big.Int)
	for _, w := range words {
		n.Lsh(n, Width)
		n.Or(n, new(big.Int).SetUint64(w))
	}
	return n
}

var wordMask = new(big.Int).SetUint64(Max)

// Eval computes shape over words and returns the two least significant words
// of the result. More significant words are discarded
func Eval(shape Shape, words ...uint64) (hi, lo uint64, err error) {
	eval, ok := families[shape.Kind]
	if !ok {
		return 0, 0, errors.Errorf("unknown multi-word operation %s", shape.Kind)
	}
	if len(words) != shape.Words() {
		return 0, 0, errors.Errorf("%s over %d+%d words applied to %d words", shape.Kind, shape.Operand, shape.Divisor, len(words))
	}
	if shape.Operand == 1 && shape.Divisor <= 1 {
		if lo, ok, err := evalSingle(shape, words); ok {
			return 0, lo, err
		}
	}
	result, err := eval(fromWords(words[:shape.Operand]), fromWords(words[shape.Operand:]))
	if err != nil {
		return 0, 0, err
	}
	lo = new(big.Int).And(result, wordMask).Uint64()
	hi = new(big.Int).And(new(big.Int).Rsh(result, Width), wordMask).Uint64()
	return hi, lo, nil
}

// evalSingle handles operations on a single word without allocating
func evalSingle(shape Shape, words []uint64) (uint64, bool, error) {
	switch shape.Kind {
	case Quotient:
		if words[1] == 0 {
			return 0, true, ErrDivisionByZero
		}
		return words[0] / words[1], true, nil
	case Remainder:
		if words[1] == 0 {
			return 0, true, ErrDivisionByZero
		}
		return words[0] % words[1], true, nil
	}
	return 0, false, nil
}
