package sortword

import (
	"github.com/cottand/mcrl/data"
	"github.com/cottand/mcrl/data/sortbool"
	"github.com/cottand/mcrl/data/sortword/wordops"
	"github.com/cottand/mcrl/rerr"
)

// wordsOf returns the values of args when they are all machine numbers
func wordsOf(args []data.Term) ([]uint64, bool) {
	words := make([]uint64, len(args))
	for i, arg := range args {
		n, ok := arg.(*data.MachineNumber)
		if !ok {
			return nil, false
		}
		words[i] = n.Value()
	}
	return words, true
}

type wordFunc func(ws []uint64) (data.Term, error)

func implement(op Op, f wordFunc) data.Implementation {
	return data.Implementation{
		Name: op.ImplementationName(),
		Apply: func(args []data.Term) (data.Term, bool, error) {
			if len(args) != op.Arity() {
				return nil, false, violation(op, args, "wrong number of arguments")
			}
			ws, ok := wordsOf(args)
			if !ok {
				return nil, false, nil
			}
			result, err := f(ws)
			if err != nil {
				return nil, false, violation(op, args, err.Error())
			}
			return result, true, nil
		},
	}
}

func violation(op Op, args []data.Term, reason string) error {
	return rerr.New(rerr.PreconditionViolation{
		Operation: op.Name(),
		Args:      data.ShowTerms(args),
		Reason:    reason,
	})
}

func constant(v uint64) wordFunc {
	return func([]uint64) (data.Term, error) { return data.Word(v), nil }
}

func unary(f func(uint64) uint64) wordFunc {
	return func(ws []uint64) (data.Term, error) { return data.Word(f(ws[0])), nil }
}

func binary(f func(a, b uint64) uint64) wordFunc {
	return func(ws []uint64) (data.Term, error) { return data.Word(f(ws[0], ws[1])), nil }
}

func partial(f func(a, b uint64) (uint64, error)) wordFunc {
	return func(ws []uint64) (data.Term, error) {
		r, err := f(ws[0], ws[1])
		if err != nil {
			return nil, err
		}
		return data.Word(r), nil
	}
}

func test1(f func(uint64) bool) wordFunc {
	return func(ws []uint64) (data.Term, error) { return sortbool.Of(f(ws[0])), nil }
}

func test2(f func(a, b uint64) bool) wordFunc {
	return func(ws []uint64) (data.Term, error) { return sortbool.Of(f(ws[0], ws[1])), nil }
}

type resultWord int

const (
	leastSignificant resultWord = iota
	mostSignificant
)

// multiword evaluates a member of the division and square root families
// given its operand layout, keeping one word of the result
func multiword(shape wordops.Shape, keep resultWord) wordFunc {
	return func(ws []uint64) (data.Term, error) {
		hi, lo, err := wordops.Eval(shape, ws...)
		if err != nil {
			return nil, err
		}
		if keep == mostSignificant {
			return data.Word(hi), nil
		}
		return data.Word(lo), nil
	}
}

var (
	quotient  = wordops.Quotient
	remainder = wordops.Remainder
	root      = wordops.Root
)

// multiwordShapes is the table of multi-word operations keyed by operation
// and operand width
var multiwordShapes = []struct {
	op    Op
	shape wordops.Shape
	keep  resultWord
}{
	{DivDoubleword, wordops.Shape{Kind: quotient, Operand: 2, Divisor: 1}, leastSignificant},
	{DivDoubleDoubleword, wordops.Shape{Kind: quotient, Operand: 2, Divisor: 2}, leastSignificant},
	{DivTripleDoubleword, wordops.Shape{Kind: quotient, Operand: 3, Divisor: 2}, leastSignificant},
	{ModDoubleword, wordops.Shape{Kind: remainder, Operand: 2, Divisor: 1}, leastSignificant},
	{SqrtWord, wordops.Shape{Kind: root, Operand: 1}, leastSignificant},
	{SqrtDoubleword, wordops.Shape{Kind: root, Operand: 2}, leastSignificant},
	{SqrtTripleword, wordops.Shape{Kind: root, Operand: 3}, leastSignificant},
	{SqrtTriplewordOverflow, wordops.Shape{Kind: root, Operand: 3}, mostSignificant},
	{SqrtQuadrupleword, wordops.Shape{Kind: root, Operand: 4}, leastSignificant},
	{SqrtQuadruplewordOverflow, wordops.Shape{Kind: root, Operand: 4}, mostSignificant},
}

func NativeConstructors() data.ImplementationMap {
	return data.ImplementationMap{
		ZeroWord.symbol: implement(ZeroWord, constant(0)),
		SuccWord.symbol: implement(SuccWord, unary(wordops.Succ)),
	}
}

func NativeMappings() data.ImplementationMap {
	m := data.ImplementationMap{
		OneWord.symbol:   implement(OneWord, constant(1)),
		TwoWord.symbol:   implement(TwoWord, constant(2)),
		ThreeWord.symbol: implement(ThreeWord, constant(3)),
		FourWord.symbol:  implement(FourWord, constant(4)),
		MaxWord.symbol:   implement(MaxWord, constant(wordops.Max)),

		EqualsZeroWord.symbol:    implement(EqualsZeroWord, test1(func(a uint64) bool { return a == 0 })),
		NotEqualsZeroWord.symbol: implement(NotEqualsZeroWord, test1(func(a uint64) bool { return a != 0 })),
		EqualsOneWord.symbol:     implement(EqualsOneWord, test1(func(a uint64) bool { return a == 1 })),
		EqualsMaxWord.symbol:     implement(EqualsMaxWord, test1(func(a uint64) bool { return a == wordops.Max })),

		AddWord.symbol:                  implement(AddWord, binary(wordops.Add)),
		AddWithCarryWord.symbol:         implement(AddWithCarryWord, binary(wordops.AddWithCarry)),
		AddOverflowWord.symbol:          implement(AddOverflowWord, test2(wordops.AddOverflow)),
		AddWithCarryOverflowWord.symbol: implement(AddWithCarryOverflowWord, test2(wordops.AddWithCarryOverflow)),
		TimesWord.symbol:                implement(TimesWord, binary(wordops.Times)),
		TimesOverflowWord.symbol:        implement(TimesOverflowWord, test2(wordops.TimesOverflow)),
		TimesWithCarryWord.symbol: implement(TimesWithCarryWord, func(ws []uint64) (data.Term, error) {
			return data.Word(wordops.TimesWithCarry(ws[0], ws[1], ws[2])), nil
		}),
		TimesWithCarryOverflowWord.symbol: implement(TimesWithCarryOverflowWord, func(ws []uint64) (data.Term, error) {
			return sortbool.Of(wordops.TimesWithCarryOverflow(ws[0], ws[1], ws[2])), nil
		}),
		MinusWord.symbol: implement(MinusWord, binary(wordops.Minus)),
		MonusWord.symbol: implement(MonusWord, binary(wordops.Monus)),
		DivWord.symbol:   implement(DivWord, partial(wordops.Div)),
		ModWord.symbol:   implement(ModWord, partial(wordops.Mod)),

		PredWord.symbol:         implement(PredWord, unary(wordops.Pred)),
		EqualWord.symbol:        implement(EqualWord, test2(func(a, b uint64) bool { return a == b })),
		NotEqualWord.symbol:     implement(NotEqualWord, test2(func(a, b uint64) bool { return a != b })),
		LessWord.symbol:         implement(LessWord, test2(func(a, b uint64) bool { return a < b })),
		LessEqualWord.symbol:    implement(LessEqualWord, test2(func(a, b uint64) bool { return a <= b })),
		GreaterWord.symbol:      implement(GreaterWord, test2(func(a, b uint64) bool { return a > b })),
		GreaterEqualWord.symbol: implement(GreaterEqualWord, test2(func(a, b uint64) bool { return a >= b })),
		RightmostBit.symbol:     implement(RightmostBit, test1(wordops.RightmostBit)),
		ShiftRight.symbol:       shiftRight(),
	}
	for _, entry := range multiwordShapes {
		m[entry.op.symbol] = implement(entry.op, multiword(entry.shape, entry.keep))
	}
	return m
}

// shiftRight takes a Bool as its first argument, so it cannot go through implement
func shiftRight() data.Implementation {
	return data.Implementation{
		Name: ShiftRight.ImplementationName(),
		Apply: func(args []data.Term) (data.Term, bool, error) {
			if len(args) != 2 {
				return nil, false, violation(ShiftRight, args, "wrong number of arguments")
			}
			n, ok := args[1].(*data.MachineNumber)
			if !ok {
				return nil, false, nil
			}
			switch {
			case sortbool.IsTrue(args[0]):
				return data.Word(wordops.ShiftRight(true, n.Value())), true, nil
			case sortbool.IsFalse(args[0]):
				return data.Word(wordops.ShiftRight(false, n.Value())), true, nil
			}
			return nil, false, nil
		},
	}
}
