// Package wordops implements arithmetic on 64-bit machine words with
// wraparound, carry and overflow semantics, and the multi-word division
// and square root families used to build arbitrary precision numbers
package wordops

import (
	"math/bits"

	"github.com/pkg/errors"
)

const Width = 64

const Max = ^uint64(0)

var ErrDivisionByZero = errors.New("division by zero")

func Add(a, b uint64) uint64 {
	sum, _ := bits.Add64(a, b, 0)
	return sum
}

// AddWithCarry adds a, b and an incoming carry of one
func AddWithCarry(a, b uint64) uint64 {
	sum, _ := bits.Add64(a, b, 1)
	return sum
}

func AddOverflow(a, b uint64) bool {
	_, carry := bits.Add64(a, b, 0)
	return carry == 1
}

func AddWithCarryOverflow(a, b uint64) bool {
	_, carry := bits.Add64(a, b, 1)
	return carry == 1
}

func Times(a, b uint64) uint64 {
	return a * b
}

func TimesOverflow(a, b uint64) bool {
	hi, _ := bits.Mul64(a, b)
	return hi != 0
}

// TimesWithCarry computes a*b+c modulo 2^64
func TimesWithCarry(a, b, c uint64) uint64 {
	return a*b + c
}

func TimesWithCarryOverflow(a, b, c uint64) bool {
	hi, lo := bits.Mul64(a, b)
	_, carry := bits.Add64(lo, c, 0)
	return hi != 0 || carry != 0
}

func Minus(a, b uint64) uint64 {
	return a - b
}

// Monus is subtraction saturating at zero
func Monus(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}

func Div(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

func Mod(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a % b, nil
}

// Sqrt is the largest r such that r*r <= a
func Sqrt(a uint64) uint64 {
	_, lo, _ := Eval(Shape{Kind: Root, Operand: 1}, a)
	return lo
}

func Pred(a uint64) uint64 {
	return a - 1
}

func Succ(a uint64) uint64 {
	return a + 1
}

func RightmostBit(a uint64) bool {
	return a&1 == 1
}

// ShiftRight shifts a one position to the right, inserting bit as the
// most significant bit
func ShiftRight(bit bool, a uint64) uint64 {
	shifted := a >> 1
	if bit {
		shifted |= 1 << (Width - 1)
	}
	return shifted
}
