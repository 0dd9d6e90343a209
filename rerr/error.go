package rerr

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include the frame that created them when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None                ErrCode = iota
	PreconditionFailure ErrCode = iota
	InvalidRule
	UnknownNative
	DuplicateNative
	UnknownSort
	SortMismatch
	MalformedProcess
)

type RewriteError interface {
	Error() string
	Code() ErrCode

	withStack([]byte) RewriteError
	getStack() []byte
}

func FormatWithCode(e RewriteError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			lines := strings.Split(stack, "\n")
			if len(lines) > 6 {
				stack = lines[6]
			}
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E RewriteError](err E) RewriteError {
	return err.withStack(debug.Stack())
}

// PreconditionViolation is raised when an operation is applied outside of its domain,
// like a division by zero or a projection of a term of the wrong shape.
// It is never recovered from locally
type PreconditionViolation struct {
	Operation string
	Args      []string
	Reason    string
	stack     []byte
}

func (e PreconditionViolation) Error() string {
	return fmt.Sprintf("precondition of %s violated for arguments (%s): %s", e.Operation, strings.Join(e.Args, ", "), e.Reason)
}
func (e PreconditionViolation) Code() ErrCode    { return PreconditionFailure }
func (e PreconditionViolation) getStack() []byte { return e.stack }
func (e PreconditionViolation) withStack(stack []byte) RewriteError {
	e.stack = stack
	return e
}

type InvalidRewriteRule struct {
	Rule   string
	Reason string
	stack  []byte
}

func (e InvalidRewriteRule) Error() string {
	return fmt.Sprintf("equation %s is not a valid rewrite rule: %s", e.Rule, e.Reason)
}
func (e InvalidRewriteRule) Code() ErrCode    { return InvalidRule }
func (e InvalidRewriteRule) getStack() []byte { return e.stack }
func (e InvalidRewriteRule) withStack(stack []byte) RewriteError {
	e.stack = stack
	return e
}

type UnknownNativeImplementation struct {
	Name  string
	stack []byte
}

func (e UnknownNativeImplementation) Error() string {
	return fmt.Sprintf("no native implementation named '%s' is registered", e.Name)
}
func (e UnknownNativeImplementation) Code() ErrCode    { return UnknownNative }
func (e UnknownNativeImplementation) getStack() []byte { return e.stack }
func (e UnknownNativeImplementation) withStack(stack []byte) RewriteError {
	e.stack = stack
	return e
}

type DuplicateNativeImplementation struct {
	Symbol   string
	Existing string
	stack    []byte
}

func (e DuplicateNativeImplementation) Error() string {
	return fmt.Sprintf("function symbol %s already has native implementation '%s'", e.Symbol, e.Existing)
}
func (e DuplicateNativeImplementation) Code() ErrCode    { return DuplicateNative }
func (e DuplicateNativeImplementation) getStack() []byte { return e.stack }
func (e DuplicateNativeImplementation) withStack(stack []byte) RewriteError {
	e.stack = stack
	return e
}

type UndeclaredSort struct {
	Sort  string
	stack []byte
}

func (e UndeclaredSort) Error() string {
	return fmt.Sprintf("sort %s is not declared in this signature", e.Sort)
}
func (e UndeclaredSort) Code() ErrCode    { return UnknownSort }
func (e UndeclaredSort) getStack() []byte { return e.stack }
func (e UndeclaredSort) withStack(stack []byte) RewriteError {
	e.stack = stack
	return e
}

type MismatchedSorts struct {
	Context  string
	Expected string
	Actual   string
	stack    []byte
}

func (e MismatchedSorts) Error() string {
	return fmt.Sprintf("sort mismatch in %s: expected '%s', but found '%s'", e.Context, e.Expected, e.Actual)
}
func (e MismatchedSorts) Code() ErrCode    { return SortMismatch }
func (e MismatchedSorts) getStack() []byte { return e.stack }
func (e MismatchedSorts) withStack(stack []byte) RewriteError {
	e.stack = stack
	return e
}

// InvalidProcess reports a linear process whose parameters are declared,
// initialised or assigned inconsistently
type InvalidProcess struct {
	Subject string
	Reason  string
	stack   []byte
}

func (e InvalidProcess) Error() string {
	return fmt.Sprintf("invalid process: %s %s", e.Subject, e.Reason)
}
func (e InvalidProcess) Code() ErrCode    { return MalformedProcess }
func (e InvalidProcess) getStack() []byte { return e.stack }
func (e InvalidProcess) withStack(stack []byte) RewriteError {
	e.stack = stack
	return e
}
