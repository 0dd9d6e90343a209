package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cottand/mcrl/data"
	"github.com/cottand/mcrl/data/signature"
	"github.com/cottand/mcrl/data/sortbool"
	"github.com/cottand/mcrl/data/sortword"
	"github.com/cottand/mcrl/rewr"
	"github.com/spf13/cobra"
)

var WordCmd = &cobra.Command{
	Use:          "word <operation> [arguments...]",
	Short:        "Evaluate a machine word operation, like `word add_word 2 3`",
	RunE:         runWord,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	addConfigFlags(WordCmd)
}

func runWord(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	op, ok := lookupOp(args[0])
	if !ok {
		return fmt.Errorf("unknown word operation '%s'", args[0])
	}
	operands := args[1:]
	if len(operands) != op.Arity() {
		return fmt.Errorf("%s takes %d arguments, got %d", op.Name(), op.Arity(), len(operands))
	}

	var domain []data.Sort
	if s, ok := op.Symbol().Sort().(*data.FunctionSort); ok {
		domain = s.Domain()
	}
	terms := make([]data.Term, len(operands))
	for i, operand := range operands {
		terms[i], err = parseOperand(operand, domain[i])
		if err != nil {
			return fmt.Errorf("argument %d of %s: %w", i+1, op.Name(), err)
		}
	}

	r, err := rewr.New(signature.New(), conf.Rewriter)
	if err != nil {
		return fmt.Errorf("could not create rewriter: %w", err)
	}
	term := op.Make(terms...)
	cliLogger.Debug("evaluating", "term", term.String())
	result, err := r.Rewrite(term, nil)
	if err != nil {
		return fmt.Errorf("could not evaluate %s: %w", term, err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}

// lookupOp accepts operation names with or without their leading @
func lookupOp(name string) (sortword.Op, bool) {
	if op, ok := sortword.Lookup(name); ok {
		return op, true
	}
	if strings.HasPrefix(name, "@") {
		return sortword.Op{}, false
	}
	return sortword.Lookup("@" + name)
}

func parseOperand(operand string, sort data.Sort) (data.Term, error) {
	if sortbool.IsSort(sort) {
		b, err := strconv.ParseBool(operand)
		if err != nil {
			return nil, err
		}
		return sortbool.Of(b), nil
	}
	w, err := strconv.ParseUint(operand, 0, 64)
	if err != nil {
		return nil, err
	}
	return data.Word(w), nil
}
