package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/cottand/mcrl/data"
	"github.com/cottand/mcrl/data/signature"
	"github.com/cottand/mcrl/util"
	"github.com/spf13/cobra"
)

var SignatureCmd = &cobra.Command{
	Use:          "signature",
	Short:        "Print the built-in sorts, functions, equations and native implementations",
	RunE:         runSignature,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

func init() {
	addConfigFlags(SignatureCmd)
	SignatureCmd.Flags().Bool("standard", false, "also declare ==, !=, if, <, <=, > and >= for every sort")
}

func runSignature(cmd *cobra.Command, _ []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	withStandard, err := cmd.Flags().GetBool("standard")
	if err != nil {
		return err
	}
	sig := signature.New()
	if withStandard {
		for _, sort := range sig.Sorts() {
			sig.StandardFunctions(sort)
		}
	}
	return printSignature(cmd.OutOrStdout(), sig)
}

func printSignature(out io.Writer, sig *signature.Signature) error {
	var constructors []*data.FunctionSymbol
	for _, sort := range sig.Sorts() {
		constructors = append(constructors, sig.Constructors(sort)...)
	}
	mappings := sig.Mappings()
	natives := sig.Natives()

	var lines []string
	section := func(title string) { lines = append(lines, title) }
	entry := func(format string, args ...any) { lines = append(lines, "    "+fmt.Sprintf(format, args...)) }

	section("sort")
	for _, sort := range sig.Sorts() {
		entry("%s;", sort)
	}
	section("cons")
	for _, f := range constructors {
		entry("%s: %s;", f, f.Sort())
	}
	section("map")
	for _, f := range mappings {
		entry("%s: %s;", f, f.Sort())
	}
	section("eqn")
	for _, eq := range sig.Equations() {
		entry("%s;", eq)
	}
	section("native")
	for f := range util.ConcatIter(slices.Values(constructors), slices.Values(mappings)) {
		if impl, ok := natives[f]; ok {
			entry("%s = %s;", f, impl.Name)
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
