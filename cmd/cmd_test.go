package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestWord(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{"add", []string{"add_word", "2", "3"}, "5"},
		{"with @", []string{"@times_word", "6", "7"}, "42"},
		{"hex operand", []string{"add_word", "0xff", "1"}, "256"},
		{"constant", []string{"max_word"}, "18446744073709551615"},
		{"wraps around", []string{"add_word", "18446744073709551615", "1"}, "0"},
		{"boolean result", []string{"less_word", "2", "3"}, "true"},
		{"boolean operand", []string{"shift_right", "false", "4"}, "2"},
		{"multi word", []string{"div_doubleword", "1", "0", "2"}, "9223372036854775808"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, WordCmd, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, strings.TrimSpace(out))
		})
	}
}

func TestWordErrors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		message string
	}{
		{"unknown operation", []string{"frobnicate_word"}, "unknown word operation"},
		{"wrong arity", []string{"add_word", "1"}, "takes 2 arguments"},
		{"not a number", []string{"add_word", "one", "2"}, "argument 1"},
		{"division by zero", []string{"div_word", "1", "0"}, "precondition"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, WordCmd, tc.args...)
			assert.ErrorContains(t, err, tc.message)
		})
	}
}

func TestWordWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mcrl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rewriter:\n  native_implementations: false\n"), 0o600))

	out, err := execute(t, WordCmd, "--config", path, "add_word", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "@add_word(2, 3)", strings.TrimSpace(out))

	_, err = execute(t, WordCmd, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "max_word")
	assert.ErrorContains(t, err, "could not load config")
	// flags persist on the command between executions
	require.NoError(t, WordCmd.Flags().Set("config", ""))
}

func TestSignature(t *testing.T) {
	out, err := execute(t, SignatureCmd)
	require.NoError(t, err)
	for _, expected := range []string{
		"sort\n    Bool;\n    @word;\n",
		"    @add_word: @word # @word -> @word;",
		"    @add_word = add_word;",
		"    !true = false;",
		"eqn\n",
	} {
		assert.Contains(t, out, expected)
	}
	assert.NotContains(t, out, "    if: ")

	out, err = execute(t, SignatureCmd, "--standard")
	require.NoError(t, err)
	assert.Contains(t, out, "    if: Bool # @word # @word -> @word;")
}
