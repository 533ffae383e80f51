package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("ENV", "local")

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	t.Run("Text output", func(t *testing.T) {
		code, out, _ := runCLI(t, "add", "1,2", "3,4")
		require.Equal(t, exitOK, code)
		require.Equal(t, "(4, 6)\n", out)
	})

	t.Run("Negative operands are not flags", func(t *testing.T) {
		code, out, _ := runCLI(t, "negate", "-1,2")
		require.Equal(t, exitOK, code)
		require.Equal(t, "(1, -2)\n", out)
	})

	t.Run("Flags select format and precision", func(t *testing.T) {
		code, out, _ := runCLI(t, "--format", "json", "magnitude", "1,1")
		require.Equal(t, exitOK, code)
		require.Equal(t, "1.4142135623730951\n", out)

		code, out, _ = runCLI(t, "--precision", "2", "set", "3", "4")
		require.Equal(t, exitOK, code)
		require.Equal(t, "(3.00, 4.00)\n", out)
	})

	t.Run("Missing operation prints usage", func(t *testing.T) {
		code, out, errOut := runCLI(t)
		require.Equal(t, exitUsage, code)
		require.Empty(t, out)
		require.Contains(t, errOut, "segment-distance P START END")
	})

	t.Run("Evaluation errors are logged", func(t *testing.T) {
		code, out, errOut := runCLI(t, "add", "1,2")
		require.Equal(t, exitError, code)
		require.Empty(t, out)
		require.Contains(t, errOut, "wrong number of arguments")
	})

	t.Run("Unknown format", func(t *testing.T) {
		code, _, errOut := runCLI(t, "--format", "xml", "create")
		require.Equal(t, exitError, code)
		require.Contains(t, errOut, "unknown output format")
	})
}
