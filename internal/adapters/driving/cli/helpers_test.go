package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/calc/internal/adapters/driven/messages"
	"github.com/custodia-labs/calc/internal/core/services"
)

// setupTestServices installs real services and returns a cleanup function
// that restores the previous ones and resets flag values.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	provider, err := messages.NewProvider()
	require.NoError(t, err)

	origCalculator := calculator
	origProvider := messageProvider

	calculator = services.NewCalculatorService()
	messageProvider = provider
	resetFlags()

	return func() {
		calculator = origCalculator
		messageProvider = origProvider
		resetFlags()
	}
}

func resetFlags() {
	verbose = false
	strict = false
	serious = false
	silly = false
	suppressNotice = false
	noColor = false
}

// execute runs rootCmd with args and input and returns its output.
func execute(args []string, input string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
