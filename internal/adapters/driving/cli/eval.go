package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/calc/internal/core/domain"
)

var evalCmd = &cobra.Command{
	Use:   "eval <number> <operator> [number]",
	Short: "Evaluate a single expression",
	Long: `Evaluate one expression and print the result.

Arguments are joined with spaces and read exactly like a line typed into
the interactive session. Use -- before expressions that start with a
negative number:

  calc eval 3 + 4
  calc eval -- -5 / 0`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	if calculator == nil {
		return errors.New("calculator not configured")
	}

	line := strings.Join(args, " ")
	result, err := calculator.Calculate(line)
	if err != nil {
		return fmt.Errorf("invalid expression %q: %w", line, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), domain.FormatResult(result))
	return nil
}
