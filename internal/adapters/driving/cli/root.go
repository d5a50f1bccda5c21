package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/calc/internal/adapters/driving/repl"
	"github.com/custodia-labs/calc/internal/core/domain"
	"github.com/custodia-labs/calc/internal/core/ports/driven"
	"github.com/custodia-labs/calc/internal/core/ports/driving"
	"github.com/custodia-labs/calc/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services injected by main.
var (
	calculator      driving.Calculator
	messageProvider driven.MessageProvider
)

// Flag values.
var (
	verbose        bool
	strict         bool
	serious        bool
	silly          bool
	suppressNotice bool
	noColor        bool
)

// strictOperatorSetter is implemented by calculators that support exact
// single-character operator matching.
type strictOperatorSetter interface {
	SetStrictOperators(strict bool)
}

var rootCmd = &cobra.Command{
	Use:          "calc",
	Short:        "A basic commandline calculator",
	Long:         rootLong(),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
		if s, ok := calculator.(strictOperatorSetter); ok {
			s.SetStrictOperators(strict)
		}
	},
	RunE: runSession,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs to stderr")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Require operators to be exactly one character")

	rootCmd.Flags().BoolVar(&serious, "serious", false, "Use the formal message set (default)")
	rootCmd.Flags().BoolVar(&silly, "silly", false, "Use the casual message set")
	rootCmd.Flags().BoolVarP(&suppressNotice, "suppress-notice", "n", false, "Do not print the license notice at startup")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
}

// SetCalculator sets the calculator used by all commands.
func SetCalculator(c driving.Calculator) {
	calculator = c
}

// SetMessageProvider sets the provider of session message sets.
func SetMessageProvider(p driven.MessageProvider) {
	messageProvider = p
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runSession(cmd *cobra.Command, _ []string) error {
	if calculator == nil {
		return errors.New("calculator not configured")
	}
	if messageProvider == nil {
		return errors.New("message provider not configured")
	}

	if serious && silly {
		logger.Warn("Both --serious and --silly given, using serious")
	}
	mode := selectedMode()
	available := messageProvider.Modes()
	logger.Debug("Mode: %s (available: %v)", mode.Description(), available)
	if !slices.Contains(available, mode) {
		return fmt.Errorf("mode %q has no message set (available: %v): %w",
			mode, available, domain.ErrUnknownMode)
	}

	messages, err := messageProvider.Messages(mode)
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}

	out := cmd.OutOrStdout()
	styles := repl.PlainStyles()
	if !noColor && isTerminal(out) {
		styles = repl.NewStyles(out, nil)
	}

	session, err := repl.NewSession(repl.Config{
		Input:      cmd.InOrStdin(),
		Output:     out,
		Calculator: calculator,
		Messages:   messages,
		ShowNotice: !suppressNotice,
		Styles:     styles,
	})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	return session.Run(cmd.Context())
}

// selectedMode returns the message mode chosen by flags.
// --serious wins when both --serious and --silly are given.
func selectedMode() domain.Mode {
	if silly && !serious {
		return domain.ModeSilly
	}
	return domain.ModeSerious
}

// rootLong builds the root command help from the supported operations.
func rootLong() string {
	var b strings.Builder
	b.WriteString("calc reads one expression per line and prints the result.\n\n")
	b.WriteString("An expression is two numbers and an operator separated by spaces:\n")
	for _, op := range domain.Operations() {
		fmt.Fprintf(&b, "  %c    %s\n", op.Symbol(), op.Description())
	}
	b.WriteString("\nThe second number is ignored for square roots.\n")
	b.WriteString(`Type "info" for information about calc and "exit" to quit.`)
	return b.String()
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
