// Command calc is an interactive commandline calculator.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/calc/internal/adapters/driven/messages"
	"github.com/custodia-labs/calc/internal/adapters/driving/cli"
	"github.com/custodia-labs/calc/internal/core/services"
	"github.com/custodia-labs/calc/internal/logger"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	defer logger.Sync()

	provider, err := messages.NewProvider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cli.SetCalculator(services.NewCalculatorService())
	cli.SetMessageProvider(provider)
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}
