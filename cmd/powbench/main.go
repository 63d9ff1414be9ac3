// Command powbench evaluates integer powers and verifies the laws of
// exponentiation from the command line.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("powbench failed", "err", err)
		os.Exit(1)
	}
}
