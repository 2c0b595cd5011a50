// Command cppent generates C++ entity classes from entity descriptions.
//
// The CLI supports:
//   - generate: Produce the .h/.cpp pair of every entity
//   - inspect: Show how the fields of an entity resolve
//   - init: Write the reference supplier schema
//   - config: Show the effective configuration
//   - version: Print version information
//
// Usage:
//
//	cppent [flags] <command>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/syssam/cppent/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		cli.ExitWithError(err)
	}
}
