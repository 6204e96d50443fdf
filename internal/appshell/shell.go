package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const exitInterrupted = 130

// Main runs the tool with the process arguments; run receives argv[0]
// separately from the remaining arguments.
func Main(run func(ctx context.Context, prog string, argv []string, stdout, stderr io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	prog, argv := "sawshark", []string(nil)
	if len(os.Args) > 0 {
		prog, argv = os.Args[0], os.Args[1:]
	}
	code := run(ctx, prog, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = exitInterrupted
	}

	stop()
	os.Exit(code)
}
