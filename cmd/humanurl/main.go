// Command humanurl shortens URLs for display and rewrites URL components.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jongio/humanurl/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
