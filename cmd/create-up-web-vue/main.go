package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/up-web-vue/create-up-web-vue/pkg/cli"
)

// Build-time variables.
var (
	version = "dev"
)

func main() {
	cli.SetVersionInfo(version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()

	os.Exit(cli.ExitCode(err))
}
