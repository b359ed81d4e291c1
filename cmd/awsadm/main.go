package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/raywall/cloud-admin-toolkit/pkg/cli"
)

// Variável injetável para mocking
var clientFactory cli.ClientFactory = cli.DefaultClients

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run contém a lógica principal testável
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := cli.NewApp(
		cli.WithOutput(stdout, stderr),
		cli.WithClientFactory(clientFactory),
	)
	return app.Execute(ctx, args)
}
