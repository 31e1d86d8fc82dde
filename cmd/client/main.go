// Command todo — консольный клиент сервера списка дел.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ToDoList/internal/cli/commands"
	"ToDoList/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// env + .env + флаги, те же, что у сервера
	cfg := config.NewConfig()
	if cfg.Version {
		fmt.Printf("todo %s (built %s), server %s\n", version, buildDate, cfg.ServerURL)
		return commands.ExitOK
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return commands.Dispatch(ctx, cfg, flag.Args())
}
