package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ToDoList/internal/cli/api"
	"ToDoList/internal/config"
)

// Коды завершения CLI.
const (
	ExitOK = iota
	// ExitRejected — сервер ответил конвертом с ошибкой.
	ExitRejected
	ExitUsage
	// ExitUnreachable — сервер недоступен или ответил не конвертом.
	ExitUnreachable
)

// Dispatch выполняет одну команду и возвращает код завершения процесса.
// args — аргументы после флагов (flag.Args()).
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	switch name {
	case "help", "-h", "--help":
		return help(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	err := c.Run(ctx, cfg, args[1:])
	var rejected *api.RejectedError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return ExitUsage
	case errors.As(err, &rejected):
		fmt.Fprintf(Out, "%s: %s\n", name, rejected.Message)
		return ExitRejected
	default:
		fmt.Fprintf(Out, "%s: cannot talk to %s: %v\n", name, cfg.ServerURL, err)
		return ExitUnreachable
	}
}

// help: todo help [command]
func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitOK
	}
	c, ok := Get(strings.ToLower(args[0]))
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}
	fmt.Fprintf(Out, "Usage: %s\n  %s\n", c.Usage(), c.Description())
	return ExitOK
}
