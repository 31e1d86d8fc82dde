package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"ToDoList/internal/cli/api"
	"ToDoList/internal/config"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command — подкоманда CLI, один запрос к серверу.
type Command interface {
	// Name as typed by the user, e.g. "add".
	Name() string
	Description() string
	// Usage e.g. "edit <id> <title>".
	Usage() string
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

var registry = map[string]Command{}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, в тестах подменяется.
var Out io.Writer = os.Stdout

// RegisterCmd вызывается из init() каждой команды.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage печатает справку, команды сгруппированы по ресурсу.
func FormatGlobalUsage() string {
	var items, users []string
	for _, c := range List() {
		line := fmt.Sprintf("  %-30s %s", c.Usage(), c.Description())
		if strings.HasPrefix(c.Name(), "user-") {
			users = append(users, line)
		} else {
			items = append(items, line)
		}
	}

	var b strings.Builder
	b.WriteString("ToDoList CLI\n\n")
	b.WriteString("Usage:\n  todo [--base-url <host:port>] [--https] <command> [args]\n\n")
	b.WriteString("Items:\n")
	b.WriteString(strings.Join(items, "\n"))
	b.WriteString("\n\nUsers:\n")
	b.WriteString(strings.Join(users, "\n"))
	b.WriteString("\n\n  help [command]                 Показать справку\n")
	return b.String()
}

// report печатает сообщение успешного конверта либо возвращает отказ сервера.
func report(env *api.Envelope) error {
	if err := env.Err(); err != nil {
		return err
	}
	if env.Message != "" {
		fmt.Fprintln(Out, env.Message)
	}
	return nil
}

func printItems(items []api.Item) {
	if len(items) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return
	}
	for _, it := range items {
		fmt.Fprintf(Out, "- #%d  %s\n", it.ID, it.Title)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(items))
}
