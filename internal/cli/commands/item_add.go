package commands

import (
	"context"
	"net/http"
	"strings"

	"ToDoList/internal/cli/api"
	"ToDoList/internal/config"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "add" }
func (itemAddCmd) Description() string {
	return "Добавить запись"
}
func (itemAddCmd) Usage() string { return "add <title>" }

// Run склеивает аргументы через пробел, кавычки не обязательны.
func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	env, err := api.NewClient(cfg).Do(ctx, http.MethodPost, "/api/v1/items/add",
		map[string]any{"newItem": strings.Join(args, " ")})
	if err != nil {
		return err
	}
	return report(env)
}

func init() { RegisterCmd(itemAddCmd{}) }
