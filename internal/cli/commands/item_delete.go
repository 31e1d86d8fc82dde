package commands

import (
	"context"
	"net/http"
	"strconv"

	"ToDoList/internal/cli/api"
	"ToDoList/internal/config"
)

type itemDeleteCmd struct{}

func (itemDeleteCmd) Name() string        { return "delete" }
func (itemDeleteCmd) Description() string { return "Удалить запись" }
func (itemDeleteCmd) Usage() string       { return "delete <id>" }

func (itemDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	env, err := api.NewClient(cfg).Do(ctx, http.MethodDelete, "/api/v1/items/delete",
		map[string]any{"deleteItemId": id})
	if err != nil {
		return err
	}
	return report(env)
}

func init() { RegisterCmd(itemDeleteCmd{}) }
