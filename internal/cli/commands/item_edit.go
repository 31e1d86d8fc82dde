package commands

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"ToDoList/internal/cli/api"
	"ToDoList/internal/config"
)

type itemEditCmd struct{}

func (itemEditCmd) Name() string { return "edit" }
func (itemEditCmd) Description() string {
	return "Изменить заголовок записи"
}
func (itemEditCmd) Usage() string { return "edit <id> <title>" }

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	env, err := api.NewClient(cfg).Do(ctx, http.MethodPatch, "/api/v1/items/edit", map[string]any{
		"updatedItemId":    id,
		"updatedItemTitle": strings.Join(args[1:], " "),
	})
	if err != nil {
		return err
	}
	return report(env)
}

func init() { RegisterCmd(itemEditCmd{}) }
