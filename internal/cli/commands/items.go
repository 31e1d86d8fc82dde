package commands

import (
	"context"
	"fmt"
	"net/http"

	"ToDoList/internal/cli/api"
	"ToDoList/internal/config"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать все записи"
}
func (itemsCmd) Usage() string { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	env, err := api.NewClient(cfg).Do(ctx, http.MethodGet, "/api/v1/items/", nil)
	if err != nil {
		return err
	}
	if err := env.Err(); err != nil {
		return err
	}
	fmt.Fprintln(Out, env.ListTitle)
	printItems(env.ListItems)
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
