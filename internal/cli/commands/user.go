package commands

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"ToDoList/internal/cli/api"
	"ToDoList/internal/config"
)

type userAddCmd struct{}

func (userAddCmd) Name() string        { return "user-add" }
func (userAddCmd) Description() string { return "Зарегистрировать пользователя" }
func (userAddCmd) Usage() string       { return "user-add <email> <password>" }

func (userAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	env, err := api.NewClient(cfg).Do(ctx, http.MethodPost, "/api/v1/users",
		map[string]any{"email": args[0], "password": args[1]})
	if err != nil {
		return err
	}
	if err := report(env); err != nil {
		return err
	}
	if env.User != nil {
		fmt.Fprintf(Out, "  id:    %d\n", env.User.ID)
		fmt.Fprintf(Out, "  email: %s\n", env.User.Email)
	}
	return nil
}

type userGetCmd struct{}

func (userGetCmd) Name() string        { return "user-get" }
func (userGetCmd) Description() string { return "Показать пользователя и его записи" }
func (userGetCmd) Usage() string       { return "user-get <id>" }

func (userGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	id, err := userIDArg(args)
	if err != nil {
		return err
	}
	env, err := api.NewClient(cfg).Do(ctx, http.MethodGet, "/api/v1/users/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}
	if err := report(env); err != nil {
		return err
	}
	if env.User != nil {
		fmt.Fprintf(Out, "User #%d %s\n", env.User.ID, env.User.Email)
	}
	printItems(env.ListItems)
	return nil
}

type userDeleteCmd struct{}

func (userDeleteCmd) Name() string        { return "user-delete" }
func (userDeleteCmd) Description() string { return "Удалить пользователя вместе с записями" }
func (userDeleteCmd) Usage() string       { return "user-delete <id>" }

func (userDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	id, err := userIDArg(args)
	if err != nil {
		return err
	}
	env, err := api.NewClient(cfg).Do(ctx, http.MethodDelete, "/api/v1/users/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}
	return report(env)
}

func userIDArg(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, ErrUsage
	}
	return id, nil
}

func init() {
	RegisterCmd(userAddCmd{})
	RegisterCmd(userGetCmd{})
	RegisterCmd(userDeleteCmd{})
}
