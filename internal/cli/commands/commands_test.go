package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ToDoList/internal/app"
	"ToDoList/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// withServer поднимает настоящий сервер на in-memory SQLite и перенаправляет Out в буфер.
func withServer(t *testing.T) (*config.Config, *bytes.Buffer) {
	t.Helper()
	srvCfg := &config.Config{
		DBDriver:    config.DriverSQLite,
		DBPath:      "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		StorageMode: config.StorageORM,
		AutoMigrate: true,
		MaxConns:    1,
	}
	a, err := app.New(context.Background(), srvCfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	ts := httptest.NewServer(a.Handler())
	t.Cleanup(func() {
		ts.Close()
		_ = a.Close()
	})

	buf := &bytes.Buffer{}
	prev := Out
	Out = buf
	t.Cleanup(func() { Out = prev })

	return &config.Config{ServerURL: ts.URL}, buf
}

func TestDispatch_ItemCommands(t *testing.T) {
	cfg, out := withServer(t)
	ctx := context.Background()

	require.Equal(t, 0, Dispatch(ctx, cfg, []string{"items"}))
	assert.Contains(t, out.String(), "ARC To Do List")
	assert.Contains(t, out.String(), "Нет записей")

	out.Reset()
	require.Equal(t, 0, Dispatch(ctx, cfg, []string{"add", "Buy", "milk"}))
	assert.Contains(t, out.String(), "Success")

	out.Reset()
	require.Equal(t, 0, Dispatch(ctx, cfg, []string{"items"}))
	assert.Contains(t, out.String(), "- #1  Buy milk")
	assert.Contains(t, out.String(), "Всего: 1")

	out.Reset()
	require.Equal(t, 0, Dispatch(ctx, cfg, []string{"edit", "1", "Buy oat milk"}))
	out.Reset()
	require.Equal(t, 0, Dispatch(ctx, cfg, []string{"items"}))
	assert.Contains(t, out.String(), "Buy oat milk")

	require.Equal(t, 0, Dispatch(ctx, cfg, []string{"delete", "1"}))
	out.Reset()
	require.Equal(t, 0, Dispatch(ctx, cfg, []string{"items"}))
	assert.Contains(t, out.String(), "Нет записей")
}

func TestDispatch_UserCommands(t *testing.T) {
	cfg, out := withServer(t)
	ctx := context.Background()

	require.Equal(t, 0, Dispatch(ctx, cfg, []string{"user-add", "ann@example.com", "secret"}))
	assert.Contains(t, out.String(), "email: ann@example.com")

	out.Reset()
	require.Equal(t, 0, Dispatch(ctx, cfg, []string{"user-get", "1"}))
	assert.Contains(t, out.String(), "User #1 ann@example.com")

	out.Reset()
	assert.Equal(t, ExitRejected, Dispatch(ctx, cfg, []string{"user-add", "ann@example.com", "again"}))
	assert.Contains(t, out.String(), "user-add: There was an error with the user operation.")

	require.Equal(t, 0, Dispatch(ctx, cfg, []string{"user-delete", "1"}))
	out.Reset()
	assert.Equal(t, ExitRejected, Dispatch(ctx, cfg, []string{"user-get", "1"}))
}

func TestDispatch_UsageAndUnknown(t *testing.T) {
	cfg, out := withServer(t)
	ctx := context.Background()

	assert.Equal(t, 2, Dispatch(ctx, cfg, []string{"edit", "abc", "x"}))
	assert.Contains(t, out.String(), "Usage: edit <id> <title>")

	out.Reset()
	assert.Equal(t, 2, Dispatch(ctx, cfg, []string{"add"}))
	assert.Contains(t, out.String(), "Usage: add <title>")

	out.Reset()
	assert.Equal(t, 2, Dispatch(ctx, cfg, []string{"frobnicate"}))
	assert.Contains(t, out.String(), "Unknown command: frobnicate")

	out.Reset()
	assert.Equal(t, ExitOK, Dispatch(ctx, cfg, []string{"help"}))
	help := out.String()
	for _, name := range []string{"items", "add <title>", "user-delete <id>"} {
		assert.Contains(t, help, name)
	}
	// команды пользователей идут отдельной группой после команд списка
	assert.Less(t, strings.Index(help, "Items:"), strings.Index(help, "add <title>"))
	assert.Less(t, strings.Index(help, "Users:"), strings.Index(help, "user-add <email> <password>"))
	assert.Less(t, strings.Index(help, "delete <id>"), strings.Index(help, "Users:"))

	out.Reset()
	assert.Equal(t, ExitOK, Dispatch(ctx, cfg, []string{"--help"}))
	assert.Contains(t, out.String(), "ToDoList CLI")

	out.Reset()
	assert.Equal(t, ExitOK, Dispatch(ctx, cfg, []string{"help", "edit"}))
	assert.Contains(t, out.String(), "Usage: edit <id> <title>")

	out.Reset()
	assert.Equal(t, ExitUsage, Dispatch(ctx, cfg, nil))
	assert.Contains(t, out.String(), "ToDoList CLI")
}

func TestDispatch_ServerErrorEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"There was an error deleting an item."}`))
	}))
	defer ts.Close()

	buf := &bytes.Buffer{}
	prev := Out
	Out = buf
	defer func() { Out = prev }()

	code := Dispatch(context.Background(), &config.Config{ServerURL: ts.URL}, []string{"delete", "3"})
	assert.Equal(t, ExitRejected, code)
	assert.Contains(t, buf.String(), "delete: There was an error deleting an item.")
}

func TestDispatch_ServerUnreachable(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := Out
	Out = buf
	defer func() { Out = prev }()

	code := Dispatch(context.Background(), &config.Config{ServerURL: "http://127.0.0.1:1"}, []string{"items"})
	assert.Equal(t, ExitUnreachable, code)
	assert.Contains(t, buf.String(), "items: cannot talk to http://127.0.0.1:1")
}
