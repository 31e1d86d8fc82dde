package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"ToDoList/internal/config"
	"ToDoList/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	handler *Handler
	items   *mockItemRepo
	users   *mockUserRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ir := &mockItemRepo{}
	ur := &mockUserRepo{}
	logger := zap.NewNop().Sugar()
	cfg := &config.Config{BaseURL: "localhost:4000"}

	itemSvc := service.NewItemService(ir, ur, logger)
	userSvc := service.NewUserService(ur, ir)
	return &testEnv{
		handler: NewHandler(itemSvc, userSvc, logger, cfg),
		items:   ir,
		users:   ur,
	}
}

// do выполняет запрос через роутер; body отправляется как JSON, если не пуст.
func (e *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.Router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) doForm(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e.handler.Router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m), rec.Body.String())
	return m
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}

