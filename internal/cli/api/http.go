// Package api — HTTP-клиент CLI к серверу списка дел.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ToDoList/internal/config"
)

// Client ходит к серверу по cfg.ServerURL.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{BaseURL: cfg.ServerURL, HTTP: &http.Client{Timeout: 15 * time.Second}}
}

// Item — элемент списка в ответе сервера.
type Item struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	UserID *int64 `json:"userId"`
}

// User — пользователь в ответе сервера.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Envelope — общий конверт ответа; заполнены только присланные поля.
type Envelope struct {
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	ListTitle string `json:"listTitle,omitempty"`
	ListItems []Item `json:"listItems,omitempty"`
	User      *User  `json:"user,omitempty"`
}

// RejectedError — сервер ответил конвертом с полем error.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string { return e.Message }

// Err возвращает *RejectedError, если сервер отказал.
func (e *Envelope) Err() error {
	if e.Error == "" {
		return nil
	}
	return &RejectedError{Message: e.Error}
}

// Do отправляет JSON-запрос и разбирает конверт ответа. payload может быть nil.
func (c *Client) Do(ctx context.Context, method, path string, payload any) (*Envelope, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}
	return &env, nil
}
