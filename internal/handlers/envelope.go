package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"ToDoList/internal/model"
)

// Тексты конвертов ответа. Клиент никогда не видит причину ошибки.
const (
	ListTitle = "ARC To Do List"

	MsgSuccess = "Success"

	ErrMsgGeneric    = "Your last operation encountered an error."
	ErrMsgFetch      = "Fetching items failed."
	ErrMsgAdd        = "There was an error adding a new item."
	ErrMsgEdit       = "There was an error editing an item."
	ErrMsgDelete     = "There was an error deleting an item."
	ErrMsgUser       = "There was an error with the user operation."
	ErrMsgInvalidURL = "The URL you entered is not valid."
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type listResponse struct {
	ListTitle string    `json:"listTitle"`
	ListItems []itemDTO `json:"listItems"`
}

type listErrorResponse struct {
	ListTitle string `json:"listTitle"`
	Error     string `json:"error"`
}

type itemDTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	UserID    *int64    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type userDTO struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toItemDTOs(items []model.Item) []itemDTO {
	res := make([]itemDTO, 0, len(items))
	for _, it := range items {
		res = append(res, itemDTO{
			ID:        it.ID,
			Title:     it.Title,
			UserID:    it.UserID,
			CreatedAt: it.CreatedAt.UTC(),
			UpdatedAt: it.UpdatedAt.UTC(),
		})
	}
	return res
}

func toUserDTO(u *model.User) userDTO {
	return userDTO{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt.UTC(), UpdatedAt: u.UpdatedAt.UTC()}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, messageResponse{Message: MsgSuccess})
}

func writeError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, errorResponse{Error: msg})
}
