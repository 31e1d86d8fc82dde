package handlers

import (
	"net/http"

	"ToDoList/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler — контроллеры пользователей и их списков.
type UserHandler struct {
	UserService *service.UserService
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

func NewUserHandler(userService *service.UserService, itemService *service.ItemService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, ItemService: itemService, Logger: logger}
}

type createdUserResponse struct {
	Message string  `json:"message"`
	User    userDTO `json:"user"`
}

type userWithItemsResponse struct {
	User      userDTO   `json:"user"`
	ListItems []itemDTO `json:"listItems"`
}

// Create регистрирует пользователя по email и паролю.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) error {
	f, err := readFields(w, r)
	if err != nil {
		return err
	}
	email, okEmail := f.str("email")
	password, okPass := f.str("password")
	if !okEmail || !okPass {
		h.Logger.Warnw("Create user: missing field", "email", okEmail, "password", okPass)
		writeError(w, ErrMsgGeneric)
		return nil
	}
	user, err := h.UserService.Register(r.Context(), email, password)
	if err != nil {
		h.Logger.Errorw("Create user: failed", "error", err)
		writeError(w, ErrMsgUser)
		return nil
	}
	h.Logger.Infow("Create user: done", "id", user.ID)
	writeJSON(w, http.StatusOK, createdUserResponse{Message: MsgSuccess, User: toUserDTO(user)})
	return nil
}

// Get отдаёт пользователя вместе с его элементами.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) error {
	id, ok := h.userID(w, r)
	if !ok {
		return nil
	}
	user, items, err := h.UserService.Get(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("Get user: failed", "id", id, "error", err)
		writeError(w, ErrMsgUser)
		return nil
	}
	writeJSON(w, http.StatusOK, userWithItemsResponse{User: toUserDTO(user), ListItems: toItemDTOs(items)})
	return nil
}

// Delete удаляет пользователя и его элементы.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	id, ok := h.userID(w, r)
	if !ok {
		return nil
	}
	if err := h.UserService.Delete(r.Context(), id); err != nil {
		h.Logger.Errorw("Delete user: failed", "id", id, "error", err)
		writeError(w, ErrMsgUser)
		return nil
	}
	writeSuccess(w)
	return nil
}

// ListItems отдаёт список дел пользователя.
func (h *UserHandler) ListItems(w http.ResponseWriter, r *http.Request) error {
	id, ok := h.userID(w, r)
	if !ok {
		return nil
	}
	items, err := h.ItemService.ListForUser(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("List user items: failed", "user_id", id, "error", err)
		writeError(w, ErrMsgFetch)
		return nil
	}
	writeJSON(w, http.StatusOK, listResponse{ListTitle: ListTitle, ListItems: toItemDTOs(items)})
	return nil
}

// AddItem создаёт элемент, принадлежащий пользователю.
func (h *UserHandler) AddItem(w http.ResponseWriter, r *http.Request) error {
	id, ok := h.userID(w, r)
	if !ok {
		return nil
	}
	f, err := readFields(w, r)
	if err != nil {
		return err
	}
	title, ok := f.str("newItem")
	if !ok {
		h.Logger.Warnw("Add user item: missing field", "field", "newItem")
		writeError(w, ErrMsgGeneric)
		return nil
	}
	if _, err := h.ItemService.AddForUser(r.Context(), title, id); err != nil {
		h.Logger.Errorw("Add user item: failed", "user_id", id, "error", err)
		writeError(w, ErrMsgAdd)
		return nil
	}
	writeSuccess(w)
	return nil
}

// userID читает {userId} из пути; при ошибке ответ уже записан.
func (h *UserHandler) userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "userId")
	id, ok := parseID(raw)
	if !ok {
		h.Logger.Warnw("invalid user id", "value", raw)
		writeError(w, ErrMsgGeneric)
		return 0, false
	}
	return id, true
}
