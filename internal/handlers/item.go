package handlers

import (
	"net/http"

	"ToDoList/internal/service"

	"go.uber.org/zap"
)

// ItemHandler — контроллеры списка дел.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger}
}

// List отдаёт все элементы списка.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) error {
	h.Logger.Infow("List: start")
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: fetching items failed", "error", err)
		writeJSON(w, http.StatusOK, listErrorResponse{ListTitle: ListTitle, Error: ErrMsgFetch})
		return nil
	}
	writeJSON(w, http.StatusOK, listResponse{ListTitle: ListTitle, ListItems: toItemDTOs(items)})
	h.Logger.Infow("List: done", "count", len(items))
	return nil
}

// Add создаёт элемент из поля newItem.
func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) error {
	f, err := readFields(w, r)
	if err != nil {
		return err
	}
	title, ok := f.str("newItem")
	if !ok {
		h.Logger.Warnw("Add: missing field", "field", "newItem")
		writeError(w, ErrMsgGeneric)
		return nil
	}
	item, err := h.ItemService.Add(r.Context(), title)
	if err != nil {
		h.Logger.Errorw("Add: failed", "error", err)
		writeError(w, ErrMsgAdd)
		return nil
	}
	h.Logger.Infow("Add: done", "id", item.ID)
	writeSuccess(w)
	return nil
}

// Edit меняет заголовок элемента updatedItemId на updatedItemTitle.
func (h *ItemHandler) Edit(w http.ResponseWriter, r *http.Request) error {
	f, err := readFields(w, r)
	if err != nil {
		return err
	}
	title, okTitle := f.str("updatedItemTitle")
	id, okID := f.id("updatedItemId")
	if !okTitle || !okID {
		h.Logger.Warnw("Edit: missing field", "title", okTitle, "id", okID)
		writeError(w, ErrMsgGeneric)
		return nil
	}
	if err := h.ItemService.Edit(r.Context(), title, id); err != nil {
		h.Logger.Errorw("Edit: failed", "id", id, "error", err)
		writeError(w, ErrMsgEdit)
		return nil
	}
	writeSuccess(w)
	return nil
}

// Delete удаляет элемент deleteItemId.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	f, err := readFields(w, r)
	if err != nil {
		return err
	}
	id, ok := f.id("deleteItemId")
	if !ok {
		h.Logger.Warnw("Delete: missing field", "field", "deleteItemId")
		writeError(w, ErrMsgGeneric)
		return nil
	}
	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		h.Logger.Errorw("Delete: failed", "id", id, "error", err)
		writeError(w, ErrMsgDelete)
		return nil
	}
	writeSuccess(w)
	return nil
}
