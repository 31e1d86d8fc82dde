package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// handlerFunc — контроллер, который может вернуть неожиданную ошибку.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorController — последний рубеж: логирует ошибку и отдаёт фиксированный ответ.
type ErrorController struct {
	Logger *zap.SugaredLogger
}

func NewErrorController(logger *zap.SugaredLogger) *ErrorController {
	return &ErrorController{Logger: logger}
}

// Handle пишет 500 с общим сообщением. Подробности остаются в логе.
func (c *ErrorController) Handle(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.Errorw("unhandled error",
		"method", r.Method,
		"uri", r.RequestURI,
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: ErrMsgGeneric})
}

// wrap переводит ошибку контроллера в ErrorController.
func (c *ErrorController) wrap(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			c.Handle(w, r, err)
		}
	}
}

// NotFound отвечает на неизвестный путь или метод.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: ErrMsgInvalidURL})
}
