package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// WithRecover перехватывает панику в обработчике, логирует её со стеком
// и передаёт управление onError. Стек клиенту не отдаётся.
func WithRecover(logger *zap.SugaredLogger, onError func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rec)
				}
				logger.Errorw("panic in handler",
					"method", r.Method,
					"uri", r.RequestURI,
					"error", err,
					"stack", string(debug.Stack()),
				)
				onError(w, r, err)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
