package handlers

import (
	"net/http"

	"ToDoList/internal/config"
	"ToDoList/internal/middleware"
	"ToDoList/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	userService *service.UserService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	errs := NewErrorController(logger)

	r.Use(chimw.RealIP)
	r.Use(middleware.WithLogging(logger))
	r.Use(middleware.WithRecover(logger, errs.Handle))
	r.Use(chimw.Compress(5, "application/json"))

	// до Route: подроутеры наследуют обработчики при монтировании
	r.NotFound(NotFound)
	r.MethodNotAllowed(NotFound)

	itemHandler := NewItemHandler(itemService, logger)
	userHandler := NewUserHandler(userService, itemService, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	// старые плоские маршруты
	r.Get("/items", errs.wrap(itemHandler.List))
	r.Post("/addItem", errs.wrap(itemHandler.Add))
	r.Patch("/editItem", errs.wrap(itemHandler.Edit))
	r.Delete("/deleteItem", errs.wrap(itemHandler.Delete))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", errs.wrap(itemHandler.List))
			r.Post("/add", errs.wrap(itemHandler.Add))
			r.Patch("/edit", errs.wrap(itemHandler.Edit))
			r.Delete("/delete", errs.wrap(itemHandler.Delete))
		})
		r.Route("/users", func(r chi.Router) {
			r.Post("/", errs.wrap(userHandler.Create))
			r.Get("/{userId}", errs.wrap(userHandler.Get))
			r.Delete("/{userId}", errs.wrap(userHandler.Delete))
			r.Get("/{userId}/items", errs.wrap(userHandler.ListItems))
			r.Post("/{userId}/items", errs.wrap(userHandler.AddItem))
		})
	})

	if !cfg.IsProduction() {
		logger.Infow("routes registered", "base_url", cfg.BaseURL)
	}

	return &Handler{Router: r}
}
