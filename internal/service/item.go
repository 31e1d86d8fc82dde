package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"ToDoList/internal/model"
	"ToDoList/internal/repo"

	"go.uber.org/zap"
)

// ItemService инкапсулирует бизнес-логику работы с Item.
type ItemService struct {
	repo   repo.ItemRepository
	users  repo.UserRepository
	logger *zap.SugaredLogger
}

func NewItemService(r repo.ItemRepository, users repo.UserRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{repo: r, users: users, logger: logger}
}

// List возвращает все элементы списка.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.ListAll(ctx)
}

// Add создаёт элемент без владельца.
func (s *ItemService) Add(ctx context.Context, title string) (*model.Item, error) {
	if err := validateTitle(title); err != nil {
		s.logger.Warnw("Add: title rejected", "length", utf8.RuneCountInString(title))
		return nil, err
	}
	return s.repo.Add(ctx, title)
}

// Edit меняет заголовок элемента.
func (s *ItemService) Edit(ctx context.Context, title string, id int64) error {
	if err := validateTitle(title); err != nil {
		s.logger.Warnw("Edit: title rejected", "id", id, "length", utf8.RuneCountInString(title))
		return err
	}
	return s.repo.Edit(ctx, title, id)
}

// Delete удаляет элемент.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListForUser возвращает элементы существующего пользователя.
func (s *ItemService) ListForUser(ctx context.Context, userID int64) ([]model.Item, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

// AddForUser создаёт элемент, принадлежащий существующему пользователю.
func (s *ItemService) AddForUser(ctx context.Context, title string, userID int64) (*model.Item, error) {
	if err := validateTitle(title); err != nil {
		s.logger.Warnw("AddForUser: title rejected", "user_id", userID, "length", utf8.RuneCountInString(title))
		return nil, err
	}
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.AddForUser(ctx, title, userID)
}

func (s *ItemService) ensureUser(ctx context.Context, userID int64) error {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user %d: %w", userID, err)
	}
	return nil
}

// validateTitle проверяет длину заголовка до сжатия.
func validateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < 1 || n > model.TitleMaxLen {
		return ErrInvalidTitle
	}
	return nil
}
