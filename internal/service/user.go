package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"ToDoList/internal/model"
	"ToDoList/internal/repo"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost — стоимость хеширования пароля.
const bcryptCost = 12

// UserService регистрация, чтение и удаление пользователей.
// Вход по паролю не реализован: хеш только сохраняется.
type UserService struct {
	repo  repo.UserRepository
	items repo.ItemRepository
}

func NewUserService(r repo.UserRepository, items repo.ItemRepository) *UserService {
	return &UserService{repo: r, items: items}
}

// Register создаёт пользователя с уникальным email.
func (s *UserService) Register(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, &model.User{Email: email, Password: string(hash)})
	if err != nil {
		if repo.IsDuplicate(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Get возвращает пользователя и его элементы.
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, []model.Item, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	items, err := s.items.ListByUser(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return user, items, nil
}

// Delete мягко удаляет пользователя и все его элементы.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		if repo.IsNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
