package repo

import (
	"context"
	"fmt"

	"ToDoList/internal/codec"
	"ToDoList/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
// Все методы возвращают либо данные, либо ошибку, но не то и другое сразу.
type ItemRepository interface {
	// ListAll возвращает все неудалённые элементы.
	ListAll(ctx context.Context) ([]model.Item, error)
	// Add создаёт элемент без владельца.
	Add(ctx context.Context, title string) (*model.Item, error)
	// Edit меняет заголовок. Отсутствие строки с таким id не считается ошибкой.
	Edit(ctx context.Context, title string, id int64) error
	// Delete помечает элемент удалённым. Отсутствие строки не считается ошибкой.
	Delete(ctx context.Context, id int64) error

	// ListByUser возвращает элементы пользователя.
	ListByUser(ctx context.Context, userID int64) ([]model.Item, error)
	// AddForUser создаёт элемент, принадлежащий пользователю.
	AddForUser(ctx context.Context, title string, userID int64) (*model.Item, error)
}

type itemRepo struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// NewItemRepository создаёт ORM-реализацию репозитория для Item.
// Заголовки сжимаются перед записью и распаковываются после чтения.
func NewItemRepository(db *gorm.DB, logger *zap.SugaredLogger) ItemRepository {
	return &itemRepo{db: db, logger: logger}
}

func (r *itemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&items).Error; err != nil {
		r.logger.Errorw("ListAll: query failed", "error", err)
		return nil, err
	}
	return decodeItems(items)
}

func (r *itemRepo) Add(ctx context.Context, title string) (*model.Item, error) {
	return r.create(ctx, title, nil)
}

func (r *itemRepo) AddForUser(ctx context.Context, title string, userID int64) (*model.Item, error) {
	return r.create(ctx, title, &userID)
}

func (r *itemRepo) create(ctx context.Context, title string, userID *int64) (*model.Item, error) {
	stored, err := codec.EncodeTitle(title)
	if err != nil {
		return nil, err
	}
	it := &model.Item{Title: stored, UserID: userID}
	if err := r.db.WithContext(ctx).Create(it).Error; err != nil {
		r.logger.Errorw("Add: insert failed", "error", err)
		return nil, err
	}
	r.logger.Infow("Add: item committed", "id", it.ID)
	it.Title = title
	return it, nil
}

func (r *itemRepo) Edit(ctx context.Context, title string, id int64) error {
	stored, err := codec.EncodeTitle(title)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).Update("title", stored)
	if tx.Error != nil {
		r.logger.Errorw("Edit: update failed", "id", id, "error", tx.Error)
		return tx.Error
	}
	r.logger.Infow("Edit: item updated", "id", id, "rows", tx.RowsAffected)
	return nil
}

func (r *itemRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{})
	if tx.Error != nil {
		r.logger.Errorw("Delete: soft delete failed", "id", id, "error", tx.Error)
		return tx.Error
	}
	r.logger.Infow("Delete: item soft-deleted", "id", id, "rows", tx.RowsAffected)
	return nil
}

func (r *itemRepo) ListByUser(ctx context.Context, userID int64) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&items).Error
	if err != nil {
		r.logger.Errorw("ListByUser: query failed", "user_id", userID, "error", err)
		return nil, err
	}
	return decodeItems(items)
}

func decodeItems(items []model.Item) ([]model.Item, error) {
	for i := range items {
		title, err := codec.DecodeTitle(items[i].Title)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", items[i].ID, err)
		}
		items[i].Title = title
	}
	return items, nil
}
