package rawsql

import (
	"context"
	"database/sql"
	"time"

	"ToDoList/internal/model"
	"ToDoList/internal/repo"
)

const itemColumns = `id, title, user_id, created_at, updated_at`

// ItemRepository — raw SQL реализация repo.ItemRepository.
// Заголовки хранятся как есть, без сжатия; удаление мягкое (deleted_at).
type ItemRepository struct {
	exec *Executor
	now  func() time.Time
}

var _ repo.ItemRepository = (*ItemRepository)(nil)

// NewItemRepository создаёт репозиторий поверх исполнителя запросов.
func NewItemRepository(exec *Executor) *ItemRepository {
	return &ItemRepository{exec: exec, now: func() time.Time { return time.Now().UTC() }}
}

// ListAll возвращает все неудалённые элементы без гарантии порядка.
func (r *ItemRepository) ListAll(ctx context.Context) ([]model.Item, error) {
	return Query(ctx, r.exec,
		`SELECT `+itemColumns+` FROM items WHERE deleted_at IS NULL`,
		scanItem)
}

// ListByUser возвращает неудалённые элементы пользователя.
func (r *ItemRepository) ListByUser(ctx context.Context, userID int64) ([]model.Item, error) {
	return Query(ctx, r.exec,
		`SELECT `+itemColumns+` FROM items WHERE user_id = ? AND deleted_at IS NULL`,
		scanItem, userID)
}

func (r *ItemRepository) Add(ctx context.Context, title string) (*model.Item, error) {
	return r.insert(ctx, title, nil)
}

func (r *ItemRepository) AddForUser(ctx context.Context, title string, userID int64) (*model.Item, error) {
	return r.insert(ctx, title, &userID)
}

// insert использует RETURNING: его понимают и PostgreSQL, и SQLite >= 3.35.
func (r *ItemRepository) insert(ctx context.Context, title string, userID *int64) (*model.Item, error) {
	now := r.now()
	var owner any
	if userID != nil {
		owner = *userID
	}
	items, err := Query(ctx, r.exec,
		`INSERT INTO items (title, user_id, created_at, updated_at) VALUES (?, ?, ?, ?) RETURNING `+itemColumns,
		scanItem, title, owner, now, now)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, sql.ErrNoRows
	}
	return &items[0], nil
}

func (r *ItemRepository) Edit(ctx context.Context, title string, id int64) error {
	_, err := r.exec.Exec(ctx,
		`UPDATE items SET title = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`,
		title, r.now(), id)
	return err
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.exec.Exec(ctx,
		`UPDATE items SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		r.now(), id)
	return err
}

func scanItem(rows *sql.Rows) (model.Item, error) {
	var (
		it     model.Item
		userID sql.NullInt64
	)
	if err := rows.Scan(&it.ID, &it.Title, &userID, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return model.Item{}, err
	}
	if userID.Valid {
		v := userID.Int64
		it.UserID = &v
	}
	return it, nil
}
