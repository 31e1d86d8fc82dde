package repo

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"ToDoList/internal/codec"
	"ToDoList/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newItemRepo(t *testing.T) (ItemRepository, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewItemRepository(db, zap.NewNop().Sugar()), db
}

func TestItemRepository_AddStoresCompressedTitle(t *testing.T) {
	r, db := newItemRepo(t)
	ctx := context.Background()

	it, err := r.Add(ctx, "Buy milk")
	require.NoError(t, err)
	assert.NotZero(t, it.ID)
	assert.Equal(t, "Buy milk", it.Title)
	assert.Nil(t, it.UserID)

	// в БД лежит сжатая строка, а не исходный текст
	var raw model.Item
	require.NoError(t, db.First(&raw, it.ID).Error)
	assert.NotEqual(t, "Buy milk", raw.Title)
	decoded, err := codec.DecodeTitle(raw.Title)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", decoded)

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	if assert.Len(t, all, 1) {
		assert.Equal(t, "Buy milk", all[0].Title)
	}
}

func TestItemRepository_ListAll_NewestFirst(t *testing.T) {
	r, db := newItemRepo(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i, title := range []string{"first", "second", "third"} {
		it, err := r.Add(ctx, title)
		require.NoError(t, err)
		// разводим created_at, чтобы порядок не зависел от разрешения часов
		require.NoError(t, db.Model(&model.Item{}).Where("id = ?", it.ID).
			UpdateColumn("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	if assert.Len(t, all, 3) {
		assert.Equal(t, "third", all[0].Title)
		assert.Equal(t, "second", all[1].Title)
		assert.Equal(t, "first", all[2].Title)
	}
}

func TestItemRepository_Edit(t *testing.T) {
	r, _ := newItemRepo(t)
	ctx := context.Background()

	it, err := r.Add(ctx, "old")
	require.NoError(t, err)

	require.NoError(t, r.Edit(ctx, "new", it.ID))
	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	if assert.Len(t, all, 1) {
		assert.Equal(t, "new", all[0].Title)
	}

	// несуществующий id — не ошибка
	assert.NoError(t, r.Edit(ctx, "ghost", 9999))
}

func TestItemRepository_DeleteIsSoft(t *testing.T) {
	r, db := newItemRepo(t)
	ctx := context.Background()

	keep, err := r.Add(ctx, "keep")
	require.NoError(t, err)
	gone, err := r.Add(ctx, "gone")
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, gone.ID))

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	if assert.Len(t, all, 1) {
		assert.Equal(t, keep.ID, all[0].ID)
	}

	// строка осталась, но помечена deleted_at
	var raw model.Item
	require.NoError(t, db.Unscoped().First(&raw, gone.ID).Error)
	assert.True(t, raw.DeletedAt.Valid)

	// редактирование удалённой строки ничего не меняет
	require.NoError(t, r.Edit(ctx, "revived", gone.ID))
	require.NoError(t, db.Unscoped().First(&raw, gone.ID).Error)
	title, err := codec.DecodeTitle(raw.Title)
	require.NoError(t, err)
	assert.Equal(t, "gone", title)

	// повторное удаление и несуществующий id — не ошибка
	assert.NoError(t, r.Delete(ctx, gone.ID))
	assert.NoError(t, r.Delete(ctx, 12345))
}

func TestItemRepository_ConcurrentAdds(t *testing.T) {
	r, _ := newItemRepo(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := r.Add(ctx, fmt.Sprintf("task-%02d", i)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent add failed: %v", err)
	}

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, n)

	titles := make(map[string]bool, n)
	for i, it := range all {
		titles[it.Title] = true
		if i > 0 {
			prev := all[i-1]
			// порядок по убыванию времени создания, при равенстве — по id
			assert.False(t, it.CreatedAt.After(prev.CreatedAt))
			if it.CreatedAt.Equal(prev.CreatedAt) {
				assert.Less(t, it.ID, prev.ID)
			}
		}
	}
	for i := 0; i < n; i++ {
		assert.True(t, titles[fmt.Sprintf("task-%02d", i)])
	}
}

func TestItemRepository_UserScoped(t *testing.T) {
	r, db := newItemRepo(t)
	ctx := context.Background()

	u := model.User{Email: "ann@example.com", Password: "hash"}
	require.NoError(t, db.Create(&u).Error)

	_, err := r.AddForUser(ctx, "mine", u.ID)
	require.NoError(t, err)
	_, err = r.Add(ctx, "nobody's")
	require.NoError(t, err)

	list, err := r.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	if assert.Len(t, list, 1) {
		assert.Equal(t, "mine", list[0].Title)
		if assert.NotNil(t, list[0].UserID) {
			assert.Equal(t, u.ID, *list[0].UserID)
		}
	}

	none, err := r.ListByUser(ctx, u.ID+100)
	require.NoError(t, err)
	assert.Empty(t, none)
}
