package model

// Entities перечисляет все модели, известные серверу.
// Порядок важен для миграций: users создаётся раньше items.
func Entities() []any {
	return []any{&User{}, &Item{}}
}
