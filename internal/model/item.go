package model

import (
	"time"

	"gorm.io/gorm"
)

// TitleMaxLen — максимальная длина заголовка до сжатия.
const TitleMaxLen = 255

// Item — серверная модель элемента списка дел.
// Title хранится так, как его передал репозиторий: ORM-вариант кладёт туда
// сжатую base64-строку, raw SQL вариант — исходный текст.
type Item struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Title  string `gorm:"type:text;not null"`
	UserID *int64 `gorm:"index"` // ссылка на users.id, может отсутствовать

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
