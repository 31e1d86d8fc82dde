package model

import (
	"time"

	"gorm.io/gorm"
)

// User — владелец элементов списка. Password содержит только bcrypt-хеш.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Email    string `gorm:"uniqueIndex;size:191;not null"`
	Password string `gorm:"not null"`

	// Связи
	Items []Item `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
