package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID        string  `gorm:"type:uuid;primaryKey"`
	Title     string  `gorm:"not null"`
	Author    string  `gorm:"not null"`
	Genre     string  `gorm:"not null;index"`
	Year      float64 `gorm:"not null"`
	Rating    float64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID when the book is stored through gorm.
// The Mongo repository leaves ID empty and fills it from the inserted ObjectID.
func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}
