package models

import "time"

type YearLevel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	YearLevel string    `json:"year_level" gorm:"size:255;uniqueIndex;not null"` // เช่น "Grade 7"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
