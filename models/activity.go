package models

import "time"

type Activity struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	DateTime    string    `json:"date_time" gorm:"type:varchar(16);not null"` // "YYYY-MM-DD HH:MM"
	YearLevelID uint      `json:"year_level_id" gorm:"not null;index"`
	SectionID   uint      `json:"section_id" gorm:"not null;index"`
	SubjectID   uint      `json:"subject_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
