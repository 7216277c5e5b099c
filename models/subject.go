package models

import "time"

// Subject ผูกกับ Section และต้องมี year_level_id ตรงกับ Section ที่สังกัด
// (เช็คใน handler ตอน create/update)
type Subject struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SubjectName string    `json:"subject_name" gorm:"size:255;not null"`
	YearLevelID uint      `json:"year_level_id" gorm:"not null;index"`
	SectionID   uint      `json:"section_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
