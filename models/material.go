package models

import "time"

type Material struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	TeacherID    uint      `json:"teacher_id" gorm:"not null;index"` // FK -> users.id (ผู้อัปโหลด)
	YearLevelID  uint      `json:"year_level_id" gorm:"not null;index"`
	SectionID    uint      `json:"section_id" gorm:"not null;index"`
	SubjectID    uint      `json:"subject_id" gorm:"not null;index"`
	MaterialType string    `json:"material_type" gorm:"size:30;not null"` // learning_material | lesson_plan
	FilePath     string    `json:"file_path" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
