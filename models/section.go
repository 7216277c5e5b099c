package models

import "time"

// Section อยู่ใต้ YearLevel เสมอ (หนึ่งห้องสังกัดระดับชั้นเดียว)
// กันสร้างชื่อซ้ำในระดับชั้นเดียวกันด้วย unique (section_name, year_level_id)
type Section struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SectionName string    `json:"section_name" gorm:"size:255;not null;uniqueIndex:idx_sections_name_year"`
	YearLevelID uint      `json:"year_level_id" gorm:"not null;uniqueIndex:idx_sections_name_year"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
