package models

import "time"

// Student = เรคคอร์ดการลงทะเบียนเรียน (enrollment)
// เก็บเฉพาะ id ที่ resolve แล้ว — ชื่อระดับชั้น/ห้องเรียน resolve ที่ขอบระบบ
// แล้ว join กลับตอนอ่าน
type Student struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	YearLevelID uint      `json:"year_level_id" gorm:"not null;index"`
	SectionID   uint      `json:"section_id" gorm:"not null;index"`
	SubjectID   *uint     `json:"subject_id,omitempty" gorm:"index"` // optional
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
