package models

import (
	"time"

	"gorm.io/datatypes"
)

type Question struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Type     string `json:"type" gorm:"size:20;not null"` // multiple-choice | true-false | checkboxes
	Question string `json:"question" gorm:"size:255;not null"`
	// ตัวเลือกเก็บเป็น JSON array ตามลำดับที่ส่งมา; true-false เก็บ NULL
	Options   datatypes.JSON `json:"options,omitempty"`
	AnswerKey string         `json:"answer_key" gorm:"size:255;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
