package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/bnsmrk/haynkoo/database"
	"github.com/bnsmrk/haynkoo/models"
)

type QuestionHandler struct{}

func NewQuestionHandler() *QuestionHandler { return &QuestionHandler{} }

var validQuestionTypes = map[string]bool{
	"multiple-choice": true,
	"true-false":      true,
	"checkboxes":      true,
}

type questionEntry struct {
	Type      string   `json:"type"`
	Question  string   `json:"question"`
	Options   []string `json:"options"`
	AnswerKey string   `json:"answerKey"`
}

type questionBatchPayload struct {
	Questions []questionEntry `json:"questions"`
}

// ตรวจทั้ง batch ก่อน — เจอข้อเสียข้อเดียวตีกลับทั้งชุด ยังไม่ insert อะไรเลย
// answerKey เป็น string เสมอ (checkboxes ฝั่งส่งต้อง encode หลายคำตอบมาเอง
// เราไม่ parse ให้)
func validateQuestionBatch(p *questionBatchPayload) map[string]string {
	errs := map[string]string{}
	if len(p.Questions) == 0 {
		errs["questions"] = "ต้องมีคำถามอย่างน้อย 1 ข้อ"
		return errs
	}
	for i := range p.Questions {
		q := &p.Questions[i]
		q.Type = strings.TrimSpace(q.Type)
		q.Question = strings.TrimSpace(q.Question)
		q.AnswerKey = strings.TrimSpace(q.AnswerKey)

		key := func(f string) string { return fmt.Sprintf("questions.%d.%s", i, f) }
		if !validQuestionTypes[q.Type] {
			errs[key("type")] = "ต้องเป็น multiple-choice / true-false / checkboxes"
		}
		if q.Question == "" {
			errs[key("question")] = "กรุณากรอกคำถาม"
		} else if len(q.Question) > 255 {
			errs[key("question")] = "คำถามต้องไม่เกิน 255 ตัวอักษร"
		}
		if q.AnswerKey == "" {
			errs[key("answerKey")] = "กรุณากรอกเฉลย"
		}
		switch q.Type {
		case "multiple-choice", "checkboxes":
			if len(q.Options) == 0 {
				errs[key("options")] = "กรุณากรอกตัวเลือก"
			}
			for j, opt := range q.Options {
				if len(opt) > 255 {
					errs[fmt.Sprintf("questions.%d.options.%d", i, j)] = "ตัวเลือกต้องไม่เกิน 255 ตัวอักษร"
				}
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /questions
func (h *QuestionHandler) List(c echo.Context) error {
	var items []models.Question
	if err := database.DB.Order("id ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}

// POST /teacher/questions
// insert ทั้งชุดใน transaction เดียว — สำเร็จหมดหรือไม่เข้าเลย
func (h *QuestionHandler) Create(c echo.Context) error {
	var p questionBatchPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	if errs := validateQuestionBatch(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	rows := make([]models.Question, 0, len(p.Questions))
	for _, q := range p.Questions {
		rec := models.Question{
			Type:      q.Type,
			Question:  q.Question,
			AnswerKey: q.AnswerKey,
		}
		if q.Type != "true-false" {
			// เก็บตัวเลือกตามลำดับที่ส่งมา; true-false ปล่อย NULL
			b, err := json.Marshal(q.Options)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
			}
			rec.Options = b
		}
		rows = append(rows, rec)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Questions added successfully!",
		"count":   len(rows),
	})
}
