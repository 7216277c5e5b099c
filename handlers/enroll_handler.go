package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/bnsmrk/haynkoo/database"
	"github.com/bnsmrk/haynkoo/models"
)

// EnrollHandler รับชื่อระดับชั้น/ห้องเรียน/วิชาจากฟอร์ม
// resolve เป็น id ก่อน insert — ไม่มีการเก็บชื่อซ้ำกับ id ในตาราง students
type EnrollHandler struct{}

func NewEnrollHandler() *EnrollHandler { return &EnrollHandler{} }

type enrollPayload struct {
	UserID    uint   `json:"user_id"`
	YearLevel string `json:"year_level"`
	Section   string `json:"section"`
	Subject   string `json:"subject"` // optional
}

func (p *enrollPayload) normalize() {
	p.YearLevel = strings.TrimSpace(p.YearLevel)
	p.Section = strings.TrimSpace(p.Section)
	p.Subject = strings.TrimSpace(p.Subject)
}

func validateEnroll(p *enrollPayload) map[string]string {
	errs := map[string]string{}
	if p.UserID == 0 {
		errs["user_id"] = "กรุณาเลือกนักเรียน"
	}
	if p.YearLevel == "" {
		errs["year_level"] = "กรุณาเลือกระดับชั้น"
	} else if len(p.YearLevel) > 255 {
		errs["year_level"] = "ชื่อระดับชั้นต้องไม่เกิน 255 ตัวอักษร"
	}
	if p.Section == "" {
		errs["section"] = "กรุณาเลือกห้องเรียน"
	} else if len(p.Section) > 255 {
		errs["section"] = "ชื่อห้องเรียนต้องไม่เกิน 255 ตัวอักษร"
	}
	if len(p.Subject) > 255 {
		errs["subject"] = "ชื่อวิชาต้องไม่เกิน 255 ตัวอักษร"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// resolveEnroll แปลงชื่อที่กรอกมาเป็น id ตามลำดับชั้น
// year level -> section (ต้องอยู่ใต้ year level นั้น) -> subject (ถ้าส่งมา)
// ชื่อห้องตรงแต่อยู่คนละระดับชั้นถือว่าไม่พบ — ห้ามคืนห้องผิดเด็ดขาด
func resolveEnroll(tx *gorm.DB, p *enrollPayload) (*models.Student, string) {
	var user models.User
	if err := tx.First(&user, "id = ?", p.UserID).Error; err != nil {
		return nil, "USER_NOT_FOUND"
	}

	var yl models.YearLevel
	if err := tx.First(&yl, "year_level = ?", p.YearLevel).Error; err != nil {
		return nil, "YEAR_LEVEL_NOT_FOUND"
	}

	var sec models.Section
	if err := tx.First(&sec, "section_name = ? AND year_level_id = ?", p.Section, yl.ID).Error; err != nil {
		return nil, "SECTION_NOT_FOUND"
	}

	rec := &models.Student{
		UserID:      p.UserID,
		YearLevelID: yl.ID,
		SectionID:   sec.ID,
	}
	if p.Subject != "" {
		var sub models.Subject
		if err := tx.First(&sub, "subject_name = ? AND section_id = ? AND year_level_id = ?",
			p.Subject, sec.ID, yl.ID).Error; err != nil {
			return nil, "SUBJECT_NOT_FOUND"
		}
		rec.SubjectID = &sub.ID
	}
	return rec, ""
}

var refMessages = map[string]string{
	"USER_NOT_FOUND":       "ไม่พบนักเรียนที่เลือก",
	"YEAR_LEVEL_NOT_FOUND": "ไม่พบระดับชั้นที่เลือก",
	"SECTION_NOT_FOUND":    "ไม่พบห้องเรียนในระดับชั้นที่เลือก",
	"SUBJECT_NOT_FOUND":    "ไม่พบวิชาในห้องเรียนที่เลือก",
}

func refNotFound(c echo.Context, code string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": code, "message": refMessages[code]})
}

/* ====================== Handlers ====================== */

type enrollmentRow struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"user_id"`
	UserName    string  `json:"user_name"`
	YearLevelID uint    `json:"year_level_id"`
	YearLevel   string  `json:"year_level"`
	SectionID   uint    `json:"section_id"`
	SectionName string  `json:"section_name"`
	SubjectID   *uint   `json:"subject_id,omitempty"`
	SubjectName *string `json:"subject_name,omitempty"`
}

func enrollmentQuery() *gorm.DB {
	return database.DB.Table("students").
		Select(`students.id, students.user_id, users.name AS user_name,
			students.year_level_id, year_levels.year_level,
			students.section_id, sections.section_name,
			students.subject_id, subjects.subject_name`).
		Joins("JOIN users ON users.id = students.user_id").
		Joins("JOIN year_levels ON year_levels.id = students.year_level_id").
		Joins("JOIN sections ON sections.id = students.section_id").
		Joins("LEFT JOIN subjects ON subjects.id = students.subject_id")
}

// GET /enrollments (join ชื่อกลับมาให้หน้า list ใช้เลย)
func (h *EnrollHandler) List(c echo.Context) error {
	var rows []enrollmentRow
	if err := enrollmentQuery().Order("students.id DESC").Scan(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /enrollments/:id
func (h *EnrollHandler) Get(c echo.Context) error {
	if _, err := mustID(c); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	var row enrollmentRow
	tx := enrollmentQuery().Where("students.id = ?", c.Param("id")).Scan(&row)
	if tx.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	if tx.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, row)
}

// POST /admin/enrollments
// resolve + insert อยู่ใน transaction เดียว — ชื่อไหน resolve ไม่ได้
// ต้องไม่เหลือเรคคอร์ดค้างครึ่งทาง
func (h *EnrollHandler) Create(c echo.Context) error {
	var p enrollPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateEnroll(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	var rec *models.Student
	var refErr string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var code string
		rec, code = resolveEnroll(tx, &p)
		if code != "" {
			refErr = code
			return gorm.ErrRecordNotFound // rollback
		}
		return tx.Create(rec).Error
	})
	if refErr != "" {
		return refNotFound(c, refErr)
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": rec.ID})
}

// PUT /admin/enrollments/:id
// รับ payload แบบเดียวกับ create และ resolve ชื่อใหม่ทุกครั้ง
// (ไม่รับ id ดิบจาก client ฝั่ง update)
func (h *EnrollHandler) Update(c echo.Context) error {
	if _, err := mustID(c); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	var existing models.Student
	if err := database.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}

	var p enrollPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if p.UserID == 0 {
		p.UserID = existing.UserID // ฟอร์มแก้ไขไม่เปลี่ยนตัวนักเรียน
	}
	if errs := validateEnroll(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	var refErr string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		rec, code := resolveEnroll(tx, &p)
		if code != "" {
			refErr = code
			return gorm.ErrRecordNotFound
		}
		existing.UserID = rec.UserID
		existing.YearLevelID = rec.YearLevelID
		existing.SectionID = rec.SectionID
		existing.SubjectID = rec.SubjectID
		return tx.Save(&existing).Error
	})
	if refErr != "" {
		return refNotFound(c, refErr)
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, existing)
}

// DELETE /admin/enrollments/:id
func (h *EnrollHandler) Delete(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	tx := database.DB.Delete(&models.Student{}, "id = ?", id)
	if tx.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if tx.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.NoContent(http.StatusNoContent)
}
