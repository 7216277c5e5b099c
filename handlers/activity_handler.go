package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/bnsmrk/haynkoo/database"
	"github.com/bnsmrk/haynkoo/models"
)

type ActivityHandler struct{}

func NewActivityHandler() *ActivityHandler { return &ActivityHandler{} }

var reHHMM = regexp.MustCompile(`^\d{2}:\d{2}$`)

type activityPayload struct {
	Title       string `json:"title"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	YearLevelID uint   `json:"year_level_id"`
	SectionID   uint   `json:"section_id"`
	SubjectID   uint   `json:"subject_id"`
}

func (p *activityPayload) normalize() {
	p.Title = strings.Join(strings.Fields(p.Title), " ")
	p.Date = strings.TrimSpace(p.Date)
	p.Time = strings.TrimSpace(p.Time)
}

// ฝั่งนี้รับ id ที่ resolve มาแล้วจากฟอร์ม — เช็คแค่ว่ามีจริง
// ไม่เช็คว่า section/subject สังกัดระดับชั้นเดียวกัน
func validateActivity(p *activityPayload) map[string]string {
	errs := map[string]string{}
	if p.Title == "" {
		errs["title"] = "กรุณากรอกชื่อกิจกรรม"
	} else if len(p.Title) > 255 {
		errs["title"] = "ชื่อกิจกรรมต้องไม่เกิน 255 ตัวอักษร"
	}
	if !isDateYYYYMMDD(p.Date) {
		errs["date"] = "ต้องเป็น YYYY-MM-DD"
	}
	if !reHHMM.MatchString(p.Time) {
		errs["time"] = "รูปแบบเวลา HH:MM"
	}
	if !rowExists("year_levels", p.YearLevelID) {
		errs["year_level_id"] = "ไม่พบระดับชั้นที่เลือก"
	}
	if !rowExists("sections", p.SectionID) {
		errs["section_id"] = "ไม่พบห้องเรียนที่เลือก"
	}
	if !rowExists("subjects", p.SubjectID) {
		errs["subject_id"] = "ไม่พบวิชาที่เลือก"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /activities
func (h *ActivityHandler) List(c echo.Context) error {
	var items []models.Activity
	if err := database.DB.Order("id DESC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}

// GET /activities/:id
func (h *ActivityHandler) Get(c echo.Context) error {
	if _, err := mustID(c); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	var a models.Activity
	if err := database.DB.First(&a, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, a)
}

// POST /teacher/activities
func (h *ActivityHandler) Create(c echo.Context) error {
	var p activityPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateActivity(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	a := models.Activity{
		Title:       p.Title,
		DateTime:    p.Date + " " + p.Time, // เก็บรวมเป็นช่องเดียวตามฟอร์ม
		YearLevelID: p.YearLevelID,
		SectionID:   p.SectionID,
		SubjectID:   p.SubjectID,
	}
	if err := database.DB.Create(&a).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": a.ID})
}

// PUT /teacher/activities/:id
func (h *ActivityHandler) Update(c echo.Context) error {
	if _, err := mustID(c); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	var a models.Activity
	if err := database.DB.First(&a, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var p activityPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateActivity(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	a.Title = p.Title
	a.DateTime = p.Date + " " + p.Time
	a.YearLevelID = p.YearLevelID
	a.SectionID = p.SectionID
	a.SubjectID = p.SubjectID
	if err := database.DB.Save(&a).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, a)
}

// DELETE /teacher/activities/:id
func (h *ActivityHandler) Delete(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	tx := database.DB.Delete(&models.Activity{}, "id = ?", id)
	if tx.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if tx.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.NoContent(http.StatusNoContent)
}
