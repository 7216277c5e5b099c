package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/bnsmrk/haynkoo/database"
	"github.com/bnsmrk/haynkoo/models"
)

type SubjectHandler struct{}

func NewSubjectHandler() *SubjectHandler { return &SubjectHandler{} }

type subjectPayload struct {
	SubjectName string `json:"subject_name"`
	YearLevelID uint   `json:"year_level_id"`
	SectionID   uint   `json:"section_id"`
}

func (p *subjectPayload) normalize() {
	p.SubjectName = strings.Join(strings.Fields(p.SubjectName), " ")
}

func validateSubject(p *subjectPayload) map[string]string {
	errs := map[string]string{}
	if p.SubjectName == "" {
		errs["subject_name"] = "กรุณากรอกชื่อวิชา"
	} else if len(p.SubjectName) > 255 {
		errs["subject_name"] = "ชื่อวิชาต้องไม่เกิน 255 ตัวอักษร"
	}
	if p.YearLevelID == 0 {
		errs["year_level_id"] = "กรุณาเลือกระดับชั้น"
	} else if !rowExists("year_levels", p.YearLevelID) {
		errs["year_level_id"] = "ไม่พบระดับชั้นที่เลือก"
	}
	if p.SectionID == 0 {
		errs["section_id"] = "กรุณาเลือกห้องเรียน"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// เช็คว่า section มีจริงและสังกัดระดับชั้นตาม payload
// ห้องชื่อถูกแต่อยู่คนละระดับชั้น = SECTION_MISMATCH ไม่ใช่ปล่อยผ่าน
func checkSectionOwnership(sectionID, yearLevelID uint) (string, bool) {
	var sec models.Section
	if err := database.DB.First(&sec, "id = ?", sectionID).Error; err != nil {
		return "SECTION_NOT_FOUND", false
	}
	if sec.YearLevelID != yearLevelID {
		return "SECTION_MISMATCH", false
	}
	return "", true
}

// GET /subjects?section_id=
func (h *SubjectHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Subject{})
	if secID := parseUint(c.QueryParam("section_id")); secID > 0 {
		tx = tx.Where("section_id = ?", secID)
	}
	var items []models.Subject
	if err := tx.Order("id ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}

// POST /admin/subjects
func (h *SubjectHandler) Create(c echo.Context) error {
	var p subjectPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateSubject(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	if code, ok := checkSectionOwnership(p.SectionID, p.YearLevelID); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": code})
	}

	s := models.Subject{SubjectName: p.SubjectName, YearLevelID: p.YearLevelID, SectionID: p.SectionID}
	if err := database.DB.Create(&s).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

// PUT /admin/subjects/:id
func (h *SubjectHandler) Update(c echo.Context) error {
	if _, err := mustID(c); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	var s models.Subject
	if err := database.DB.First(&s, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var p subjectPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateSubject(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	if code, ok := checkSectionOwnership(p.SectionID, p.YearLevelID); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": code})
	}

	s.SubjectName = p.SubjectName
	s.YearLevelID = p.YearLevelID
	s.SectionID = p.SectionID
	if err := database.DB.Save(&s).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

// DELETE /admin/subjects/:id
func (h *SubjectHandler) Delete(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	tx := database.DB.Delete(&models.Subject{}, "id = ?", id)
	if tx.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if tx.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.NoContent(http.StatusNoContent)
}
