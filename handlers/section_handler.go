package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/bnsmrk/haynkoo/database"
	"github.com/bnsmrk/haynkoo/models"
)

type SectionHandler struct{}

func NewSectionHandler() *SectionHandler { return &SectionHandler{} }

type sectionPayload struct {
	SectionName string `json:"section_name"`
	YearLevelID uint   `json:"year_level_id"`
}

func (p *sectionPayload) normalize() {
	p.SectionName = strings.Join(strings.Fields(p.SectionName), " ")
}

func validateSection(p *sectionPayload) map[string]string {
	errs := map[string]string{}
	if p.SectionName == "" {
		errs["section_name"] = "กรุณากรอกชื่อห้องเรียน"
	} else if len(p.SectionName) > 255 {
		errs["section_name"] = "ชื่อห้องเรียนต้องไม่เกิน 255 ตัวอักษร"
	}
	if p.YearLevelID == 0 {
		errs["year_level_id"] = "กรุณาเลือกระดับชั้น"
	} else if !rowExists("year_levels", p.YearLevelID) {
		errs["year_level_id"] = "ไม่พบระดับชั้นที่เลือก"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /sections?year_level_id=
func (h *SectionHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Section{})
	if ylID := parseUint(c.QueryParam("year_level_id")); ylID > 0 {
		tx = tx.Where("year_level_id = ?", ylID)
	}
	var items []models.Section
	if err := tx.Order("id ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}

// POST /admin/sections
func (h *SectionHandler) Create(c echo.Context) error {
	var p sectionPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateSection(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	s := models.Section{SectionName: p.SectionName, YearLevelID: p.YearLevelID}
	if err := database.DB.Create(&s).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

// PUT /admin/sections/:id
func (h *SectionHandler) Update(c echo.Context) error {
	if _, err := mustID(c); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	var s models.Section
	if err := database.DB.First(&s, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var p sectionPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateSection(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	s.SectionName = p.SectionName
	s.YearLevelID = p.YearLevelID
	if err := database.DB.Save(&s).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

// DELETE /admin/sections/:id
func (h *SectionHandler) Delete(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	tx := database.DB.Delete(&models.Section{}, "id = ?", id)
	if tx.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if tx.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.NoContent(http.StatusNoContent)
}
