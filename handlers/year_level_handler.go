package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/bnsmrk/haynkoo/database"
	"github.com/bnsmrk/haynkoo/models"
)

type YearLevelHandler struct{}

func NewYearLevelHandler() *YearLevelHandler { return &YearLevelHandler{} }

type yearLevelPayload struct {
	YearLevel string `json:"year_level"`
}

func (p *yearLevelPayload) normalize() {
	p.YearLevel = strings.Join(strings.Fields(p.YearLevel), " ")
}

func validateYearLevel(p *yearLevelPayload) map[string]string {
	errs := map[string]string{}
	if p.YearLevel == "" {
		errs["year_level"] = "กรุณากรอกชื่อระดับชั้น"
	} else if len(p.YearLevel) > 255 {
		errs["year_level"] = "ชื่อระดับชั้นต้องไม่เกิน 255 ตัวอักษร"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /year-levels
func (h *YearLevelHandler) List(c echo.Context) error {
	var items []models.YearLevel
	if err := database.DB.Order("id ASC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}

// POST /admin/year-levels
func (h *YearLevelHandler) Create(c echo.Context) error {
	var p yearLevelPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateYearLevel(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	yl := models.YearLevel{YearLevel: p.YearLevel}
	if err := database.DB.Create(&yl).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, yl)
}

// PUT /admin/year-levels/:id
func (h *YearLevelHandler) Update(c echo.Context) error {
	if _, err := mustID(c); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	var yl models.YearLevel
	if err := database.DB.First(&yl, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	var p yearLevelPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.normalize()
	if errs := validateYearLevel(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}

	yl.YearLevel = p.YearLevel
	if err := database.DB.Save(&yl).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, yl)
}

// DELETE /admin/year-levels/:id
func (h *YearLevelHandler) Delete(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	tx := database.DB.Delete(&models.YearLevel{}, "id = ?", id)
	if tx.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	if tx.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	return c.NoContent(http.StatusNoContent)
}
