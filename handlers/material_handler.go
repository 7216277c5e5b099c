package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bnsmrk/haynkoo/database"
	"github.com/bnsmrk/haynkoo/models"
	"github.com/bnsmrk/haynkoo/storage"
)

type MaterialHandler struct {
	Store *storage.Local
}

func NewMaterialHandler(store *storage.Local) *MaterialHandler {
	return &MaterialHandler{Store: store}
}

var validMaterialTypes = map[string]bool{
	"learning_material": true,
	"lesson_plan":       true,
}

var validMaterialExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".ppt": true, ".pptx": true,
}

// GET /materials
func (h *MaterialHandler) List(c echo.Context) error {
	var items []models.Material
	if err := database.DB.Order("id DESC").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_QUERY_FAILED"})
	}
	return c.JSON(http.StatusOK, items)
}

// POST /teacher/materials  (multipart form)
// teacher_id มาจากคนที่ล็อกอิน ส่งเข้า create ตรงๆ ไม่อ่าน global
func (h *MaterialHandler) Create(c echo.Context) error {
	teacherID := actorID(c)
	if teacherID == 0 {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "INVALID_TOKEN"})
	}

	yearLevelID := parseUint(c.FormValue("year_level_id"))
	sectionID := parseUint(c.FormValue("section_id"))
	subjectID := parseUint(c.FormValue("subject_id"))
	materialType := strings.TrimSpace(c.FormValue("material_type"))

	fields := map[string]string{}
	if !rowExists("year_levels", yearLevelID) {
		fields["year_level_id"] = "ไม่พบระดับชั้นที่เลือก"
	}
	if !rowExists("sections", sectionID) {
		fields["section_id"] = "ไม่พบห้องเรียนที่เลือก"
	}
	if !rowExists("subjects", subjectID) {
		fields["subject_id"] = "ไม่พบวิชาที่เลือก"
	}
	if !validMaterialTypes[materialType] {
		fields["material_type"] = "ต้องเป็น learning_material หรือ lesson_plan"
	}

	fh, err := c.FormFile("file")
	if err != nil {
		fields["file"] = "กรุณาแนบไฟล์"
	} else if !validMaterialExts[strings.ToLower(filepath.Ext(fh.Filename))] {
		fields["file"] = "รองรับเฉพาะ pdf/doc/docx/ppt/pptx"
	}
	if len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": fields})
	}

	path, err := h.Store.SaveUpload(fh, "materials")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "FILE_SAVE_FAILED"})
	}

	m := models.Material{
		TeacherID:    teacherID,
		YearLevelID:  yearLevelID,
		SectionID:    sectionID,
		SubjectID:    subjectID,
		MaterialType: materialType,
		FilePath:     path,
	}
	if err := database.DB.Create(&m).Error; err != nil {
		// เก็บเรคคอร์ดไม่ได้ก็อย่าทิ้งไฟล์ค้าง
		_ = h.Store.Remove(path)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, m)
}

// DELETE /admin/materials/:id
func (h *MaterialHandler) Delete(c echo.Context) error {
	id, err := mustID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_ID"})
	}
	var m models.Material
	if err := database.DB.First(&m, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "NOT_FOUND"})
	}
	if err := database.DB.Delete(&m).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "DB_DELETE_FAILED"})
	}
	_ = h.Store.Remove(m.FilePath)
	return c.NoContent(http.StatusNoContent)
}
