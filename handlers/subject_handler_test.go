package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/bnsmrk/haynkoo/database"
	"github.com/bnsmrk/haynkoo/models"
)

func TestSubjectCreateOK(t *testing.T) {
	setupDB(t)
	f := seedRefData(t)
	e := echo.New()
	h := NewSubjectHandler()

	ctx, rec := newRequest(e, http.MethodPost, "/admin/subjects", map[string]any{
		"subject_name":  "English",
		"year_level_id": f.G7.ID,
		"section_id":    f.Diamond.ID,
	})
	assert.NoError(t, h.Create(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

// section มีจริงแต่สังกัดระดับชั้นอื่น ต้องโดนตีกลับ ไม่ใช่บันทึกข้อมูลขัดกัน
func TestSubjectCreateSectionMismatch(t *testing.T) {
	setupDB(t)
	f := seedRefData(t)
	e := echo.New()
	h := NewSubjectHandler()

	// Pearl อยู่ใต้ Grade 8 ไม่ใช่ Grade 7
	ctx, rec := newRequest(e, http.MethodPost, "/admin/subjects", map[string]any{
		"subject_name":  "English",
		"year_level_id": f.G7.ID,
		"section_id":    f.Pearl.ID,
	})
	assert.NoError(t, h.Create(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SECTION_MISMATCH", decodeBody(t, rec)["error"])
	// seed มี 2 วิชา ต้องไม่เพิ่ม
	assert.EqualValues(t, 2, countRows(t, &models.Subject{}))
}

func TestSubjectCreateSectionMissing(t *testing.T) {
	setupDB(t)
	f := seedRefData(t)
	e := echo.New()
	h := NewSubjectHandler()

	ctx, rec := newRequest(e, http.MethodPost, "/admin/subjects", map[string]any{
		"subject_name":  "English",
		"year_level_id": f.G7.ID,
		"section_id":    999,
	})
	assert.NoError(t, h.Create(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "SECTION_NOT_FOUND", decodeBody(t, rec)["error"])
}

func TestSectionCreateUnknownYearLevel(t *testing.T) {
	setupDB(t)
	seedRefData(t)
	e := echo.New()
	h := NewSectionHandler()

	ctx, rec := newRequest(e, http.MethodPost, "/admin/sections", map[string]any{
		"section_name":  "Ruby",
		"year_level_id": 999,
	})
	assert.NoError(t, h.Create(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body["error"])
	assert.Contains(t, body["fields"], "year_level_id")
}

func TestYearLevelCRUD(t *testing.T) {
	setupDB(t)
	e := echo.New()
	h := NewYearLevelHandler()

	ctx, rec := newRequest(e, http.MethodPost, "/admin/year-levels", map[string]any{
		"year_level": "Grade 9",
	})
	assert.NoError(t, h.Create(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)

	ctx, rec = newRequest(e, http.MethodPut, "/admin/year-levels/1", map[string]any{
		"year_level": "Grade 10",
	})
	ctx.SetParamNames("id")
	ctx.SetParamValues("1")
	assert.NoError(t, h.Update(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var yl models.YearLevel
	assert.NoError(t, database.DB.First(&yl, "id = ?", 1).Error)
	assert.Equal(t, "Grade 10", yl.YearLevel)

	ctx, rec = newRequest(e, http.MethodDelete, "/admin/year-levels/1", nil)
	ctx.SetParamNames("id")
	ctx.SetParamValues("1")
	assert.NoError(t, h.Delete(ctx))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.EqualValues(t, 0, countRows(t, &models.YearLevel{}))
}
