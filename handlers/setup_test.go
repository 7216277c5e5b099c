package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bnsmrk/haynkoo/database"
	"github.com/bnsmrk/haynkoo/models"
)

// เปิด sqlite in-memory แล้วชี้ database.DB ไปที่มัน
// จำกัด 1 connection ไม่งั้นแต่ละ connection ได้ :memory: คนละก้อน
func setupDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.YearLevel{},
		&models.Section{},
		&models.Subject{},
		&models.Student{},
		&models.Activity{},
		&models.Material{},
		&models.Question{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	database.DB = db
}

func newRequest(e *echo.Echo, method, path string, body any) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	return ctx, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return m
}

func itoa(n uint) string { return strconv.FormatUint(uint64(n), 10) }

func countRows(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	if err := database.DB.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

// ข้อมูลอ้างอิงมาตรฐานสำหรับหลายเทส:
// Grade 7 {Diamond{Math, Science}}, Grade 8 {Pearl{}}
type refFixture struct {
	G7, G8           models.YearLevel
	Diamond, Pearl   models.Section
	Math, Science    models.Subject
	StudentUser      models.User
	OtherStudentUser models.User
}

func seedRefData(t *testing.T) refFixture {
	t.Helper()
	f := refFixture{
		G7: models.YearLevel{YearLevel: "Grade 7"},
		G8: models.YearLevel{YearLevel: "Grade 8"},
	}
	for _, yl := range []*models.YearLevel{&f.G7, &f.G8} {
		if err := database.DB.Create(yl).Error; err != nil {
			t.Fatalf("seed year level: %v", err)
		}
	}

	f.Diamond = models.Section{SectionName: "Diamond", YearLevelID: f.G7.ID}
	f.Pearl = models.Section{SectionName: "Pearl", YearLevelID: f.G8.ID}
	for _, s := range []*models.Section{&f.Diamond, &f.Pearl} {
		if err := database.DB.Create(s).Error; err != nil {
			t.Fatalf("seed section: %v", err)
		}
	}

	f.Math = models.Subject{SubjectName: "Math", YearLevelID: f.G7.ID, SectionID: f.Diamond.ID}
	f.Science = models.Subject{SubjectName: "Science", YearLevelID: f.G7.ID, SectionID: f.Diamond.ID}
	for _, s := range []*models.Subject{&f.Math, &f.Science} {
		if err := database.DB.Create(s).Error; err != nil {
			t.Fatalf("seed subject: %v", err)
		}
	}

	f.StudentUser = models.User{Username: "juan", Password: "x", Role: "student", Name: "Juan Dela Cruz"}
	f.OtherStudentUser = models.User{Username: "maria", Password: "x", Role: "student", Name: "Maria Clara"}
	for _, u := range []*models.User{&f.StudentUser, &f.OtherStudentUser} {
		if err := database.DB.Create(u).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	return f
}
