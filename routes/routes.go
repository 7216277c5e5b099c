package routes

import (
	"os"

	"github.com/labstack/echo/v4"

	"github.com/bnsmrk/haynkoo/handlers"
	"github.com/bnsmrk/haynkoo/middlewares"
	"github.com/bnsmrk/haynkoo/storage"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler()
	yl := handlers.NewYearLevelHandler()
	sec := handlers.NewSectionHandler()
	sub := handlers.NewSubjectHandler()
	enr := handlers.NewEnrollHandler()
	act := handlers.NewActivityHandler()
	qst := handlers.NewQuestionHandler()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	mat := handlers.NewMaterialHandler(storage.NewLocal(uploadDir))

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.POST("/auth/login", auth.Login)

	// อ่านอย่างเดียว เปิด public สำหรับ dropdown/หน้า list
	e.GET("/year-levels", yl.List)
	e.GET("/sections", sec.List)
	e.GET("/subjects", sub.List)
	e.GET("/enrollments", enr.List)
	e.GET("/enrollments/:id", enr.Get)
	e.GET("/activities", act.List)
	e.GET("/activities/:id", act.Get)
	e.GET("/materials", mat.List)
	e.GET("/questions", qst.List)

	// ===== Protected Groups =====
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret"
	}
	authMW := middlewares.RequireAuth(secret)

	e.GET("/auth/me", auth.Me, authMW)

	// ===== Admin routes (ข้อมูลอ้างอิง + ลงทะเบียนเรียน) =====
	admin := e.Group("/admin", authMW, middlewares.RequireRole("admin"))

	admin.POST("/year-levels", yl.Create)
	admin.PUT("/year-levels/:id", yl.Update)
	admin.DELETE("/year-levels/:id", yl.Delete)

	admin.POST("/sections", sec.Create)
	admin.PUT("/sections/:id", sec.Update)
	admin.DELETE("/sections/:id", sec.Delete)

	admin.POST("/subjects", sub.Create)
	admin.PUT("/subjects/:id", sub.Update)
	admin.DELETE("/subjects/:id", sub.Delete)

	// ลงทะเบียนเรียน (รับชื่อจากฟอร์ม → resolve เป็น id ก่อนเก็บ)
	admin.POST("/enrollments", enr.Create)
	admin.PUT("/enrollments/:id", enr.Update)
	admin.DELETE("/enrollments/:id", enr.Delete)

	admin.DELETE("/materials/:id", mat.Delete)

	// ===== Teacher routes (สื่อการสอน / กิจกรรม / คลังข้อสอบ) =====
	teacher := e.Group("/teacher", authMW, middlewares.RequireRole("teacher", "admin"))

	teacher.POST("/materials", mat.Create)

	teacher.POST("/activities", act.Create)
	teacher.PUT("/activities/:id", act.Update)
	teacher.DELETE("/activities/:id", act.Delete)

	teacher.POST("/questions", qst.Create)
}
