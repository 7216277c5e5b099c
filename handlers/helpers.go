package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bnsmrk/haynkoo/database"
)

// แปลง string -> uint; แปลงไม่ได้คืน 0
func parseUint(s string) uint {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

func mustID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

func isDateYYYYMMDD(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// เช็คว่ามี record ใน table ตาม id ไหม (ใช้เช็ค FK ก่อน insert)
func rowExists(table string, id uint) bool {
	if id == 0 {
		return false
	}
	var n int64
	if err := database.DB.Table(table).Where("id = ?", id).Count(&n).Error; err != nil {
		return false
	}
	return n > 0
}

// actorID อ่าน user id ของคนที่ล็อกอินจาก context (RequireAuth แนบไว้)
func actorID(c echo.Context) uint {
	id, _ := c.Get("user_id").(uint)
	return id
}
