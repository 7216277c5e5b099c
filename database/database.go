package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bnsmrk/haynkoo/config"
	"github.com/bnsmrk/haynkoo/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	// ----- AutoMigrate โครงสร้างทั้งหมดของเรา -----
	if err := DB.AutoMigrate(
		&models.User{},
		&models.YearLevel{},
		&models.Section{},
		&models.Subject{},
		&models.Student{}, // enrollment
		&models.Activity{},
		&models.Material{},
		&models.Question{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	// ----- ลบคอลัมน์ legacy: students.year_level / students.section -----
	// สมัยก่อนเก็บชื่อซ้ำกับ id ตอนนี้เก็บเฉพาะ id แล้ว resolve ชื่อที่ขอบระบบ
	for _, col := range []string{"year_level", "section"} {
		if DB.Migrator().HasColumn(&models.Student{}, col) {
			if err := DB.Migrator().DropColumn(&models.Student{}, col); err != nil {
				log.Printf("[migrate] warn: drop students.%s failed: %v", col, err)
			} else {
				log.Printf("[migrate] dropped legacy column students.%s", col)
			}
		}
	}
}
