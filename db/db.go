package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fiber/khayalethu/app/model"
	"fiber/khayalethu/config"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := config.Env.DBDSN

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}

	if err := DB.AutoMigrate(
		&model.Application{},
		&model.AdminUser{},
	); err != nil {
		log.Fatal("Auto migrate failed:", err)
	}

	log.Println("Connected to PostgreSQL successfully")
}

func GetDB() *gorm.DB {
	return DB
}
