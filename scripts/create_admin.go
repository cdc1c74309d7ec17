// scripts/create_admin.go
//
// One-shot bootstrap for the dashboard admin account:
//
//	go run ./scripts -username admin -password <secret> -email ops@example.com
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"fiber/khayalethu/app/model"
	"fiber/khayalethu/config"
	"fiber/khayalethu/db"
	"fiber/khayalethu/helper"
)

func main() {
	username := flag.String("username", "admin", "admin login name")
	password := flag.String("password", "", "admin password (required)")
	email := flag.String("email", "", "admin contact email")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	config.LoadEnv()
	db.ConnectDB()

	hashed, err := helper.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var existing model.AdminUser
	err = db.GetDB().Where("username = ?", *username).First(&existing).Error
	if err == nil {
		fmt.Println("Admin user already exists with username:", *username)
		os.Exit(0)
	}
	if err != gorm.ErrRecordNotFound {
		log.Fatalf("failed to query admin users: %v", err)
	}

	u := model.AdminUser{
		Username:     *username,
		Email:        *email,
		PasswordHash: hashed,
	}
	if err := db.GetDB().Create(&u).Error; err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("Admin user created successfully!")
	fmt.Println("   Username:", *username)
}
