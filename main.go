package main

import (
	"log"

	"fiber/khayalethu/app/mailer"
	"fiber/khayalethu/app/storage"
	"fiber/khayalethu/config"
	"fiber/khayalethu/db"
	"fiber/khayalethu/route"
)

func main() {
	config.LoadEnv()
	config.Logger()

	db.ConnectDB()

	app := config.NewApp()

	store := storage.NewDiskStore(config.Env.UploadDir)

	var notifier mailer.Notifier
	if config.MailConfigured() {
		notifier = mailer.NewSMTPNotifier(mailer.Config{
			Host:       config.Env.SMTPHost,
			Port:       config.Env.SMTPPort,
			User:       config.Env.EmailUser,
			Password:   config.Env.EmailPass,
			FromName:   config.Env.FromName,
			AdminEmail: config.Env.AdminEmail,
		})
	} else {
		log.Println("Warning: email notification not configured - missing EMAIL_USER or EMAIL_PASS")
		notifier = mailer.LogNotifier{}
	}

	route.SetupRoutes(app, db.GetDB(), store, notifier)

	log.Fatal(app.Listen(":" + config.Env.AppPort))
}
