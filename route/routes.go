package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fiber/khayalethu/app/mailer"
	"fiber/khayalethu/app/repo"
	"fiber/khayalethu/app/service"
	"fiber/khayalethu/app/storage"
	"fiber/khayalethu/config"
	"fiber/khayalethu/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, store storage.FileStore, notifier mailer.Notifier) {
	appRepo := repo.NewApplicationRepo(db)
	adminRepo := repo.NewAdminRepo(db)

	applications := service.NewApplicationService(appRepo, store, notifier)
	export := service.NewExportService(appRepo)
	auth := service.NewAuthService(adminRepo)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Student Accommodation API is running")
	})

	// Stored documents are linked from the dashboard by their saved path.
	app.Static("/uploads", config.Env.UploadDir)

	api := app.Group("/api")
	api.Post("/apply", applications.Submit)
	api.Post("/auth/login", auth.Login)

	admin := api.Group("", middleware.AdminOnly())
	admin.Get("/applications", applications.List)
	admin.Patch("/applications/:id/status", applications.UpdateStatus)
	admin.Get("/export/excel", export.Excel)
	admin.Post("/test-email", applications.TestEmail)
}
