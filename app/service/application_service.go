package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fiber/khayalethu/app/mailer"
	"fiber/khayalethu/app/model"
	"fiber/khayalethu/app/repo"
	"fiber/khayalethu/app/storage"
	"fiber/khayalethu/app/validation"
	"fiber/khayalethu/config"
	"fiber/khayalethu/helper"
)

var requiredDocs = []string{
	validation.FilePhoto,
	validation.FileIDCard1,
	validation.FileIDCard2,
}

type ApplicationService struct {
	repo     repo.ApplicationRepository
	store    storage.FileStore
	notifier mailer.Notifier
}

func NewApplicationService(r repo.ApplicationRepository, s storage.FileStore, n mailer.Notifier) *ApplicationService {
	return &ApplicationService{repo: r, store: s, notifier: n}
}

// POST /api/apply
//
// Files are persisted before the row is inserted: a complete record needs
// its documents, so a file-store failure aborts the submission. Files
// already written by an aborted attempt are left behind rather than
// complicating the path with cleanup.
func (s *ApplicationService) Submit(c *fiber.Ctx) error {
	var req model.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid form data",
		})
	}

	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}

	docs := make(map[string]string, len(requiredDocs)+1)
	for _, field := range requiredDocs {
		fh, err := c.FormFile(field)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
				Success: false,
				Message: field + " file is required",
			})
		}
		path, err := s.store.Save(fh)
		if err != nil {
			log.Printf("[apply] storing %s failed: %v", field, err)
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
				Success: false,
				Message: "Failed to store uploaded documents",
			})
		}
		docs[field] = path
	}
	if fh, err := c.FormFile(validation.FileAcceptanceLetter); err == nil {
		path, err := s.store.Save(fh)
		if err != nil {
			log.Printf("[apply] storing %s failed: %v", validation.FileAcceptanceLetter, err)
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
				Success: false,
				Message: "Failed to store uploaded documents",
			})
		}
		docs[validation.FileAcceptanceLetter] = path
	}

	application := req.ToApplication(docs)
	if err := s.repo.Create(&application); err != nil {
		log.Printf("[apply] insert failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to submit application",
		})
	}

	// Best effort: the applicant never waits on the mail relay.
	go func(a model.Application) {
		if err := s.notifier.SubmissionReceived(a); err != nil {
			log.Printf("[mail] submission notices for application %d: %v", a.ID, err)
		}
	}(application)

	return c.Status(fiber.StatusCreated).JSON(model.SubmitResponse{
		Success: true,
		ID:      application.ID,
		Message: "Application submitted successfully",
	})
}

// GET /api/applications
func (s *ApplicationService) List(c *fiber.Ctx) error {
	apps, err := s.repo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to fetch applications",
		})
	}
	if apps == nil {
		apps = []model.Application{}
	}
	return c.JSON(apps)
}

// PATCH /api/applications/:id/status
func (s *ApplicationService) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid application id",
		})
	}

	var req model.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}
	if !req.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid status",
		})
	}

	application, err := s.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
				Success: false,
				Message: "Application not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to look up application",
		})
	}

	if err := s.repo.UpdateStatus(application.ID, req.Status); err != nil {
		log.Printf("[status] update of application %d failed: %v", application.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to update status",
		})
	}
	application.Status = req.Status

	// A revert to pending carries no decision worth mailing.
	if req.Status != model.StatusPending {
		go func(a model.Application, note string) {
			if err := s.notifier.DecisionMade(a, note); err != nil {
				log.Printf("[mail] decision notice for application %d: %v", a.ID, err)
			}
		}(*application, req.AdminNote)
	}

	return c.JSON(model.StatusUpdateResponse{
		Message: "Status updated",
		Status:  req.Status,
		ID:      application.ID,
	})
}

// POST /api/test-email
//
// Unlike the notification paths this one is synchronous: its whole purpose
// is telling the operator whether mail delivery works.
func (s *ApplicationService) TestEmail(c *fiber.Ctx) error {
	to := c.Query("to")
	if to == "" {
		to = testRecipient()
	}
	if err := s.notifier.Probe(to); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to send test email",
			Error:   err.Error(),
		})
	}
	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Test email sent successfully",
	})
}

func testRecipient() string {
	if config.Env.AdminEmail != "" {
		return config.Env.AdminEmail
	}
	return config.Env.EmailUser
}
