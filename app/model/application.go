package model

import (
	"time"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusDeclined ApplicationStatus = "declined"
)

// Valid reports whether s is one of the three legal statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// Application is one applicant's submission. Personal, guardian and document
// fields are written once at insert and never edited; only Status changes
// afterwards, and only through the admin status endpoint.
type Application struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Year          string `gorm:"size:20" json:"year"`
	IDNumber      string `gorm:"column:id_number;size:20" json:"id_number"`
	Gender        string `gorm:"size:20" json:"gender"`
	Ethnicity     string `gorm:"size:50" json:"ethnicity"`
	HomeLanguage  string `gorm:"size:50" json:"home_language"`
	FullNames     string `gorm:"size:200" json:"full_names"`
	StudentNumber string `gorm:"size:20" json:"student_number"`
	Institution   string `gorm:"size:200" json:"institution"`
	Email         string `gorm:"size:200" json:"email"`
	Phone         string `gorm:"size:20" json:"phone"`
	HomeAddress   string `gorm:"type:text" json:"home_address"`

	GuardianName         string `gorm:"size:200" json:"guardian_name"`
	GuardianRelationship string `gorm:"size:50" json:"guardian_relationship"`
	GuardianPhone        string `gorm:"size:20" json:"guardian_phone"`
	GuardianEmail        string `gorm:"size:200" json:"guardian_email"`

	// File Store paths. AcceptanceLetter stays empty when the applicant
	// did not attach one.
	Photo            string `gorm:"size:255" json:"photo"`
	IDCard1          string `gorm:"column:id_card_1;size:255" json:"id_card_1"`
	IDCard2          string `gorm:"column:id_card_2;size:255" json:"id_card_2"`
	AcceptanceLetter string `gorm:"size:255" json:"acceptance_letter,omitempty"`

	Status      ApplicationStatus `gorm:"size:10;default:'pending'" json:"status"`
	SubmittedAt time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"submitted_at"`
}

func (Application) TableName() string { return "applications" }

// SubmitApplicationRequest carries the multipart text fields of POST /api/apply.
// The endpoint only checks presence here; format correctness (ID/phone/email
// shape) is enforced client side by the validation package.
type SubmitApplicationRequest struct {
	Year          string `form:"year" validate:"required"`
	IDNumber      string `form:"id_number" validate:"required"`
	Gender        string `form:"gender" validate:"required"`
	Ethnicity     string `form:"ethnicity" validate:"required"`
	HomeLanguage  string `form:"home_language" validate:"required"`
	FullNames     string `form:"full_names" validate:"required"`
	StudentNumber string `form:"student_number" validate:"required"`
	Institution   string `form:"institution" validate:"required"`
	Email         string `form:"email" validate:"required"`
	Phone         string `form:"phone" validate:"required"`
	HomeAddress   string `form:"home_address" validate:"required"`

	GuardianName         string `form:"guardian_name" validate:"required"`
	GuardianRelationship string `form:"guardian_relationship" validate:"required"`
	GuardianPhone        string `form:"guardian_phone" validate:"required"`
	GuardianEmail        string `form:"guardian_email" validate:"required"`
}

// ToApplication builds the pending Application row from the request plus the
// stored document paths keyed by form field name.
func (r SubmitApplicationRequest) ToApplication(docs map[string]string) Application {
	return Application{
		Year:                 r.Year,
		IDNumber:             r.IDNumber,
		Gender:               r.Gender,
		Ethnicity:            r.Ethnicity,
		HomeLanguage:         r.HomeLanguage,
		FullNames:            r.FullNames,
		StudentNumber:        r.StudentNumber,
		Institution:          r.Institution,
		Email:                r.Email,
		Phone:                r.Phone,
		HomeAddress:          r.HomeAddress,
		GuardianName:         r.GuardianName,
		GuardianRelationship: r.GuardianRelationship,
		GuardianPhone:        r.GuardianPhone,
		GuardianEmail:        r.GuardianEmail,
		Photo:                docs["photo"],
		IDCard1:              docs["id_card_1"],
		IDCard2:              docs["id_card_2"],
		AcceptanceLetter:     docs["acceptance_letter"],
		Status:               StatusPending,
		SubmittedAt:          time.Now(),
	}
}

type StatusUpdateRequest struct {
	Status    ApplicationStatus `json:"status" validate:"required,oneof=pending accepted declined"`
	AdminNote string            `json:"adminNote"`
}

type SubmitResponse struct {
	Success bool   `json:"success"`
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

type StatusUpdateResponse struct {
	Message string            `json:"message"`
	Status  ApplicationStatus `json:"status"`
	ID      uint              `json:"id"`
}
