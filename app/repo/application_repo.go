package repo

import (
	"gorm.io/gorm"

	"fiber/khayalethu/app/model"
)

// ApplicationRepository is the Application Store: the system of record for
// submissions. Injected into the services so tests can substitute fakes.
type ApplicationRepository interface {
	Create(a *model.Application) error
	// FindAll returns every application, newest id first.
	FindAll() ([]model.Application, error)
	FindByID(id uint) (*model.Application, error)
	// UpdateStatus changes only the status column of the given row.
	UpdateStatus(id uint, status model.ApplicationStatus) error
}

type ApplicationRepo struct {
	DB *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *ApplicationRepo {
	return &ApplicationRepo{DB: db}
}

func (r *ApplicationRepo) Create(a *model.Application) error {
	return r.DB.Create(a).Error
}

func (r *ApplicationRepo) FindAll() ([]model.Application, error) {
	var apps []model.Application
	err := r.DB.Order("id DESC").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepo) FindByID(id uint) (*model.Application, error) {
	var a model.Application
	err := r.DB.First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepo) UpdateStatus(id uint, status model.ApplicationStatus) error {
	return r.DB.Model(&model.Application{}).Where("id = ?", id).
		Update("status", status).Error
}
