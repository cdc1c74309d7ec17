package repo

import (
	"gorm.io/gorm"

	"fiber/khayalethu/app/model"
)

type AdminRepository interface {
	FindByUsername(username string) (*model.AdminUser, error)
	Create(u *model.AdminUser) error
}

type AdminRepo struct {
	DB *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{DB: db}
}

func (r *AdminRepo) FindByUsername(username string) (*model.AdminUser, error) {
	var u model.AdminUser
	err := r.DB.Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *AdminRepo) Create(u *model.AdminUser) error {
	return r.DB.Create(u).Error
}
