package repository

import (
	"github.com/lunarhue/formlark/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(response *model.Response) error
	FindByID(id uint) (*model.Response, error)
	FindByIDWithAnswers(id uint) (*model.Response, error)
	FindAllByForm(formID uint) ([]model.Response, error)
	FindPageByForm(formID uint, offset, limit int) ([]model.Response, error)
	CountByForm(formID uint) (int64, error)
	Delete(id uint) error
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *model.Response) error {
	// GORM creates the associated answers when response.Answers is populated.
	return r.db.Create(response).Error
}

func (r *responseRepository) FindByID(id uint) (*model.Response, error) {
	var response model.Response
	err := r.db.First(&response, id).Error
	return &response, err
}

func (r *responseRepository) FindByIDWithAnswers(id uint) (*model.Response, error) {
	var response model.Response
	err := r.db.Preload("Answers").First(&response, id).Error
	return &response, err
}

func (r *responseRepository) FindAllByForm(formID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Where("form_id = ?", formID).
		Preload("Answers").
		Order("submitted_at DESC").
		Find(&responses).Error
	return responses, err
}

func (r *responseRepository) FindPageByForm(formID uint, offset, limit int) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Where("form_id = ?", formID).
		Preload("Answers").
		Order("submitted_at DESC").
		Offset(offset).Limit(limit).
		Find(&responses).Error
	return responses, err
}

func (r *responseRepository) CountByForm(formID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Response{}).Where("form_id = ?", formID).Count(&count).Error
	return count, err
}

func (r *responseRepository) Delete(id uint) error {
	return r.db.Delete(&model.Response{}, id).Error
}
