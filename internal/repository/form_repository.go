package repository

import (
	"github.com/lunarhue/formlark/internal/model"
	"gorm.io/gorm"
)

type FormRepository interface {
	Create(form *model.Form) error
	FindByID(id uint) (*model.Form, error)
	FindByIDWithQuestions(id uint) (*model.Form, error)
	FindAllWithCounts() ([]struct {
		model.Form
		QuestionCount int
		ResponseCount int
	}, error)
	Delete(id uint) error
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) Create(form *model.Form) error {
	// GORM creates the associated questions when form.Questions is populated.
	return r.db.Create(form).Error
}

func (r *formRepository) FindByID(id uint) (*model.Form, error) {
	var form model.Form
	err := r.db.First(&form, id).Error
	return &form, err
}

func (r *formRepository) FindByIDWithQuestions(id uint) (*model.Form, error) {
	var form model.Form
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_form ASC")
	}).First(&form, id).Error
	return &form, err
}

func (r *formRepository) FindAllWithCounts() ([]struct {
	model.Form
	QuestionCount int
	ResponseCount int
}, error) {
	var results []struct {
		model.Form
		QuestionCount int
		ResponseCount int
	}
	err := r.db.Model(&model.Form{}).
		Select("forms.*, " +
			"(SELECT COUNT(*) FROM questions WHERE questions.form_id = forms.id AND questions.deleted_at IS NULL) as question_count, " +
			"(SELECT COUNT(*) FROM responses WHERE responses.form_id = forms.id AND responses.deleted_at IS NULL) as response_count").
		Order("forms.created_at DESC").
		Where("forms.deleted_at IS NULL").
		Scan(&results).Error
	return results, err
}

func (r *formRepository) Delete(id uint) error {
	return r.db.Delete(&model.Form{}, id).Error
}
