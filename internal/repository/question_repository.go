package repository

import (
	"github.com/lunarhue/formlark/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByFormID(formID uint) ([]model.Question, error)
	FindByFormIDAndKey(formID uint, key string) (*model.Question, error)
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByFormID(formID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("form_id = ?", formID).Order("order_in_form ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByFormIDAndKey(formID uint, key string) (*model.Question, error) {
	var question model.Question
	if err := r.db.Where("form_id = ? AND key = ?", formID, key).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// Delete soft-deletes a question. Answers referencing its key are kept;
// they become orphans the analytics engine tolerates by omission.
func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}
