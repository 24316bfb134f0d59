package repositories

import (
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"gorm.io/gorm"
)

type ICommentRepository interface {
	FindByTool(toolID uint, offset int, limit int) (*[]models.Comment, int64, error)
	FindByID(id uint) (*models.Comment, error)
	Create(comment *models.Comment) error
	Update(comment *models.Comment) error
	Delete(id uint) error
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) ICommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) FindByTool(toolID uint, offset int, limit int) (*[]models.Comment, int64, error) {
	var comments []models.Comment
	var count int64

	if err := r.db.Model(&models.Comment{}).Where("tool_id = ?", toolID).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	result := r.db.Where("tool_id = ?", toolID).
		Offset(offset).Limit(limit).Order("created_at DESC").Find(&comments)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return &comments, count, nil
}

func (r *CommentRepository) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	result := r.db.First(&comment, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &comment, nil
}

func (r *CommentRepository) Create(comment *models.Comment) error {
	result := r.db.Create(comment)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *CommentRepository) Update(comment *models.Comment) error {
	result := r.db.Save(comment)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *CommentRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
