package repositories

import (
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"gorm.io/gorm"
)

type IToolRepository interface {
	FindAll(offset int, limit int) (*[]models.Tool, int64, error)
	FindByID(toolID uint) (*models.Tool, error)
	FindBySlug(slug string) (*models.Tool, error)
	FindByUser(userID uint, offset int, limit int) (*[]models.Tool, int64, error)
	FindByTopicSlug(slug string, offset int, limit int) (*[]models.Tool, int64, error)
	Create(newTool *models.Tool, categoryIDs []uint) error
	Update(tool *models.Tool, categoryIDs []uint) error
	Delete(toolID uint) error
	VoteCount(toolID uint) (int64, error)
}

type ToolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) IToolRepository {
	return &ToolRepository{db: db}
}

func (r *ToolRepository) FindAll(offset int, limit int) (*[]models.Tool, int64, error) {
	var tools []models.Tool
	var count int64

	if err := r.db.Model(&models.Tool{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	result := r.db.Preload("Categories").Offset(offset).Limit(limit).Order("created_at DESC").Find(&tools)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return &tools, count, nil
}

func (r *ToolRepository) FindByID(toolID uint) (*models.Tool, error) {
	var tool models.Tool
	result := r.db.Preload("Categories").First(&tool, "id = ?", toolID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &tool, nil
}

func (r *ToolRepository) FindBySlug(slug string) (*models.Tool, error) {
	var tool models.Tool
	result := r.db.Preload("Categories").First(&tool, "slug = ?", slug)
	if result.Error != nil {
		return nil, result.Error
	}
	return &tool, nil
}

func (r *ToolRepository) FindByUser(userID uint, offset int, limit int) (*[]models.Tool, int64, error) {
	var tools []models.Tool
	var count int64

	query := r.db.Model(&models.Tool{}).Where("user_id = ?", userID)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	result := r.db.Preload("Categories").Where("user_id = ?", userID).
		Offset(offset).Limit(limit).Order("created_at DESC").Find(&tools)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return &tools, count, nil
}

func (r *ToolRepository) FindByTopicSlug(slug string, offset int, limit int) (*[]models.Tool, int64, error) {
	var topic models.Topic
	if err := r.db.First(&topic, "slug = ?", slug).Error; err != nil {
		return nil, 0, err
	}

	var tools []models.Tool
	var count int64
	if err := r.db.Model(&models.Tool{}).Where("topic_id = ?", topic.ID).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	result := r.db.Preload("Categories").Where("topic_id = ?", topic.ID).
		Offset(offset).Limit(limit).Order("created_at DESC").Find(&tools)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return &tools, count, nil
}

func (r *ToolRepository) Create(newTool *models.Tool, categoryIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(newTool).Error; err != nil {
			return err
		}
		if len(categoryIDs) > 0 {
			var categories []models.Category
			if err := tx.Find(&categories, categoryIDs).Error; err != nil {
				return err
			}
			if err := tx.Model(newTool).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ToolRepository) Update(tool *models.Tool, categoryIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(tool).Error; err != nil {
			return err
		}
		if categoryIDs != nil {
			var categories []models.Category
			if len(categoryIDs) > 0 {
				if err := tx.Find(&categories, categoryIDs).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(tool).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ToolRepository) Delete(toolID uint) error {
	result := r.db.Delete(&models.Tool{}, "id = ?", toolID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ToolRepository) VoteCount(toolID uint) (int64, error) {
	var count int64
	result := r.db.Model(&models.Vote{}).Where("tool_id = ?", toolID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
