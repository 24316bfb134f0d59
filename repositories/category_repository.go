package repositories

import (
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"gorm.io/gorm"
)

type ICategoryRepository interface {
	FindAll() (*[]models.Category, error)
	FindByID(id uint) (*models.Category, error)
	FindBySlug(slug string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uint) error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) ICategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll() (*[]models.Category, error) {
	var categories []models.Category
	result := r.db.Preload("Icon").Order("title").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return &categories, nil
}

func (r *CategoryRepository) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	result := r.db.Preload("Icon").First(&category, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	result := r.db.Preload("Icon").First(&category, "slug = ?", slug)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *CategoryRepository) Create(category *models.Category) error {
	result := r.db.Create(category)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *CategoryRepository) Update(category *models.Category) error {
	result := r.db.Save(category)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *CategoryRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
