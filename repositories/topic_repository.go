package repositories

import (
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"gorm.io/gorm"
)

type ITopicRepository interface {
	FindAll() (*[]models.Topic, error)
	FindByID(id uint) (*models.Topic, error)
	FindBySlug(slug string) (*models.Topic, error)
	Create(topic *models.Topic) error
	Update(topic *models.Topic) error
	Delete(id uint) error
	ToolCount(topicID uint) (int64, error)
	FindAllIcons() (*[]models.Icon, error)
}

type TopicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) ITopicRepository {
	return &TopicRepository{db: db}
}

func (r *TopicRepository) FindAll() (*[]models.Topic, error) {
	var topics []models.Topic
	result := r.db.Preload("Icon").Order("title").Find(&topics)
	if result.Error != nil {
		return nil, result.Error
	}
	return &topics, nil
}

func (r *TopicRepository) FindByID(id uint) (*models.Topic, error) {
	var topic models.Topic
	result := r.db.Preload("Icon").First(&topic, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &topic, nil
}

func (r *TopicRepository) FindBySlug(slug string) (*models.Topic, error) {
	var topic models.Topic
	result := r.db.Preload("Icon").First(&topic, "slug = ?", slug)
	if result.Error != nil {
		return nil, result.Error
	}
	return &topic, nil
}

func (r *TopicRepository) Create(topic *models.Topic) error {
	result := r.db.Create(topic)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *TopicRepository) Update(topic *models.Topic) error {
	result := r.db.Save(topic)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *TopicRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Topic{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TopicRepository) ToolCount(topicID uint) (int64, error) {
	var count int64
	result := r.db.Model(&models.Tool{}).Where("topic_id = ?", topicID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *TopicRepository) FindAllIcons() (*[]models.Icon, error) {
	var icons []models.Icon
	result := r.db.Order("id").Find(&icons)
	if result.Error != nil {
		return nil, result.Error
	}
	return &icons, nil
}
