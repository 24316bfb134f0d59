package repositories

import (
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"gorm.io/gorm"
)

type IProfileRepository interface {
	FindAll(offset int, limit int) (*[]models.Profile, int64, error)
	FindByID(id uint) (*models.Profile, error)
	FindByUserID(userID uint) (*models.Profile, error)
	Update(profile *models.Profile) error
	ToolCount(userID uint) (int64, error)
	TotalVotes(userID uint) (int64, error)
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) IProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FindAll(offset int, limit int) (*[]models.Profile, int64, error) {
	var profiles []models.Profile
	var count int64

	if err := r.db.Model(&models.Profile{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	result := r.db.Offset(offset).Limit(limit).Order("id").Find(&profiles)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return &profiles, count, nil
}

func (r *ProfileRepository) FindByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	result := r.db.First(&profile, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &profile, nil
}

func (r *ProfileRepository) FindByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	result := r.db.First(&profile, "user_id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &profile, nil
}

func (r *ProfileRepository) Update(profile *models.Profile) error {
	result := r.db.Save(profile)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ToolCount and TotalVotes are recomputed from the tools and votes tables on
// every read instead of being maintained as counters on the profile row.

func (r *ProfileRepository) ToolCount(userID uint) (int64, error) {
	var count int64
	result := r.db.Model(&models.Tool{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *ProfileRepository) TotalVotes(userID uint) (int64, error) {
	var count int64
	result := r.db.Model(&models.Vote{}).
		Joins("JOIN tools ON tools.id = votes.tool_id").
		Where("tools.user_id = ? AND tools.deleted_at IS NULL", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
