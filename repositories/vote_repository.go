package repositories

import (
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"gorm.io/gorm"
)

type IVoteRepository interface {
	FindAll(offset int, limit int) (*[]models.Vote, int64, error)
	FindByID(id uint) (*models.Vote, error)
	FindByTool(toolID uint) (*[]models.Vote, error)
	FindByUserAndTool(userID uint, toolID uint) (*models.Vote, error)
	Create(vote *models.Vote) error
	Delete(id uint) error
}

type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) IVoteRepository {
	return &VoteRepository{db: db}
}

func (r *VoteRepository) FindAll(offset int, limit int) (*[]models.Vote, int64, error) {
	var votes []models.Vote
	var count int64

	if err := r.db.Model(&models.Vote{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	result := r.db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&votes)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return &votes, count, nil
}

func (r *VoteRepository) FindByID(id uint) (*models.Vote, error) {
	var vote models.Vote
	result := r.db.First(&vote, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &vote, nil
}

func (r *VoteRepository) FindByTool(toolID uint) (*[]models.Vote, error) {
	var votes []models.Vote
	result := r.db.Where("tool_id = ?", toolID).Order("created_at DESC").Find(&votes)
	if result.Error != nil {
		return nil, result.Error
	}
	return &votes, nil
}

func (r *VoteRepository) FindByUserAndTool(userID uint, toolID uint) (*models.Vote, error) {
	var vote models.Vote
	result := r.db.First(&vote, "user_id = ? AND tool_id = ?", userID, toolID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &vote, nil
}

func (r *VoteRepository) Create(vote *models.Vote) error {
	result := r.db.Create(vote)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *VoteRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Vote{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
