package repositories

import (
	"errors"

	"github.com/DennisSchenkel/sessionminds-backend/models"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("User not found")

type IAuthRepository interface {
	CreateUser(user *models.User) error
	FindUserByEmail(email string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	FindAllUsers(offset int, limit int) (*[]models.User, int64, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
}

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) IAuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) CreateUser(user *models.User) error {
	result := r.db.Create(user)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *AuthRepository) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *AuthRepository) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *AuthRepository) FindAllUsers(offset int, limit int) (*[]models.User, int64, error) {
	var users []models.User
	var count int64

	if err := r.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	result := r.db.Offset(offset).Limit(limit).Order("id").Find(&users)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return &users, count, nil
}

func (r *AuthRepository) UpdateUser(user *models.User) error {
	result := r.db.Save(user)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *AuthRepository) DeleteUser(id uint) error {
	result := r.db.Select("Profile", "Tools", "Votes", "Comments").Delete(&models.User{Model: gorm.Model{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
