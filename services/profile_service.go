package services

import (
	"strings"

	"github.com/DennisSchenkel/sessionminds-backend/dto"
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
)

type IProfileService interface {
	GetProfiles(offset int, limit int, principal *models.User) ([]dto.ProfileResponse, int64, error)
	GetProfileByID(id uint, principal *models.User) (*dto.ProfileResponse, error)
	GetProfileByUserID(userID uint, principal *models.User) (*dto.ProfileResponse, error)
	UpdateProfile(id uint, principal *models.User, input dto.UpdateProfileInput) (*dto.ProfileResponse, error)
	GetUsers(offset int, limit int) ([]dto.UserResponse, int64, error)
	GetUserByID(id uint) (*dto.UserResponse, error)
	UpdateUser(id uint, principal *models.User, input dto.UpdateUserInput) (*dto.UserResponse, error)
	DeleteUser(id uint, principal *models.User) error
}

type ProfileService struct {
	repository     repositories.IProfileRepository
	authRepository repositories.IAuthRepository
}

func NewProfileService(repository repositories.IProfileRepository, authRepository repositories.IAuthRepository) IProfileService {
	return &ProfileService{repository: repository, authRepository: authRepository}
}

func (s *ProfileService) serialize(profile *models.Profile, principal *models.User) (*dto.ProfileResponse, error) {
	user, err := s.authRepository.FindUserByID(profile.UserID)
	if err != nil {
		return nil, err
	}

	toolCount, err := s.repository.ToolCount(profile.UserID)
	if err != nil {
		return nil, err
	}
	totalVotes, err := s.repository.TotalVotes(profile.UserID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		ID:                 profile.ID,
		User:               user.Email,
		UserID:             profile.UserID,
		FirstName:          profile.FirstName,
		LastName:           profile.LastName,
		ProfileDescription: profile.ProfileDescription,
		Linkedin:           profile.Linkedin,
		Image:              profile.Image,
		Created:            profile.CreatedAt,
		Updated:            profile.UpdatedAt,
		IsOwner:            principal != nil && principal.ID == profile.UserID,
		ToolCount:          toolCount,
		TotalVotes:         totalVotes,
	}, nil
}

func (s *ProfileService) GetProfiles(offset int, limit int, principal *models.User) ([]dto.ProfileResponse, int64, error) {
	profiles, count, err := s.repository.FindAll(offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.ProfileResponse, 0, len(*profiles))
	for i := range *profiles {
		response, err := s.serialize(&(*profiles)[i], principal)
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, *response)
	}
	return responses, count, nil
}

func (s *ProfileService) GetProfileByID(id uint, principal *models.User) (*dto.ProfileResponse, error) {
	profile, err := s.repository.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.serialize(profile, principal)
}

func (s *ProfileService) GetProfileByUserID(userID uint, principal *models.User) (*dto.ProfileResponse, error) {
	profile, err := s.repository.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.serialize(profile, principal)
}

func (s *ProfileService) UpdateProfile(id uint, principal *models.User, input dto.UpdateProfileInput) (*dto.ProfileResponse, error) {
	profile, err := s.repository.FindByID(id)
	if err != nil {
		return nil, err
	}
	if principal == nil || principal.ID != profile.UserID {
		return nil, ErrNotOwner
	}

	if input.FirstName != nil {
		profile.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		profile.LastName = *input.LastName
	}
	if input.ProfileDescription != nil {
		profile.ProfileDescription = *input.ProfileDescription
	}
	if input.Linkedin != nil {
		profile.Linkedin = *input.Linkedin
	}
	if input.Image != nil {
		profile.Image = *input.Image
	}

	if err := s.repository.Update(profile); err != nil {
		return nil, err
	}
	return s.serialize(profile, principal)
}

func serializeUser(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		DateJoined: user.CreatedAt,
	}
}

func (s *ProfileService) GetUsers(offset int, limit int) ([]dto.UserResponse, int64, error) {
	users, count, err := s.authRepository.FindAllUsers(offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.UserResponse, 0, len(*users))
	for i := range *users {
		responses = append(responses, *serializeUser(&(*users)[i]))
	}
	return responses, count, nil
}

func (s *ProfileService) GetUserByID(id uint) (*dto.UserResponse, error) {
	user, err := s.authRepository.FindUserByID(id)
	if err != nil {
		return nil, err
	}
	return serializeUser(user), nil
}

func (s *ProfileService) UpdateUser(id uint, principal *models.User, input dto.UpdateUserInput) (*dto.UserResponse, error) {
	if principal == nil || principal.ID != id {
		return nil, ErrNotOwner
	}

	user, err := s.authRepository.FindUserByID(id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = strings.ToLower(*input.Email)
	}
	if input.Password != nil {
		hashed, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.authRepository.UpdateUser(user); err != nil {
		return nil, err
	}
	return serializeUser(user), nil
}

func (s *ProfileService) DeleteUser(id uint, principal *models.User) error {
	if principal == nil || principal.ID != id {
		return ErrNotOwner
	}
	return s.authRepository.DeleteUser(id)
}
