package services

import (
	"errors"

	"github.com/DennisSchenkel/sessionminds-backend/dto"
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
	"gorm.io/gorm"
)

type IVoteService interface {
	GetVotes(offset int, limit int) ([]dto.VoteResponse, int64, error)
	GetVoteByID(id uint) (*dto.VoteResponse, error)
	GetVotesByTool(toolID uint) ([]dto.VoteResponse, error)
	CreateVote(input dto.CreateVoteInput, principal *models.User) (*dto.VoteResponse, error)
	DeleteVote(id uint, principal *models.User) error
}

type VoteService struct {
	repository     repositories.IVoteRepository
	toolRepository repositories.IToolRepository
}

func NewVoteService(repository repositories.IVoteRepository, toolRepository repositories.IToolRepository) IVoteService {
	return &VoteService{repository: repository, toolRepository: toolRepository}
}

func serializeVote(vote *models.Vote) *dto.VoteResponse {
	return &dto.VoteResponse{
		ID:      vote.ID,
		UserID:  vote.UserID,
		ToolID:  vote.ToolID,
		Created: vote.CreatedAt,
	}
}

func (s *VoteService) GetVotes(offset int, limit int) ([]dto.VoteResponse, int64, error) {
	votes, count, err := s.repository.FindAll(offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.VoteResponse, 0, len(*votes))
	for i := range *votes {
		responses = append(responses, *serializeVote(&(*votes)[i]))
	}
	return responses, count, nil
}

func (s *VoteService) GetVoteByID(id uint) (*dto.VoteResponse, error) {
	vote, err := s.repository.FindByID(id)
	if err != nil {
		return nil, err
	}
	return serializeVote(vote), nil
}

func (s *VoteService) GetVotesByTool(toolID uint) ([]dto.VoteResponse, error) {
	votes, err := s.repository.FindByTool(toolID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.VoteResponse, 0, len(*votes))
	for i := range *votes {
		responses = append(responses, *serializeVote(&(*votes)[i]))
	}
	return responses, nil
}

// CreateVote enforces one vote per user and tool.
func (s *VoteService) CreateVote(input dto.CreateVoteInput, principal *models.User) (*dto.VoteResponse, error) {
	if _, err := s.toolRepository.FindByID(input.ToolID); err != nil {
		return nil, err
	}

	if _, err := s.repository.FindByUserAndTool(principal.ID, input.ToolID); err == nil {
		return nil, ErrAlreadyVoted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	vote := models.Vote{
		UserID: principal.ID,
		ToolID: input.ToolID,
	}
	if err := s.repository.Create(&vote); err != nil {
		return nil, err
	}
	return serializeVote(&vote), nil
}

func (s *VoteService) DeleteVote(id uint, principal *models.User) error {
	vote, err := s.repository.FindByID(id)
	if err != nil {
		return err
	}
	if principal == nil || principal.ID != vote.UserID {
		return ErrNotOwner
	}
	return s.repository.Delete(id)
}
