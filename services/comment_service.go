package services

import (
	"github.com/DennisSchenkel/sessionminds-backend/dto"
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
)

type ICommentService interface {
	GetCommentsByTool(toolID uint, offset int, limit int) ([]dto.CommentResponse, int64, error)
	GetCommentByID(id uint) (*dto.CommentResponse, error)
	CreateComment(toolID uint, input dto.CreateCommentInput, principal *models.User) (*dto.CommentResponse, error)
	UpdateComment(id uint, input dto.UpdateCommentInput, principal *models.User) (*dto.CommentResponse, error)
	DeleteComment(id uint, principal *models.User) error
}

type CommentService struct {
	repository     repositories.ICommentRepository
	toolRepository repositories.IToolRepository
}

func NewCommentService(repository repositories.ICommentRepository, toolRepository repositories.IToolRepository) ICommentService {
	return &CommentService{repository: repository, toolRepository: toolRepository}
}

func serializeComment(comment *models.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:      comment.ID,
		Text:    comment.Text,
		ToolID:  comment.ToolID,
		UserID:  comment.UserID,
		Created: comment.CreatedAt,
		Updated: comment.UpdatedAt,
	}
}

func (s *CommentService) GetCommentsByTool(toolID uint, offset int, limit int) ([]dto.CommentResponse, int64, error) {
	if _, err := s.toolRepository.FindByID(toolID); err != nil {
		return nil, 0, err
	}

	comments, count, err := s.repository.FindByTool(toolID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.CommentResponse, 0, len(*comments))
	for i := range *comments {
		responses = append(responses, *serializeComment(&(*comments)[i]))
	}
	return responses, count, nil
}

func (s *CommentService) GetCommentByID(id uint) (*dto.CommentResponse, error) {
	comment, err := s.repository.FindByID(id)
	if err != nil {
		return nil, err
	}
	return serializeComment(comment), nil
}

func (s *CommentService) CreateComment(toolID uint, input dto.CreateCommentInput, principal *models.User) (*dto.CommentResponse, error) {
	if _, err := s.toolRepository.FindByID(toolID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		Text:   input.Text,
		ToolID: toolID,
		UserID: principal.ID,
	}
	if err := s.repository.Create(&comment); err != nil {
		return nil, err
	}
	return serializeComment(&comment), nil
}

func (s *CommentService) UpdateComment(id uint, input dto.UpdateCommentInput, principal *models.User) (*dto.CommentResponse, error) {
	comment, err := s.repository.FindByID(id)
	if err != nil {
		return nil, err
	}
	if principal == nil || principal.ID != comment.UserID {
		return nil, ErrNotOwner
	}

	comment.Text = input.Text
	if err := s.repository.Update(comment); err != nil {
		return nil, err
	}
	return serializeComment(comment), nil
}

func (s *CommentService) DeleteComment(id uint, principal *models.User) error {
	comment, err := s.repository.FindByID(id)
	if err != nil {
		return err
	}
	if principal == nil || principal.ID != comment.UserID {
		return ErrNotOwner
	}
	return s.repository.Delete(id)
}
