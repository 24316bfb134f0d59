package services

import (
	"github.com/DennisSchenkel/sessionminds-backend/dto"
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
	"github.com/gosimple/slug"
)

type IToolService interface {
	GetTools(offset int, limit int, principal *models.User) ([]dto.ToolResponse, int64, error)
	GetToolByID(toolID uint, principal *models.User) (*dto.ToolResponse, error)
	GetToolBySlug(slug string, principal *models.User) (*dto.ToolResponse, error)
	GetToolsByUser(userID uint, offset int, limit int, principal *models.User) ([]dto.ToolResponse, int64, error)
	GetToolsByTopicSlug(slug string, offset int, limit int, principal *models.User) ([]dto.ToolResponse, int64, error)
	CreateTool(input dto.CreateToolInput, principal *models.User) (*dto.ToolResponse, error)
	UpdateTool(toolID uint, principal *models.User, input dto.UpdateToolInput) (*dto.ToolResponse, error)
	DeleteTool(toolID uint, principal *models.User) error
}

type ToolService struct {
	repository     repositories.IToolRepository
	authRepository repositories.IAuthRepository
}

func NewToolService(repository repositories.IToolRepository, authRepository repositories.IAuthRepository) IToolService {
	return &ToolService{repository: repository, authRepository: authRepository}
}

func (s *ToolService) serialize(tool *models.Tool, principal *models.User) (*dto.ToolResponse, error) {
	owner, err := s.authRepository.FindUserByID(tool.UserID)
	if err != nil {
		return nil, err
	}
	voteCount, err := s.repository.VoteCount(tool.ID)
	if err != nil {
		return nil, err
	}

	categoryIDs := make([]uint, 0, len(tool.Categories))
	for _, category := range tool.Categories {
		categoryIDs = append(categoryIDs, category.ID)
	}

	return &dto.ToolResponse{
		ID:               tool.ID,
		Owner:            owner.Email,
		UserID:           tool.UserID,
		Title:            tool.Title,
		ShortDescription: tool.ShortDescription,
		FullDescription:  tool.FullDescription,
		Instructions:     tool.Instructions,
		Slug:             tool.Slug,
		TopicID:          tool.TopicID,
		Categories:       categoryIDs,
		VoteCount:        voteCount,
		Created:          tool.CreatedAt,
		Updated:          tool.UpdatedAt,
		IsOwner:          principal != nil && principal.ID == tool.UserID,
	}, nil
}

func (s *ToolService) serializeAll(tools *[]models.Tool, principal *models.User) ([]dto.ToolResponse, error) {
	responses := make([]dto.ToolResponse, 0, len(*tools))
	for i := range *tools {
		response, err := s.serialize(&(*tools)[i], principal)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}
	return responses, nil
}

func (s *ToolService) GetTools(offset int, limit int, principal *models.User) ([]dto.ToolResponse, int64, error) {
	tools, count, err := s.repository.FindAll(offset, limit)
	if err != nil {
		return nil, 0, err
	}
	responses, err := s.serializeAll(tools, principal)
	if err != nil {
		return nil, 0, err
	}
	return responses, count, nil
}

func (s *ToolService) GetToolByID(toolID uint, principal *models.User) (*dto.ToolResponse, error) {
	tool, err := s.repository.FindByID(toolID)
	if err != nil {
		return nil, err
	}
	return s.serialize(tool, principal)
}

func (s *ToolService) GetToolBySlug(toolSlug string, principal *models.User) (*dto.ToolResponse, error) {
	tool, err := s.repository.FindBySlug(toolSlug)
	if err != nil {
		return nil, err
	}
	return s.serialize(tool, principal)
}

func (s *ToolService) GetToolsByUser(userID uint, offset int, limit int, principal *models.User) ([]dto.ToolResponse, int64, error) {
	tools, count, err := s.repository.FindByUser(userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	responses, err := s.serializeAll(tools, principal)
	if err != nil {
		return nil, 0, err
	}
	return responses, count, nil
}

func (s *ToolService) GetToolsByTopicSlug(topicSlug string, offset int, limit int, principal *models.User) ([]dto.ToolResponse, int64, error) {
	tools, count, err := s.repository.FindByTopicSlug(topicSlug, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	responses, err := s.serializeAll(tools, principal)
	if err != nil {
		return nil, 0, err
	}
	return responses, count, nil
}

func (s *ToolService) CreateTool(input dto.CreateToolInput, principal *models.User) (*dto.ToolResponse, error) {
	newTool := models.Tool{
		Title:            input.Title,
		ShortDescription: input.ShortDescription,
		FullDescription:  input.FullDescription,
		Instructions:     input.Instructions,
		Slug:             slug.Make(input.Title),
		TopicID:          input.TopicID,
		UserID:           principal.ID,
	}
	if err := s.repository.Create(&newTool, input.CategoryIDs); err != nil {
		return nil, err
	}

	created, err := s.repository.FindByID(newTool.ID)
	if err != nil {
		return nil, err
	}
	return s.serialize(created, principal)
}

func (s *ToolService) UpdateTool(toolID uint, principal *models.User, input dto.UpdateToolInput) (*dto.ToolResponse, error) {
	tool, err := s.repository.FindByID(toolID)
	if err != nil {
		return nil, err
	}
	if principal == nil || principal.ID != tool.UserID {
		return nil, ErrNotOwner
	}

	if input.Title != nil {
		tool.Title = *input.Title
		tool.Slug = slug.Make(*input.Title)
	}
	if input.ShortDescription != nil {
		tool.ShortDescription = *input.ShortDescription
	}
	if input.FullDescription != nil {
		tool.FullDescription = *input.FullDescription
	}
	if input.Instructions != nil {
		tool.Instructions = *input.Instructions
	}
	if input.TopicID != nil {
		tool.TopicID = input.TopicID
	}

	if err := s.repository.Update(tool, input.CategoryIDs); err != nil {
		return nil, err
	}

	updated, err := s.repository.FindByID(tool.ID)
	if err != nil {
		return nil, err
	}
	return s.serialize(updated, principal)
}

func (s *ToolService) DeleteTool(toolID uint, principal *models.User) error {
	tool, err := s.repository.FindByID(toolID)
	if err != nil {
		return err
	}
	if principal == nil || principal.ID != tool.UserID {
		return ErrNotOwner
	}
	return s.repository.Delete(toolID)
}
