package services

import (
	"github.com/DennisSchenkel/sessionminds-backend/dto"
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
	"github.com/gosimple/slug"
)

type ITopicService interface {
	GetTopics() ([]dto.TopicResponse, error)
	GetTopicByID(id uint) (*dto.TopicResponse, error)
	GetTopicBySlug(slug string) (*dto.TopicResponse, error)
	CreateTopic(input dto.CreateTopicInput) (*dto.TopicResponse, error)
	UpdateTopic(id uint, input dto.UpdateTopicInput) (*dto.TopicResponse, error)
	DeleteTopic(id uint) error
	GetIcons() ([]dto.IconResponse, error)
}

type TopicService struct {
	repository repositories.ITopicRepository
}

func NewTopicService(repository repositories.ITopicRepository) ITopicService {
	return &TopicService{repository: repository}
}

func (s *TopicService) serialize(topic *models.Topic) (*dto.TopicResponse, error) {
	toolCount, err := s.repository.ToolCount(topic.ID)
	if err != nil {
		return nil, err
	}
	return &dto.TopicResponse{
		ID:          topic.ID,
		Title:       topic.Title,
		Description: topic.Description,
		IconID:      topic.IconID,
		Slug:        topic.Slug,
		ToolCount:   toolCount,
		Created:     topic.CreatedAt,
		Updated:     topic.UpdatedAt,
	}, nil
}

func (s *TopicService) GetTopics() ([]dto.TopicResponse, error) {
	topics, err := s.repository.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TopicResponse, 0, len(*topics))
	for i := range *topics {
		response, err := s.serialize(&(*topics)[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *response)
	}
	return responses, nil
}

func (s *TopicService) GetTopicByID(id uint) (*dto.TopicResponse, error) {
	topic, err := s.repository.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.serialize(topic)
}

func (s *TopicService) GetTopicBySlug(topicSlug string) (*dto.TopicResponse, error) {
	topic, err := s.repository.FindBySlug(topicSlug)
	if err != nil {
		return nil, err
	}
	return s.serialize(topic)
}

func (s *TopicService) CreateTopic(input dto.CreateTopicInput) (*dto.TopicResponse, error) {
	topic := models.Topic{
		Title:       input.Title,
		Description: input.Description,
		IconID:      input.IconID,
		Slug:        slug.Make(input.Title),
	}
	if err := s.repository.Create(&topic); err != nil {
		return nil, err
	}
	return s.serialize(&topic)
}

func (s *TopicService) UpdateTopic(id uint, input dto.UpdateTopicInput) (*dto.TopicResponse, error) {
	topic, err := s.repository.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		topic.Title = *input.Title
		topic.Slug = slug.Make(*input.Title)
	}
	if input.Description != nil {
		topic.Description = *input.Description
	}
	if input.IconID != nil {
		topic.IconID = input.IconID
	}

	if err := s.repository.Update(topic); err != nil {
		return nil, err
	}
	return s.serialize(topic)
}

func (s *TopicService) DeleteTopic(id uint) error {
	return s.repository.Delete(id)
}

func (s *TopicService) GetIcons() ([]dto.IconResponse, error) {
	icons, err := s.repository.FindAllIcons()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.IconResponse, 0, len(*icons))
	for _, icon := range *icons {
		responses = append(responses, dto.IconResponse{
			ID:       icon.ID,
			Title:    icon.Title,
			IconCode: icon.IconCode,
		})
	}
	return responses, nil
}
