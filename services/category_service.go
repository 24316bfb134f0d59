package services

import (
	"github.com/DennisSchenkel/sessionminds-backend/dto"
	"github.com/DennisSchenkel/sessionminds-backend/models"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
	"github.com/gosimple/slug"
)

type ICategoryService interface {
	GetCategories() ([]dto.CategoryResponse, error)
	GetCategoryByID(id uint) (*dto.CategoryResponse, error)
	GetCategoryBySlug(slug string) (*dto.CategoryResponse, error)
	CreateCategory(input dto.CreateCategoryInput) (*dto.CategoryResponse, error)
	UpdateCategory(id uint, input dto.UpdateCategoryInput) (*dto.CategoryResponse, error)
	DeleteCategory(id uint) error
}

type CategoryService struct {
	repository repositories.ICategoryRepository
}

func NewCategoryService(repository repositories.ICategoryRepository) ICategoryService {
	return &CategoryService{repository: repository}
}

func serializeCategory(category *models.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          category.ID,
		Title:       category.Title,
		Description: category.Description,
		IconID:      category.IconID,
		Slug:        category.Slug,
		Created:     category.CreatedAt,
		Updated:     category.UpdatedAt,
	}
}

func (s *CategoryService) GetCategories() ([]dto.CategoryResponse, error) {
	categories, err := s.repository.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CategoryResponse, 0, len(*categories))
	for i := range *categories {
		responses = append(responses, *serializeCategory(&(*categories)[i]))
	}
	return responses, nil
}

func (s *CategoryService) GetCategoryByID(id uint) (*dto.CategoryResponse, error) {
	category, err := s.repository.FindByID(id)
	if err != nil {
		return nil, err
	}
	return serializeCategory(category), nil
}

func (s *CategoryService) GetCategoryBySlug(categorySlug string) (*dto.CategoryResponse, error) {
	category, err := s.repository.FindBySlug(categorySlug)
	if err != nil {
		return nil, err
	}
	return serializeCategory(category), nil
}

func (s *CategoryService) CreateCategory(input dto.CreateCategoryInput) (*dto.CategoryResponse, error) {
	category := models.Category{
		Title:       input.Title,
		Description: input.Description,
		IconID:      input.IconID,
		Slug:        slug.Make(input.Title),
	}
	if err := s.repository.Create(&category); err != nil {
		return nil, err
	}
	return serializeCategory(&category), nil
}

func (s *CategoryService) UpdateCategory(id uint, input dto.UpdateCategoryInput) (*dto.CategoryResponse, error) {
	category, err := s.repository.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		category.Title = *input.Title
		category.Slug = slug.Make(*input.Title)
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.IconID != nil {
		category.IconID = input.IconID
	}

	if err := s.repository.Update(category); err != nil {
		return nil, err
	}
	return serializeCategory(category), nil
}

func (s *CategoryService) DeleteCategory(id uint) error {
	return s.repository.Delete(id)
}
