package dto

import "time"

type CreateCategoryInput struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	IconID      *uint  `json:"icon_id"`
}

type UpdateCategoryInput struct {
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IconID      *uint   `json:"icon_id"`
}

type CategoryResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IconID      *uint     `json:"icon_id"`
	Slug        string    `json:"slug"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}
