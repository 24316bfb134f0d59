package dto

import "time"

type CreateTopicInput struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	IconID      *uint  `json:"icon_id"`
}

type UpdateTopicInput struct {
	Title       *string `json:"title" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IconID      *uint   `json:"icon_id"`
}

type TopicResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IconID      *uint     `json:"icon_id"`
	Slug        string    `json:"slug"`
	ToolCount   int64     `json:"tool_count"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

type IconResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	IconCode string `json:"icon_code"`
}
