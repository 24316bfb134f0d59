package dto

import "time"

type CreateToolInput struct {
	Title            string `json:"title" binding:"required,max=100"`
	ShortDescription string `json:"short_description" binding:"max=100"`
	FullDescription  string `json:"full_description" binding:"max=500"`
	Instructions     string `json:"instructions" binding:"max=5000"`
	TopicID          *uint  `json:"topic_id"`
	CategoryIDs      []uint `json:"category_ids"`
}

type UpdateToolInput struct {
	Title            *string `json:"title" binding:"omitempty,max=100"`
	ShortDescription *string `json:"short_description" binding:"omitempty,max=100"`
	FullDescription  *string `json:"full_description" binding:"omitempty,max=500"`
	Instructions     *string `json:"instructions" binding:"omitempty,max=5000"`
	TopicID          *uint   `json:"topic_id"`
	CategoryIDs      []uint  `json:"category_ids"`
}

type ToolResponse struct {
	ID               uint      `json:"id"`
	Owner            string    `json:"owner"`
	UserID           uint      `json:"user_id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description"`
	FullDescription  string    `json:"full_description"`
	Instructions     string    `json:"instructions"`
	Slug             string    `json:"slug"`
	TopicID          *uint     `json:"topic_id"`
	Categories       []uint    `json:"categories"`
	VoteCount        int64     `json:"vote_count"`
	Created          time.Time `json:"created"`
	Updated          time.Time `json:"updated"`
	IsOwner          bool      `json:"is_owner"`
}
