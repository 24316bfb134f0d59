package dto

import "time"

type CreateCommentInput struct {
	Text string `json:"text" binding:"required,max=2000"`
}

type UpdateCommentInput struct {
	Text string `json:"text" binding:"required,max=2000"`
}

type CommentResponse struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	ToolID  uint      `json:"tool_id"`
	UserID  uint      `json:"user_id"`
	Created time.Time `json:"created_at"`
	Updated time.Time `json:"updated_at"`
}
