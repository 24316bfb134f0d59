package dto

import "time"

type CreateVoteInput struct {
	ToolID uint `json:"tool_id" binding:"required"`
}

type VoteResponse struct {
	ID      uint      `json:"id"`
	UserID  uint      `json:"user_id"`
	ToolID  uint      `json:"tool_id"`
	Created time.Time `json:"created"`
}
