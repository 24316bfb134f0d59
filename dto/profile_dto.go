package dto

import "time"

type UpdateProfileInput struct {
	FirstName          *string `json:"first_name"`
	LastName           *string `json:"last_name"`
	ProfileDescription *string `json:"profile_description"`
	Linkedin           *string `json:"linkedin" binding:"omitempty,url"`
	Image              *string `json:"image"`
}

type ProfileResponse struct {
	ID                 uint      `json:"id"`
	User               string    `json:"user"`
	UserID             uint      `json:"user_id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	ProfileDescription string    `json:"profile_description"`
	Linkedin           string    `json:"linkedin"`
	Image              string    `json:"image"`
	Created            time.Time `json:"created"`
	Updated            time.Time `json:"updated"`
	IsOwner            bool      `json:"is_owner"`
	ToolCount          int64     `json:"tool_count"`
	TotalVotes         int64     `json:"total_votes"`
}

type UpdateUserInput struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

type UserResponse struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	DateJoined time.Time `json:"date_joined"`
}
