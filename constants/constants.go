package constants

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Error messages
const (
	ErrToolNotFound       = "Tool not found"
	ErrTopicNotFound      = "Topic not found"
	ErrCategoryNotFound   = "Category not found"
	ErrProfileNotFound    = "Profile not found"
	ErrUserNotFound       = "User not found"
	ErrVoteNotFound       = "Vote not found"
	ErrCommentNotFound    = "Comment not found"
	ErrUnexpected         = "Unexpected error"
	ErrInvalidID          = "Invalid id"
	ErrInvalidInput       = "Invalid input"
	ErrInvalidCredentials = "Invalid credentials, please try again."
	ErrTokenRejected      = "Token is blacklisted or invalid"
	ErrNotAllowed         = "You are not allowed to modify this resource"
)
