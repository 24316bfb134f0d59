package dto

type RegisterInput struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	PasswordConf string `json:"passwordConf" binding:"required,eqfield=Password"`
}

type RegisterResponse struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type TokenInput struct {
	Token string `json:"token" binding:"required"`
}

type LogoutInput struct {
	RefreshToken string `json:"refreshToken"`
}
