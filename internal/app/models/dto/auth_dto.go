package dto

// RegisterRequest creates a new agency with its first admin user.
type RegisterRequest struct {
	AgencyName    string `json:"agencyName" binding:"required,min=2,max=100"`
	AgencyCountry string `json:"agencyCountry" binding:"required,min=2,max=100"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	FirstName     string `json:"firstName" binding:"required,min=2,max=100"`
	LastName      string `json:"lastName" binding:"required,min=2,max=100"`
}

// LoginRequest authenticates an existing user.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries a freshly minted token pair.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn"`
	RefreshExpiresIn int    `json:"refreshExpiresIn"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}

// ProfileResponse describes the authenticated user.
type ProfileResponse struct {
	ID         int64  `json:"id"`
	AgencyID   int64  `json:"agencyId"`
	AgencyName string `json:"agencyName"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
}
