package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Name         string `json:"name" binding:"required,min=2,max=100"`
	UniversityID string `json:"universityId" binding:"required"`
	Mobile       string `json:"mobile,omitempty"`
	Gender       string `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes a refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// OAuthSignInRequest carries the authorization code returned by the provider
type OAuthSignInRequest struct {
	Code        string `json:"code" binding:"required"`
	State       string `json:"state,omitempty"`
	RedirectURI string `json:"redirectUri,omitempty"`
}

// OAuthURLResponse carries the provider redirect URL for the client
type OAuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
	// NewProfile is true when this sign-in created the profile row
	NewProfile bool `json:"newProfile,omitempty"`
}
