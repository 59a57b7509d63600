package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rakibul/unibus/internal/app/models"
	"github.com/rakibul/unibus/internal/app/models/dto"
	"github.com/rakibul/unibus/internal/app/repositories"
	"github.com/rakibul/unibus/internal/pkg/apperrors"
	"github.com/rakibul/unibus/internal/pkg/auth"
	"github.com/rakibul/unibus/internal/pkg/logger"
	"github.com/rakibul/unibus/internal/pkg/oauth"
	"github.com/rakibul/unibus/internal/pkg/validation"
)

// oauthStateTTL bounds how long a consent flow may take before the state expires
const oauthStateTTL = 10 * time.Minute

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GoogleAuthURL(ctx context.Context) (*dto.OAuthURLResponse, error)
	GoogleSignIn(ctx context.Context, req dto.OAuthSignInRequest) (*dto.AuthResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
	google     *oauth.GoogleProvider

	mu     sync.Mutex
	states map[string]time.Time
}

// NewAuthService creates a new authentication service instance.
// The google provider may be nil when OAuth is not configured.
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	google *oauth.GoogleProvider,
) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		google:     google,
		states:     make(map[string]time.Time),
	}
}

// Register creates a new student account with password credentials
func (s *authServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validation.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}

	if len(req.Password) < validation.PasswordMinLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters",
			apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}

	universityID := strings.TrimSpace(req.UniversityID)
	if !validation.IsValidUniversityID(universityID) {
		return nil, fmt.Errorf("%w: invalid university ID format", apperrors.ErrValidationFailed)
	}

	mobile := strings.TrimSpace(req.Mobile)
	if mobile != "" && !validation.IsValidMobile(mobile) {
		return nil, fmt.Errorf("%w: invalid mobile number format", apperrors.ErrValidationFailed)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password during registration")
		return nil, fmt.Errorf("error processing registration: %w", err)
	}

	user := &models.User{
		Email:        email,
		Password:     hashed,
		Name:         strings.TrimSpace(req.Name),
		UniversityID: &universityID,
		RoleType:     models.RoleStudent,
		Provider:     models.ProviderLocal,
		IsActive:     true,
	}
	if mobile != "" {
		user.Mobile = &mobile
	}
	if req.Gender != "" {
		gender := req.Gender
		user.Gender = &gender
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	logger.Info().Int64("userID", id).Str("email", email).Msg("User registered")

	return s.issueAuthResponse(ctx, user, false)
}

// Login authenticates password credentials and issues tokens
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	// Accounts created through a provider have no password hash
	if user.Password == "" {
		return nil, apperrors.ErrOAuthAccountNoLogin
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login timestamp")
	}

	return s.issueAuthResponse(ctx, user, false)
}

// RefreshToken rotates a refresh token. The presented token is revoked and
// a fresh pair is issued.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokenPair(ctx, user)
}

// Logout revokes the presented refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return apperrors.ErrTokenInvalid
	}
	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

// GoogleAuthURL generates a one-time state and the provider consent URL
func (s *authServiceImpl) GoogleAuthURL(_ context.Context) (*dto.OAuthURLResponse, error) {
	if s.google == nil {
		return nil, apperrors.ErrOAuthProviderMisconfigured
	}

	state := uuid.New().String()

	s.mu.Lock()
	s.states[state] = time.Now().Add(oauthStateTTL)
	for st, exp := range s.states {
		if exp.Before(time.Now()) {
			delete(s.states, st)
		}
	}
	s.mu.Unlock()

	return &dto.OAuthURLResponse{
		URL:   s.google.AuthCodeURL(state),
		State: state,
	}, nil
}

// consumeState checks and removes a previously issued state. A missing or
// expired state fails the sign-in.
func (s *authServiceImpl) consumeState(state string) error {
	if state == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.states[state]
	if !ok {
		return apperrors.ErrOAuthStateMismatch
	}
	delete(s.states, state)

	if exp.Before(time.Now()) {
		return apperrors.ErrOAuthStateMismatch
	}
	return nil
}

// GoogleSignIn completes the provider code flow. A first-time sign-in
// auto-creates a student profile from the provider claims.
func (s *authServiceImpl) GoogleSignIn(ctx context.Context, req dto.OAuthSignInRequest) (*dto.AuthResponse, error) {
	if s.google == nil {
		return nil, apperrors.ErrOAuthProviderMisconfigured
	}

	if err := s.consumeState(req.State); err != nil {
		return nil, err
	}

	token, err := s.google.Exchange(ctx, req.Code, req.RedirectURI)
	if err != nil {
		logger.Warn().Err(err).Msg("OAuth code exchange failed")
		return nil, err
	}

	info, err := s.google.FetchUserInfo(ctx, token)
	if err != nil {
		logger.Warn().Err(err).Msg("OAuth userinfo fetch failed")
		return nil, err
	}

	email := strings.ToLower(info.Email)
	newProfile := false

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		user = &models.User{
			Email:    email,
			Name:     info.Name,
			RoleType: models.RoleStudent,
			Provider: models.ProviderGoogle,
			IsActive: true,
		}
		if user.Name == "" {
			user.Name = email
		}

		id, createErr := s.userRepo.CreateUser(ctx, user)
		if createErr != nil {
			return nil, createErr
		}
		user.ID = id
		newProfile = true

		logger.Info().Int64("userID", id).Str("email", email).Msg("Profile auto-created from provider sign-in")
	} else if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login timestamp")
	}

	return s.issueAuthResponse(ctx, user, newProfile)
}

func (s *authServiceImpl) issueTokenPair(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token pair")
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}

func (s *authServiceImpl) issueAuthResponse(ctx context.Context, user *models.User, newProfile bool) (*dto.AuthResponse, error) {
	tokens, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:      *tokens,
		User:       dto.NewUserResponse(user),
		NewProfile: newProfile,
	}, nil
}
