package commands

import (
	"context"

	"booking-admission/internal/pkg/config"
	"booking-admission/internal/pkg/errs"
	"booking-admission/internal/pkg/jwt"
	"booking-admission/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type TokenResult struct {
	AccessToken string
	TokenType   string
}

// AuthCommands exchanges API client credentials for a bearer token.
type AuthCommands interface {
	IssueToken(ctx context.Context, clientID, clientSecret string) (*TokenResult, error)
}

type authCommandsImpl struct {
	cfg        config.APIAuthConfig
	jwtService *jwt.Service
}

func NewAuthCommands(cfg config.APIAuthConfig, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		cfg:        cfg,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) IssueToken(_ context.Context, clientID, clientSecret string) (*TokenResult, error) {
	if clientID != a.cfg.ClientID {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(a.cfg.ClientSecretHash, clientSecret); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(clientID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenResult{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}
