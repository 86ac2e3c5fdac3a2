package services

import (
	"context"
	"errors"

	"scholarly_backend/internal/auth"
	"scholarly_backend/internal/logger"
	"scholarly_backend/internal/services/dto"
	"scholarly_backend/pkg/apperrors"
)

// AuthService выдает сессионные токены. Личность подтверждает внешний провайдер на клиенте.
type AuthService interface {
	IssueToken(ctx context.Context, req *dto.IssueTokenRequest) (string, error)
}

type authService struct {
	tokens *auth.TokenManager
}

func NewAuthService(tokens *auth.TokenManager) AuthService {
	return &authService{tokens: tokens}
}

func (s *authService) IssueToken(ctx context.Context, req *dto.IssueTokenRequest) (string, error) {
	token, err := s.tokens.Generate(auth.Identity{Email: req.Email, Name: req.Name})
	if err != nil {
		if errors.Is(err, auth.ErrEmptyEmail) {
			return "", apperrors.NewBadRequestError("email is required")
		}
		return "", apperrors.InternalError(err)
	}
	logger.CtxDebug(ctx, "Session token issued", "email", req.Email)
	return token, nil
}
