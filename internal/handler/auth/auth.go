// File: internal/handler/auth/auth.go
package auth

import (
	"context"

	"dashboard-api/internal/dto"
	"dashboard-api/internal/model"
	"dashboard-api/internal/service"
)

// Service 是 auth handler 需要的 AuthService 操作
type Service interface {
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
	Register(ctx context.Context, in service.RegisterInput) (*model.UserView, error)
	GetCurrentUser(ctx context.Context, token string) (*model.UserView, error)
	RefreshToken(ctx context.Context, token string) (*service.AuthResult, error)
}

func toAuthResponse(res *service.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      dto.NewUserResponse(res.User),
	}
}
