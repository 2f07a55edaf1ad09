// File: internal/handler/users/users.go
package users

import (
	"context"

	"dashboard-api/internal/model"
	"dashboard-api/internal/store"
)

// Service 是管理者 users 路由需要的 AuthService 操作
type Service interface {
	UpdateUser(ctx context.Context, id string, in store.UpdateUserInput) (*model.UserView, error)
	DeleteUser(ctx context.Context, id string) error
}
