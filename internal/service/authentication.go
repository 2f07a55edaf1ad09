package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dashboard-api/internal/audit"
	"dashboard-api/internal/model"
	"dashboard-api/internal/store"
)

// UserStore 是 AuthService 需要的 credential store 操作
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	CreateUser(ctx context.Context, in store.CreateUserInput) (*model.User, error)
	UpdateUser(ctx context.Context, id string, in store.UpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
	VerifyPassword(u *model.User, candidate string) bool
}

// AuthResult 是 login / refresh 的結果
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      model.UserView
}

// RegisterInput 是註冊所需資料
type RegisterInput struct {
	Email          string
	Name           string
	Password       string
	Role           model.Role
	OrganizationID string
}

// AuthService 串接 credential store 與 token service，
// 並且是唯一把內部錯誤轉成 client 錯誤分類的地方。
// log 中只記 email / userId 與錯誤種類，不記密碼與 token。
type AuthService struct {
	users  UserStore
	tokens *TokenService
	log    audit.Logger
}

func NewAuthService(users UserStore, tokens *TokenService, log audit.Logger) *AuthService {
	if log == nil {
		log = audit.Nop{}
	}
	return &AuthService{users: users, tokens: tokens, log: log}
}

func identityOf(u *model.User) Identity {
	return Identity{
		UserID:         u.ID,
		Email:          u.Email,
		Role:           u.Role,
		OrganizationID: u.OrganizationID,
	}
}

func (s *AuthService) issue(ctx context.Context, u *model.User, op string) (*AuthResult, error) {
	token, exp, err := s.tokens.Issue(identityOf(u))
	if err != nil {
		s.log.Error(ctx, op+" failed", "userId", u.ID, "reason", kindOf(err))
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: store.ToPublicView(u)}, nil
}

// Login 驗證帳密後簽發 token。帳號不存在與密碼錯誤回傳同一個 ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		s.log.Warn(ctx, "login failed", "email", email, "reason", "user_not_found")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		s.log.Error(ctx, "login failed", "email", email, "reason", "storage", "error", err)
		return nil, fmt.Errorf("Login: %w", err)
	}
	if !s.users.VerifyPassword(u, password) {
		s.log.Warn(ctx, "login failed", "email", email, "reason", "bad_password")
		return nil, ErrInvalidCredentials
	}

	res, err := s.issue(ctx, u, "login")
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "user logged in", "userId", u.ID, "email", u.Email)
	return res, nil
}

// resolve 驗證 token 並找出對應的使用者
func (s *AuthService) resolve(ctx context.Context, token, op string) (*model.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		s.log.Warn(ctx, op+" failed", "reason", kindOf(err))
		return nil, err
	}
	u, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		s.log.Warn(ctx, op+" failed", "userId", claims.UserID, "reason", "user_not_found")
		return nil, ErrUserNotFound
	}
	if err != nil {
		s.log.Error(ctx, op+" failed", "userId", claims.UserID, "reason", "storage", "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetCurrentUser 回傳 token 持有者目前的資料
func (s *AuthService) GetCurrentUser(ctx context.Context, token string) (*model.UserView, error) {
	u, err := s.resolve(ctx, token, "get current user")
	if err != nil {
		return nil, err
	}
	v := store.ToPublicView(u)
	return &v, nil
}

// RefreshToken 以仍有效的 token 換一張新 token；過期的 token 不接受
func (s *AuthService) RefreshToken(ctx context.Context, token string) (*AuthResult, error) {
	u, err := s.resolve(ctx, token, "refresh token")
	if err != nil {
		return nil, err
	}
	res, err := s.issue(ctx, u, "refresh token")
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "token refreshed", "userId", u.ID, "email", u.Email)
	return res, nil
}

// Register 建立新使用者。先查一次 email，store 寫入時會在鎖內再檢查一次
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.UserView, error) {
	_, err := s.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		s.log.Warn(ctx, "register failed", "email", in.Email, "reason", "duplicate_email")
		return nil, ErrDuplicateEmail
	case !errors.Is(err, store.ErrUserNotFound):
		s.log.Error(ctx, "register failed", "email", in.Email, "reason", "storage", "error", err)
		return nil, fmt.Errorf("Register: %w", err)
	}

	u, err := s.users.CreateUser(ctx, store.CreateUserInput{
		Email:          in.Email,
		Name:           in.Name,
		Password:       in.Password,
		Role:           in.Role,
		OrganizationID: in.OrganizationID,
	})
	if errors.Is(err, store.ErrDuplicateEmail) {
		s.log.Warn(ctx, "register failed", "email", in.Email, "reason", "duplicate_email")
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		s.log.Error(ctx, "register failed", "email", in.Email, "reason", "storage", "error", err)
		return nil, fmt.Errorf("Register: %w", err)
	}

	s.log.Info(ctx, "user registered", "userId", u.ID, "email", u.Email)
	v := store.ToPublicView(u)
	return &v, nil
}

// UpdateUser 由管理者更新使用者的名稱、角色或組織
func (s *AuthService) UpdateUser(ctx context.Context, id string, in store.UpdateUserInput) (*model.UserView, error) {
	u, err := s.users.UpdateUser(ctx, id, in)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		s.log.Error(ctx, "update user failed", "userId", id, "reason", "storage", "error", err)
		return nil, fmt.Errorf("UpdateUser: %w", err)
	}
	s.log.Info(ctx, "user updated", "userId", id)
	v := store.ToPublicView(u)
	return &v, nil
}

// DeleteUser 由管理者刪除使用者；已簽出的 token 在 lookup 時會得到 ErrUserNotFound
func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	err := s.users.DeleteUser(ctx, id)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		s.log.Error(ctx, "delete user failed", "userId", id, "reason", "storage", "error", err)
		return fmt.Errorf("DeleteUser: %w", err)
	}
	s.log.Info(ctx, "user deleted", "userId", id)
	return nil
}

// kindOf 回傳 log 用的錯誤種類
func kindOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "internal"
}
