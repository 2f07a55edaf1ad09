package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dashboard-api/internal/database"
	"dashboard-api/internal/model"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// CreateUserInput 是建立使用者所需的明文資料
type CreateUserInput struct {
	Email          string
	Name           string
	Password       string
	Role           model.Role
	OrganizationID string
}

// UpdateUserInput 只更新非 nil 的欄位
type UpdateUserInput struct {
	Name           *string
	Role           *model.Role
	OrganizationID *string
}

// UserStore 在資料文件的 users 集合上提供使用者操作。
// 所有寫入都經過 database.Store.Update，email 唯一性在同一個序列化區段內檢查。
type UserStore struct {
	db    database.Store
	cost  int
	now   func() time.Time
	newID func() string
}

func NewUserStore(db database.Store, bcryptCost int) *UserStore {
	return &UserStore{
		db:    db,
		cost:  bcryptCost,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	d, err := s.db.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("FindByEmail: %w", err)
	}
	email = normalizeEmail(email)
	for i := range d.Users {
		if normalizeEmail(d.Users[i].Email) == email {
			u := d.Users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	d, err := s.db.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	for i := range d.Users {
		if d.Users[i].ID == id {
			u := d.Users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// CreateUser 雜湊密碼後寫入新使用者，回傳含 hash 的完整紀錄。
// bcrypt 在鎖外執行，避免拖住其他寫入。
func (s *UserStore) CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error) {
	hash, err := HashPassword(in.Password, s.cost)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	role := in.Role
	if role == "" {
		role = model.RoleUser
	}
	now := s.now().UTC()
	u := model.User{
		ID:             s.newID(),
		Email:          normalizeEmail(in.Email),
		Name:           strings.TrimSpace(in.Name),
		PasswordHash:   hash,
		Role:           role,
		OrganizationID: in.OrganizationID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.db.Update(ctx, func(d *model.Dataset) error {
		for i := range d.Users {
			if normalizeEmail(d.Users[i].Email) == u.Email {
				return ErrDuplicateEmail
			}
		}
		d.Users = append(d.Users, u)
		return nil
	})
	if errors.Is(err, ErrDuplicateEmail) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return &u, nil
}

func (s *UserStore) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*model.User, error) {
	var updated model.User
	err := s.db.Update(ctx, func(d *model.Dataset) error {
		for i := range d.Users {
			u := &d.Users[i]
			if u.ID != id {
				continue
			}
			if in.Name != nil {
				u.Name = strings.TrimSpace(*in.Name)
			}
			if in.Role != nil {
				u.Role = *in.Role
			}
			if in.OrganizationID != nil {
				u.OrganizationID = *in.OrganizationID
			}
			u.UpdatedAt = s.now().UTC()
			updated = *u
			return nil
		}
		return ErrUserNotFound
	})
	if errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateUser: %w", err)
	}
	return &updated, nil
}

func (s *UserStore) DeleteUser(ctx context.Context, id string) error {
	err := s.db.Update(ctx, func(d *model.Dataset) error {
		for i := range d.Users {
			if d.Users[i].ID == id {
				d.Users = append(d.Users[:i], d.Users[i+1:]...)
				return nil
			}
		}
		return ErrUserNotFound
	})
	if errors.Is(err, ErrUserNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	return nil
}

// VerifyPassword 只用 bcrypt 比對，hash 為空一律失敗
func (s *UserStore) VerifyPassword(u *model.User, candidate string) bool {
	if u == nil || u.PasswordHash == "" {
		return false
	}
	return ComparePassword(u.PasswordHash, candidate) == nil
}

// ToPublicView 去掉密碼 hash
func ToPublicView(u *model.User) model.UserView {
	return model.UserView{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		OrganizationID: u.OrganizationID,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
