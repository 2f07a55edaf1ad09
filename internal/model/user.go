// File: internal/model/user.go
package model

import "time"

// Role 使用者角色
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid 回報角色是否為已知值
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User 是儲存在資料文件中的完整使用者紀錄，PasswordHash 只在 store 內使用
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	PasswordHash   string    `json:"password"`
	Role           Role      `json:"role"`
	OrganizationID string    `json:"organizationId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UserView 是可以回傳給 client 的使用者資料（不含密碼）
type UserView struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           Role      `json:"role"`
	OrganizationID string    `json:"organizationId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
