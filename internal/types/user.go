package types

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	RoleID int    `gorm:"column:role_id;primaryKey;autoIncrement" json:"role_id"`
	Name   string `gorm:"uniqueIndex;not null;column:name" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	UserID       uuid.UUID  `gorm:"type:uuid;column:user_id;primaryKey" json:"user_id"`
	Username     string     `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Email        string     `gorm:"uniqueIndex;not null;column:email" json:"email"`
	PasswordHash string     `gorm:"not null;column:password_hash" json:"-"`
	RoleID       int        `gorm:"not null;column:role_id" json:"role_id"`
	IsActive     bool       `gorm:"not null;default:true;column:is_active" json:"is_active"`
	IsVerified   bool       `gorm:"not null;default:false;column:is_verified" json:"is_verified"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
	LoginCount   int        `gorm:"not null;default:0;column:login_count" json:"login_count"`
	CreatedAt    time.Time  `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
