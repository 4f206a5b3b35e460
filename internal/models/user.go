package models

import (
	"time"
)

// Role is a closed enum stored on the user row. Persisted but not yet
// consulted for authorization decisions; reserved for future use.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an application account. Emails are matched exactly
// (case-sensitive) everywhere they are looked up.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	Role         Role   `json:"role" gorm:"type:varchar(16);default:'user'"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
