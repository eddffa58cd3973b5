package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;not null;uniqueIndex:idx_users_username" json:"username" validate:"required,max=50"`
	Email        string    `gorm:"size:100;not null;uniqueIndex:idx_users_email" json:"email" validate:"required,max=100"`
	PasswordHash string    `gorm:"size:255;not null" json:"-" validate:"required,max=255"` // stub, no hashing yet
	Salt         string    `gorm:"size:255;not null" json:"-" validate:"required,max=255"`
	Role         Role      `gorm:"not null" json:"role" validate:"min=0,max=1"`
	Gender       Gender    `gorm:"not null" json:"gender" validate:"min=0,max=2"`
	Age          *int      `gorm:"check:age IS NULL OR (age >= 13 AND age <= 120)" json:"age" validate:"omitempty,min=13,max=120"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	// Articles are not embedded here; query them by author_id.
}

// NewUser returns a user with the column defaults applied. gorm skips zero
// values on insert, so false/Male cannot rely on database defaults.
func NewUser(username, email string) *User {
	return &User{
		Username: username,
		Email:    email,
		Role:     RoleUser,
		Gender:   GenderNotSpecified,
		IsActive: true,
	}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanWriteArticles requires an active admin. Regular users are denied even
// when active; product has not confirmed whether that is intended.
func (u *User) CanWriteArticles() bool {
	return u.IsActive && u.IsAdmin()
}
