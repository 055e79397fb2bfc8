package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the authorization role carried by a user and its tokens.
type Role string

const (
	RoleUser      Role = "user"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// User represents an account that can log in.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:20;not null;default:'user';index"`
	Resume       Resume    `json:"resume" gorm:"embedded;embeddedPrefix:resume_"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Resume is the metadata of the user's uploaded CV.
type Resume struct {
	URL          string     `json:"url,omitempty" gorm:"size:512"`
	Key          string     `json:"-" gorm:"size:512"`
	OriginalName string     `json:"originalName,omitempty" gorm:"size:255"`
	Size         int64      `json:"size,omitempty"`
	UploadedAt   *time.Time `json:"uploadedAt,omitempty"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
