package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationStatus represents where an application is in the hiring flow.
type ApplicationStatus string

const (
	ApplicationStatusApplied  ApplicationStatus = "applied"
	ApplicationStatusReview   ApplicationStatus = "review"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusReview, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// MaxCoverLetterLength bounds the stored cover letter, in characters.
const MaxCoverLetterLength = 20000

// Application links a user to a job. A user applies to a job at most once.
type Application struct {
	ID          uuid.UUID         `json:"id" gorm:"type:char(36);primaryKey"`
	JobID       uuid.UUID         `json:"jobId" gorm:"type:char(36);not null;uniqueIndex:idx_applications_job_user;index"`
	UserID      uuid.UUID         `json:"userId" gorm:"type:char(36);not null;uniqueIndex:idx_applications_job_user;index"`
	Status      ApplicationStatus `json:"status" gorm:"size:20;not null;default:'applied';index"`
	ResumeURL   string            `json:"resumeUrl" gorm:"size:512"`
	CoverLetter string            `json:"coverLetter" gorm:"type:text"`
	CreatedAt   time.Time         `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time         `json:"updatedAt"`

	// Relations
	Job  *Job  `json:"job,omitempty" gorm:"foreignKey:JobID"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
