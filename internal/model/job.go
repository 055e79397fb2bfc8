package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WorkMode describes where the work happens.
type WorkMode string

const (
	WorkModeRemote WorkMode = "remote"
	WorkModeOnsite WorkMode = "onsite"
	WorkModeHybrid WorkMode = "hybrid"
)

// EmploymentType describes the contract.
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full-time"
	EmploymentPartTime EmploymentType = "part-time"
	EmploymentContract EmploymentType = "contract"
)

// Level is the seniority of a posting.
type Level string

const (
	LevelIntern Level = "intern"
	LevelJunior Level = "junior"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
	LevelLead   Level = "lead"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelIntern, LevelJunior, LevelMid, LevelSenior, LevelLead:
		return true
	}
	return false
}

// ParseJobType maps the composite "type" value onto its work mode or
// employment type. ok is false for unknown values.
func ParseJobType(v string) (mode WorkMode, emp EmploymentType, ok bool) {
	switch WorkMode(v) {
	case WorkModeRemote, WorkModeOnsite, WorkModeHybrid:
		return WorkMode(v), "", true
	}
	switch EmploymentType(v) {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract:
		return "", EmploymentType(v), true
	}
	return "", "", false
}

// Job is a posting created by a recruiter or admin.
type Job struct {
	ID              uuid.UUID           `json:"id" gorm:"type:char(36);primaryKey"`
	Title           string              `json:"title" gorm:"size:255;not null"`
	Description     string              `json:"description" gorm:"type:text"`
	Location        string              `json:"location" gorm:"size:255;index"`
	WorkMode        WorkMode            `json:"workMode" gorm:"size:20;index"`
	EmploymentType  EmploymentType      `json:"employmentType" gorm:"size:20;index"`
	Type            string              `json:"type" gorm:"-"`
	Role            string              `json:"role" gorm:"size:100;index"`
	Level           Level               `json:"level" gorm:"size:20;index"`
	SalaryMin       decimal.NullDecimal `json:"salaryMin" gorm:"type:decimal(12,2)"`
	SalaryMax       decimal.NullDecimal `json:"salaryMax" gorm:"type:decimal(12,2)"`
	SalaryPeriod    string              `json:"salaryPeriod" gorm:"size:20"`
	ExperienceYears int                 `json:"experienceYears"`
	CompanyID       *uuid.UUID          `json:"companyId,omitempty" gorm:"type:char(36);index"`
	CompanyName     string              `json:"companyName" gorm:"size:255;index"`
	PostedByID      uuid.UUID           `json:"postedById" gorm:"type:char(36);not null;index"`
	Image           string              `json:"image" gorm:"size:512"`
	Source          string              `json:"source" gorm:"size:100"`
	URL             *string             `json:"url,omitempty" gorm:"size:512;uniqueIndex"`
	PostedAt        time.Time           `json:"postedAt" gorm:"index"`
	CreatedAt       time.Time           `json:"createdAt" gorm:"index"`
	UpdatedAt       time.Time           `json:"updatedAt"`

	// Relations
	Company  *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	PostedBy *User    `json:"postedBy,omitempty" gorm:"foreignKey:PostedByID"`
}

// SetType writes the composite type. Exactly one of WorkMode and
// EmploymentType is set afterwards, or neither when v is empty.
func (j *Job) SetType(v string) bool {
	if v == "" {
		j.WorkMode, j.EmploymentType, j.Type = "", "", ""
		return true
	}
	mode, emp, ok := ParseJobType(v)
	if !ok {
		return false
	}
	j.WorkMode, j.EmploymentType = mode, emp
	j.Type = v
	return true
}

// DerivedType is the work mode when set, else the employment type.
func (j *Job) DerivedType() string {
	if j.WorkMode != "" {
		return string(j.WorkMode)
	}
	return string(j.EmploymentType)
}

// BeforeCreate sets UUID before creating the record.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// AfterFind fills the derived type.
func (j *Job) AfterFind(tx *gorm.DB) error {
	j.Type = j.DerivedType()
	return nil
}
