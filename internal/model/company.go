package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is an employer that jobs may reference.
type Company struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string     `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Website     string     `json:"website" gorm:"size:512"`
	Logo        string     `json:"logo" gorm:"size:512"`
	Location    string     `json:"location" gorm:"size:255"`
	Size        string     `json:"size" gorm:"size:50"`
	CreatedByID *uuid.UUID `json:"createdById,omitempty" gorm:"type:char(36);index"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
