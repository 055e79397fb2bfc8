package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedJob is one entry of a user's bookmarked jobs set.
type SavedJob struct {
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);primaryKey"`
	JobID     uuid.UUID `json:"jobId" gorm:"type:char(36);primaryKey;index"`
	CreatedAt time.Time `json:"createdAt"`
}
