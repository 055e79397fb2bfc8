package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "jobportal/internal/errors"
)

var (
	// ErrJobNotFound is returned when a job does not exist.
	ErrJobNotFound = apperrors.NotFound("job not found")
	// ErrApplicationNotFound is returned when an application does not exist.
	ErrApplicationNotFound = apperrors.NotFound("application not found")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = apperrors.NotFound("user not found")
	// ErrCompanyNotFound is returned when a company does not exist.
	ErrCompanyNotFound = apperrors.NotFound("company not found")
)

// lookupError turns a repository lookup failure into notFound or an
// internal error wrapping op.
func lookupError(err error, notFound error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperrors.Internal(fmt.Errorf("%s: %w", op, err))
}

func internal(op string, err error) error {
	return apperrors.Internal(fmt.Errorf("%s: %w", op, err))
}
