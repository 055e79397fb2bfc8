package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"jobportal/internal/auth"
	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
	"jobportal/internal/repository"
	"jobportal/internal/storage"
)

const resumeMIME = "application/pdf"

// ResumeUpload is an uploaded file. Body must be rewindable so the content
// type can be sniffed before storing it.
type ResumeUpload struct {
	Filename string
	Size     int64
	Body     io.ReadSeeker
}

// UserService exposes profile, resume and user administration operations.
type UserService interface {
	GetMe(ctx context.Context, caller auth.Identity) (*model.User, error)
	UpdateMe(ctx context.Context, caller auth.Identity, name string) (*model.User, error)
	UploadResume(ctx context.Context, caller auth.Identity, upload ResumeUpload) (*model.User, error)
	DeleteResume(ctx context.Context, caller auth.Identity) (*model.User, error)
	ListUsers(ctx context.Context, caller auth.Identity, page model.PageRequest) (model.Page[model.User], error)
	DeleteUser(ctx context.Context, caller auth.Identity, id uuid.UUID) error
}

type userService struct {
	users     repository.UserRepository
	files     storage.Storage
	maxResume int64
	log       *slog.Logger
	now       func() time.Time
}

// NewUserService builds a UserService storing resumes in files.
func NewUserService(users repository.UserRepository, files storage.Storage, maxResume int64, log *slog.Logger) UserService {
	return &userService{
		users:     users,
		files:     files,
		maxResume: maxResume,
		log:       log,
		now:       time.Now,
	}
}

func (s *userService) GetMe(ctx context.Context, caller auth.Identity) (*model.User, error) {
	if err := auth.Authorize(auth.ActionProfileManage, caller, caller.UserID); err != nil {
		return nil, err
	}
	return s.find(ctx, caller.UserID)
}

func (s *userService) UpdateMe(ctx context.Context, caller auth.Identity, name string) (*model.User, error) {
	if err := auth.Authorize(auth.ActionProfileManage, caller, caller.UserID); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("name is required")
	}

	user, err := s.find(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	user.Name = name
	if err := s.users.Update(ctx, user); err != nil {
		return nil, internal("update user", err)
	}
	return user, nil
}

// UploadResume stores a PDF resume and replaces the previous one.
func (s *userService) UploadResume(ctx context.Context, caller auth.Identity, upload ResumeUpload) (*model.User, error) {
	if err := auth.Authorize(auth.ActionProfileManage, caller, caller.UserID); err != nil {
		return nil, err
	}
	if upload.Body == nil || upload.Size == 0 {
		return nil, apperrors.Validation("resume file is required")
	}
	if s.maxResume > 0 && upload.Size > s.maxResume {
		return nil, apperrors.Validation(fmt.Sprintf("resume must be at most %s", humanize.IBytes(uint64(s.maxResume))))
	}

	mime, err := mimetype.DetectReader(upload.Body)
	if err != nil {
		return nil, internal("detect resume type", err)
	}
	if !mime.Is(resumeMIME) {
		return nil, apperrors.Validation("resume must be a PDF")
	}
	if _, err := upload.Body.Seek(0, io.SeekStart); err != nil {
		return nil, internal("rewind resume", err)
	}

	user, err := s.find(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	key := fmt.Sprintf("resumes/%s-%d.pdf", user.ID, now.UnixNano())
	if err := s.files.Save(ctx, key, upload.Body, resumeMIME); err != nil {
		return nil, internal("store resume", err)
	}

	previous := user.Resume.Key
	user.Resume = model.Resume{
		URL:          s.files.URL(key),
		Key:          key,
		OriginalName: upload.Filename,
		Size:         upload.Size,
		UploadedAt:   &now,
	}
	if err := s.users.Update(ctx, user); err != nil {
		s.removeFile(ctx, key)
		return nil, internal("update user", err)
	}

	if previous != "" && previous != key {
		s.removeFile(ctx, previous)
	}
	return user, nil
}

// DeleteResume removes the stored resume. It succeeds when there is none.
func (s *userService) DeleteResume(ctx context.Context, caller auth.Identity) (*model.User, error) {
	if err := auth.Authorize(auth.ActionProfileManage, caller, caller.UserID); err != nil {
		return nil, err
	}
	user, err := s.find(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if user.Resume == (model.Resume{}) {
		return user, nil
	}

	key := user.Resume.Key
	user.Resume = model.Resume{}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, internal("update user", err)
	}
	if key != "" {
		s.removeFile(ctx, key)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, caller auth.Identity, page model.PageRequest) (model.Page[model.User], error) {
	if err := auth.Authorize(auth.ActionUserList, caller, caller.UserID); err != nil {
		return model.Page[model.User]{}, err
	}
	users, total, err := s.users.List(ctx, page)
	if err != nil {
		return model.Page[model.User]{}, internal("list users", err)
	}
	return model.NewPage(users, total, page), nil
}

// DeleteUser removes another user with their applications and saved jobs.
func (s *userService) DeleteUser(ctx context.Context, caller auth.Identity, id uuid.UUID) error {
	if err := auth.Authorize(auth.ActionUserDelete, caller, caller.UserID); err != nil {
		return err
	}
	if id == caller.UserID {
		return apperrors.Forbidden("you cannot delete your own account")
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return lookupError(err, ErrUserNotFound, "delete user")
	}
	if user.Resume.Key != "" {
		s.removeFile(ctx, user.Resume.Key)
	}
	return nil
}

func (s *userService) find(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, ErrUserNotFound, "find user")
	}
	return user, nil
}

// removeFile deletes a stored file. Failures only leave an orphan, so they
// are logged rather than returned.
func (s *userService) removeFile(ctx context.Context, key string) {
	if err := s.files.Delete(ctx, key); err != nil {
		s.log.Warn("delete stored file", "key", key, "error", err.Error())
	}
}
