package account

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/caredesk/caredesk/internal/platform/apperr"
)

type Service struct {
	users      UserRepository
	bcryptCost int
}

func NewService(users UserRepository, bcryptCost int) *Service {
	return &Service{users: users, bcryptCost: bcryptCost}
}

// Register validates the registration form, checks email/username
// availability, and persists the user with a bcrypt password hash. The
// existence check is a fast path; a concurrent duplicate insert is still
// rejected by the storage uniqueness constraint and reported identically.
func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	if in.FirstName == "" || in.Username == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return apperr.Validation("all fields are required")
	}
	if in.Password != in.ConfirmPassword {
		return apperr.Validation("passwords do not match")
	}

	exists, err := s.users.ExistsByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return apperr.Storage(err)
	}
	if exists {
		return apperr.Conflict("email or username already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return apperr.Storage(err)
	}

	u := &User{
		FirstName:    in.FirstName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return apperr.Conflict("email or username already in use")
		}
		return apperr.Storage(err)
	}
	return nil
}

// Login authenticates an email/password pair and returns the stored user.
// The returned record's password hash is excluded from serialization.
func (s *Service) Login(ctx context.Context, in LoginInput) (*User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Storage(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperr.Authentication("incorrect password")
	}

	return u, nil
}
