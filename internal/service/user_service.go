// Package service holds the business rules between handlers and repositories.
package service

import (
	"context"

	"mooduck/internal/models"
	"mooduck/internal/repository"
	"mooduck/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries the fields a user may change about themselves.
// Nil pointers mean "leave as is".
type UpdateProfileInput struct {
	UserID   uint
	Email    *string
	Name     *string
	Bio      *string
	Password *string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, search string, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, search, limit, offset)
}

// UpdateProfile merges the provided fields into the account. The username
// slug is permanent, everything else can change.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	fields := map[string]interface{}{}

	if in.Email != nil {
		if err := validation.ValidateEmail(*in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		fields["email"] = *in.Email
	}
	if in.Name != nil {
		if *in.Name == "" {
			fields["name"] = nil
		} else {
			if err := validation.ValidateDisplayName(*in.Name); err != nil {
				return nil, models.NewValidationError(err.Error())
			}
			fields["name"] = *in.Name
		}
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.Password != nil {
		if err := validation.ValidatePassword(*in.Password); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		fields["password"] = string(hash)
	}

	if len(fields) == 0 {
		return s.userRepo.GetByID(ctx, in.UserID)
	}

	if err := s.userRepo.UpdateFields(ctx, in.UserID, fields); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, in.UserID)
}

func (s *UserService) DeleteAccount(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}
