package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lightbnb/internal/logger"
	"lightbnb/internal/models"
	"lightbnb/internal/repository"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo     repository.Users
	validate *validator.Validate
	log      *logger.Logger
}

func NewUserService(repo repository.Users, v *validator.Validate, log *logger.Logger) *UserService {
	return &UserService{repo: repo, validate: v, log: log}
}

// SignUp validates the input, hashes the password and stores the user.
// A taken email is reported as repository.ErrDuplicate.
func (s *UserService) SignUp(ctx context.Context, name, email, password string) (models.User, error) {
	in := models.NewUser{
		Name:     strings.TrimSpace(name),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: password,
	}
	if err := s.validate.Struct(in); err != nil {
		return models.User{}, invalid(err)
	}

	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, invalid(err)
	}
	in.Password = hash

	u, err := s.repo.Create(ctx, in)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.log.Infow("user_sign_up_duplicate", "email", in.Email)
		} else {
			s.log.Errorw("user_sign_up_failed", "email", in.Email, "err", err)
		}
		return models.User{}, err
	}
	s.log.Infow("user_signed_up", "user_id", u.ID, "email", u.Email)
	return u, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		s.logLookupErr("user_by_email", err, "email", email)
		return models.User{}, err
	}
	return u, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, invalid(fmt.Errorf("user id must be positive, got %d", id))
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logLookupErr("user_by_id", err, "user_id", id)
		return models.User{}, err
	}
	return u, nil
}

func (s *UserService) logLookupErr(event string, err error, kv ...any) {
	if errors.Is(err, repository.ErrNotFound) {
		s.log.Debugw(event+"_not_found", kv...)
		return
	}
	s.log.Errorw(event+"_failed", append(kv, "err", err)...)
}

func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
