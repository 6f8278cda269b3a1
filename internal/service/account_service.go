package service

import (
	"context"
	"errors"
	"time"

	"harmonylink_backend/internal/model"
	"harmonylink_backend/internal/repository"
	"harmonylink_backend/internal/util"
	"harmonylink_backend/pkg/monitoring"
	"harmonylink_backend/pkg/tracing"

	"golang.org/x/crypto/bcrypt"
)

type AccountService struct {
	UserRepo *repository.UserRepository
}

func NewAccountService(userRepo *repository.UserRepository) *AccountService {
	return &AccountService{UserRepo: userRepo}
}

// Register 注册新用户：散列口令后写入用户行和零值统计行
func (s *AccountService) Register(ctx context.Context, name, email, password string) (user *model.User, err error) {
	_, span := tracing.Tracer.Start(ctx, "account.Register")
	defer span.End()

	start := time.Now()
	defer func() { monitoring.ObserveOperation("users", "create", start, err) }()

	_, err = s.UserRepo.FindByEmail(email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	}
	if !errors.Is(err, util.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err = s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser 直接存入调用方给出的口令散列
func (s *AccountService) CreateUser(ctx context.Context, name, email, passwordHash string) (user *model.User, err error) {
	_, span := tracing.Tracer.Start(ctx, "account.CreateUser")
	defer span.End()

	start := time.Now()
	defer func() { monitoring.ObserveOperation("users", "create", start, err) }()

	user = &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err = s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AccountService) DeleteUser(ctx context.Context, id uint) (err error) {
	_, span := tracing.Tracer.Start(ctx, "account.DeleteUser")
	defer span.End()

	start := time.Now()
	defer func() { monitoring.ObserveOperation("users", "delete", start, err) }()

	return s.UserRepo.Delete(id)
}
