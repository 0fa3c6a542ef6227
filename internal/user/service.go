package user

import (
	"context"
	"strings"

	"cantina-be/internal/logger"
	"cantina-be/internal/metrics"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, name, email, password string, studentID *string) (User, error)
	Login(ctx context.Context, email, password string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	List(ctx context.Context) ([]User, error)
	Credit(ctx context.Context, id int64, amount decimal.Decimal) (User, error)
}

type service struct {
	repo           Repository
	initialBalance decimal.Decimal
}

func NewService(repo Repository, initialBalance decimal.Decimal) Service {
	return &service{repo: repo, initialBalance: initialBalance}
}

func (s *service) Register(ctx context.Context, name, email, password string, studentID *string) (User, error) {
	log := logger.FromCtx(ctx)

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return User{}, ErrMissingFields
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return User{}, err
	}

	u, err := s.repo.Create(ctx, User{
		Name:      name,
		Email:     email,
		Password:  hashed,
		StudentID: studentID,
		Role:      RoleCustomer,
		Balance:   s.initialBalance,
	})
	if err != nil {
		log.Warn("failed to create user", zap.String("email", email), zap.Error(err))
		return User{}, err
	}

	log.Info("user registered",
		zap.Int64("user_id", u.ID),
		zap.String("email", u.Email),
	)

	return u, nil
}

// Login checks the credentials. Unknown email and wrong password produce the
// same error so callers cannot probe which half failed.
func (s *service) Login(ctx context.Context, email, password string) (User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginFailures.Inc()
		log.Warn("login failed: email not found", zap.String("email", email))
		return User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		metrics.LoginFailures.Inc()
		log.Warn("login failed: password mismatch", zap.Int64("user_id", u.ID))
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *service) Credit(ctx context.Context, id int64, amount decimal.Decimal) (User, error) {
	log := logger.FromCtx(ctx)

	if !amount.IsPositive() {
		return User{}, ErrInvalidAmount
	}

	u, err := s.repo.Credit(ctx, id, amount)
	if err != nil {
		return User{}, err
	}

	log.Info("balance credited",
		zap.Int64("user_id", id),
		zap.String("amount", amount.String()),
		zap.String("new_balance", u.Balance.String()),
	)

	return u, nil
}
