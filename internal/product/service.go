package product

import (
	"context"
	"strings"

	"cantina-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, params CreateParams) (Product, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, params CreateParams) (Product, error) {
	log := logger.FromCtx(ctx)

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return Product{}, ErrNameRequired
	}
	if !params.Price.IsPositive() {
		return Product{}, ErrInvalidPrice
	}

	p, err := s.repo.Create(ctx, Product{
		Name:        name,
		Description: params.Description,
		Price:       params.Price,
		ImageURL:    params.ImageURL,
	})
	if err != nil {
		return Product{}, err
	}

	log.Info("product created",
		zap.Int64("product_id", p.ID),
		zap.String("name", p.Name),
		zap.String("price", p.Price.String()),
	)

	return p, nil
}

// Delete refuses to remove a product that any order item still references,
// so historical orders keep resolving their product rows.
func (s *service) Delete(ctx context.Context, id int64) error {
	count, err := s.repo.CountOrderReferences(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProductInUse
	}

	return s.repo.Delete(ctx, id)
}
