package order

import (
	"context"

	"cantina-be/internal/logger"
	"cantina-be/internal/metrics"
	"cantina-be/internal/product"
	"cantina-be/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Catalog is the slice of the product store the order flow needs.
type Catalog interface {
	GetByIDs(ctx context.Context, ids []int64) ([]product.Product, error)
}

type Service interface {
	Place(ctx context.Context, userID int64, requested []RequestedItem) (*PlacementResult, error)
	ListMine(ctx context.Context, userID int64) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	GetOne(ctx context.Context, userID, orderID int64) (*Order, error)
	SetStatus(ctx context.Context, orderID int64, status Status) (*Order, error)
}

type service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, catalog Catalog) Service {
	return &service{repo: repo, catalog: catalog}
}

// Place validates the requested items against the live catalog, freezes the
// unit prices, and hands the balance check plus all writes to one repository
// transaction. The whole order succeeds or nothing is persisted.
func (s *service) Place(ctx context.Context, userID int64, requested []RequestedItem) (*PlacementResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("user_id", userID),
		zap.Int("item_count", len(requested)),
	)

	if len(requested) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range requested {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	distinct := make([]int64, 0, len(requested))
	seen := make(map[int64]bool, len(requested))
	for _, item := range requested {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			distinct = append(distinct, item.ProductID)
		}
	}

	resolved, err := s.catalog.GetByIDs(ctx, distinct)
	if err != nil {
		log.Error("failed to resolve products", zap.Error(err))
		return nil, err
	}
	if len(resolved) != len(distinct) {
		// reject the whole order rather than silently dropping lines
		return nil, ErrUnknownProduct
	}

	byID := make(map[int64]product.Product, len(resolved))
	for _, p := range resolved {
		byID[p.ID] = p
	}

	total := decimal.Zero
	items := make([]Item, 0, len(requested))
	for _, req := range requested {
		p := byID[req.ProductID]
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
		total = total.Add(lineTotal)

		items = append(items, Item{
			ProductID: p.ID,
			Quantity:  req.Quantity,
			UnitPrice: p.Price, // frozen: later catalog changes must not touch this order
			Product:   p,
		})
	}

	o, newBalance, err := s.repo.Place(ctx, userID, utils.GenerateOrderReference(), total, items)
	if err != nil {
		if err == ErrInsufficientBalance {
			metrics.OrdersDenied.Inc()
			log.Info("order denied: insufficient balance", zap.String("total", total.String()))
		} else {
			log.Error("failed to place order", zap.Error(err))
		}
		return nil, err
	}

	metrics.OrdersPlaced.Inc()
	log.Info("order placed",
		zap.Int64("order_id", o.ID),
		zap.String("reference", o.Reference),
		zap.String("total", total.String()),
		zap.String("new_balance", newBalance.String()),
	)

	return &PlacementResult{Order: o, NewBalance: newBalance}, nil
}

func (s *service) ListMine(ctx context.Context, userID int64) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]Order, error) {
	return s.repo.ListAll(ctx)
}

// GetOne returns ErrNotOrderOwner, not ErrOrderNotFound, when the order exists
// but belongs to someone else; the two cases are logged apart.
func (s *service) GetOne(ctx context.Context, userID, orderID int64) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.UserID != userID {
		logger.FromCtx(ctx).Warn("order access denied",
			zap.Int64("order_id", orderID),
			zap.Int64("owner_id", o.UserID),
			zap.Int64("caller_id", userID),
		)
		return nil, ErrNotOrderOwner
	}

	return o, nil
}

func (s *service) SetStatus(ctx context.Context, orderID int64, status Status) (*Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	o, err := s.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.Int64("order_id", orderID),
		zap.String("status", string(status)),
	)

	return o, nil
}
