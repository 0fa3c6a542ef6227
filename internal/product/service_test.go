package product

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Product), args.Error(1)
}

func (m *MockRepository) GetByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p Product) (Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(Product), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) CountOrderReferences(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		price := decimal.RequireFromString("2.50")
		repo.On("Create", ctx, mock.MatchedBy(func(p Product) bool {
			return p.Name == "Café" && p.Price.Equal(price)
		})).Return(Product{ID: 1, Name: "Café", Price: price}, nil)

		p, err := svc.Create(ctx, CreateParams{Name: "Café", Price: price})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), p.ID)
		repo.AssertExpectations(t)
	})

	t.Run("TrimsName", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(p Product) bool {
			return p.Name == "Café"
		})).Return(Product{ID: 1, Name: "Café"}, nil)

		_, err := svc.Create(ctx, CreateParams{Name: "  Café  ", Price: decimal.NewFromInt(2)})
		assert.NoError(t, err)
	})

	t.Run("MissingName", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(ctx, CreateParams{Name: "   ", Price: decimal.NewFromInt(2)})
		assert.ErrorIs(t, err, ErrNameRequired)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("NonPositivePrice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(ctx, CreateParams{Name: "Café", Price: decimal.Zero})
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = svc.Create(ctx, CreateParams{Name: "Café", Price: decimal.NewFromInt(-1)})
		assert.ErrorIs(t, err, ErrInvalidPrice)

		repo.AssertNotCalled(t, "Create")
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("CountOrderReferences", ctx, int64(1)).Return(0, nil)
		repo.On("Delete", ctx, int64(1)).Return(nil)

		assert.NoError(t, svc.Delete(ctx, 1))
		repo.AssertExpectations(t)
	})

	t.Run("ReferencedByOrders", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("CountOrderReferences", ctx, int64(1)).Return(3, nil)

		err := svc.Delete(ctx, 1)
		assert.ErrorIs(t, err, ErrProductInUse)
		repo.AssertNotCalled(t, "Delete")
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("CountOrderReferences", ctx, int64(42)).Return(0, nil)
		repo.On("Delete", ctx, int64(42)).Return(ErrProductNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, 42), ErrProductNotFound)
	})
}

func TestService_List(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("List", mock.Anything).Return([]Product{
		{ID: 1, Name: "Café"},
		{ID: 2, Name: "Coxinha"},
	}, nil)

	products, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 2)
}
