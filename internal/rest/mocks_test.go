package rest

import (
	"context"

	"cantina-be/internal/order"
	"cantina-be/internal/product"
	"cantina-be/internal/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, name, email, password string, studentID *string) (user.User, error) {
	args := m.Called(ctx, name, email, password, studentID)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUserService) GetByID(ctx context.Context, id int64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUserService) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *mockUserService) Credit(ctx context.Context, id int64, amount decimal.Decimal) (user.User, error) {
	args := m.Called(ctx, id, amount)
	return args.Get(0).(user.User), args.Error(1)
}

type mockProductService struct {
	mock.Mock
}

func (m *mockProductService) List(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *mockProductService) Get(ctx context.Context, id int64) (product.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *mockProductService) Create(ctx context.Context, params product.CreateParams) (product.Product, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *mockProductService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) Place(ctx context.Context, userID int64, requested []order.RequestedItem) (*order.PlacementResult, error) {
	args := m.Called(ctx, userID, requested)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.PlacementResult), args.Error(1)
}

func (m *mockOrderService) ListMine(ctx context.Context, userID int64) ([]order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *mockOrderService) ListAll(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *mockOrderService) GetOne(ctx context.Context, userID, orderID int64) (*order.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderService) SetStatus(ctx context.Context, orderID int64, status order.Status) (*order.Order, error) {
	args := m.Called(ctx, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
