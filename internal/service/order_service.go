package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/applenx/shop-api/internal/model"
)

type OrderStore interface {
	Create(ctx context.Context, o *model.Order) error
	List(ctx context.Context) ([]model.Order, error)
	Approve(ctx context.Context, id uuid.UUID) (*model.Order, error)
}

type OrderService struct {
	store OrderStore
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store}
}

func (s *OrderService) Create(ctx context.Context, userID uuid.UUID, req model.CreateOrderRequest) (*model.Order, error) {
	status := req.Status
	if status == "" {
		status = "Pending"
	}
	o := &model.Order{
		ID:          uuid.New(),
		UserID:      userID,
		Address:     req.Address,
		City:        req.City,
		Items:       req.Items,
		TotalAmount: req.TotalAmount,
		Status:      status,
	}
	if err := s.store.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	return s.store.List(ctx)
}

func (s *OrderService) Approve(ctx context.Context, rawID string) (*model.Order, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.Approve(ctx, id)
}
