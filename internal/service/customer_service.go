package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/applenx/shop-api/internal/model"
)

type CustomerStore interface {
	List(ctx context.Context) ([]model.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id uuid.UUID) (*model.Customer, error)
}

type CustomerService struct {
	store CustomerStore
}

func NewCustomerService(store CustomerStore) *CustomerService {
	return &CustomerService{store: store}
}

func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.store.List(ctx)
}

func (s *CustomerService) Get(ctx context.Context, rawID string) (*model.Customer, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.GetByID(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, req model.CustomerRequest) (*model.Customer, error) {
	c := &model.Customer{
		ID:          uuid.New(),
		Name:        req.Name,
		IsGold:      req.IsGold,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) Update(ctx context.Context, rawID string, req model.CustomerRequest) (*model.Customer, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}
	c := &model.Customer{
		ID:          id,
		Name:        req.Name,
		IsGold:      req.IsGold,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.store.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) Delete(ctx context.Context, rawID string) (*model.Customer, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.Delete(ctx, id)
}
