package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/applenx/shop-api/internal/model"
)

type CategoryService struct {
	store CategoryStore
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	c := &model.Category{ID: uuid.New(), Name: name}
	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.store.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, rawID string) (*model.Category, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.GetByID(ctx, id)
}

func (s *CategoryService) Delete(ctx context.Context, rawID string) (*model.Category, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.Delete(ctx, id)
}
