package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/applenx/shop-api/internal/model"
)

type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) (*model.Product, error)
}

type CategoryStore interface {
	Create(ctx context.Context, c *model.Category) error
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.Category, error)
}

// ProductService validates category references before touching products.
type ProductService struct {
	store      ProductStore
	categories CategoryStore
}

func NewProductService(store ProductStore, categories CategoryStore) *ProductService {
	return &ProductService{store: store, categories: categories}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.store.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, rawID string) (*model.Product, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req model.ProductRequest) (*model.Product, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	p := &model.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		CategoryID:  categoryID,
		Stock:       req.Stock,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Ratings:     req.Ratings,
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, rawID string, req model.ProductRequest) (*model.Product, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	p := &model.Product{
		ID:          id,
		Name:        req.Name,
		CategoryID:  categoryID,
		Stock:       req.Stock,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Ratings:     req.Ratings,
	}
	if err := s.store.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, rawID string) (*model.Product, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.Delete(ctx, id)
}
