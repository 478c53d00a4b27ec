package product

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Service interface {
	ListAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int32) (Product, error)
	Add(ctx context.Context, p Product) error
}

// CatalogService answers from a hard-coded catalog. The repository is held as
// a collaborator but catalog reads never go through it.
type CatalogService struct {
	repo Repository
	log  *zap.Logger
}

func NewCatalogService(repo Repository, log *zap.Logger) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogService{repo: repo, log: log}
}

func (s *CatalogService) Repository() Repository { return s.repo }

func (s *CatalogService) ListAll(_ context.Context) ([]Product, error) {
	return []Product{
		{ID: 1, Name: "Laptop", Price: 1000},
		{ID: 2, Name: "Phone", Price: 500},
		{ID: 3, Name: "Tablet", Price: 700},
	}, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id int32) (Product, error) {
	products, err := s.ListAll(ctx)
	if err != nil {
		return Product{}, err
	}

	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("%w: id=%d", ErrNotFound, id)
}

// Add accepts a submission and drops it.
func (s *CatalogService) Add(_ context.Context, p Product) error {
	s.log.Debug("product submission discarded",
		zap.Int32("id", p.ID),
		zap.String("name", p.Name),
		zap.Float64("price", p.Price),
	)
	return nil
}
