package product

import "context"

type Repository interface {
	ProductNames(ctx context.Context) ([]string, error)
}

// StubRepository stands in for a data-access layer that does not exist yet.
type StubRepository struct{}

func NewStubRepository() *StubRepository { return &StubRepository{} }

func (StubRepository) ProductNames(_ context.Context) ([]string, error) {
	return []string{"Repo Product 1", "Repo Product 2"}, nil
}
