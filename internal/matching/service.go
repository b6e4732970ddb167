package matching

import (
	"context"

	"github.com/jpcarvalho/lexledger/internal/lineitem"
)

type Repository interface {
	FindCategory(ctx context.Context, itemName string) (string, error)
	CreateMapping(ctx context.Context, namePattern string, category lineitem.Category) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest tries to find a category for the given item name based on
// previously learned mappings. Returns the empty category if no pattern
// matches.
func (s *Service) Suggest(ctx context.Context, itemName string) (lineitem.Category, error) {
	raw, err := s.repo.FindCategory(ctx, itemName)
	if err != nil || raw == "" {
		return "", err
	}

	return lineitem.ParseCategory(raw), nil
}

// Learn remembers that item names matching the pattern belong to the
// given category.
func (s *Service) Learn(ctx context.Context, namePattern string, category lineitem.Category) error {
	return s.repo.CreateMapping(ctx, namePattern, category)
}
