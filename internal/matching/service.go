// Package matching suggests categories for imported transactions from
// description patterns learned earlier.
package matching

import (
	"context"
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type Repository interface {
	FindMatch(ctx context.Context, description string) (string, error)
	CreateMapping(ctx context.Context, pattern, category string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the category of the longest learned pattern contained in
// description, or "" when nothing matches.
func (s *Service) Suggest(ctx context.Context, description string) (string, error) {
	return s.repo.FindMatch(ctx, description)
}

// Learn remembers that descriptions containing pattern belong to category.
func (s *Service) Learn(ctx context.Context, pattern, category string) error {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" || strings.TrimSpace(category) == "" {
		return nil
	}

	return s.repo.CreateMapping(ctx, pattern, category)
}

// LearnFrom records the description/category pairs of categorised transactions.
func (s *Service) LearnFrom(ctx context.Context, txs []record.Transaction) error {
	for _, t := range txs {
		if t.Category == "" {
			continue
		}

		if err := s.Learn(ctx, t.Description, t.Category); err != nil {
			return fmt.Errorf("learning %q: %w", t.Description, err)
		}
	}

	return nil
}

// Categorize fills in missing categories from learned patterns. Transactions
// that already carry a category are left alone. The input is not modified.
func (s *Service) Categorize(ctx context.Context, txs []record.Transaction) ([]record.Transaction, error) {
	out := make([]record.Transaction, len(txs))
	copy(out, txs)

	for i, t := range out {
		if t.Category != "" {
			continue
		}

		category, err := s.Suggest(ctx, t.Description)
		if err != nil {
			return nil, fmt.Errorf("suggesting category: %w", err)
		}

		out[i].Category = category
	}

	return out, nil
}
