package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ksaito/tctally/internal/domain"
	"github.com/ksaito/tctally/internal/repository"
)

type sisterService struct {
	sisters repository.SisterRepo
	now     func() time.Time
}

// NewSisterService creates a SisterService over the given repository.
func NewSisterService(sisters repository.SisterRepo) SisterService {
	return &sisterService{
		sisters: sisters,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *sisterService) Create(ctx context.Context, userID, name string) (*domain.Sister, error) {
	if name == "" {
		return nil, fmt.Errorf("sister name is required")
	}
	sister := &domain.Sister{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: s.now(),
	}
	if err := s.sisters.Create(ctx, userID, sister); err != nil {
		return nil, err
	}
	return sister, nil
}

func (s *sisterService) List(ctx context.Context, userID string) ([]*domain.Sister, error) {
	return s.sisters.ListByUser(ctx, userID)
}

func (s *sisterService) Delete(ctx context.Context, id string) error {
	return s.sisters.Delete(ctx, id)
}
