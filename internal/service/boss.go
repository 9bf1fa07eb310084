package service

import (
	"context"
	"errors"

	"github.com/dwguild/backend/internal/database"
	"github.com/dwguild/backend/internal/model"
)

// BossRepository defines the interface for boss storage
type BossRepository interface {
	List(ctx context.Context) ([]model.Boss, error)
	GetByID(ctx context.Context, id string) (*model.Boss, error)
	GetByName(ctx context.Context, name string) (*model.Boss, error)
	UpdateRoles(ctx context.Context, id string, roles map[string]string) (*model.Boss, error)
}

// BossService handles boss operations. Bosses are read-only from the public
// surface; only the roles mapping can be replaced.
type BossService struct {
	repo BossRepository
}

// NewBossService creates a new boss service
func NewBossService(repo BossRepository) *BossService {
	return &BossService{repo: repo}
}

// List returns all bosses
func (s *BossService) List(ctx context.Context) ([]model.Boss, error) {
	return s.repo.List(ctx)
}

// Get retrieves a boss by ID
func (s *BossService) Get(ctx context.Context, id string) (*model.Boss, error) {
	boss, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrBossNotFound
	}
	return boss, err
}

// GetByName retrieves a boss by its exact name
func (s *BossService) GetByName(ctx context.Context, name string) (*model.Boss, error) {
	boss, err := s.repo.GetByName(ctx, name)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrBossNotFound
	}
	return boss, err
}

// UpdateRoles replaces the roles mapping of a boss. A nil mapping fails
// validation before anything reaches storage.
func (s *BossService) UpdateRoles(ctx context.Context, id string, roles map[string]string) (*model.Boss, error) {
	if roles == nil {
		return nil, ErrInvalidRoles
	}

	boss, err := s.repo.UpdateRoles(ctx, id, roles)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrBossNotFound
	}
	return boss, err
}
