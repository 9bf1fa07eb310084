package service

import (
	"context"
	"errors"

	"github.com/dwguild/backend/internal/database"
	"github.com/dwguild/backend/internal/model"
)

// RaidGroupRepository defines the interface for raid group storage
type RaidGroupRepository interface {
	Create(ctx context.Context, group *model.RaidGroup) error
	List(ctx context.Context) ([]model.RaidGroup, error)
	GetByID(ctx context.Context, id string) (*model.RaidGroup, error)
	Update(ctx context.Context, id string, attrs map[string]any) (*model.RaidGroup, error)
}

// RaidGroupService handles raid group operations
type RaidGroupService struct {
	repo RaidGroupRepository
}

// NewRaidGroupService creates a new raid group service
func NewRaidGroupService(repo RaidGroupRepository) *RaidGroupService {
	return &RaidGroupService{repo: repo}
}

// Create persists whatever attributes the caller submitted. Raid groups
// carry no schema beyond the identifier.
func (s *RaidGroupService) Create(ctx context.Context, attrs map[string]any) (*model.RaidGroup, error) {
	group := &model.RaidGroup{Attributes: attrs}
	if group.Attributes == nil {
		group.Attributes = map[string]any{}
	}
	if err := s.repo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// List returns all raid groups
func (s *RaidGroupService) List(ctx context.Context) ([]model.RaidGroup, error) {
	return s.repo.List(ctx)
}

// Get retrieves a raid group by ID
func (s *RaidGroupService) Get(ctx context.Context, id string) (*model.RaidGroup, error) {
	group, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrRaidGroupNotFound
	}
	return group, err
}

// Update merges the submitted attributes into an existing group. Keys with
// a nil value are dropped before they reach storage (sparse-patch policy),
// so an attribute cannot be cleared through this operation.
func (s *RaidGroupService) Update(ctx context.Context, id string, attrs map[string]any) (*model.RaidGroup, error) {
	patch := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if v == nil {
			continue
		}
		patch[k] = v
	}

	group, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrRaidGroupNotFound
	}
	return group, err
}
