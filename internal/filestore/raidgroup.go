package filestore

import (
	"context"

	"github.com/dwguild/backend/internal/database"
	"github.com/dwguild/backend/internal/model"
)

// RaidGroupRepository handles raid group data access against the data file
type RaidGroupRepository struct {
	store *Store
}

// NewRaidGroupRepository creates a new file-backed raid group repository
func NewRaidGroupRepository(store *Store) *RaidGroupRepository {
	return &RaidGroupRepository{store: store}
}

// Create persists a new raid group, assigning the next counter identifier
func (r *RaidGroupRepository) Create(_ context.Context, group *model.RaidGroup) error {
	return r.store.update(func(doc *document) error {
		group.ID = doc.nextID(collectionRaidGroups, raidGroupIDs(doc.RaidGroups))
		doc.RaidGroups = append(doc.RaidGroups, *group)
		return nil
	})
}

// List returns all raid groups in file order
func (r *RaidGroupRepository) List(_ context.Context) ([]model.RaidGroup, error) {
	var groups []model.RaidGroup
	err := r.store.view(func(doc *document) error {
		groups = make([]model.RaidGroup, len(doc.RaidGroups))
		copy(groups, doc.RaidGroups)
		return nil
	})
	return groups, err
}

// GetByID retrieves a raid group by ID
func (r *RaidGroupRepository) GetByID(_ context.Context, id string) (*model.RaidGroup, error) {
	var group *model.RaidGroup
	err := r.store.view(func(doc *document) error {
		for i := range doc.RaidGroups {
			if doc.RaidGroups[i].ID == id {
				g := doc.RaidGroups[i]
				group = &g
				return nil
			}
		}
		return database.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// Update merges the given attributes into an existing raid group. Callers
// strip nil values beforehand (sparse-patch policy). Returns
// database.ErrNotFound for an unknown ID.
func (r *RaidGroupRepository) Update(_ context.Context, id string, attrs map[string]any) (*model.RaidGroup, error) {
	var updated *model.RaidGroup
	err := r.store.update(func(doc *document) error {
		for i := range doc.RaidGroups {
			if doc.RaidGroups[i].ID == id {
				doc.RaidGroups[i].Merge(attrs)
				g := doc.RaidGroups[i]
				updated = &g
				return nil
			}
		}
		return database.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func raidGroupIDs(groups []model.RaidGroup) []string {
	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	return ids
}
