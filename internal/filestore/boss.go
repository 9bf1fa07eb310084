package filestore

import (
	"context"

	"github.com/dwguild/backend/internal/database"
	"github.com/dwguild/backend/internal/model"
)

// BossRepository handles boss data access against the data file. Bosses are
// seeded by editing the data file directly; the API only reads them and
// replaces the roles mapping.
type BossRepository struct {
	store *Store
}

// NewBossRepository creates a new file-backed boss repository
func NewBossRepository(store *Store) *BossRepository {
	return &BossRepository{store: store}
}

// List returns all bosses in file order
func (r *BossRepository) List(_ context.Context) ([]model.Boss, error) {
	var bosses []model.Boss
	err := r.store.view(func(doc *document) error {
		bosses = make([]model.Boss, len(doc.Bosses))
		copy(bosses, doc.Bosses)
		return nil
	})
	return bosses, err
}

// GetByID retrieves a boss by ID
func (r *BossRepository) GetByID(_ context.Context, id string) (*model.Boss, error) {
	var boss *model.Boss
	err := r.store.view(func(doc *document) error {
		for i := range doc.Bosses {
			if doc.Bosses[i].ID == id {
				b := doc.Bosses[i]
				boss = &b
				return nil
			}
		}
		return database.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return boss, nil
}

// GetByName retrieves a boss by its exact name
func (r *BossRepository) GetByName(_ context.Context, name string) (*model.Boss, error) {
	var boss *model.Boss
	err := r.store.view(func(doc *document) error {
		for i := range doc.Bosses {
			if doc.Bosses[i].Name == name {
				b := doc.Bosses[i]
				boss = &b
				return nil
			}
		}
		return database.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return boss, nil
}

// UpdateRoles replaces the roles mapping of a boss. Returns
// database.ErrNotFound for an unknown ID.
func (r *BossRepository) UpdateRoles(_ context.Context, id string, roles map[string]string) (*model.Boss, error) {
	var updated *model.Boss
	err := r.store.update(func(doc *document) error {
		for i := range doc.Bosses {
			if doc.Bosses[i].ID == id {
				doc.Bosses[i].Roles = roles
				b := doc.Bosses[i]
				updated = &b
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
