package repository

import (
	"context"

	"github.com/dwguild/backend/internal/database"
	"github.com/dwguild/backend/internal/model"
)

// BossRepository handles boss data access against the document store.
// Bosses are seeded out of band; the API only reads them and replaces the
// roles mapping.
type BossRepository struct {
	db database.Database
}

// NewBossRepository creates a new boss repository
func NewBossRepository(db database.Database) *BossRepository {
	return &BossRepository{db: db}
}

// List returns all bosses in storage-native order
func (r *BossRepository) List(ctx context.Context) ([]model.Boss, error) {
	results, err := r.db.Query(ctx, `SELECT * FROM boss`, nil)
	if err != nil {
		return nil, err
	}

	records := extractListResults(results)
	bosses := make([]model.Boss, 0, len(records))
	for _, record := range records {
		data, err := normalizeRecord(record)
		if err != nil {
			return nil, err
		}
		boss, err := decodeRecord[model.Boss](data)
		if err != nil {
			return nil, err
		}
		bosses = append(bosses, *boss)
	}
	return bosses, nil
}

// GetByID retrieves a boss by ID
func (r *BossRepository) GetByID(ctx context.Context, id string) (*model.Boss, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`,
		map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}

	data, err := normalizeRecord(result)
	if err != nil {
		return nil, err
	}
	return decodeRecord[model.Boss](data)
}

// GetByName retrieves a boss by its exact name
func (r *BossRepository) GetByName(ctx context.Context, name string) (*model.Boss, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM boss WHERE name = $name LIMIT 1`,
		map[string]interface{}{"name": name})
	if err != nil {
		return nil, err
	}

	data, err := normalizeRecord(result)
	if err != nil {
		return nil, err
	}
	return decodeRecord[model.Boss](data)
}

// UpdateRoles replaces the roles mapping of a boss. Returns
// database.ErrNotFound for an unknown ID.
func (r *BossRepository) UpdateRoles(ctx context.Context, id string, roles map[string]string) (*model.Boss, error) {
	result, err := r.db.QueryOne(ctx, `UPDATE type::record($id) SET roles = $roles RETURN AFTER`,
		map[string]interface{}{"id": id, "roles": roles})
	if err != nil {
		return nil, err
	}

	data, err := normalizeRecord(result)
	if err != nil {
		return nil, err
	}
	return decodeRecord[model.Boss](data)
}
