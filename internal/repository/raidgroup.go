package repository

import (
	"context"

	"github.com/dwguild/backend/internal/database"
	"github.com/dwguild/backend/internal/model"
)

// RaidGroupRepository handles raid group data access against the document
// store. Raid groups have no fixed schema: the attributes map is persisted
// verbatim as record content.
type RaidGroupRepository struct {
	db database.Database
}

// NewRaidGroupRepository creates a new raid group repository
func NewRaidGroupRepository(db database.Database) *RaidGroupRepository {
	return &RaidGroupRepository{db: db}
}

// Create persists a new raid group and fills in the store-generated ID
func (r *RaidGroupRepository) Create(ctx context.Context, group *model.RaidGroup) error {
	result, err := r.db.QueryOne(ctx, `CREATE raidgroup CONTENT $content`,
		map[string]interface{}{"content": group.Attributes})
	if err != nil {
		return err
	}

	data, err := normalizeRecord(result)
	if err != nil {
		return err
	}

	*group = groupFromRecord(data)
	return nil
}

// List returns all raid groups in storage-native order
func (r *RaidGroupRepository) List(ctx context.Context) ([]model.RaidGroup, error) {
	results, err := r.db.Query(ctx, `SELECT * FROM raidgroup`, nil)
	if err != nil {
		return nil, err
	}

	records := extractListResults(results)
	groups := make([]model.RaidGroup, 0, len(records))
	for _, record := range records {
		data, err := normalizeRecord(record)
		if err != nil {
			return nil, err
		}
		groups = append(groups, groupFromRecord(data))
	}
	return groups, nil
}

// GetByID retrieves a raid group by ID
func (r *RaidGroupRepository) GetByID(ctx context.Context, id string) (*model.RaidGroup, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`,
		map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}

	data, err := normalizeRecord(result)
	if err != nil {
		return nil, err
	}

	group := groupFromRecord(data)
	return &group, nil
}

// Update merges the given attributes into an existing raid group. Callers
// strip nil values beforehand (sparse-patch policy); MERGE leaves every
// unmentioned attribute untouched. Returns database.ErrNotFound for an
// unknown ID.
func (r *RaidGroupRepository) Update(ctx context.Context, id string, attrs map[string]any) (*model.RaidGroup, error) {
	if len(attrs) == 0 {
		return r.GetByID(ctx, id)
	}

	result, err := r.db.QueryOne(ctx, `UPDATE type::record($id) MERGE $content RETURN AFTER`,
		map[string]interface{}{"id": id, "content": attrs})
	if err != nil {
		return nil, err
	}

	data, err := normalizeRecord(result)
	if err != nil {
		return nil, err
	}

	group := groupFromRecord(data)
	return &group, nil
}

// groupFromRecord splits a raw record into the identifier and the remaining
// attributes
func groupFromRecord(data map[string]interface{}) model.RaidGroup {
	group := model.RaidGroup{Attributes: make(map[string]any, len(data))}
	for k, v := range data {
		if k == "id" {
			group.ID, _ = v.(string)
			continue
		}
		group.Attributes[k] = v
	}
	return group
}
