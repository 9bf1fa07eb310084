package repository

import (
	"context"
	"strings"

	"github.com/dwguild/backend/internal/database"
	"github.com/dwguild/backend/internal/model"
)

// MemberRepository handles member data access against the document store
type MemberRepository struct {
	db database.Database
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db database.Database) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create persists a new member and fills in the store-generated ID
func (r *MemberRepository) Create(ctx context.Context, member *model.Member) error {
	query := `
		CREATE member CONTENT {
			characterName: $characterName,
			class: $class,
			raidAssignment: $raidAssignment,
			role: $role
		}
	`

	vars := map[string]interface{}{
		"characterName":  member.CharacterName,
		"class":          member.Class,
		"raidAssignment": member.RaidAssignment,
		"role":           member.Role,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}

	data, err := normalizeRecord(result)
	if err != nil {
		return err
	}

	created, err := decodeRecord[model.Member](data)
	if err != nil {
		return err
	}

	*member = *created
	return nil
}

// List returns all members in storage-native order
func (r *MemberRepository) List(ctx context.Context) ([]model.Member, error) {
	results, err := r.db.Query(ctx, `SELECT * FROM member`, nil)
	if err != nil {
		return nil, err
	}

	records := extractListResults(results)
	members := make([]model.Member, 0, len(records))
	for _, record := range records {
		data, err := normalizeRecord(record)
		if err != nil {
			return nil, err
		}
		member, err := decodeRecord[model.Member](data)
		if err != nil {
			return nil, err
		}
		members = append(members, *member)
	}
	return members, nil
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*model.Member, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`,
		map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}

	data, err := normalizeRecord(result)
	if err != nil {
		return nil, err
	}
	return decodeRecord[model.Member](data)
}

// Update applies a sparse patch: only non-empty patch fields are written.
// Returns the updated member, or database.ErrNotFound for an unknown ID.
func (r *MemberRepository) Update(ctx context.Context, id string, patch model.MemberPatch) (*model.Member, error) {
	if patch.IsZero() {
		return r.GetByID(ctx, id)
	}

	var sets []string
	vars := map[string]interface{}{"id": id}
	if patch.CharacterName != "" {
		sets = append(sets, "characterName = $characterName")
		vars["characterName"] = patch.CharacterName
	}
	if patch.Class != "" {
		sets = append(sets, "class = $class")
		vars["class"] = patch.Class
	}
	if patch.RaidAssignment != "" {
		sets = append(sets, "raidAssignment = $raidAssignment")
		vars["raidAssignment"] = patch.RaidAssignment
	}
	if patch.Role != "" {
		sets = append(sets, "role = $role")
		vars["role"] = patch.Role
	}

	query := `UPDATE type::record($id) SET ` + strings.Join(sets, ", ") + ` RETURN AFTER`
	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	data, err := normalizeRecord(result)
	if err != nil {
		return nil, err
	}
	return decodeRecord[model.Member](data)
}

// Delete removes a member. Returns database.ErrNotFound for an unknown ID.
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.QueryOne(ctx, `DELETE type::record($id) RETURN BEFORE`,
		map[string]interface{}{"id": id})
	if err != nil {
		return err
	}

	_, err = normalizeRecord(result)
	return err
}
