package filestore

import (
	"context"

	"github.com/dwguild/backend/internal/database"
	"github.com/dwguild/backend/internal/model"
)

// MemberRepository handles member data access against the data file
type MemberRepository struct {
	store *Store
}

// NewMemberRepository creates a new file-backed member repository
func NewMemberRepository(store *Store) *MemberRepository {
	return &MemberRepository{store: store}
}

// Create persists a new member, assigning the next counter identifier
func (r *MemberRepository) Create(_ context.Context, member *model.Member) error {
	return r.store.update(func(doc *document) error {
		member.ID = doc.nextID(collectionMembers, memberIDs(doc.Members))
		doc.Members = append(doc.Members, *member)
		return nil
	})
}

// List returns all members in file order
func (r *MemberRepository) List(_ context.Context) ([]model.Member, error) {
	var members []model.Member
	err := r.store.view(func(doc *document) error {
		members = make([]model.Member, len(doc.Members))
		copy(members, doc.Members)
		return nil
	})
	return members, err
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(_ context.Context, id string) (*model.Member, error) {
	var member *model.Member
	err := r.store.view(func(doc *document) error {
		for i := range doc.Members {
			if doc.Members[i].ID == id {
				m := doc.Members[i]
				member = &m
				return nil
			}
		}
		return database.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Update applies a sparse patch: only non-empty patch fields replace stored
// values. Returns database.ErrNotFound for an unknown ID.
func (r *MemberRepository) Update(_ context.Context, id string, patch model.MemberPatch) (*model.Member, error) {
	var updated *model.Member
	err := r.store.update(func(doc *document) error {
		for i := range doc.Members {
			if doc.Members[i].ID == id {
				doc.Members[i].Apply(patch)
				m := doc.Members[i]
				updated = &m
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

// Delete removes a member. Returns database.ErrNotFound for an unknown ID;
// the counter is never rewound, so the ID is not reused.
func (r *MemberRepository) Delete(_ context.Context, id string) error {
	return r.store.update(func(doc *document) error {
		for i := range doc.Members {
			if doc.Members[i].ID == id {
				doc.Members = append(doc.Members[:i], doc.Members[i+1:]...)
				return nil
			}
		}
		return database.ErrNotFound
	})
}

func memberIDs(members []model.Member) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}
