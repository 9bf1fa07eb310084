package service

import (
	"context"
	"errors"

	"github.com/dwguild/backend/internal/database"
	"github.com/dwguild/backend/internal/model"
)

// MemberRepository defines the interface for member storage
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	List(ctx context.Context) ([]model.Member, error)
	GetByID(ctx context.Context, id string) (*model.Member, error)
	Update(ctx context.Context, id string, patch model.MemberPatch) (*model.Member, error)
	Delete(ctx context.Context, id string) error
}

// MemberService handles roster operations
type MemberService struct {
	repo MemberRepository
}

// NewMemberService creates a new member service
func NewMemberService(repo MemberRepository) *MemberService {
	return &MemberService{repo: repo}
}

// CreateMemberRequest carries the fields for a new roster entry
type CreateMemberRequest struct {
	CharacterName  string
	Class          string
	RaidAssignment *string
	Role           *string
}

// Create validates and persists a new member. Character name and class are
// required; nothing is persisted when validation fails.
func (s *MemberService) Create(ctx context.Context, req CreateMemberRequest) (*model.Member, error) {
	if req.CharacterName == "" || req.Class == "" {
		return nil, ErrCharacterNameRequired
	}

	member := &model.Member{
		CharacterName:  req.CharacterName,
		Class:          req.Class,
		RaidAssignment: req.RaidAssignment,
		Role:           req.Role,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// List returns all members. Order is storage-native and not guaranteed.
func (s *MemberService) List(ctx context.Context) ([]model.Member, error) {
	return s.repo.List(ctx)
}

// Get retrieves a member by ID
func (s *MemberService) Get(ctx context.Context, id string) (*model.Member, error) {
	member, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrMemberNotFound
	}
	return member, err
}

// Update applies a sparse patch to a member: only non-empty patch fields
// replace stored values, so a field can never be cleared back to null (the
// documented limitation of this policy — raidAssignment included).
func (s *MemberService) Update(ctx context.Context, id string, patch model.MemberPatch) (*model.Member, error) {
	member, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrMemberNotFound
	}
	return member, err
}

// Delete removes a member. Unknown IDs report ErrMemberNotFound, on the
// first and on every repeated call.
func (s *MemberService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return ErrMemberNotFound
	}
	return err
}
