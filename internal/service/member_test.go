package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwguild/backend/internal/filestore"
	"github.com/dwguild/backend/internal/model"
)

func newTestStore(t *testing.T) *filestore.Store {
	t.Helper()
	store, err := filestore.Open(filepath.Join(t.TempDir(), "raidData.json"))
	require.NoError(t, err)
	return store
}

func TestMemberCreate_RequiredFields(t *testing.T) {
	t.Parallel()
	service := NewMemberService(filestore.NewMemberRepository(newTestStore(t)))
	ctx := context.Background()

	_, err := service.Create(ctx, CreateMemberRequest{Class: "Warrior"})
	assert.ErrorIs(t, err, ErrCharacterNameRequired)

	_, err = service.Create(ctx, CreateMemberRequest{CharacterName: "Thrall"})
	assert.ErrorIs(t, err, ErrCharacterNameRequired)

	// Nothing was persisted by the failed attempts.
	members, err := service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestMemberCreateThenGet(t *testing.T) {
	t.Parallel()
	service := NewMemberService(filestore.NewMemberRepository(newTestStore(t)))
	ctx := context.Background()

	created, err := service.Create(ctx, CreateMemberRequest{CharacterName: "Thrall", Class: "Warrior"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMemberGet_Unknown(t *testing.T) {
	t.Parallel()
	service := NewMemberService(filestore.NewMemberRepository(newTestStore(t)))

	_, err := service.Get(context.Background(), "404")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestMemberUpdateAndDelete(t *testing.T) {
	t.Parallel()
	service := NewMemberService(filestore.NewMemberRepository(newTestStore(t)))
	ctx := context.Background()

	created, err := service.Create(ctx, CreateMemberRequest{CharacterName: "Thrall", Class: "Warrior"})
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, model.MemberPatch{Role: "tank"})
	require.NoError(t, err)
	require.NotNil(t, updated.Role)
	assert.Equal(t, "tank", *updated.Role)
	assert.Equal(t, "Thrall", updated.CharacterName)

	require.NoError(t, service.Delete(ctx, created.ID))
	assert.ErrorIs(t, service.Delete(ctx, created.ID), ErrMemberNotFound)

	_, err = service.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestRaidGroupUpdate_DropsNilAttributes(t *testing.T) {
	t.Parallel()
	service := NewRaidGroupService(filestore.NewRaidGroupRepository(newTestStore(t)))
	ctx := context.Background()

	group, err := service.Create(ctx, map[string]any{"name": "Tuesday Alts", "leader": "Jaina"})
	require.NoError(t, err)

	// A nil value cannot clear a stored attribute.
	updated, err := service.Update(ctx, group.ID, map[string]any{"leader": nil, "raidDay": "Thursday"})
	require.NoError(t, err)
	assert.Equal(t, "Jaina", updated.Attributes["leader"])
	assert.Equal(t, "Thursday", updated.Attributes["raidDay"])
}

func TestBossUpdateRoles_NilRolesRejected(t *testing.T) {
	t.Parallel()
	service := NewBossService(filestore.NewBossRepository(newTestStore(t)))

	_, err := service.UpdateRoles(context.Background(), "1", nil)
	assert.ErrorIs(t, err, ErrInvalidRoles)
}

func TestBossGet_Unknown(t *testing.T) {
	t.Parallel()
	service := NewBossService(filestore.NewBossRepository(newTestStore(t)))

	_, err := service.Get(context.Background(), "404")
	assert.ErrorIs(t, err, ErrBossNotFound)

	_, err = service.GetByName(context.Background(), "Onyxia")
	assert.ErrorIs(t, err, ErrBossNotFound)
}
