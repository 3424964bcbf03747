package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunm-dev/cipherpost/internal/apperror"
	"github.com/arjunm-dev/cipherpost/internal/models"
)

func newUserRepo(t *testing.T) *UserRepository {
	t.Helper()
	repo, err := NewUserRepository(t.TempDir())
	require.NoError(t, err)
	return repo
}

func TestUserRepository_CreateAndRead(t *testing.T) {
	repo := newUserRepo(t)

	created, err := repo.Create(models.User{Username: "alice", PublicKey: "PEM"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.Read(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUserRepository_Read_NotFound(t *testing.T) {
	repo := newUserRepo(t)

	_, err := repo.Read("missing-id")
	require.Error(t, err)
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	repo := newUserRepo(t)

	_, err := repo.Create(models.User{Username: "alice", PublicKey: "PEM1"})
	require.NoError(t, err)

	_, err = repo.Create(models.User{Username: "alice", PublicKey: "PEM2"})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.CodeOf(err))

	users, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_ReadByUsername(t *testing.T) {
	repo := newUserRepo(t)

	created, err := repo.Create(models.User{Username: "bob", PublicKey: "PEM"})
	require.NoError(t, err)

	got, err := repo.ReadByUsername("bob")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)

	missing, err := repo.ReadByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_Update_PatchesSuppliedFieldsOnly(t *testing.T) {
	repo := newUserRepo(t)

	created, err := repo.Create(models.User{Username: "carol", PublicKey: "OLD"})
	require.NoError(t, err)

	newKey := "NEW"
	updated, err := repo.Update(created.ID, models.UserPatch{PublicKey: &newKey})
	require.NoError(t, err)

	assert.Equal(t, "carol", updated.Doc.Username)
	assert.Equal(t, "NEW", updated.Doc.PublicKey)
	require.NotNil(t, updated.UpdatedAt)
}

func TestUserRepository_Delete(t *testing.T) {
	repo := newUserRepo(t)

	created, err := repo.Create(models.User{Username: "dave", PublicKey: "PEM"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	_, err = repo.Read(created.ID)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
}
