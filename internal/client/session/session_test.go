package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/tutorias/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tutorias/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepo struct {
	metadata.Repository
	err error
}

func (f failingRepo) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingRepo) Set(context.Context, string, []byte) error   { return f.err }

// deleteFailingRepo keeps data in memory but refuses deletes.
type deleteFailingRepo struct {
	*metadata.MemoryRepository
	calls [][]string
	err   error
}

func (r *deleteFailingRepo) Delete(_ context.Context, keys ...string) error {
	r.calls = append(r.calls, keys)
	return r.err
}

func TestLoginRoute_Table(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleStudent, "/login_alumno"},
		{RoleTutor, "/login_tutor"},
		{RoleSuperAdmin, "/login_admin"},
		{RolePsychology, "/"},
		{RoleBasicSciences, "/"},
		{RoleAcademicAffairs, "/"},
		{Role("janitor"), "/"},
		{Role(""), "/"},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.LoginRoute())
		})
	}
}

func TestRole_Known_IsDepartment(t *testing.T) {
	assert.True(t, RoleTutor.Known())
	assert.False(t, Role("janitor").Known())
	assert.True(t, RoleBasicSciences.IsDepartment())
	assert.False(t, RoleSuperAdmin.IsDepartment())
}

func TestStore_EmptySession(t *testing.T) {
	s := NewStore(metadata.NewMemoryRepository())
	ctx := context.Background()

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	role, err := s.Role(ctx)
	require.NoError(t, err)
	assert.Empty(t, role)
}

func TestStore_SaveThenClear(t *testing.T) {
	repo := metadata.NewMemoryRepository()
	s := NewStore(repo)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "theme", []byte("dark")))
	require.NoError(t, s.Save(ctx, "jwt-abc", RoleTutor))

	tok, _ := s.Token(ctx)
	role, _ := s.Role(ctx)
	assert.Equal(t, "jwt-abc", tok)
	assert.Equal(t, RoleTutor, role)

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx), "second clear is a no-op")

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"theme": []byte("dark")}, all)
}

func TestSQLiteStore_SaveIsTransactional(t *testing.T) {
	ctx := context.Background()
	db, err := storage.InitDatabase(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStore(db)
	require.NoError(t, s.Save(ctx, "tok-1", RoleStudent))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	role, err := s.Role(ctx)
	require.NoError(t, err)
	assert.Equal(t, RoleStudent, role)

	require.NoError(t, s.Clear(ctx))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestStore_ReadErrorsWrapped(t *testing.T) {
	boom := errors.New("disk gone")
	s := NewStore(failingRepo{err: boom})
	ctx := context.Background()

	_, err := s.Token(ctx)
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "read credential")

	_, err = s.Role(ctx)
	require.ErrorIs(t, err, boom)

	require.ErrorIs(t, s.Save(ctx, "t", RoleTutor), boom)
}

func TestStore_ClearDeletesBothKeysInOneCall(t *testing.T) {
	boom := errors.New("read-only store")
	repo := &deleteFailingRepo{MemoryRepository: metadata.NewMemoryRepository(), err: boom}
	s := NewStore(repo)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tok-1", RoleTutor))
	require.ErrorIs(t, s.Clear(ctx), boom)

	require.Equal(t, [][]string{{"accessToken", "userRole"}}, repo.calls)

	tok, _ := s.Token(ctx)
	role, _ := s.Role(ctx)
	assert.Equal(t, "tok-1", tok)
	assert.Equal(t, RoleTutor, role, "a failed clear leaves the session whole")
}

func TestSQLiteStore_ClearIsTransactional(t *testing.T) {
	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStore(db)
	require.NoError(t, s.Save(context.Background(), "tok-1", RoleStudent))

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, s.Clear(canceled))

	tok, err := s.Token(context.Background())
	require.NoError(t, err)
	role, err := s.Role(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
	assert.Equal(t, RoleStudent, role)

	require.NoError(t, s.Clear(context.Background()))
	tok, _ = s.Token(context.Background())
	role, _ = s.Role(context.Background())
	assert.Empty(t, tok)
	assert.Empty(t, role)
}
