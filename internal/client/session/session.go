// Package session is the client's session context: the bearer credential and
// the role tag, persisted in a metadata.Repository under two fixed keys.
// Save, Clear and the two readers are the only ways to touch them.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tutorias/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tutorias/internal/common"
	"github.com/dmitrijs2005/tutorias/internal/dbx"
)

type Store struct {
	repo metadata.Repository
	// db, when set, makes Save and Clear touch both keys in one transaction.
	db *sql.DB
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// NewSQLiteStore is NewStore over a SQLite database whose two-key writes
// are transactional.
func NewSQLiteStore(db *sql.DB) *Store {
	return &Store{repo: metadata.NewSQLiteRepository(db), db: db}
}

// Token returns the stored credential, or "" when there is none.
func (s *Store) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, common.AccessTokenKey)
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}
	return string(v), nil
}

// Role returns the stored role tag, or "" when there is none.
func (s *Store) Role(ctx context.Context) (Role, error) {
	v, err := s.repo.Get(ctx, common.UserRoleKey)
	if err != nil {
		return "", fmt.Errorf("read role: %w", err)
	}
	return Role(v), nil
}

// Save stores the credential and role written by a successful login.
func (s *Store) Save(ctx context.Context, token string, role Role) error {
	write := func(ctx context.Context, repo metadata.Repository) error {
		if err := repo.Set(ctx, common.AccessTokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserRoleKey, []byte(role))
	}

	if s.db == nil {
		return write(ctx, s.repo)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return write(ctx, metadata.NewSQLiteRepository(tx))
	})
}

// Clear erases the credential and the role together. Other metadata keys are
// left alone. Clearing an empty session succeeds.
func (s *Store) Clear(ctx context.Context) error {
	if s.db == nil {
		return s.repo.Delete(ctx, common.AccessTokenKey, common.UserRoleKey)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.AccessTokenKey, common.UserRoleKey)
	})
}
