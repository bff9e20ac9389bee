package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stadtwache/patrol/internal/client/models"
	"github.com/stadtwache/patrol/internal/common"
	"github.com/stadtwache/patrol/internal/dbx"
)

// issuedKey stores when the credential was persisted locally. It lives next
// to the token/user keys but is not part of the upstream contract.
const issuedKey = "stadtwache_issued"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (*models.Credential, error) {
	token, err := r.get(ctx, r.db, common.StorageKeyToken)
	if err != nil {
		return nil, err
	}
	userData, err := r.get(ctx, r.db, common.StorageKeyUser)
	if err != nil {
		return nil, err
	}

	// Either part missing means no credential: partial state is treated
	// as absent and must not leak out.
	if len(token) == 0 || len(userData) == 0 {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		return nil, fmt.Errorf("failed to decode stored user: %w", err)
	}

	cred := &models.Credential{AccessToken: string(token), User: user}

	if issued, err := r.get(ctx, r.db, issuedKey); err == nil && len(issued) > 0 {
		if ts, perr := time.Parse(time.RFC3339, string(issued)); perr == nil {
			cred.IssuedLocally = ts
		}
	}
	return cred, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, cred *models.Credential) error {
	userData, err := json.Marshal(cred.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.set(ctx, tx, common.StorageKeyToken, []byte(cred.AccessToken)); err != nil {
			return err
		}
		if err := r.set(ctx, tx, common.StorageKeyUser, userData); err != nil {
			return err
		}
		issued := cred.IssuedLocally
		if issued.IsZero() {
			issued = time.Now()
		}
		return r.set(ctx, tx, issuedKey, []byte(issued.Format(time.RFC3339)))
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range []string{common.StorageKeyToken, common.StorageKeyUser, issuedKey} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key); err != nil {
				return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
			}
		}
		return nil
	})
}
