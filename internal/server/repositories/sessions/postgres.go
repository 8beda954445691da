package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/common"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/dbx"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/server/models"
)

// PostgresRepository keeps one row per session with the transcript as a
// jsonb array, mirroring the file layout. Save replaces the user's rows in
// a single transaction, preserving the whole-history-rewrite semantics of
// the file backend.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(ctx context.Context, username string) (models.SessionMap, error) {
	query :=
		`SELECT name, messages FROM chat_sessions
		 WHERE username = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	sessions := models.SessionMap{}
	for rows.Next() {
		var name string
		var raw []byte
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}

		var msgs []models.Message
		if err := json.Unmarshal(raw, &msgs); err != nil {
			return nil, fmt.Errorf("decode session %q: %w", name, common.ErrorCorruptData)
		}
		sessions[name] = msgs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return sessions, nil
}

func (r *PostgresRepository) Save(ctx context.Context, username string, sessions models.SessionMap) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM chat_sessions WHERE username = $1`, username); err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		query :=
			`INSERT INTO chat_sessions (username, name, messages)
			 VALUES ($1, $2, $3)
			 `

		for name, msgs := range sessions {
			raw, err := json.Marshal(msgs)
			if err != nil {
				return fmt.Errorf("encode session %q: %w", name, err)
			}
			if _, err := tx.ExecContext(ctx, query, username, name, raw); err != nil {
				return fmt.Errorf("db error: %w", err)
			}
		}

		return nil
	})
}
