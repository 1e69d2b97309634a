package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"task-manager/internal/repository"
)

const createUserTokensTable = `
CREATE TABLE IF NOT EXISTS user_tokens (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	token TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_user_tokens_user_id ON user_tokens(user_id);
`

type UserTokenRepository struct {
	db *sql.DB
}

func NewUserTokenRepository(db *sql.DB) repository.UserTokenRepository {
	return &UserTokenRepository{db: db}
}

func (r *UserTokenRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUserTokensTable); err != nil {
		return fmt.Errorf("create user_tokens table: %w", err)
	}
	return nil
}

func (r *UserTokenRepository) Append(ctx context.Context, userID, token string) error {
	if _, err := r.db.ExecContext(ctx, `
INSERT INTO user_tokens (user_id, token, created_at)
VALUES (?, ?, ?)`,
		userID,
		token,
		time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

func (r *UserTokenRepository) Remove(ctx context.Context, userID, token string) error {
	if _, err := r.db.ExecContext(ctx, `
DELETE FROM user_tokens
WHERE user_id=? AND token=?`,
		userID,
		token,
	); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

func (r *UserTokenRepository) ListByUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT token
FROM user_tokens
WHERE user_id=?
ORDER BY id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query user tokens: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("scan token: %w", err)
		}
		tokens = append(tokens, token)
	}

	return tokens, rows.Err()
}
