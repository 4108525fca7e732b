package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/storage"
)

type accountDTO struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	IsAdmin      bool       `db:"is_admin"`
	Banned       bool       `db:"banned"`
	CreatedAt    time.Time  `db:"created_at"`
	LastSignInAt *time.Time `db:"last_sign_in_at"`
}

type sessionDTO struct {
	TokenHash string    `db:"token_hash"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (s pg) CreateAccount(ctx context.Context, a *entities.Account) error {
	account := accountDTO{
		ID:           a.ID,
		Email:        a.Email,
		IsAdmin:      a.IsAdmin,
		Banned:       a.Banned,
		CreatedAt:    a.CreatedAt.UTC(),
		LastSignInAt: a.LastSignInAt,
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO accounts(id, email, is_admin, banned, created_at, last_sign_in_at)
			VALUES(:id, :email, :is_admin, :banned, :created_at, :last_sign_in_at)
		`, account,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", wrapError(err))
	}

	return nil
}

func (s pg) GetAccount(ctx context.Context, id string) (*entities.Account, error) {
	var a accountDTO

	if err := sqlx.GetContext(ctx, s.ext, &a, `
			SELECT id, email, is_admin, banned, created_at, last_sign_in_at
			FROM accounts
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	return &entities.Account{
		ID:           a.ID,
		Email:        a.Email,
		IsAdmin:      a.IsAdmin,
		Banned:       a.Banned,
		CreatedAt:    a.CreatedAt,
		LastSignInAt: a.LastSignInAt,
	}, nil
}

func (s pg) SetLastSignIn(ctx context.Context, id string, timestamp time.Time) error {
	return s.execAffected(ctx, `UPDATE accounts SET last_sign_in_at=$2 WHERE id=$1`, id, timestamp.UTC())
}

func (s pg) SetBanned(ctx context.Context, id string, banned bool) error {
	return s.execAffected(ctx, `UPDATE accounts SET banned=$2 WHERE id=$1`, id, banned)
}

// DeleteAccount removes the account, everything else is removed by cascade.
func (s pg) DeleteAccount(ctx context.Context, id string) error {
	return s.execAffected(ctx, `DELETE FROM accounts WHERE id=$1`, id)
}

func (s pg) CreateAuthCode(ctx context.Context, code, userID string, expiresAt time.Time) error {
	if _, err := s.ext.ExecContext(ctx,
		`INSERT INTO auth_codes(code, user_id, expires_at) VALUES($1, $2, $3)`,
		code, userID, expiresAt.UTC(),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", wrapError(err))
	}

	return nil
}

func (s pg) ConsumeAuthCode(ctx context.Context, code string, now time.Time) (string, error) {
	var userID string

	if err := sqlx.GetContext(ctx, s.ext, &userID, `
			DELETE FROM auth_codes WHERE code = $1 AND expires_at > $2 RETURNING user_id
		`, code, now.UTC(),
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}

		return "", fmt.Errorf("failed to query: %w", wrapError(err))
	}

	return userID, nil
}

func (s pg) CreateSession(ctx context.Context, session *entities.Session) error {
	dto := sessionDTO{
		TokenHash: session.TokenHash,
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt.UTC(),
		ExpiresAt: session.ExpiresAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO sessions(token_hash, user_id, created_at, expires_at)
			VALUES(:token_hash, :user_id, :created_at, :expires_at)
		`, dto,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", wrapError(err))
	}

	return nil
}

func (s pg) GetSession(ctx context.Context, tokenHash string) (*entities.Session, error) {
	var dto sessionDTO

	if err := sqlx.GetContext(ctx, s.ext, &dto, `
			SELECT token_hash, user_id, created_at, expires_at FROM sessions WHERE token_hash = $1
		`, tokenHash,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	return &entities.Session{
		TokenHash: dto.TokenHash,
		UserID:    dto.UserID,
		CreatedAt: dto.CreatedAt,
		ExpiresAt: dto.ExpiresAt,
	}, nil
}

func (s pg) DeleteSession(ctx context.Context, tokenHash string) error {
	if _, err := s.ext.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash=$1`, tokenHash); err != nil {
		return fmt.Errorf("failed to exec: %w", wrapError(err))
	}

	return nil
}

func (s pg) DeleteUserSessions(ctx context.Context, userID string) error {
	if _, err := s.ext.ExecContext(ctx, `DELETE FROM sessions WHERE user_id=$1`, userID); err != nil {
		return fmt.Errorf("failed to exec: %w", wrapError(err))
	}

	return nil
}

func (s pg) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var total int64

	for _, query := range []string{
		`DELETE FROM sessions WHERE expires_at <= $1`,
		`DELETE FROM auth_codes WHERE expires_at <= $1`,
	} {
		res, err := s.ext.ExecContext(ctx, query, now.UTC())
		if err != nil {
			return total, fmt.Errorf("failed to exec: %w", wrapError(err))
		}

		c, _ := res.RowsAffected()
		total += c
	}

	return total, nil
}
