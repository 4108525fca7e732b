package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/service"
	"github.com/sparkdate/spark/internal/storage"
)

const tokenSize = 32

func newToken() (string, error) {
	b := make([]byte, tokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// hashToken returns the value stored instead of the token.
func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

func (s srv) ExchangeAuthCode(ctx context.Context, code string) (*service.AuthResult, error) {
	if code == "" {
		return nil, validationError("code is required")
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	res := service.AuthResult{
		Token:     token,
		ExpiresAt: now.Add(s.opts.SessionTTL),
		Redirect:  service.OnboardingRedirect,
	}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		userID, err := tx.ConsumeAuthCode(ctx, code, now)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return service.ErrNotAuthenticated
			}
			return fmt.Errorf("failed to consume auth code: %w", err)
		}

		account, err := tx.GetAccount(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}

		if account.Banned {
			log.WithField("user_id", userID).Info("banned account tried to sign in")
			return fmt.Errorf("%w: account is banned", service.ErrForbidden)
		}

		if err := tx.SetLastSignIn(ctx, userID, now); err != nil {
			return fmt.Errorf("failed to set last sign in: %w", err)
		}

		if err := tx.CreateSession(ctx, &entities.Session{
			TokenHash: hashToken(token),
			UserID:    userID,
			CreatedAt: now,
			ExpiresAt: res.ExpiresAt,
		}); err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		res.Identity = service.Identity{
			UserID:  userID,
			IsAdmin: account.IsAdmin,
		}

		return nil
	}); err != nil {
		return nil, err
	}

	p, err := s.s.GetProfile(ctx, res.Identity.UserID)
	switch {
	case err == nil:
		if p.IsOnboarded() {
			res.Redirect = service.DashboardRedirect
		}
	case errors.Is(err, storage.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &res, nil
}

func (s srv) GetSession(ctx context.Context, token string) (*service.Identity, error) {
	if token == "" {
		return nil, service.ErrNotAuthenticated
	}

	session, err := s.s.GetSession(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if !session.ExpiresAt.After(s.timestamp()) {
		return nil, service.ErrNotAuthenticated
	}

	account, err := s.s.GetAccount(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if account.Banned {
		return nil, service.ErrNotAuthenticated
	}

	return &service.Identity{
		UserID:  account.ID,
		IsAdmin: account.IsAdmin,
	}, nil
}

func (s srv) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return service.ErrNotAuthenticated
	}

	if err := s.s.DeleteSession(ctx, hashToken(token)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s srv) DeleteAccount(ctx context.Context, id service.Identity) error {
	if err := authenticated(id); err != nil {
		return err
	}

	return s.DeleteUser(ctx, id.UserID)
}
