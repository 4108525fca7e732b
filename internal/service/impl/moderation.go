package impl

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/service"
	"github.com/sparkdate/spark/internal/storage"
)

func (s srv) CreateReport(ctx context.Context, id service.Identity, form service.ReportForm) (*entities.Report, error) {
	if err := authenticated(id); err != nil {
		return nil, err
	}

	if !validID(form.ReportedUserID) || form.ReportedUserID == id.UserID {
		return nil, validationError("invalid reported user")
	}

	if !form.ContentType.Valid() {
		return nil, validationError("invalid content type %q", form.ContentType)
	}

	reason := strings.TrimSpace(form.Reason)
	if reason == "" {
		return nil, validationError("reason is required")
	}

	r := &entities.Report{
		ID:             uuid.New().String(),
		ReporterID:     id.UserID,
		ReportedUserID: form.ReportedUserID,
		Reason:         reason,
		ContentType:    form.ContentType,
		Content:        form.Content,
		Status:         entities.PendingReportStatus,
		CreatedAt:      s.timestamp(),
	}

	if err := s.s.CreateReport(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return r, nil
}

func (s srv) GetStats(ctx context.Context) (*entities.Stats, error) {
	stats, err := s.s.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

func (s srv) ListReports(ctx context.Context, status *entities.ReportStatus) ([]*entities.ReportWithUsers, error) {
	if status != nil && !status.Valid() {
		return nil, validationError("invalid status %q", *status)
	}

	rr, err := s.s.ListReports(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return rr, nil
}

func (s srv) ResolveReport(ctx context.Context, reportID string, decision service.Decision) (*entities.Report, error) {
	if err := requireID("report", reportID); err != nil {
		return nil, err
	}

	var status entities.ReportStatus
	switch decision {
	case service.ApproveDecision:
		status = entities.ApprovedReportStatus
	case service.RejectDecision:
		status = entities.RejectedReportStatus
	default:
		return nil, validationError("invalid decision %q", decision)
	}

	var out *entities.Report

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		r, err := tx.GetReport(ctx, reportID)
		if err != nil {
			return fmt.Errorf("failed to get report: %w", err)
		}

		out = r

		switch r.Status {
		case status:
			return nil
		case entities.PendingReportStatus:
		default:
			return fmt.Errorf("%w: report is already %s", service.ErrConflict, r.Status)
		}

		if err := tx.SetReportStatus(ctx, reportID, status); err != nil {
			return fmt.Errorf("failed to set report status: %w", err)
		}

		r.Status = status

		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) ListMatchesWithMessages(ctx context.Context) ([]*entities.MatchOverview, error) {
	mm, err := s.s.ListMatchOverviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	return mm, nil
}

func (s srv) ListMessages(ctx context.Context, matchID string) ([]*entities.MessageWithSender, error) {
	if err := requireID("match", matchID); err != nil {
		return nil, err
	}

	if _, err := s.s.GetMatch(ctx, matchID); err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	mm, err := s.s.ListMessages(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return mm, nil
}

func (s srv) Unmatch(ctx context.Context, matchID string) (*entities.Match, error) {
	if err := requireID("match", matchID); err != nil {
		return nil, err
	}

	var out *entities.Match

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		m, err := tx.GetMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("failed to get match: %w", err)
		}

		out = m

		if m.Status == entities.UnmatchedMatchStatus {
			return nil
		}

		now := s.timestamp()
		if err := tx.SetMatchStatus(ctx, matchID, entities.UnmatchedMatchStatus, now); err != nil {
			return fmt.Errorf("failed to set match status: %w", err)
		}

		m.Status = entities.UnmatchedMatchStatus
		m.UpdatedAt = now

		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) ListUsers(ctx context.Context, search string) ([]*entities.User, error) {
	uu, err := s.s.ListUsers(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return uu, nil
}

func (s srv) VerifyUser(ctx context.Context, userID string) error {
	if err := requireID("user", userID); err != nil {
		return err
	}

	if err := s.s.SetVerified(ctx, userID, true); err != nil {
		return fmt.Errorf("failed to verify user: %w", err)
	}

	return nil
}

// BanUser bans the account and revokes its sessions.
func (s srv) BanUser(ctx context.Context, userID string) error {
	if err := requireID("user", userID); err != nil {
		return err
	}

	return s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.SetBanned(ctx, userID, true); err != nil {
			return fmt.Errorf("failed to ban user: %w", err)
		}

		if err := tx.DeleteUserSessions(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}

		return nil
	})
}

func (s srv) DeleteUser(ctx context.Context, userID string) error {
	if err := requireID("user", userID); err != nil {
		return err
	}

	if err := s.s.DeleteAccount(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	log.WithField("user_id", userID).Info("account deleted")

	return nil
}
