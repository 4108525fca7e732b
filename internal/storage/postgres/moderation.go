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

type reportDTO struct {
	ID             string    `db:"id"`
	ReporterID     string    `db:"reporter_id"`
	ReportedUserID string    `db:"reported_user_id"`
	Reason         string    `db:"reason"`
	ContentType    string    `db:"content_type"`
	Content        string    `db:"content"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
}

type reportWithUsersDTO struct {
	reportDTO
	Reporter     briefDTO `db:"reporter"`
	ReportedUser briefDTO `db:"reported"`
}

type statsDTO struct {
	TotalUsers      int `db:"total_users"`
	TotalMatches    int `db:"total_matches"`
	ActiveChats     int `db:"active_chats"`
	ReportedContent int `db:"reported_content"`
}

func (r reportDTO) toEntity() *entities.Report {
	return &entities.Report{
		ID:             r.ID,
		ReporterID:     r.ReporterID,
		ReportedUserID: r.ReportedUserID,
		Reason:         r.Reason,
		ContentType:    entities.ContentType(r.ContentType),
		Content:        r.Content,
		Status:         entities.ReportStatus(r.Status),
		CreatedAt:      r.CreatedAt,
	}
}

func (s pg) CreateReport(ctx context.Context, r *entities.Report) error {
	report := reportDTO{
		ID:             r.ID,
		ReporterID:     r.ReporterID,
		ReportedUserID: r.ReportedUserID,
		Reason:         r.Reason,
		ContentType:    string(r.ContentType),
		Content:        r.Content,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO reported_content(id, reporter_id, reported_user_id, reason, content_type, content, status, created_at)
			VALUES(:id, :reporter_id, :reported_user_id, :reason, :content_type, :content, :status, :created_at)
		`, report,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", wrapError(err))
	}

	return nil
}

func (s pg) GetReport(ctx context.Context, id string) (*entities.Report, error) {
	var r reportDTO

	if err := sqlx.GetContext(ctx, s.ext, &r, `
			SELECT id, reporter_id, reported_user_id, reason, content_type, content, status, created_at
			FROM reported_content
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	return r.toEntity(), nil
}

func (s pg) ListReports(ctx context.Context, status *entities.ReportStatus) ([]*entities.ReportWithUsers, error) {
	var filter sql.NullString
	if status != nil {
		filter = sql.NullString{String: string(*status), Valid: true}
	}

	var reports []*reportWithUsersDTO

	if err := sqlx.SelectContext(ctx, s.ext, &reports, fmt.Sprintf(`
			SELECT r.id, r.reporter_id, r.reported_user_id, r.reason, r.content_type, r.content, r.status, r.created_at,
				%s, %s
			FROM reported_content r
			LEFT JOIN profiles rp ON rp.id = r.reporter_id
			LEFT JOIN profiles rd ON rd.id = r.reported_user_id
			WHERE $1::TEXT IS NULL OR r.status = $1::TEXT
			ORDER BY r.created_at DESC
		`, briefColumns("rp", "reporter"), briefColumns("rd", "reported")), filter,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	out := make([]*entities.ReportWithUsers, len(reports))
	for i, v := range reports {
		out[i] = &entities.ReportWithUsers{
			Report:       *v.reportDTO.toEntity(),
			Reporter:     v.Reporter.toEntity(),
			ReportedUser: v.ReportedUser.toEntity(),
		}
	}

	return out, nil
}

func (s pg) SetReportStatus(ctx context.Context, id string, status entities.ReportStatus) error {
	return s.execAffected(ctx, `UPDATE reported_content SET status=$2 WHERE id=$1`, id, string(status))
}

func (s pg) GetStats(ctx context.Context) (*entities.Stats, error) {
	var stats statsDTO

	if err := sqlx.GetContext(ctx, s.ext, &stats, `
			SELECT
				(SELECT COUNT(*) FROM profiles)::INT AS total_users,
				(SELECT COUNT(*) FROM matches WHERE status = 'matched')::INT AS total_matches,
				(
					SELECT COUNT(DISTINCT msg.match_id)
					FROM messages msg
					JOIN matches m ON m.id = msg.match_id AND m.status = 'matched'
				)::INT AS active_chats,
				(SELECT COUNT(*) FROM reported_content WHERE status = 'pending')::INT AS reported_content
		`,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	return &entities.Stats{
		TotalUsers:      stats.TotalUsers,
		TotalMatches:    stats.TotalMatches,
		ActiveChats:     stats.ActiveChats,
		ReportedContent: stats.ReportedContent,
	}, nil
}
