package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/southsideweekly/contributor-hub/internal/domain"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/models/dto"
	"go.uber.org/zap"
)

const (
	insertIssueQuery = `
INSERT INTO issues(id, release_date, deadline_date, type)
VALUES ($1, $2, $3, $4)
RETURNING id, release_date, deadline_date, type;`

	selectAllIssuesQuery = `
SELECT id, release_date, deadline_date, type FROM issues
ORDER BY release_date DESC;`

	upsertIssuePitchQuery = `
INSERT INTO issue_pitches(issue_id, pitch_id, status)
VALUES ($1, $2, $3)
ON CONFLICT (issue_id, pitch_id) DO UPDATE
	SET status = EXCLUDED.status
RETURNING issue_id, pitch_id, status;`
)

type IssueRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewIssueRepository(db *pgxpool.Pool, log *zap.Logger) *IssueRepository {
	return &IssueRepository{
		db:  db,
		log: log,
	}
}

func (r *IssueRepository) Create(ctx context.Context, d *dto.CreateIssueDTO) (*domain.Issue, error) {
	r.log.Info("create issue", zap.String("issue_id", d.IssueId), zap.String("type", d.Type))

	issue := &domain.Issue{}
	err := r.db.QueryRow(ctx, insertIssueQuery, d.IssueId, d.ReleaseDate, d.DeadlineDate, d.Type).Scan(
		&issue.Id,
		&issue.ReleaseDate,
		&issue.DeadlineDate,
		&issue.Type,
	)
	if err != nil {
		r.log.Error("failed to insert issue", zap.String("issue_id", d.IssueId), zap.Error(err))
		return nil, handleDBError(err)
	}
	return issue, nil
}

func (r *IssueRepository) List(ctx context.Context) ([]*domain.Issue, error) {
	rows, err := r.db.Query(ctx, selectAllIssuesQuery)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var issues []*domain.Issue
	for rows.Next() {
		issue := &domain.Issue{}
		if err := rows.Scan(&issue.Id, &issue.ReleaseDate, &issue.DeadlineDate, &issue.Type); err != nil {
			return nil, handleDBError(err)
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

// SetPitchStatus attaches a pitch to a publication cycle, updating the status
// in place when the link already exists.
func (r *IssueRepository) SetPitchStatus(ctx context.Context, d *dto.SetIssuePitchStatusDTO) (*domain.IssuePitch, error) {
	r.log.Info("set issue pitch status",
		zap.String("issue_id", d.IssueId),
		zap.String("pitch_id", d.PitchId),
		zap.String("status", d.Status),
	)

	link := &domain.IssuePitch{}
	err := r.db.QueryRow(ctx, upsertIssuePitchQuery, d.IssueId, d.PitchId, d.Status).Scan(
		&link.IssueId,
		&link.PitchId,
		&link.Status,
	)
	if err != nil {
		r.log.Error("failed to upsert issue pitch status",
			zap.String("issue_id", d.IssueId),
			zap.String("pitch_id", d.PitchId),
			zap.Error(err),
		)
		return nil, handleDBError(err)
	}
	return link, nil
}
