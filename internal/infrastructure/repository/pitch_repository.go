package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/southsideweekly/contributor-hub/internal/domain"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/models/dto"
	"go.uber.org/zap"
)

const (
	insertPitchQuery = `
INSERT INTO pitches(id, title, description, link, author_id, conflict_of_interest, deadline)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, title, description, link, status, assignment_status, deadline,
          conflict_of_interest, version, created_at;`

	insertPitchTopicQuery = `
INSERT INTO pitch_topics(pitch_id, interest_id)
VALUES ($1, $2)
ON CONFLICT (pitch_id, interest_id) DO NOTHING;`

	selectPitchQuery = `
SELECT id, title, description, link, status, assignment_status, deadline,
       conflict_of_interest, author_id, writer_id, primary_editor_id,
       second_editor_id, third_editor_id, version, created_at
FROM pitches
WHERE id = $1;`

	selectAllPitchesQuery = `
SELECT id, title, description, link, status, assignment_status, deadline,
       conflict_of_interest, author_id, writer_id, primary_editor_id,
       second_editor_id, third_editor_id, version, created_at
FROM pitches
ORDER BY created_at DESC;`

	selectPitchTopicsQuery = `
SELECT interest_id FROM pitch_topics
WHERE pitch_id = $1;`

	selectPitchTeamsQuery = `
SELECT team_id, target FROM pitch_teams
WHERE pitch_id = $1
ORDER BY team_id;`

	selectPitchContributorsQuery = `
SELECT user_id, team_id FROM pitch_contributors
WHERE pitch_id = $1
ORDER BY user_id, team_id;`

	selectPitchClaimsQuery = `
SELECT user_id, team_id, message, status, date_submitted FROM pitch_claims
WHERE pitch_id = $1
ORDER BY date_submitted, user_id, team_id;`

	selectPitchIssuesQuery = `
SELECT issue_id, pitch_id, status FROM issue_pitches
WHERE pitch_id = $1;`

	reviewPitchQuery = `
UPDATE pitches
SET status = $2,
    writer_id = NULLIF($3, '')::uuid,
    primary_editor_id = NULLIF($4, '')::uuid,
    second_editor_id = NULLIF($5, '')::uuid,
    third_editor_id = NULLIF($6, '')::uuid
WHERE id = $1;`

	declinePitchQuery = `
UPDATE pitches
SET status = 'DECLINED'
WHERE id = $1;`

	bumpPitchVersionQuery = `
UPDATE pitches
SET assignment_status = $3,
    version = version + 1
WHERE id = $1 AND version = $2;`

	deletePitchTeamsQuery        = `DELETE FROM pitch_teams WHERE pitch_id = $1;`
	deletePitchContributorsQuery = `DELETE FROM pitch_contributors WHERE pitch_id = $1;`
	deletePitchClaimsQuery       = `DELETE FROM pitch_claims WHERE pitch_id = $1;`

	insertPitchTeamQuery = `
INSERT INTO pitch_teams(pitch_id, team_id, target)
VALUES ($1, $2, $3);`

	insertPitchContributorQuery = `
INSERT INTO pitch_contributors(pitch_id, user_id, team_id)
VALUES ($1, $2, $3);`

	insertPitchClaimQuery = `
INSERT INTO pitch_claims(pitch_id, user_id, team_id, message, status, date_submitted)
VALUES ($1, $2, $3, $4, $5, $6);`
)

type PitchRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewPitchRepository(db *pgxpool.Pool, log *zap.Logger) *PitchRepository {
	return &PitchRepository{
		db:  db,
		log: log,
	}
}

func (r *PitchRepository) Create(ctx context.Context, d *dto.CreatePitchDTO) (*domain.Pitch, error) {
	r.log.Info("create pitch started",
		zap.String("pitch_id", d.PitchId),
		zap.String("author_id", d.AuthorId),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer tx.Rollback(ctx)

	p := &domain.Pitch{AuthorId: d.AuthorId, Topics: d.Topics}
	var deadline sql.NullTime
	err = tx.QueryRow(ctx, insertPitchQuery,
		d.PitchId, d.Title, d.Description, d.Link, nullableId(d.AuthorId), d.ConflictOfInterest, d.Deadline,
	).Scan(
		&p.Id,
		&p.Title,
		&p.Description,
		&p.Link,
		&p.Status,
		&p.AssignmentStatus,
		&deadline,
		&p.ConflictOfInterest,
		&p.Version,
		&p.CreatedAt,
	)
	if err != nil {
		r.log.Error("failed to insert pitch", zap.String("pitch_id", d.PitchId), zap.Error(err))
		return nil, handleDBError(err)
	}
	if deadline.Valid {
		p.Deadline = &deadline.Time
	}

	for _, topicId := range d.Topics {
		if topicId == "" {
			continue
		}
		if _, err := tx.Exec(ctx, insertPitchTopicQuery, p.Id, topicId); err != nil {
			r.log.Error("failed to insert pitch topic",
				zap.String("pitch_id", p.Id),
				zap.String("interest_id", topicId),
				zap.Error(err),
			)
			return nil, handleDBError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("failed to commit pitch creation", zap.String("pitch_id", d.PitchId), zap.Error(err))
		return nil, handleDBError(err)
	}

	r.log.Info("pitch created", zap.String("pitch_id", p.Id))
	return p, nil
}

func (r *PitchRepository) GetById(ctx context.Context, pitchId string) (*domain.Pitch, error) {
	r.log.Debug("get pitch", zap.String("pitch_id", pitchId))

	p, err := readPitch(ctx, r.db, pitchId)
	if err != nil {
		return nil, handleDBError(err)
	}
	if err := readPitchChildren(ctx, r.db, p); err != nil {
		r.log.Error("failed to load pitch children", zap.String("pitch_id", pitchId), zap.Error(err))
		return nil, handleDBError(err)
	}
	return p, nil
}

func (r *PitchRepository) List(ctx context.Context) ([]*domain.Pitch, error) {
	r.log.Debug("list pitches")

	rows, err := r.db.Query(ctx, selectAllPitchesQuery)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var pitches []*domain.Pitch
	for rows.Next() {
		p, err := scanPitch(rows)
		if err != nil {
			return nil, handleDBError(err)
		}
		pitches = append(pitches, p)
	}
	rows.Close()

	for _, p := range pitches {
		if err := readPitchChildren(ctx, r.db, p); err != nil {
			r.log.Error("failed to load pitch children", zap.String("pitch_id", p.Id), zap.Error(err))
			return nil, handleDBError(err)
		}
	}

	r.log.Debug("pitches loaded", zap.Int("count", len(pitches)))
	return pitches, nil
}

// Approve finalizes a reviewed pitch: lifecycle status, editors, and the
// per-team position targets in one transaction.
func (r *PitchRepository) Approve(ctx context.Context, d *dto.ReviewPitchDTO) (*domain.Pitch, error) {
	r.log.Info("approve pitch started",
		zap.String("pitch_id", d.PitchId),
		zap.Int("team_slots", len(d.Teams)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, reviewPitchQuery,
		d.PitchId, domain.PitchStatusApproved,
		d.WriterId, d.PrimaryEditorId, d.SecondEditorId, d.ThirdEditorId,
	)
	if err != nil {
		r.log.Error("failed to approve pitch", zap.String("pitch_id", d.PitchId), zap.Error(err))
		return nil, handleDBError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	if _, err := tx.Exec(ctx, deletePitchTeamsQuery, d.PitchId); err != nil {
		return nil, handleDBError(err)
	}
	for _, slot := range d.Teams {
		if _, err := tx.Exec(ctx, insertPitchTeamQuery, d.PitchId, slot.TeamId, slot.Target); err != nil {
			r.log.Error("failed to insert pitch team slot",
				zap.String("pitch_id", d.PitchId),
				zap.String("team_id", slot.TeamId),
				zap.Error(err),
			)
			return nil, handleDBError(err)
		}
	}

	p, err := readPitch(ctx, tx, d.PitchId)
	if err != nil {
		return nil, handleDBError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("failed to commit pitch approval", zap.String("pitch_id", d.PitchId), zap.Error(err))
		return nil, handleDBError(err)
	}

	if err := readPitchChildren(ctx, r.db, p); err != nil {
		return nil, handleDBError(err)
	}

	r.log.Info("pitch approved", zap.String("pitch_id", p.Id))
	return p, nil
}

func (r *PitchRepository) Decline(ctx context.Context, pitchId string) (*domain.Pitch, error) {
	r.log.Info("decline pitch", zap.String("pitch_id", pitchId))

	cmdTag, err := r.db.Exec(ctx, declinePitchQuery, pitchId)
	if err != nil {
		return nil, handleDBError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.log.Warn("pitch not found while declining", zap.String("pitch_id", pitchId))
		return nil, ErrNotFound
	}

	return r.GetById(ctx, pitchId)
}

// SaveClaimState replaces the claim/assignment rows of a pitch with the state
// an engine mutation produced. The write is guarded by the version the state
// was read at: a concurrent writer bumps the version and this call fails with
// ErrVersionConflict so the caller can re-read and retry.
func (r *PitchRepository) SaveClaimState(ctx context.Context, d *dto.SaveClaimStateDTO) error {
	r.log.Info("save claim state started",
		zap.String("pitch_id", d.PitchId),
		zap.Int("expected_version", d.ExpectedVersion),
		zap.Int("contributors", len(d.Contributors)),
		zap.Int("pending_claims", len(d.Claims)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return handleDBError(err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, bumpPitchVersionQuery, d.PitchId, d.ExpectedVersion, d.AssignmentStatus)
	if err != nil {
		r.log.Error("failed to bump pitch version", zap.String("pitch_id", d.PitchId), zap.Error(err))
		return handleDBError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the pitch is gone or someone else won the version race
		if _, err := readPitch(ctx, tx, d.PitchId); err != nil {
			return handleDBError(err)
		}
		r.log.Warn("stale pitch version on save",
			zap.String("pitch_id", d.PitchId),
			zap.Int("expected_version", d.ExpectedVersion),
		)
		return ErrVersionConflict
	}

	if _, err := tx.Exec(ctx, deletePitchTeamsQuery, d.PitchId); err != nil {
		return handleDBError(err)
	}
	if _, err := tx.Exec(ctx, deletePitchContributorsQuery, d.PitchId); err != nil {
		return handleDBError(err)
	}
	if _, err := tx.Exec(ctx, deletePitchClaimsQuery, d.PitchId); err != nil {
		return handleDBError(err)
	}

	for _, slot := range d.Teams {
		if _, err := tx.Exec(ctx, insertPitchTeamQuery, d.PitchId, slot.TeamId, slot.Target); err != nil {
			return handleDBError(err)
		}
	}
	for _, c := range d.Contributors {
		for _, teamId := range c.Teams {
			if _, err := tx.Exec(ctx, insertPitchContributorQuery, d.PitchId, c.UserId, teamId); err != nil {
				return handleDBError(err)
			}
		}
	}
	for _, c := range d.Claims {
		for _, teamId := range c.Teams {
			if _, err := tx.Exec(ctx, insertPitchClaimQuery,
				d.PitchId, c.UserId, teamId, c.Message, c.Status, c.DateSubmitted,
			); err != nil {
				return handleDBError(err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("failed to commit claim state", zap.String("pitch_id", d.PitchId), zap.Error(err))
		return handleDBError(err)
	}

	r.log.Info("claim state saved", zap.String("pitch_id", d.PitchId))
	return nil
}

type queryExecutor interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func readPitch(ctx context.Context, exec queryExecutor, pitchId string) (*domain.Pitch, error) {
	return scanPitch(exec.QueryRow(ctx, selectPitchQuery, pitchId))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPitch(row rowScanner) (*domain.Pitch, error) {
	p := &domain.Pitch{}
	var (
		deadline                                   sql.NullTime
		authorId, writerId, primary, second, third sql.NullString
	)
	err := row.Scan(
		&p.Id,
		&p.Title,
		&p.Description,
		&p.Link,
		&p.Status,
		&p.AssignmentStatus,
		&deadline,
		&p.ConflictOfInterest,
		&authorId,
		&writerId,
		&primary,
		&second,
		&third,
		&p.Version,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if deadline.Valid {
		p.Deadline = &deadline.Time
	}
	p.AuthorId = authorId.String
	p.WriterId = writerId.String
	p.PrimaryEditorId = primary.String
	p.SecondEditorId = second.String
	p.ThirdEditorId = third.String
	return p, nil
}

// readPitchChildren fills topics, team slots, contributors, pending claims
// and issue links. Contributor and claim rows are stored one per (user, team)
// pair and folded back into per-user entries here.
func readPitchChildren(ctx context.Context, exec queryExecutor, p *domain.Pitch) error {
	rows, err := exec.Query(ctx, selectPitchTopicsQuery, p.Id)
	if err != nil {
		return err
	}
	p.Topics = nil
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		p.Topics = append(p.Topics, id)
	}
	rows.Close()

	rows, err = exec.Query(ctx, selectPitchTeamsQuery, p.Id)
	if err != nil {
		return err
	}
	p.Teams = nil
	for rows.Next() {
		var slot domain.TeamSlot
		if err := rows.Scan(&slot.TeamId, &slot.Target); err != nil {
			rows.Close()
			return err
		}
		p.Teams = append(p.Teams, slot)
	}
	rows.Close()

	rows, err = exec.Query(ctx, selectPitchContributorsQuery, p.Id)
	if err != nil {
		return err
	}
	p.AssignmentContributors = nil
	contributorIdx := make(map[string]int)
	for rows.Next() {
		var userId, teamId string
		if err := rows.Scan(&userId, &teamId); err != nil {
			rows.Close()
			return err
		}
		if i, ok := contributorIdx[userId]; ok {
			p.AssignmentContributors[i].Teams = append(p.AssignmentContributors[i].Teams, teamId)
			continue
		}
		contributorIdx[userId] = len(p.AssignmentContributors)
		p.AssignmentContributors = append(p.AssignmentContributors, domain.Contributor{
			UserId: userId,
			Teams:  []string{teamId},
		})
	}
	rows.Close()

	rows, err = exec.Query(ctx, selectPitchClaimsQuery, p.Id)
	if err != nil {
		return err
	}
	p.PendingContributors = nil
	claimIdx := make(map[string]int)
	for rows.Next() {
		var c domain.Claim
		var teamId string
		if err := rows.Scan(&c.UserId, &teamId, &c.Message, &c.Status, &c.DateSubmitted); err != nil {
			rows.Close()
			return err
		}
		if i, ok := claimIdx[c.UserId]; ok {
			p.PendingContributors[i].Teams = append(p.PendingContributors[i].Teams, teamId)
			continue
		}
		c.Teams = []string{teamId}
		claimIdx[c.UserId] = len(p.PendingContributors)
		p.PendingContributors = append(p.PendingContributors, c)
	}
	rows.Close()

	rows, err = exec.Query(ctx, selectPitchIssuesQuery, p.Id)
	if err != nil {
		return err
	}
	p.Issues = nil
	for rows.Next() {
		var ip domain.IssuePitch
		if err := rows.Scan(&ip.IssueId, &ip.PitchId, &ip.Status); err != nil {
			rows.Close()
			return err
		}
		p.Issues = append(p.Issues, ip)
	}
	rows.Close()

	return nil
}

func nullableId(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
