package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/southsideweekly/contributor-hub/internal/domain"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/models/dto"
	"go.uber.org/zap"
)

const (
	insertUserFeedbackQuery = `
INSERT INTO user_feedback(id, staff_id, user_id, pitch_id, stars, reasoning)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, staff_id, user_id, pitch_id, stars, reasoning, created_at;`

	selectUserFeedbackQuery = `
SELECT id, staff_id, user_id, pitch_id, stars, reasoning, created_at
FROM user_feedback
WHERE user_id = $1
ORDER BY created_at DESC;`

	insertPitchFeedbackQuery = `
INSERT INTO pitch_feedback(id, pitch_id, user_id, stars, message)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, pitch_id, user_id, stars, message, created_at;`

	selectPitchFeedbackQuery = `
SELECT id, pitch_id, user_id, stars, message, created_at
FROM pitch_feedback
WHERE pitch_id = $1
ORDER BY created_at DESC;`
)

type FeedbackRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewFeedbackRepository(db *pgxpool.Pool, log *zap.Logger) *FeedbackRepository {
	return &FeedbackRepository{
		db:  db,
		log: log,
	}
}

func (r *FeedbackRepository) CreateUserFeedback(ctx context.Context, d *dto.CreateUserFeedbackDTO) (*domain.UserFeedback, error) {
	r.log.Info("create user feedback",
		zap.String("staff_id", d.StaffId),
		zap.String("user_id", d.UserId),
	)

	fb := &domain.UserFeedback{}
	var pitchId sql.NullString
	err := r.db.QueryRow(ctx, insertUserFeedbackQuery,
		d.FeedbackId, d.StaffId, d.UserId, nullableId(d.PitchId), d.Stars, d.Reasoning,
	).Scan(
		&fb.Id,
		&fb.StaffId,
		&fb.UserId,
		&pitchId,
		&fb.Stars,
		&fb.Reasoning,
		&fb.CreatedAt,
	)
	if err != nil {
		r.log.Error("failed to insert user feedback", zap.String("user_id", d.UserId), zap.Error(err))
		return nil, handleDBError(err)
	}
	fb.PitchId = pitchId.String
	return fb, nil
}

func (r *FeedbackRepository) ListUserFeedback(ctx context.Context, userId string) ([]*domain.UserFeedback, error) {
	rows, err := r.db.Query(ctx, selectUserFeedbackQuery, userId)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var feedback []*domain.UserFeedback
	for rows.Next() {
		fb := &domain.UserFeedback{}
		var pitchId sql.NullString
		err := rows.Scan(&fb.Id, &fb.StaffId, &fb.UserId, &pitchId, &fb.Stars, &fb.Reasoning, &fb.CreatedAt)
		if err != nil {
			return nil, handleDBError(err)
		}
		fb.PitchId = pitchId.String
		feedback = append(feedback, fb)
	}
	return feedback, nil
}

func (r *FeedbackRepository) CreatePitchFeedback(ctx context.Context, d *dto.CreatePitchFeedbackDTO) (*domain.PitchFeedback, error) {
	r.log.Info("create pitch feedback", zap.String("pitch_id", d.PitchId))

	fb := &domain.PitchFeedback{}
	var userId sql.NullString
	err := r.db.QueryRow(ctx, insertPitchFeedbackQuery,
		d.FeedbackId, d.PitchId, nullableId(d.UserId), d.Stars, d.Message,
	).Scan(
		&fb.Id,
		&fb.PitchId,
		&userId,
		&fb.Stars,
		&fb.Message,
		&fb.CreatedAt,
	)
	if err != nil {
		r.log.Error("failed to insert pitch feedback", zap.String("pitch_id", d.PitchId), zap.Error(err))
		return nil, handleDBError(err)
	}
	fb.UserId = userId.String
	return fb, nil
}

func (r *FeedbackRepository) ListPitchFeedback(ctx context.Context, pitchId string) ([]*domain.PitchFeedback, error) {
	rows, err := r.db.Query(ctx, selectPitchFeedbackQuery, pitchId)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var feedback []*domain.PitchFeedback
	for rows.Next() {
		fb := &domain.PitchFeedback{}
		var userId sql.NullString
		err := rows.Scan(&fb.Id, &fb.PitchId, &userId, &fb.Stars, &fb.Message, &fb.CreatedAt)
		if err != nil {
			return nil, handleDBError(err)
		}
		fb.UserId = userId.String
		feedback = append(feedback, fb)
	}
	return feedback, nil
}
