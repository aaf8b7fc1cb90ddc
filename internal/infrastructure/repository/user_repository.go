package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/southsideweekly/contributor-hub/internal/domain"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/models/dto"
	"go.uber.org/zap"
)

const (
	insertUserQuery = `
INSERT INTO users(id, first_name, last_name, email, role, onboarding_status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, first_name, last_name, email, role, onboarding_status, last_active, created_at;`

	insertUserInterestQuery = `
INSERT INTO user_interests(user_id, interest_id)
VALUES ($1, $2)
ON CONFLICT (user_id, interest_id) DO NOTHING;`

	insertUserTeamQuery = `
INSERT INTO user_teams(user_id, team_id)
VALUES ($1, $2)
ON CONFLICT (user_id, team_id) DO NOTHING;`

	selectUserQuery = `
SELECT id, first_name, last_name, email, role, onboarding_status, last_active, created_at
FROM users
WHERE id = $1;`

	selectAllUsersQuery = `
SELECT id, first_name, last_name, email, role, onboarding_status, last_active, created_at
FROM users
ORDER BY created_at;`

	selectUserInterestsQuery = `
SELECT interest_id FROM user_interests
WHERE user_id = $1;`

	selectUserTeamsQuery = `
SELECT team_id FROM user_teams
WHERE user_id = $1;`

	setLastActiveQuery = `
UPDATE users
SET last_active = $2
WHERE id = $1;`

	setOnboardingStatusQuery = `
UPDATE users
SET onboarding_status = $2
WHERE id = $1;`
)

type UserRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, log *zap.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log,
	}
}

func (r *UserRepository) Create(ctx context.Context, d *dto.CreateUserDTO) (*domain.User, error) {
	r.log.Info("create user started",
		zap.String("user_id", d.UserId),
		zap.String("email", d.Email),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer tx.Rollback(ctx)

	user := &domain.User{}
	err = tx.QueryRow(ctx, insertUserQuery,
		d.UserId, d.FirstName, d.LastName, d.Email, d.Role, d.OnboardingStatus,
	).Scan(
		&user.Id,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Role,
		&user.OnboardingStatus,
		&user.LastActive,
		&user.CreatedAt,
	)
	if err != nil {
		r.log.Error("failed to insert user", zap.String("user_id", d.UserId), zap.Error(err))
		return nil, handleDBError(err)
	}

	for _, interestId := range d.Interests {
		if _, err := tx.Exec(ctx, insertUserInterestQuery, user.Id, interestId); err != nil {
			return nil, handleDBError(err)
		}
	}
	for _, teamId := range d.Teams {
		if _, err := tx.Exec(ctx, insertUserTeamQuery, user.Id, teamId); err != nil {
			return nil, handleDBError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("failed to commit user creation", zap.String("user_id", d.UserId), zap.Error(err))
		return nil, handleDBError(err)
	}

	user.Interests = d.Interests
	user.Teams = d.Teams

	r.log.Info("user created", zap.String("user_id", user.Id))
	return user, nil
}

func (r *UserRepository) GetById(ctx context.Context, userId string) (*domain.User, error) {
	r.log.Debug("get user", zap.String("user_id", userId))

	user := &domain.User{}
	err := r.db.QueryRow(ctx, selectUserQuery, userId).Scan(
		&user.Id,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Role,
		&user.OnboardingStatus,
		&user.LastActive,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, handleDBError(err)
	}

	if err := r.readUserRefs(ctx, user); err != nil {
		return nil, handleDBError(err)
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.log.Debug("list users")

	rows, err := r.db.Query(ctx, selectAllUsersQuery)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		err := rows.Scan(
			&user.Id,
			&user.FirstName,
			&user.LastName,
			&user.Email,
			&user.Role,
			&user.OnboardingStatus,
			&user.LastActive,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, handleDBError(err)
		}
		users = append(users, user)
	}
	rows.Close()

	for _, user := range users {
		if err := r.readUserRefs(ctx, user); err != nil {
			return nil, handleDBError(err)
		}
	}

	r.log.Debug("users loaded", zap.Int("count", len(users)))
	return users, nil
}

func (r *UserRepository) SetLastActive(ctx context.Context, d *dto.SetLastActiveDTO) (*domain.User, error) {
	r.log.Info("set user last active", zap.String("user_id", d.UserId))

	cmdTag, err := r.db.Exec(ctx, setLastActiveQuery, d.UserId, d.LastActive)
	if err != nil {
		return nil, handleDBError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.log.Warn("user not found while touching last_active", zap.String("user_id", d.UserId))
		return nil, ErrNotFound
	}

	return r.GetById(ctx, d.UserId)
}

func (r *UserRepository) SetOnboardingStatus(ctx context.Context, d *dto.SetOnboardingStatusDTO) (*domain.User, error) {
	r.log.Info("set onboarding status",
		zap.String("user_id", d.UserId),
		zap.String("onboarding_status", d.OnboardingStatus),
	)

	cmdTag, err := r.db.Exec(ctx, setOnboardingStatusQuery, d.UserId, d.OnboardingStatus)
	if err != nil {
		return nil, handleDBError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		r.log.Warn("user not found while updating onboarding", zap.String("user_id", d.UserId))
		return nil, ErrNotFound
	}

	return r.GetById(ctx, d.UserId)
}

func (r *UserRepository) readUserRefs(ctx context.Context, user *domain.User) error {
	rows, err := r.db.Query(ctx, selectUserInterestsQuery, user.Id)
	if err != nil {
		return err
	}
	user.Interests = nil
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		user.Interests = append(user.Interests, id)
	}
	rows.Close()

	rows, err = r.db.Query(ctx, selectUserTeamsQuery, user.Id)
	if err != nil {
		return err
	}
	user.Teams = nil
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		user.Teams = append(user.Teams, id)
	}
	rows.Close()

	return nil
}
