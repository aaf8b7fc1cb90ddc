package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/southsideweekly/contributor-hub/internal/domain"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/models/dto"
	"go.uber.org/zap"
)

const (
	insertTeamQuery = `
INSERT INTO teams(id, name, color, active)
VALUES ($1, $2, $3, $4)
RETURNING id, name, color, active;`

	selectAllTeamsQuery = `
SELECT id, name, color, active FROM teams
ORDER BY name;`

	insertInterestQuery = `
INSERT INTO interests(id, name, color, active)
VALUES ($1, $2, $3, $4)
RETURNING id, name, color, active;`

	selectAllInterestsQuery = `
SELECT id, name, color, active FROM interests
ORDER BY name;`
)

// ReferenceRepository serves the small lookup tables (teams, interests) that
// everything else references by id.
type ReferenceRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewReferenceRepository(db *pgxpool.Pool, log *zap.Logger) *ReferenceRepository {
	return &ReferenceRepository{
		db:  db,
		log: log,
	}
}

func (r *ReferenceRepository) AddTeam(ctx context.Context, d *dto.AddTeamDTO) (*domain.Team, error) {
	r.log.Info("add team", zap.String("team_name", d.Name))

	team := &domain.Team{}
	err := r.db.QueryRow(ctx, insertTeamQuery, d.TeamId, d.Name, d.Color, d.Active).Scan(
		&team.Id,
		&team.Name,
		&team.Color,
		&team.Active,
	)
	if err != nil {
		r.log.Error("failed to insert team", zap.String("team_name", d.Name), zap.Error(err))
		return nil, handleDBError(err)
	}
	return team, nil
}

func (r *ReferenceRepository) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	rows, err := r.db.Query(ctx, selectAllTeamsQuery)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		team := &domain.Team{}
		if err := rows.Scan(&team.Id, &team.Name, &team.Color, &team.Active); err != nil {
			return nil, handleDBError(err)
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func (r *ReferenceRepository) AddInterest(ctx context.Context, d *dto.AddInterestDTO) (*domain.Interest, error) {
	r.log.Info("add interest", zap.String("interest_name", d.Name))

	interest := &domain.Interest{}
	err := r.db.QueryRow(ctx, insertInterestQuery, d.InterestId, d.Name, d.Color, d.Active).Scan(
		&interest.Id,
		&interest.Name,
		&interest.Color,
		&interest.Active,
	)
	if err != nil {
		r.log.Error("failed to insert interest", zap.String("interest_name", d.Name), zap.Error(err))
		return nil, handleDBError(err)
	}
	return interest, nil
}

func (r *ReferenceRepository) ListInterests(ctx context.Context) ([]*domain.Interest, error) {
	rows, err := r.db.Query(ctx, selectAllInterestsQuery)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var interests []*domain.Interest
	for rows.Next() {
		interest := &domain.Interest{}
		if err := rows.Scan(&interest.Id, &interest.Name, &interest.Color, &interest.Active); err != nil {
			return nil, handleDBError(err)
		}
		interests = append(interests, interest)
	}
	return interests, nil
}
