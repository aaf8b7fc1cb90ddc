package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/southsideweekly/contributor-hub/internal/domain"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/models/dto"
	"go.uber.org/zap"
)

const (
	insertResourceQuery = `
INSERT INTO resources(id, name, link, visibility)
VALUES ($1, $2, $3, $4)
RETURNING id, name, link, visibility, created_at;`

	updateResourceQuery = `
UPDATE resources
SET name = $2,
    link = $3,
    visibility = $4
WHERE id = $1
RETURNING id, name, link, visibility, created_at;`

	deleteResourceQuery = `
DELETE FROM resources
WHERE id = $1;`

	selectAllResourcesQuery = `
SELECT id, name, link, visibility, created_at FROM resources
ORDER BY name;`

	deleteResourceTeamsQuery = `
DELETE FROM resource_teams
WHERE resource_id = $1;`

	insertResourceTeamQuery = `
INSERT INTO resource_teams(resource_id, team_id)
VALUES ($1, $2)
ON CONFLICT (resource_id, team_id) DO NOTHING;`

	selectResourceTeamsQuery = `
SELECT team_id FROM resource_teams
WHERE resource_id = $1;`
)

type ResourceRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewResourceRepository(db *pgxpool.Pool, log *zap.Logger) *ResourceRepository {
	return &ResourceRepository{
		db:  db,
		log: log,
	}
}

func (r *ResourceRepository) Create(ctx context.Context, d *dto.CreateResourceDTO) (*domain.Resource, error) {
	r.log.Info("create resource", zap.String("resource_id", d.ResourceId), zap.String("name", d.Name))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer tx.Rollback(ctx)

	res := &domain.Resource{}
	err = tx.QueryRow(ctx, insertResourceQuery, d.ResourceId, d.Name, d.Link, d.Visibility).Scan(
		&res.Id,
		&res.Name,
		&res.Link,
		&res.Visibility,
		&res.CreatedAt,
	)
	if err != nil {
		r.log.Error("failed to insert resource", zap.String("resource_id", d.ResourceId), zap.Error(err))
		return nil, handleDBError(err)
	}

	for _, teamId := range d.Teams {
		if _, err := tx.Exec(ctx, insertResourceTeamQuery, res.Id, teamId); err != nil {
			return nil, handleDBError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, handleDBError(err)
	}

	res.Teams = d.Teams
	return res, nil
}

func (r *ResourceRepository) Update(ctx context.Context, d *dto.UpdateResourceDTO) (*domain.Resource, error) {
	r.log.Info("update resource", zap.String("resource_id", d.ResourceId))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer tx.Rollback(ctx)

	res := &domain.Resource{}
	err = tx.QueryRow(ctx, updateResourceQuery, d.ResourceId, d.Name, d.Link, d.Visibility).Scan(
		&res.Id,
		&res.Name,
		&res.Link,
		&res.Visibility,
		&res.CreatedAt,
	)
	if err != nil {
		return nil, handleDBError(err)
	}

	if _, err := tx.Exec(ctx, deleteResourceTeamsQuery, res.Id); err != nil {
		return nil, handleDBError(err)
	}
	for _, teamId := range d.Teams {
		if _, err := tx.Exec(ctx, insertResourceTeamQuery, res.Id, teamId); err != nil {
			return nil, handleDBError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, handleDBError(err)
	}

	res.Teams = d.Teams
	return res, nil
}

func (r *ResourceRepository) Delete(ctx context.Context, resourceId string) error {
	r.log.Info("delete resource", zap.String("resource_id", resourceId))

	cmdTag, err := r.db.Exec(ctx, deleteResourceQuery, resourceId)
	if err != nil {
		return handleDBError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ResourceRepository) List(ctx context.Context) ([]*domain.Resource, error) {
	rows, err := r.db.Query(ctx, selectAllResourcesQuery)
	if err != nil {
		return nil, handleDBError(err)
	}
	defer rows.Close()

	var resources []*domain.Resource
	for rows.Next() {
		res := &domain.Resource{}
		err := rows.Scan(&res.Id, &res.Name, &res.Link, &res.Visibility, &res.CreatedAt)
		if err != nil {
			return nil, handleDBError(err)
		}
		resources = append(resources, res)
	}
	rows.Close()

	for _, res := range resources {
		teamRows, err := r.db.Query(ctx, selectResourceTeamsQuery, res.Id)
		if err != nil {
			return nil, handleDBError(err)
		}
		for teamRows.Next() {
			var teamId string
			if err := teamRows.Scan(&teamId); err != nil {
				teamRows.Close()
				return nil, handleDBError(err)
			}
			res.Teams = append(res.Teams, teamId)
		}
		teamRows.Close()
	}

	return resources, nil
}
