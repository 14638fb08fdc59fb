package repository

import (
	"context"

	"hotel-pms/internal/domain/client"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/repository/converter"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ClientWriteQueries interface {
	FindClientExact(ctx context.Context, db sqlc.DBTX, arg sqlc.FindClientExactParams) (uuid.UUID, error)
	CreateClient(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateClientParams) (uuid.UUID, error)
	UpdateClient(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateClientParams) (int64, error)
}

type ClientRepository struct {
	queries ClientWriteQueries
	db      sqlc.DBTX
}

func NewClientRepository(queries ClientWriteQueries, db sqlc.DBTX) *ClientRepository {
	return &ClientRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ClientRepository) FindOrCreate(ctx context.Context, tx sqlc.DBTX, attrs client.Attributes) (uuid.UUID, error) {
	if err := attrs.Validate(); err != nil {
		return uuid.Nil, err
	}
	attrs = attrs.Normalize()

	id, err := r.queries.FindClientExact(ctx, tx, converter.ClientToFindParams(attrs))
	if err == nil {
		return id, nil
	}
	if !pgconv.IsNoRows(err) {
		return uuid.Nil, infra.WrapRepoErr("failed to look up client", err)
	}

	id, err = r.queries.CreateClient(ctx, tx, converter.ClientToCreateParams(attrs))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create client", err)
	}
	return id, nil
}

func (r *ClientRepository) Update(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, attrs client.Attributes) error {
	if err := attrs.Validate(); err != nil {
		return err
	}
	n, err := r.queries.UpdateClient(ctx, tx, converter.ClientToUpdateParams(id, attrs.Normalize()))
	if err != nil {
		return infra.WrapRepoErr("failed to update client", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}
