package source

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parts_api/internal/parts/repository"
	"parts_api/platform/apperr"
)

const opPostgresLoad = "source.Postgres.Load"

const selectPartsSQL = `
SELECT part_number, nomenclature, nsn
FROM parts
ORDER BY position`

// Postgres reads the catalog from the parts table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres-backed source.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Name implements Source.
func (p *Postgres) Name() string { return "postgres" }

// Load implements Source.
func (p *Postgres) Load(ctx context.Context) ([]repository.Part, error) {
	rows, err := p.pool.Query(ctx, selectPartsSQL)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "query parts", err).WithOp(opPostgresLoad)
	}

	parts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (repository.Part, error) {
		var part repository.Part
		err := row.Scan(&part.PartNumber, &part.NomenClature, &part.NSN)
		return part, err
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "scan parts", err).WithOp(opPostgresLoad)
	}
	if len(parts) == 0 {
		return nil, apperr.Internal("parts table is empty").WithOp(opPostgresLoad)
	}
	return parts, nil
}
