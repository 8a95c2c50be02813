package optin

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Save a new opt-in
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, o *OptIn) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	query := `
		INSERT INTO optins (
			id,
			name,
			phone
		)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		o.ID,
		o.Name,
		o.Phone,
	).Scan(&o.CreatedAt)
}

// --------------------------------------------------
// List all opt-ins, newest first
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]*OptIn, error) {
	query := `
		SELECT
			id,
			name,
			phone,
			created_at
		FROM optins
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var optins []*OptIn

	for rows.Next() {
		var o OptIn
		if err := rows.Scan(
			&o.ID,
			&o.Name,
			&o.Phone,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		optins = append(optins, &o)
	}

	return optins, nil
}
