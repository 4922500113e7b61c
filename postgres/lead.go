package postgres

import (
	"context"
	"database/sql"

	gymapi "github.com/ethiofit/gym-api"
)

type LeadService struct {
	db *sql.DB
}

func NewLeadService(db *sql.DB) gymapi.LeadService {
	return &LeadService{
		db: db,
	}
}

func (ls LeadService) Create(ctx context.Context, lead gymapi.Lead) error {
	const query = `
	INSERT INTO leads (
		id, name, email, phone, program, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6
	)`

	_, err := ls.db.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Program,
		lead.CreatedAt,
	)
	return err
}

func (ls LeadService) List(ctx context.Context) ([]gymapi.Lead, error) {
	const query = `
	SELECT
		id,
		name,
		email,
		phone,
		program,
		created_at
	FROM leads
	ORDER BY created_at DESC`

	rows, err := ls.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []gymapi.Lead{}
	for rows.Next() {
		var lead gymapi.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Email,
			&lead.Phone,
			&lead.Program,
			&lead.CreatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (ls LeadService) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM leads WHERE id=$1`

	res, err := ls.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return gymapi.ErrLeadNotFound
	}
	return nil
}
