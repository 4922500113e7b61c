package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	gymapi "github.com/ethiofit/gym-api"
)

// lib/pq errorCodeNames
// https://github.com/lib/pq/blob/master/error.go#L178
const uniqueViolation = "23505"

type AccountService struct {
	db *sql.DB
}

func NewAccountService(db *sql.DB) gymapi.AccountService {
	return &AccountService{
		db: db,
	}
}

func (as AccountService) GetByEmail(ctx context.Context, email string) (gymapi.Account, error) {
	const query = `
	SELECT
		id,
		email,
		name,
		password_hash
	FROM accounts
	WHERE email=$1`

	row := as.db.QueryRowContext(ctx, query, email)

	account := gymapi.Account{}
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&account.PasswordHash,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return account, gymapi.ErrAccountNotFound
		}
		return account, err
	}
	return account, nil
}

func (as AccountService) Create(ctx context.Context, account gymapi.Account) error {
	const query = `
	INSERT INTO accounts (
		id, email, name, password_hash
	) VALUES (
		$1, $2, $3, $4
	)`

	_, err := as.db.ExecContext(ctx, query,
		account.ID,
		account.Email,
		account.Name,
		account.PasswordHash,
	)
	if err != nil {
		if pqerr, ok := err.(*pq.Error); ok && pqerr.Code == uniqueViolation {
			return gymapi.ErrDuplicateAccount
		}
		return err
	}
	return nil
}
