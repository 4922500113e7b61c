package gymapi

import (
	"context"
	"errors"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateAccount = errors.New("email already in use")
	ErrInvalidToken     = errors.New("invalid token")
)

// Account is an admin login identity. Accounts are created out-of-band by the
// gymctl tool and are never mutated by the API.
type Account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

type AccountService interface {
	GetByEmail(ctx context.Context, email string) (Account, error)
	Create(ctx context.Context, account Account) error
}
