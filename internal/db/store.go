// exposes a Store interface that is passed to the API modules
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/courtside-live/courtside/internal/model"
)

type Store interface {
	// operator account functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}
