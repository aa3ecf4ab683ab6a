package migrations

import (
	"github.com/chela-orm/chela"
	"github.com/chela-orm/chela/internal/models"
)

// UpUser registers the users table and the orders it has many of
func UpUser(db *chela.DB) error {
	return db.Register(&models.User{}, &models.Order{})
}
