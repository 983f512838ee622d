package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the wallet owner. Registration creates the user together with a
// zero-balance wallet; the wallet is keyed by the user's email everywhere else.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName returns the name shown on balance statements.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
