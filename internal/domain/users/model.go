package users

import "time"

// User es la cuenta que es dueña de los gatos. No se modifica después de crearse.
type User struct {
	ID           string
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
