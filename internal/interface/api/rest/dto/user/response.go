package user

import (
	"time"
)

type User struct {
	ID           uint64    `json:"id"`
	OpenID       string    `json:"open_id"`
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	LoginMethod  *string   `json:"login_method"`
	Role         string    `json:"role"`
	LastSignedIn time.Time `json:"last_signed_in"`
}
