package user

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type (
	ID   uint64
	User struct {
		ID          ID
		OpenID      string
		Name        *string
		Email       *string
		LoginMethod *string
		Role        string

		CreatedAt    time.Time
		UpdatedAt    time.Time
		LastSignedIn time.Time
	}
	Users []*User

	// UpsertRecord is the opaque authenticated-user record handed over
	// by the OAuth portal after a successful login. OpenID is the only
	// required field; nil optionals leave stored values untouched.
	UpsertRecord struct {
		OpenID      string
		Name        *string
		Email       *string
		LoginMethod *string
		Role        *string
	}
)
