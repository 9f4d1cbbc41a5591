package user

import (
	"time"
)

type (
	User struct {
		ID          uint64
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
)
