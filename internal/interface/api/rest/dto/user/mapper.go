package user

import (
	domain "fileshare-api/internal/domain/user"
)

func ToResponseUser(uDomain domain.User) User {
	var u = User{
		ID:           uint64(uDomain.ID),
		OpenID:       uDomain.OpenID,
		Name:         uDomain.Name,
		Email:        uDomain.Email,
		LoginMethod:  uDomain.LoginMethod,
		Role:         uDomain.Role,
		LastSignedIn: uDomain.LastSignedIn,
	}

	return u
}
