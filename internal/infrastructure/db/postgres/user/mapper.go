package user

import (
	domain "fileshare-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:          domain.ID(model.ID),
		OpenID:      model.OpenID,
		Name:        model.Name,
		Email:       model.Email,
		LoginMethod: model.LoginMethod,
		Role:        model.Role,

		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
		LastSignedIn: model.LastSignedIn,
	}

	return u
}
