package auth

import "github.com/inkwellbooks/inkwell/pkg/models"

// UserResource is the serialized shape of a user.
type UserResource struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewUserResource(user *models.User) *UserResource {
	return &UserResource{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: models.FormatTimestamp(user.CreatedAt),
		UpdatedAt: models.FormatTimestamp(user.UpdatedAt),
	}
}
